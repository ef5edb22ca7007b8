package store

import (
	"context"
	"fmt"

	"github.com/trio-sh/academy-builder-sub001/ent"
	"github.com/trio-sh/academy-builder-sub001/ent/resultevent"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetSceneID(data.SceneID).
		SetKind(data.Kind).
		SetDimension(data.Dimension).
		SetScores(data.Scores).
		SetFeedback(data.Feedback).
		SetRawResponse(data.RawResponse).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResultsForAssessment(ctx context.Context, assessmentID string) ([]ResultRecord, error) {
	events, err := r.client.ResultEvent.Query().
		Where(resultevent.AssessmentID(assessmentID)).
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	out := make([]ResultRecord, len(events))
	for i, e := range events {
		out[i] = ResultRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResultEventData: ResultEventData{
				AssessmentID: e.AssessmentID,
				SceneID:      e.SceneID,
				Kind:         e.Kind,
				Dimension:    e.Dimension,
				Scores:       e.Scores,
				Feedback:     e.Feedback,
				RawResponse:  e.RawResponse,
			},
		}
	}
	return out, nil
}
