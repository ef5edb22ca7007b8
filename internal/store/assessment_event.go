package store

import (
	"context"
	"fmt"

	"github.com/trio-sh/academy-builder-sub001/ent"
	"github.com/trio-sh/academy-builder-sub001/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetAction(data.Action).
		SetScenesCompleted(data.ScenesCompleted).
		SetChallengesScored(data.ChallengesScored).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) Assessments(ctx context.Context) ([]AssessmentRecord, error) {
	events, err := r.client.AssessmentEvent.Query().
		Order(ent.Asc(assessmentevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]AssessmentRecord, len(events))
	for i, e := range events {
		out[i] = AssessmentRecord{
			Sequence:         e.Sequence,
			Timestamp:        e.Timestamp,
			AssessmentID:     e.AssessmentID,
			Action:           e.Action,
			ScenesCompleted:  e.ScenesCompleted,
			ChallengesScored: e.ChallengesScored,
			DurationSecs:     e.DurationSecs,
		}
	}
	return out, nil
}
