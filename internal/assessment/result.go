package assessment

import (
	"time"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
)

// Result is one completed challenge evaluation in the run's ledger.
// Results are append-only: retrying a scene appends a new Result rather
// than replacing the old one.
type Result struct {
	SceneID   string
	Kind      catalog.ChallengeKind
	Dimension string
	Scores    map[string]float64
	Feedback  string
	Extras    map[string]any
	Raw       string
	Fallback  bool
	At        time.Time
}

// fromEvaluation binds an evaluation outcome to its scene.
func fromEvaluation(scene catalog.Scene, r evaluate.Result) Result {
	return Result{
		SceneID:   scene.ID,
		Kind:      scene.Kind,
		Dimension: scene.Dimension,
		Scores:    r.Scores,
		Feedback:  r.Feedback,
		Extras:    r.Extras,
		Raw:       r.Raw,
		Fallback:  r.Fallback,
		At:        time.Now(),
	}
}

// EventData converts the result into its persisted ledger form.
func (r Result) EventData(assessmentID string) store.ResultEventData {
	return store.ResultEventData{
		AssessmentID: assessmentID,
		SceneID:      r.SceneID,
		Kind:         r.Kind.String(),
		Dimension:    r.Dimension,
		Scores:       r.Scores,
		Feedback:     r.Feedback,
		RawResponse:  r.Raw,
	}
}
