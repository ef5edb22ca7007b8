package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one completed challenge evaluation. The result
// ledger is append-only: rows are never updated or deleted, and retries
// of a challenge append a new row rather than replacing the old one.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.String("scene_id").
			NotEmpty().
			Comment("Scene this challenge belongs to"),
		field.String("kind").
			NotEmpty().
			Comment("Challenge kind: voice-response, written-challenge, ..."),
		field.String("dimension").
			NotEmpty().
			Comment("Skill dimension the challenge assesses"),
		field.JSON("scores", map[string]float64{}).
			Comment("Per-criterion scores on the 1-5 scale"),
		field.String("feedback").
			Comment("Candidate-facing feedback text"),
		field.Text("raw_response").
			Default("").
			Comment("Raw evaluator output for audit, empty for local scoring"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("scene_id"),
		index.Fields("dimension"),
	}
}
