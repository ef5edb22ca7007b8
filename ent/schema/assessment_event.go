package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records assessment run lifecycle events (start/end).
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("UUID grouping events in an assessment run"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("scenes_completed").
			Default(0).
			Comment("Scenes the candidate reached (on end only)"),
		field.Int("challenges_scored").
			Default(0).
			Comment("Challenges with a recorded result (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("action"),
	}
}
