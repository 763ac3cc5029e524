package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepAttempt records one check or skip of a curriculum step.
type StepAttempt struct {
	ent.Schema
}

func (StepAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StepAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			NotEmpty(),
		field.String("step").
			NotEmpty().
			Comment("Step name, e.g. distribute-exponent"),
		field.Int("step_index"),
		field.String("status").
			NotEmpty().
			Comment("correct, incorrect or skipped"),
		field.String("answer").
			Comment("Learner input, comma separated"),
		field.String("expected").
			Comment("Ground truth, comma separated"),
	}
}

func (StepAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
		index.Fields("step_index", "status"),
	}
}
