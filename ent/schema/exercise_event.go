package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseEvent records exercise lifecycle events: a new problem, a solve
// request (accepted or refused) and the final solved acknowledgement.
type ExerciseEvent struct {
	ent.Schema
}

func (ExerciseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExerciseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			Comment("UUID grouping the events of one solve"),
		field.String("variant").
			NotEmpty().
			Comment("single or paged"),
		field.String("action").
			NotEmpty().
			Comment("generate, solve, refused or solved"),
		field.Int("numerator"),
		field.Int("denominator"),
		field.Int("power"),
	}
}

func (ExerciseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise_id"),
		index.Fields("action"),
	}
}
