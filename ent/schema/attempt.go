package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one recorded answer within a session. Rows are immutable
// once written; a finalized session has exactly total_questions of
// them, one per position 1..N in catalog order.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("result_id").
			Positive().
			Immutable().
			Comment("Owning session"),
		field.Int("question_id").
			Positive().
			Immutable().
			Comment("Question this answer was for"),
		field.String("chosen_option").
			NotEmpty().
			Immutable().
			Comment("Label the test-taker picked: A, B, C or D"),
		field.Bool("is_correct").
			Immutable().
			Comment("Whether chosen_option matched the correct option"),
		field.Int("position").
			Positive().
			Immutable().
			Comment("1-based ordinal of the question within the session"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("result_id"),
		index.Fields("result_id", "position"),
	}
}
