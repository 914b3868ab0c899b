package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Question is one multiple-choice item in the test catalog. Rows are
// created by seeding and never mutated afterwards; catalog order is
// ascending ID and the engine addresses questions by 1-based position
// within that order.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_text").
			NotEmpty().
			Comment("The prompt shown to the test-taker"),
		field.String("option_a").
			NotEmpty(),
		field.String("option_b").
			NotEmpty(),
		field.String("option_c").
			NotEmpty(),
		field.String("option_d").
			NotEmpty(),
		field.String("correct_option").
			NotEmpty().
			Comment("Label of the correct option: A, B, C or D"),
	}
}
