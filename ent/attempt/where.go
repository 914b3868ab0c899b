// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"entgo.io/ent/dialect/sql"
	"github.com/quotienthq/quotient/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldResultID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// ChosenOption applies equality check predicate on the "chosen_option" field. It's identical to ChosenOptionEQ.
func ChosenOption(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldChosenOption, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPosition, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldResultID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldQuestionID, v))
}

// ChosenOptionEQ applies the EQ predicate on the "chosen_option" field.
func ChosenOptionEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldChosenOption, v))
}

// ChosenOptionNEQ applies the NEQ predicate on the "chosen_option" field.
func ChosenOptionNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldChosenOption, v))
}

// ChosenOptionIn applies the In predicate on the "chosen_option" field.
func ChosenOptionIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldChosenOption, vs...))
}

// ChosenOptionNotIn applies the NotIn predicate on the "chosen_option" field.
func ChosenOptionNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldChosenOption, vs...))
}

// ChosenOptionGT applies the GT predicate on the "chosen_option" field.
func ChosenOptionGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldChosenOption, v))
}

// ChosenOptionGTE applies the GTE predicate on the "chosen_option" field.
func ChosenOptionGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldChosenOption, v))
}

// ChosenOptionLT applies the LT predicate on the "chosen_option" field.
func ChosenOptionLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldChosenOption, v))
}

// ChosenOptionLTE applies the LTE predicate on the "chosen_option" field.
func ChosenOptionLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldChosenOption, v))
}

// ChosenOptionContains applies the Contains predicate on the "chosen_option" field.
func ChosenOptionContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldChosenOption, v))
}

// ChosenOptionHasPrefix applies the HasPrefix predicate on the "chosen_option" field.
func ChosenOptionHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldChosenOption, v))
}

// ChosenOptionHasSuffix applies the HasSuffix predicate on the "chosen_option" field.
func ChosenOptionHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldChosenOption, v))
}

// ChosenOptionEqualFold applies the EqualFold predicate on the "chosen_option" field.
func ChosenOptionEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldChosenOption, v))
}

// ChosenOptionContainsFold applies the ContainsFold predicate on the "chosen_option" field.
func ChosenOptionContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldChosenOption, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldPosition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
