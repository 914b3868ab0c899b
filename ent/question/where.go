// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/quotienthq/quotient/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// OptionA applies equality check predicate on the "option_a" field. It's identical to OptionAEQ.
func OptionA(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionA, v))
}

// OptionB applies equality check predicate on the "option_b" field. It's identical to OptionBEQ.
func OptionB(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionB, v))
}

// OptionC applies equality check predicate on the "option_c" field. It's identical to OptionCEQ.
func OptionC(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionC, v))
}

// OptionD applies equality check predicate on the "option_d" field. It's identical to OptionDEQ.
func OptionD(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionD, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectOption, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionText, v))
}

// OptionAEQ applies the EQ predicate on the "option_a" field.
func OptionAEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionA, v))
}

// OptionANEQ applies the NEQ predicate on the "option_a" field.
func OptionANEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionA, v))
}

// OptionAIn applies the In predicate on the "option_a" field.
func OptionAIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionA, vs...))
}

// OptionANotIn applies the NotIn predicate on the "option_a" field.
func OptionANotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionA, vs...))
}

// OptionAGT applies the GT predicate on the "option_a" field.
func OptionAGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionA, v))
}

// OptionAGTE applies the GTE predicate on the "option_a" field.
func OptionAGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionA, v))
}

// OptionALT applies the LT predicate on the "option_a" field.
func OptionALT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionA, v))
}

// OptionALTE applies the LTE predicate on the "option_a" field.
func OptionALTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionA, v))
}

// OptionAContains applies the Contains predicate on the "option_a" field.
func OptionAContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionA, v))
}

// OptionAHasPrefix applies the HasPrefix predicate on the "option_a" field.
func OptionAHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionA, v))
}

// OptionAHasSuffix applies the HasSuffix predicate on the "option_a" field.
func OptionAHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionA, v))
}

// OptionAEqualFold applies the EqualFold predicate on the "option_a" field.
func OptionAEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionA, v))
}

// OptionAContainsFold applies the ContainsFold predicate on the "option_a" field.
func OptionAContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionA, v))
}

// OptionBEQ applies the EQ predicate on the "option_b" field.
func OptionBEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionB, v))
}

// OptionBNEQ applies the NEQ predicate on the "option_b" field.
func OptionBNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionB, v))
}

// OptionBIn applies the In predicate on the "option_b" field.
func OptionBIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionB, vs...))
}

// OptionBNotIn applies the NotIn predicate on the "option_b" field.
func OptionBNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionB, vs...))
}

// OptionBGT applies the GT predicate on the "option_b" field.
func OptionBGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionB, v))
}

// OptionBGTE applies the GTE predicate on the "option_b" field.
func OptionBGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionB, v))
}

// OptionBLT applies the LT predicate on the "option_b" field.
func OptionBLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionB, v))
}

// OptionBLTE applies the LTE predicate on the "option_b" field.
func OptionBLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionB, v))
}

// OptionBContains applies the Contains predicate on the "option_b" field.
func OptionBContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionB, v))
}

// OptionBHasPrefix applies the HasPrefix predicate on the "option_b" field.
func OptionBHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionB, v))
}

// OptionBHasSuffix applies the HasSuffix predicate on the "option_b" field.
func OptionBHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionB, v))
}

// OptionBEqualFold applies the EqualFold predicate on the "option_b" field.
func OptionBEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionB, v))
}

// OptionBContainsFold applies the ContainsFold predicate on the "option_b" field.
func OptionBContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionB, v))
}

// OptionCEQ applies the EQ predicate on the "option_c" field.
func OptionCEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionC, v))
}

// OptionCNEQ applies the NEQ predicate on the "option_c" field.
func OptionCNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionC, v))
}

// OptionCIn applies the In predicate on the "option_c" field.
func OptionCIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionC, vs...))
}

// OptionCNotIn applies the NotIn predicate on the "option_c" field.
func OptionCNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionC, vs...))
}

// OptionCGT applies the GT predicate on the "option_c" field.
func OptionCGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionC, v))
}

// OptionCGTE applies the GTE predicate on the "option_c" field.
func OptionCGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionC, v))
}

// OptionCLT applies the LT predicate on the "option_c" field.
func OptionCLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionC, v))
}

// OptionCLTE applies the LTE predicate on the "option_c" field.
func OptionCLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionC, v))
}

// OptionCContains applies the Contains predicate on the "option_c" field.
func OptionCContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionC, v))
}

// OptionCHasPrefix applies the HasPrefix predicate on the "option_c" field.
func OptionCHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionC, v))
}

// OptionCHasSuffix applies the HasSuffix predicate on the "option_c" field.
func OptionCHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionC, v))
}

// OptionCEqualFold applies the EqualFold predicate on the "option_c" field.
func OptionCEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionC, v))
}

// OptionCContainsFold applies the ContainsFold predicate on the "option_c" field.
func OptionCContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionC, v))
}

// OptionDEQ applies the EQ predicate on the "option_d" field.
func OptionDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOptionD, v))
}

// OptionDNEQ applies the NEQ predicate on the "option_d" field.
func OptionDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOptionD, v))
}

// OptionDIn applies the In predicate on the "option_d" field.
func OptionDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOptionD, vs...))
}

// OptionDNotIn applies the NotIn predicate on the "option_d" field.
func OptionDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOptionD, vs...))
}

// OptionDGT applies the GT predicate on the "option_d" field.
func OptionDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOptionD, v))
}

// OptionDGTE applies the GTE predicate on the "option_d" field.
func OptionDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOptionD, v))
}

// OptionDLT applies the LT predicate on the "option_d" field.
func OptionDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOptionD, v))
}

// OptionDLTE applies the LTE predicate on the "option_d" field.
func OptionDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOptionD, v))
}

// OptionDContains applies the Contains predicate on the "option_d" field.
func OptionDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOptionD, v))
}

// OptionDHasPrefix applies the HasPrefix predicate on the "option_d" field.
func OptionDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOptionD, v))
}

// OptionDHasSuffix applies the HasSuffix predicate on the "option_d" field.
func OptionDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOptionD, v))
}

// OptionDEqualFold applies the EqualFold predicate on the "option_d" field.
func OptionDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOptionD, v))
}

// OptionDContainsFold applies the ContainsFold predicate on the "option_d" field.
func OptionDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOptionD, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionContains applies the Contains predicate on the "correct_option" field.
func CorrectOptionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectOption, v))
}

// CorrectOptionHasPrefix applies the HasPrefix predicate on the "correct_option" field.
func CorrectOptionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectOption, v))
}

// CorrectOptionHasSuffix applies the HasSuffix predicate on the "correct_option" field.
func CorrectOptionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectOption, v))
}

// CorrectOptionEqualFold applies the EqualFold predicate on the "correct_option" field.
func CorrectOptionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectOption, v))
}

// CorrectOptionContainsFold applies the ContainsFold predicate on the "correct_option" field.
func CorrectOptionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectOption, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
