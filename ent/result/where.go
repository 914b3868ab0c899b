// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quotienthq/quotient/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// UUID applies equality check predicate on the "uuid" field. It's identical to UUIDEQ.
func UUID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUUID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUserID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTotalQuestions, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCompleted, v))
}

// DateTaken applies equality check predicate on the "date_taken" field. It's identical to DateTakenEQ.
func DateTaken(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDateTaken, v))
}

// UUIDEQ applies the EQ predicate on the "uuid" field.
func UUIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUUID, v))
}

// UUIDNEQ applies the NEQ predicate on the "uuid" field.
func UUIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldUUID, v))
}

// UUIDIn applies the In predicate on the "uuid" field.
func UUIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldUUID, vs...))
}

// UUIDNotIn applies the NotIn predicate on the "uuid" field.
func UUIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldUUID, vs...))
}

// UUIDGT applies the GT predicate on the "uuid" field.
func UUIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldUUID, v))
}

// UUIDGTE applies the GTE predicate on the "uuid" field.
func UUIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldUUID, v))
}

// UUIDLT applies the LT predicate on the "uuid" field.
func UUIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldUUID, v))
}

// UUIDLTE applies the LTE predicate on the "uuid" field.
func UUIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldUUID, v))
}

// UUIDContains applies the Contains predicate on the "uuid" field.
func UUIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldUUID, v))
}

// UUIDHasPrefix applies the HasPrefix predicate on the "uuid" field.
func UUIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldUUID, v))
}

// UUIDHasSuffix applies the HasSuffix predicate on the "uuid" field.
func UUIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldUUID, v))
}

// UUIDEqualFold applies the EqualFold predicate on the "uuid" field.
func UUIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldUUID, v))
}

// UUIDContainsFold applies the ContainsFold predicate on the "uuid" field.
func UUIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldUUID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldUserID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTotalQuestions, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCompleted, v))
}

// DateTakenEQ applies the EQ predicate on the "date_taken" field.
func DateTakenEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDateTaken, v))
}

// DateTakenNEQ applies the NEQ predicate on the "date_taken" field.
func DateTakenNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldDateTaken, v))
}

// DateTakenIn applies the In predicate on the "date_taken" field.
func DateTakenIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldDateTaken, vs...))
}

// DateTakenNotIn applies the NotIn predicate on the "date_taken" field.
func DateTakenNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldDateTaken, vs...))
}

// DateTakenGT applies the GT predicate on the "date_taken" field.
func DateTakenGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldDateTaken, v))
}

// DateTakenGTE applies the GTE predicate on the "date_taken" field.
func DateTakenGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldDateTaken, v))
}

// DateTakenLT applies the LT predicate on the "date_taken" field.
func DateTakenLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldDateTaken, v))
}

// DateTakenLTE applies the LTE predicate on the "date_taken" field.
func DateTakenLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldDateTaken, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
