// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quotienthq/quotient/ent/attempt"
	"github.com/quotienthq/quotient/ent/question"
	"github.com/quotienthq/quotient/ent/result"
	"github.com/quotienthq/quotient/ent/schema"
	"github.com/quotienthq/quotient/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescResultID is the schema descriptor for result_id field.
	attemptDescResultID := attemptFields[0].Descriptor()
	// attempt.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	attempt.ResultIDValidator = attemptDescResultID.Validators[0].(func(int) error)
	// attemptDescQuestionID is the schema descriptor for question_id field.
	attemptDescQuestionID := attemptFields[1].Descriptor()
	// attempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attempt.QuestionIDValidator = attemptDescQuestionID.Validators[0].(func(int) error)
	// attemptDescChosenOption is the schema descriptor for chosen_option field.
	attemptDescChosenOption := attemptFields[2].Descriptor()
	// attempt.ChosenOptionValidator is a validator for the "chosen_option" field. It is called by the builders before save.
	attempt.ChosenOptionValidator = attemptDescChosenOption.Validators[0].(func(string) error)
	// attemptDescPosition is the schema descriptor for position field.
	attemptDescPosition := attemptFields[4].Descriptor()
	// attempt.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	attempt.PositionValidator = attemptDescPosition.Validators[0].(func(int) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[0].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescOptionA is the schema descriptor for option_a field.
	questionDescOptionA := questionFields[1].Descriptor()
	// question.OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	question.OptionAValidator = questionDescOptionA.Validators[0].(func(string) error)
	// questionDescOptionB is the schema descriptor for option_b field.
	questionDescOptionB := questionFields[2].Descriptor()
	// question.OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	question.OptionBValidator = questionDescOptionB.Validators[0].(func(string) error)
	// questionDescOptionC is the schema descriptor for option_c field.
	questionDescOptionC := questionFields[3].Descriptor()
	// question.OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	question.OptionCValidator = questionDescOptionC.Validators[0].(func(string) error)
	// questionDescOptionD is the schema descriptor for option_d field.
	questionDescOptionD := questionFields[4].Descriptor()
	// question.OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	question.OptionDValidator = questionDescOptionD.Validators[0].(func(string) error)
	// questionDescCorrectOption is the schema descriptor for correct_option field.
	questionDescCorrectOption := questionFields[5].Descriptor()
	// question.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	question.CorrectOptionValidator = questionDescCorrectOption.Validators[0].(func(string) error)
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescUUID is the schema descriptor for uuid field.
	resultDescUUID := resultFields[0].Descriptor()
	// result.UUIDValidator is a validator for the "uuid" field. It is called by the builders before save.
	result.UUIDValidator = resultDescUUID.Validators[0].(func(string) error)
	// resultDescUserID is the schema descriptor for user_id field.
	resultDescUserID := resultFields[1].Descriptor()
	// result.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	result.UserIDValidator = resultDescUserID.Validators[0].(func(int) error)
	// resultDescScore is the schema descriptor for score field.
	resultDescScore := resultFields[2].Descriptor()
	// result.DefaultScore holds the default value on creation for the score field.
	result.DefaultScore = resultDescScore.Default.(int)
	// result.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	result.ScoreValidator = resultDescScore.Validators[0].(func(int) error)
	// resultDescTotalQuestions is the schema descriptor for total_questions field.
	resultDescTotalQuestions := resultFields[3].Descriptor()
	// result.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	result.TotalQuestionsValidator = resultDescTotalQuestions.Validators[0].(func(int) error)
	// resultDescCompleted is the schema descriptor for completed field.
	resultDescCompleted := resultFields[4].Descriptor()
	// result.DefaultCompleted holds the default value on creation for the completed field.
	result.DefaultCompleted = resultDescCompleted.Default.(bool)
	// resultDescDateTaken is the schema descriptor for date_taken field.
	resultDescDateTaken := resultFields[5].Descriptor()
	// result.DefaultDateTaken holds the default value on creation for the date_taken field.
	result.DefaultDateTaken = resultDescDateTaken.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPassword is the schema descriptor for password field.
	userDescPassword := userFields[1].Descriptor()
	// user.PasswordValidator is a validator for the "password" field. It is called by the builders before save.
	user.PasswordValidator = userDescPassword.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.DefaultEmail holds the default value on creation for the email field.
	user.DefaultEmail = userDescEmail.Default.(string)
}
