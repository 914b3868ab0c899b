// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldOptionA holds the string denoting the option_a field in the database.
	FieldOptionA = "option_a"
	// FieldOptionB holds the string denoting the option_b field in the database.
	FieldOptionB = "option_b"
	// FieldOptionC holds the string denoting the option_c field in the database.
	FieldOptionC = "option_c"
	// FieldOptionD holds the string denoting the option_d field in the database.
	FieldOptionD = "option_d"
	// FieldCorrectOption holds the string denoting the correct_option field in the database.
	FieldCorrectOption = "correct_option"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQuestionText,
	FieldOptionA,
	FieldOptionB,
	FieldOptionC,
	FieldOptionD,
	FieldCorrectOption,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// OptionAValidator is a validator for the "option_a" field. It is called by the builders before save.
	OptionAValidator func(string) error
	// OptionBValidator is a validator for the "option_b" field. It is called by the builders before save.
	OptionBValidator func(string) error
	// OptionCValidator is a validator for the "option_c" field. It is called by the builders before save.
	OptionCValidator func(string) error
	// OptionDValidator is a validator for the "option_d" field. It is called by the builders before save.
	OptionDValidator func(string) error
	// CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	CorrectOptionValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByOptionA orders the results by the option_a field.
func ByOptionA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionA, opts...).ToFunc()
}

// ByOptionB orders the results by the option_b field.
func ByOptionB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionB, opts...).ToFunc()
}

// ByOptionC orders the results by the option_c field.
func ByOptionC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionC, opts...).ToFunc()
}

// ByOptionD orders the results by the option_d field.
func ByOptionD(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionD, opts...).ToFunc()
}

// ByCorrectOption orders the results by the correct_option field.
func ByCorrectOption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectOption, opts...).ToFunc()
}
