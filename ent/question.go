// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quotienthq/quotient/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The prompt shown to the test-taker
	QuestionText string `json:"question_text,omitempty"`
	// OptionA holds the value of the "option_a" field.
	OptionA string `json:"option_a,omitempty"`
	// OptionB holds the value of the "option_b" field.
	OptionB string `json:"option_b,omitempty"`
	// OptionC holds the value of the "option_c" field.
	OptionC string `json:"option_c,omitempty"`
	// OptionD holds the value of the "option_d" field.
	OptionD string `json:"option_d,omitempty"`
	// Label of the correct option: A, B, C or D
	CorrectOption string `json:"correct_option,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			values[i] = new(sql.NullInt64)
		case question.FieldQuestionText, question.FieldOptionA, question.FieldOptionB, question.FieldOptionC, question.FieldOptionD, question.FieldCorrectOption:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case question.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case question.FieldOptionA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_a", values[i])
			} else if value.Valid {
				_m.OptionA = value.String
			}
		case question.FieldOptionB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_b", values[i])
			} else if value.Valid {
				_m.OptionB = value.String
			}
		case question.FieldOptionC:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_c", values[i])
			} else if value.Valid {
				_m.OptionC = value.String
			}
		case question.FieldOptionD:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_d", values[i])
			} else if value.Valid {
				_m.OptionD = value.String
			}
		case question.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("option_a=")
	builder.WriteString(_m.OptionA)
	builder.WriteString(", ")
	builder.WriteString("option_b=")
	builder.WriteString(_m.OptionB)
	builder.WriteString(", ")
	builder.WriteString("option_c=")
	builder.WriteString(_m.OptionC)
	builder.WriteString(", ")
	builder.WriteString("option_d=")
	builder.WriteString(_m.OptionD)
	builder.WriteString(", ")
	builder.WriteString("correct_option=")
	builder.WriteString(_m.CorrectOption)
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
