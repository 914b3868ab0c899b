// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quotienthq/quotient/ent/predicate"
	"github.com/quotienthq/quotient/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdate) SetQuestionText(v string) *QuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *QuestionUpdate) SetOptionA(v string) *QuestionUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionA(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *QuestionUpdate) SetOptionB(v string) *QuestionUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionB(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *QuestionUpdate) SetOptionC(v string) *QuestionUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionC(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *QuestionUpdate) SetOptionD(v string) *QuestionUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOptionD(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuestionUpdate) SetCorrectOption(v string) *QuestionUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectOption(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := question.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Question.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(question.FieldCorrectOption, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdateOne) SetQuestionText(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *QuestionUpdateOne) SetOptionA(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionA(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *QuestionUpdateOne) SetOptionB(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionB(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *QuestionUpdateOne) SetOptionC(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionC(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *QuestionUpdateOne) SetOptionD(v string) *QuestionUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOptionD(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuestionUpdateOne) SetCorrectOption(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectOption(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := question.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Question.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(question.FieldCorrectOption, field.TypeString, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
