// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quotienthq/quotient/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetQuestionText sets the "question_text" field.
func (_c *QuestionCreate) SetQuestionText(v string) *QuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *QuestionCreate) SetOptionA(v string) *QuestionCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *QuestionCreate) SetOptionB(v string) *QuestionCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *QuestionCreate) SetOptionC(v string) *QuestionCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *QuestionCreate) SetOptionD(v string) *QuestionCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *QuestionCreate) SetCorrectOption(v string) *QuestionCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Question.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "Question.option_a"`)}
	}
	if v, ok := _c.mutation.OptionA(); ok {
		if err := question.OptionAValidator(v); err != nil {
			return &ValidationError{Name: "option_a", err: fmt.Errorf(`ent: validator failed for field "Question.option_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "Question.option_b"`)}
	}
	if v, ok := _c.mutation.OptionB(); ok {
		if err := question.OptionBValidator(v); err != nil {
			return &ValidationError{Name: "option_b", err: fmt.Errorf(`ent: validator failed for field "Question.option_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "Question.option_c"`)}
	}
	if v, ok := _c.mutation.OptionC(); ok {
		if err := question.OptionCValidator(v); err != nil {
			return &ValidationError{Name: "option_c", err: fmt.Errorf(`ent: validator failed for field "Question.option_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "Question.option_d"`)}
	}
	if v, ok := _c.mutation.OptionD(); ok {
		if err := question.OptionDValidator(v); err != nil {
			return &ValidationError{Name: "option_d", err: fmt.Errorf(`ent: validator failed for field "Question.option_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "Question.correct_option"`)}
	}
	if v, ok := _c.mutation.CorrectOption(); ok {
		if err := question.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "Question.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(question.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(question.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(question.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(question.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(question.FieldCorrectOption, field.TypeString, value)
		_node.CorrectOption = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
