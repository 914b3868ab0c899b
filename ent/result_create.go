// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quotienthq/quotient/ent/result"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
}

// SetUUID sets the "uuid" field.
func (_c *ResultCreate) SetUUID(v string) *ResultCreate {
	_c.mutation.SetUUID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResultCreate) SetUserID(v int) *ResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ResultCreate) SetScore(v int) *ResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ResultCreate) SetNillableScore(v *int) *ResultCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ResultCreate) SetTotalQuestions(v int) *ResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ResultCreate) SetCompleted(v bool) *ResultCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ResultCreate) SetNillableCompleted(v *bool) *ResultCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetDateTaken sets the "date_taken" field.
func (_c *ResultCreate) SetDateTaken(v time.Time) *ResultCreate {
	_c.mutation.SetDateTaken(v)
	return _c
}

// SetNillableDateTaken sets the "date_taken" field if the given value is not nil.
func (_c *ResultCreate) SetNillableDateTaken(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetDateTaken(*v)
	}
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := result.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := result.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.DateTaken(); !ok {
		v := result.DefaultDateTaken()
		_c.mutation.SetDateTaken(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.UUID(); !ok {
		return &ValidationError{Name: "uuid", err: errors.New(`ent: missing required field "Result.uuid"`)}
	}
	if v, ok := _c.mutation.UUID(); ok {
		if err := result.UUIDValidator(v); err != nil {
			return &ValidationError{Name: "uuid", err: fmt.Errorf(`ent: validator failed for field "Result.uuid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Result.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := result.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Result.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Result.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := result.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Result.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Result.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := result.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "Result.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Result.completed"`)}
	}
	if _, ok := _c.mutation.DateTaken(); !ok {
		return &ValidationError{Name: "date_taken", err: errors.New(`ent: missing required field "Result.date_taken"`)}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
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

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UUID(); ok {
		_spec.SetField(result.FieldUUID, field.TypeString, value)
		_node.UUID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(result.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(result.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(result.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(result.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.DateTaken(); ok {
		_spec.SetField(result.FieldDateTaken, field.TypeTime, value)
		_node.DateTaken = value
	}
	return _node, _spec
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
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
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
