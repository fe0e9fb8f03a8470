// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lecto/ent/viewingevent"
)

// ViewingEventCreate is the builder for creating a ViewingEvent entity.
type ViewingEventCreate struct {
	config
	mutation *ViewingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ViewingEventCreate) SetSequence(v int64) *ViewingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ViewingEventCreate) SetTimestamp(v time.Time) *ViewingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ViewingEventCreate) SetNillableTimestamp(v *time.Time) *ViewingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetWatchID sets the "watch_id" field.
func (_c *ViewingEventCreate) SetWatchID(v string) *ViewingEventCreate {
	_c.mutation.SetWatchID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *ViewingEventCreate) SetLectureID(v string) *ViewingEventCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ViewingEventCreate) SetAction(v string) *ViewingEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetWatchedSecs sets the "watched_secs" field.
func (_c *ViewingEventCreate) SetWatchedSecs(v float64) *ViewingEventCreate {
	_c.mutation.SetWatchedSecs(v)
	return _c
}

// SetNillableWatchedSecs sets the "watched_secs" field if the given value is not nil.
func (_c *ViewingEventCreate) SetNillableWatchedSecs(v *float64) *ViewingEventCreate {
	if v != nil {
		_c.SetWatchedSecs(*v)
	}
	return _c
}

// SetCompletedCheckpoints sets the "completed_checkpoints" field.
func (_c *ViewingEventCreate) SetCompletedCheckpoints(v int) *ViewingEventCreate {
	_c.mutation.SetCompletedCheckpoints(v)
	return _c
}

// SetNillableCompletedCheckpoints sets the "completed_checkpoints" field if the given value is not nil.
func (_c *ViewingEventCreate) SetNillableCompletedCheckpoints(v *int) *ViewingEventCreate {
	if v != nil {
		_c.SetCompletedCheckpoints(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ViewingEventCreate) SetDurationSecs(v int) *ViewingEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ViewingEventCreate) SetNillableDurationSecs(v *int) *ViewingEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the ViewingEventMutation object of the builder.
func (_c *ViewingEventCreate) Mutation() *ViewingEventMutation {
	return _c.mutation
}

// Save creates the ViewingEvent in the database.
func (_c *ViewingEventCreate) Save(ctx context.Context) (*ViewingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ViewingEventCreate) SaveX(ctx context.Context) *ViewingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ViewingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := viewingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WatchedSecs(); !ok {
		v := viewingevent.DefaultWatchedSecs
		_c.mutation.SetWatchedSecs(v)
	}
	if _, ok := _c.mutation.CompletedCheckpoints(); !ok {
		v := viewingevent.DefaultCompletedCheckpoints
		_c.mutation.SetCompletedCheckpoints(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := viewingevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ViewingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ViewingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ViewingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.WatchID(); !ok {
		return &ValidationError{Name: "watch_id", err: errors.New(`ent: missing required field "ViewingEvent.watch_id"`)}
	}
	if v, ok := _c.mutation.WatchID(); ok {
		if err := viewingevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.watch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "ViewingEvent.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := viewingevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ViewingEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := viewingevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WatchedSecs(); !ok {
		return &ValidationError{Name: "watched_secs", err: errors.New(`ent: missing required field "ViewingEvent.watched_secs"`)}
	}
	if _, ok := _c.mutation.CompletedCheckpoints(); !ok {
		return &ValidationError{Name: "completed_checkpoints", err: errors.New(`ent: missing required field "ViewingEvent.completed_checkpoints"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ViewingEvent.duration_secs"`)}
	}
	return nil
}

func (_c *ViewingEventCreate) sqlSave(ctx context.Context) (*ViewingEvent, error) {
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

func (_c *ViewingEventCreate) createSpec() (*ViewingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ViewingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(viewingevent.Table, sqlgraph.NewFieldSpec(viewingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(viewingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(viewingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.WatchID(); ok {
		_spec.SetField(viewingevent.FieldWatchID, field.TypeString, value)
		_node.WatchID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(viewingevent.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(viewingevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.WatchedSecs(); ok {
		_spec.SetField(viewingevent.FieldWatchedSecs, field.TypeFloat64, value)
		_node.WatchedSecs = value
	}
	if value, ok := _c.mutation.CompletedCheckpoints(); ok {
		_spec.SetField(viewingevent.FieldCompletedCheckpoints, field.TypeInt, value)
		_node.CompletedCheckpoints = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(viewingevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// ViewingEventCreateBulk is the builder for creating many ViewingEvent entities in bulk.
type ViewingEventCreateBulk struct {
	config
	err      error
	builders []*ViewingEventCreate
}

// Save creates the ViewingEvent entities in the database.
func (_c *ViewingEventCreateBulk) Save(ctx context.Context) ([]*ViewingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ViewingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViewingEventMutation)
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
func (_c *ViewingEventCreateBulk) SaveX(ctx context.Context) []*ViewingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
