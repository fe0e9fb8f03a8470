// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lecto/ent/interactionevent"
)

// InteractionEventCreate is the builder for creating a InteractionEvent entity.
type InteractionEventCreate struct {
	config
	mutation *InteractionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InteractionEventCreate) SetSequence(v int64) *InteractionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionEventCreate) SetTimestamp(v time.Time) *InteractionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableTimestamp(v *time.Time) *InteractionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetWatchID sets the "watch_id" field.
func (_c *InteractionEventCreate) SetWatchID(v string) *InteractionEventCreate {
	_c.mutation.SetWatchID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *InteractionEventCreate) SetLectureID(v string) *InteractionEventCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *InteractionEventCreate) SetEventType(v string) *InteractionEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetVideoTime sets the "video_time" field.
func (_c *InteractionEventCreate) SetVideoTime(v float64) *InteractionEventCreate {
	_c.mutation.SetVideoTime(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *InteractionEventCreate) SetDetails(v string) *InteractionEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableDetails(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *InteractionEventCreate) SetMetadata(v map[string]string) *InteractionEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_c *InteractionEventCreate) Mutation() *InteractionEventMutation {
	return _c.mutation
}

// Save creates the InteractionEvent in the database.
func (_c *InteractionEventCreate) Save(ctx context.Context) (*InteractionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionEventCreate) SaveX(ctx context.Context) *InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := interactionevent.DefaultDetails
		_c.mutation.SetDetails(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InteractionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.WatchID(); !ok {
		return &ValidationError{Name: "watch_id", err: errors.New(`ent: missing required field "InteractionEvent.watch_id"`)}
	}
	if v, ok := _c.mutation.WatchID(); ok {
		if err := interactionevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.watch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "InteractionEvent.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := interactionevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "InteractionEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := interactionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VideoTime(); !ok {
		return &ValidationError{Name: "video_time", err: errors.New(`ent: missing required field "InteractionEvent.video_time"`)}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "InteractionEvent.details"`)}
	}
	return nil
}

func (_c *InteractionEventCreate) sqlSave(ctx context.Context) (*InteractionEvent, error) {
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

func (_c *InteractionEventCreate) createSpec() (*InteractionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.WatchID(); ok {
		_spec.SetField(interactionevent.FieldWatchID, field.TypeString, value)
		_node.WatchID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(interactionevent.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(interactionevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.VideoTime(); ok {
		_spec.SetField(interactionevent.FieldVideoTime, field.TypeFloat64, value)
		_node.VideoTime = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(interactionevent.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(interactionevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// InteractionEventCreateBulk is the builder for creating many InteractionEvent entities in bulk.
type InteractionEventCreateBulk struct {
	config
	err      error
	builders []*InteractionEventCreate
}

// Save creates the InteractionEvent entities in the database.
func (_c *InteractionEventCreateBulk) Save(ctx context.Context) ([]*InteractionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionEventMutation)
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
func (_c *InteractionEventCreateBulk) SaveX(ctx context.Context) []*InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
