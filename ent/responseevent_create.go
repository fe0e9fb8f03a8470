// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lecto/ent/responseevent"
)

// ResponseEventCreate is the builder for creating a ResponseEvent entity.
type ResponseEventCreate struct {
	config
	mutation *ResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResponseEventCreate) SetSequence(v int64) *ResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResponseEventCreate) SetTimestamp(v time.Time) *ResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableTimestamp(v *time.Time) *ResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResponseEventCreate) SetUserID(v string) *ResponseEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *ResponseEventCreate) SetLectureID(v string) *ResponseEventCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetCheckpointTs sets the "checkpoint_ts" field.
func (_c *ResponseEventCreate) SetCheckpointTs(v float64) *ResponseEventCreate {
	_c.mutation.SetCheckpointTs(v)
	return _c
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_c *ResponseEventCreate) SetCheckpointType(v string) *ResponseEventCreate {
	_c.mutation.SetCheckpointType(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ResponseEventCreate) SetPrompt(v string) *ResponseEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetSelectedIndex sets the "selected_index" field.
func (_c *ResponseEventCreate) SetSelectedIndex(v int) *ResponseEventCreate {
	_c.mutation.SetSelectedIndex(v)
	return _c
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableSelectedIndex(v *int) *ResponseEventCreate {
	if v != nil {
		_c.SetSelectedIndex(*v)
	}
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *ResponseEventCreate) SetAnswerText(v string) *ResponseEventCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableAnswerText(v *string) *ResponseEventCreate {
	if v != nil {
		_c.SetAnswerText(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ResponseEventCreate) SetCorrect(v bool) *ResponseEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetVideoTime sets the "video_time" field.
func (_c *ResponseEventCreate) SetVideoTime(v float64) *ResponseEventCreate {
	_c.mutation.SetVideoTime(v)
	return _c
}

// SetNillableVideoTime sets the "video_time" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableVideoTime(v *float64) *ResponseEventCreate {
	if v != nil {
		_c.SetVideoTime(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ResponseEventCreate) SetFeedback(v string) *ResponseEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *ResponseEventCreate) SetNillableFeedback(v *string) *ResponseEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_c *ResponseEventCreate) Mutation() *ResponseEventMutation {
	return _c.mutation
}

// Save creates the ResponseEvent in the database.
func (_c *ResponseEventCreate) Save(ctx context.Context) (*ResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseEventCreate) SaveX(ctx context.Context) *ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := responseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SelectedIndex(); !ok {
		v := responseevent.DefaultSelectedIndex
		_c.mutation.SetSelectedIndex(v)
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		v := responseevent.DefaultAnswerText
		_c.mutation.SetAnswerText(v)
	}
	if _, ok := _c.mutation.VideoTime(); !ok {
		v := responseevent.DefaultVideoTime
		_c.mutation.SetVideoTime(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := responseevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ResponseEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := responseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "ResponseEvent.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := responseevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CheckpointTs(); !ok {
		return &ValidationError{Name: "checkpoint_ts", err: errors.New(`ent: missing required field "ResponseEvent.checkpoint_ts"`)}
	}
	if _, ok := _c.mutation.CheckpointType(); !ok {
		return &ValidationError{Name: "checkpoint_type", err: errors.New(`ent: missing required field "ResponseEvent.checkpoint_type"`)}
	}
	if v, ok := _c.mutation.CheckpointType(); ok {
		if err := responseevent.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.checkpoint_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ResponseEvent.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := responseevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedIndex(); !ok {
		return &ValidationError{Name: "selected_index", err: errors.New(`ent: missing required field "ResponseEvent.selected_index"`)}
	}
	if _, ok := _c.mutation.AnswerText(); !ok {
		return &ValidationError{Name: "answer_text", err: errors.New(`ent: missing required field "ResponseEvent.answer_text"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResponseEvent.correct"`)}
	}
	if _, ok := _c.mutation.VideoTime(); !ok {
		return &ValidationError{Name: "video_time", err: errors.New(`ent: missing required field "ResponseEvent.video_time"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "ResponseEvent.feedback"`)}
	}
	return nil
}

func (_c *ResponseEventCreate) sqlSave(ctx context.Context) (*ResponseEvent, error) {
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

func (_c *ResponseEventCreate) createSpec() (*ResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(responseevent.Table, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(responseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(responseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(responseevent.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.CheckpointTs(); ok {
		_spec.SetField(responseevent.FieldCheckpointTs, field.TypeFloat64, value)
		_node.CheckpointTs = value
	}
	if value, ok := _c.mutation.CheckpointType(); ok {
		_spec.SetField(responseevent.FieldCheckpointType, field.TypeString, value)
		_node.CheckpointType = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(responseevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.SelectedIndex(); ok {
		_spec.SetField(responseevent.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(responseevent.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.VideoTime(); ok {
		_spec.SetField(responseevent.FieldVideoTime, field.TypeFloat64, value)
		_node.VideoTime = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(responseevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	return _node, _spec
}

// ResponseEventCreateBulk is the builder for creating many ResponseEvent entities in bulk.
type ResponseEventCreateBulk struct {
	config
	err      error
	builders []*ResponseEventCreate
}

// Save creates the ResponseEvent entities in the database.
func (_c *ResponseEventCreateBulk) Save(ctx context.Context) ([]*ResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseEventMutation)
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
func (_c *ResponseEventCreateBulk) SaveX(ctx context.Context) []*ResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
