// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lecto/ent/predicate"
	"github.com/abhisek/lecto/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdate) SetUserID(v string) *ResponseEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableUserID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *ResponseEventUpdate) SetLectureID(v string) *ResponseEventUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableLectureID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetCheckpointTs sets the "checkpoint_ts" field.
func (_u *ResponseEventUpdate) SetCheckpointTs(v float64) *ResponseEventUpdate {
	_u.mutation.ResetCheckpointTs()
	_u.mutation.SetCheckpointTs(v)
	return _u
}

// SetNillableCheckpointTs sets the "checkpoint_ts" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCheckpointTs(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetCheckpointTs(*v)
	}
	return _u
}

// AddCheckpointTs adds value to the "checkpoint_ts" field.
func (_u *ResponseEventUpdate) AddCheckpointTs(v float64) *ResponseEventUpdate {
	_u.mutation.AddCheckpointTs(v)
	return _u
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_u *ResponseEventUpdate) SetCheckpointType(v string) *ResponseEventUpdate {
	_u.mutation.SetCheckpointType(v)
	return _u
}

// SetNillableCheckpointType sets the "checkpoint_type" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCheckpointType(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetCheckpointType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ResponseEventUpdate) SetPrompt(v string) *ResponseEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillablePrompt(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *ResponseEventUpdate) SetSelectedIndex(v int) *ResponseEventUpdate {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSelectedIndex(v *int) *ResponseEventUpdate {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *ResponseEventUpdate) AddSelectedIndex(v int) *ResponseEventUpdate {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *ResponseEventUpdate) SetAnswerText(v string) *ResponseEventUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswerText(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdate) SetCorrect(v bool) *ResponseEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableCorrect(v *bool) *ResponseEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetVideoTime sets the "video_time" field.
func (_u *ResponseEventUpdate) SetVideoTime(v float64) *ResponseEventUpdate {
	_u.mutation.ResetVideoTime()
	_u.mutation.SetVideoTime(v)
	return _u
}

// SetNillableVideoTime sets the "video_time" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableVideoTime(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetVideoTime(*v)
	}
	return _u
}

// AddVideoTime adds value to the "video_time" field.
func (_u *ResponseEventUpdate) AddVideoTime(v float64) *ResponseEventUpdate {
	_u.mutation.AddVideoTime(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ResponseEventUpdate) SetFeedback(v string) *ResponseEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableFeedback(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := responseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := responseevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointType(); ok {
		if err := responseevent.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.checkpoint_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := responseevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(responseevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointTs(); ok {
		_spec.SetField(responseevent.FieldCheckpointTs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCheckpointTs(); ok {
		_spec.AddField(responseevent.FieldCheckpointTs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CheckpointType(); ok {
		_spec.SetField(responseevent.FieldCheckpointType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(responseevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(responseevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(responseevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(responseevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VideoTime(); ok {
		_spec.SetField(responseevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoTime(); ok {
		_spec.AddField(responseevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(responseevent.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdateOne) SetUserID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableUserID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *ResponseEventUpdateOne) SetLectureID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableLectureID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetCheckpointTs sets the "checkpoint_ts" field.
func (_u *ResponseEventUpdateOne) SetCheckpointTs(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetCheckpointTs()
	_u.mutation.SetCheckpointTs(v)
	return _u
}

// SetNillableCheckpointTs sets the "checkpoint_ts" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCheckpointTs(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCheckpointTs(*v)
	}
	return _u
}

// AddCheckpointTs adds value to the "checkpoint_ts" field.
func (_u *ResponseEventUpdateOne) AddCheckpointTs(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddCheckpointTs(v)
	return _u
}

// SetCheckpointType sets the "checkpoint_type" field.
func (_u *ResponseEventUpdateOne) SetCheckpointType(v string) *ResponseEventUpdateOne {
	_u.mutation.SetCheckpointType(v)
	return _u
}

// SetNillableCheckpointType sets the "checkpoint_type" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCheckpointType(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCheckpointType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ResponseEventUpdateOne) SetPrompt(v string) *ResponseEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillablePrompt(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *ResponseEventUpdateOne) SetSelectedIndex(v int) *ResponseEventUpdateOne {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSelectedIndex(v *int) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *ResponseEventUpdateOne) AddSelectedIndex(v int) *ResponseEventUpdateOne {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *ResponseEventUpdateOne) SetAnswerText(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswerText(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResponseEventUpdateOne) SetCorrect(v bool) *ResponseEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableCorrect(v *bool) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetVideoTime sets the "video_time" field.
func (_u *ResponseEventUpdateOne) SetVideoTime(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetVideoTime()
	_u.mutation.SetVideoTime(v)
	return _u
}

// SetNillableVideoTime sets the "video_time" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableVideoTime(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetVideoTime(*v)
	}
	return _u
}

// AddVideoTime adds value to the "video_time" field.
func (_u *ResponseEventUpdateOne) AddVideoTime(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddVideoTime(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ResponseEventUpdateOne) SetFeedback(v string) *ResponseEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableFeedback(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := responseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := responseevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointType(); ok {
		if err := responseevent.CheckpointTypeValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_type", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.checkpoint_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := responseevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "ResponseEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(responseevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointTs(); ok {
		_spec.SetField(responseevent.FieldCheckpointTs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCheckpointTs(); ok {
		_spec.AddField(responseevent.FieldCheckpointTs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CheckpointType(); ok {
		_spec.SetField(responseevent.FieldCheckpointType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(responseevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(responseevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(responseevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(responseevent.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(responseevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VideoTime(); ok {
		_spec.SetField(responseevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoTime(); ok {
		_spec.AddField(responseevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(responseevent.FieldFeedback, field.TypeString, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
