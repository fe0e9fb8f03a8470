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
	"github.com/abhisek/lecto/ent/viewingevent"
)

// ViewingEventUpdate is the builder for updating ViewingEvent entities.
type ViewingEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViewingEventMutation
}

// Where appends a list predicates to the ViewingEventUpdate builder.
func (_u *ViewingEventUpdate) Where(ps ...predicate.ViewingEvent) *ViewingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWatchID sets the "watch_id" field.
func (_u *ViewingEventUpdate) SetWatchID(v string) *ViewingEventUpdate {
	_u.mutation.SetWatchID(v)
	return _u
}

// SetNillableWatchID sets the "watch_id" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableWatchID(v *string) *ViewingEventUpdate {
	if v != nil {
		_u.SetWatchID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *ViewingEventUpdate) SetLectureID(v string) *ViewingEventUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableLectureID(v *string) *ViewingEventUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ViewingEventUpdate) SetAction(v string) *ViewingEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableAction(v *string) *ViewingEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchedSecs sets the "watched_secs" field.
func (_u *ViewingEventUpdate) SetWatchedSecs(v float64) *ViewingEventUpdate {
	_u.mutation.ResetWatchedSecs()
	_u.mutation.SetWatchedSecs(v)
	return _u
}

// SetNillableWatchedSecs sets the "watched_secs" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableWatchedSecs(v *float64) *ViewingEventUpdate {
	if v != nil {
		_u.SetWatchedSecs(*v)
	}
	return _u
}

// AddWatchedSecs adds value to the "watched_secs" field.
func (_u *ViewingEventUpdate) AddWatchedSecs(v float64) *ViewingEventUpdate {
	_u.mutation.AddWatchedSecs(v)
	return _u
}

// SetCompletedCheckpoints sets the "completed_checkpoints" field.
func (_u *ViewingEventUpdate) SetCompletedCheckpoints(v int) *ViewingEventUpdate {
	_u.mutation.ResetCompletedCheckpoints()
	_u.mutation.SetCompletedCheckpoints(v)
	return _u
}

// SetNillableCompletedCheckpoints sets the "completed_checkpoints" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableCompletedCheckpoints(v *int) *ViewingEventUpdate {
	if v != nil {
		_u.SetCompletedCheckpoints(*v)
	}
	return _u
}

// AddCompletedCheckpoints adds value to the "completed_checkpoints" field.
func (_u *ViewingEventUpdate) AddCompletedCheckpoints(v int) *ViewingEventUpdate {
	_u.mutation.AddCompletedCheckpoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ViewingEventUpdate) SetDurationSecs(v int) *ViewingEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ViewingEventUpdate) SetNillableDurationSecs(v *int) *ViewingEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ViewingEventUpdate) AddDurationSecs(v int) *ViewingEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ViewingEventMutation object of the builder.
func (_u *ViewingEventUpdate) Mutation() *ViewingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViewingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViewingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewingEventUpdate) check() error {
	if v, ok := _u.mutation.WatchID(); ok {
		if err := viewingevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.watch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := viewingevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := viewingevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ViewingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewingevent.Table, viewingevent.Columns, sqlgraph.NewFieldSpec(viewingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WatchID(); ok {
		_spec.SetField(viewingevent.FieldWatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(viewingevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(viewingevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchedSecs(); ok {
		_spec.SetField(viewingevent.FieldWatchedSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedSecs(); ok {
		_spec.AddField(viewingevent.FieldWatchedSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedCheckpoints(); ok {
		_spec.SetField(viewingevent.FieldCompletedCheckpoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCheckpoints(); ok {
		_spec.AddField(viewingevent.FieldCompletedCheckpoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(viewingevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(viewingevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViewingEventUpdateOne is the builder for updating a single ViewingEvent entity.
type ViewingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViewingEventMutation
}

// SetWatchID sets the "watch_id" field.
func (_u *ViewingEventUpdateOne) SetWatchID(v string) *ViewingEventUpdateOne {
	_u.mutation.SetWatchID(v)
	return _u
}

// SetNillableWatchID sets the "watch_id" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableWatchID(v *string) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetWatchID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *ViewingEventUpdateOne) SetLectureID(v string) *ViewingEventUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableLectureID(v *string) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ViewingEventUpdateOne) SetAction(v string) *ViewingEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableAction(v *string) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWatchedSecs sets the "watched_secs" field.
func (_u *ViewingEventUpdateOne) SetWatchedSecs(v float64) *ViewingEventUpdateOne {
	_u.mutation.ResetWatchedSecs()
	_u.mutation.SetWatchedSecs(v)
	return _u
}

// SetNillableWatchedSecs sets the "watched_secs" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableWatchedSecs(v *float64) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetWatchedSecs(*v)
	}
	return _u
}

// AddWatchedSecs adds value to the "watched_secs" field.
func (_u *ViewingEventUpdateOne) AddWatchedSecs(v float64) *ViewingEventUpdateOne {
	_u.mutation.AddWatchedSecs(v)
	return _u
}

// SetCompletedCheckpoints sets the "completed_checkpoints" field.
func (_u *ViewingEventUpdateOne) SetCompletedCheckpoints(v int) *ViewingEventUpdateOne {
	_u.mutation.ResetCompletedCheckpoints()
	_u.mutation.SetCompletedCheckpoints(v)
	return _u
}

// SetNillableCompletedCheckpoints sets the "completed_checkpoints" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableCompletedCheckpoints(v *int) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetCompletedCheckpoints(*v)
	}
	return _u
}

// AddCompletedCheckpoints adds value to the "completed_checkpoints" field.
func (_u *ViewingEventUpdateOne) AddCompletedCheckpoints(v int) *ViewingEventUpdateOne {
	_u.mutation.AddCompletedCheckpoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ViewingEventUpdateOne) SetDurationSecs(v int) *ViewingEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ViewingEventUpdateOne) SetNillableDurationSecs(v *int) *ViewingEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ViewingEventUpdateOne) AddDurationSecs(v int) *ViewingEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ViewingEventMutation object of the builder.
func (_u *ViewingEventUpdateOne) Mutation() *ViewingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViewingEventUpdate builder.
func (_u *ViewingEventUpdateOne) Where(ps ...predicate.ViewingEvent) *ViewingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViewingEventUpdateOne) Select(field string, fields ...string) *ViewingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViewingEvent entity.
func (_u *ViewingEventUpdateOne) Save(ctx context.Context) (*ViewingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewingEventUpdateOne) SaveX(ctx context.Context) *ViewingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViewingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewingEventUpdateOne) check() error {
	if v, ok := _u.mutation.WatchID(); ok {
		if err := viewingevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.watch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := viewingevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := viewingevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ViewingEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ViewingEventUpdateOne) sqlSave(ctx context.Context) (_node *ViewingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewingevent.Table, viewingevent.Columns, sqlgraph.NewFieldSpec(viewingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViewingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, viewingevent.FieldID)
		for _, f := range fields {
			if !viewingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != viewingevent.FieldID {
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
	if value, ok := _u.mutation.WatchID(); ok {
		_spec.SetField(viewingevent.FieldWatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(viewingevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(viewingevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.WatchedSecs(); ok {
		_spec.SetField(viewingevent.FieldWatchedSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWatchedSecs(); ok {
		_spec.AddField(viewingevent.FieldWatchedSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedCheckpoints(); ok {
		_spec.SetField(viewingevent.FieldCompletedCheckpoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCheckpoints(); ok {
		_spec.AddField(viewingevent.FieldCompletedCheckpoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(viewingevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(viewingevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &ViewingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
