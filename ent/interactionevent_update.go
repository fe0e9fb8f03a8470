// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lecto/ent/interactionevent"
	"github.com/abhisek/lecto/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWatchID sets the "watch_id" field.
func (_u *InteractionEventUpdate) SetWatchID(v string) *InteractionEventUpdate {
	_u.mutation.SetWatchID(v)
	return _u
}

// SetNillableWatchID sets the "watch_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableWatchID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetWatchID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *InteractionEventUpdate) SetLectureID(v string) *InteractionEventUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableLectureID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *InteractionEventUpdate) SetEventType(v string) *InteractionEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableEventType(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetVideoTime sets the "video_time" field.
func (_u *InteractionEventUpdate) SetVideoTime(v float64) *InteractionEventUpdate {
	_u.mutation.ResetVideoTime()
	_u.mutation.SetVideoTime(v)
	return _u
}

// SetNillableVideoTime sets the "video_time" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableVideoTime(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetVideoTime(*v)
	}
	return _u
}

// AddVideoTime adds value to the "video_time" field.
func (_u *InteractionEventUpdate) AddVideoTime(v float64) *InteractionEventUpdate {
	_u.mutation.AddVideoTime(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *InteractionEventUpdate) SetDetails(v string) *InteractionEventUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableDetails(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InteractionEventUpdate) SetMetadata(v map[string]string) *InteractionEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InteractionEventUpdate) ClearMetadata() *InteractionEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.WatchID(); ok {
		if err := interactionevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.watch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := interactionevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := interactionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WatchID(); ok {
		_spec.SetField(interactionevent.FieldWatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(interactionevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(interactionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoTime(); ok {
		_spec.SetField(interactionevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoTime(); ok {
		_spec.AddField(interactionevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(interactionevent.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(interactionevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(interactionevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetWatchID sets the "watch_id" field.
func (_u *InteractionEventUpdateOne) SetWatchID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetWatchID(v)
	return _u
}

// SetNillableWatchID sets the "watch_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableWatchID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetWatchID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *InteractionEventUpdateOne) SetLectureID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableLectureID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *InteractionEventUpdateOne) SetEventType(v string) *InteractionEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableEventType(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetVideoTime sets the "video_time" field.
func (_u *InteractionEventUpdateOne) SetVideoTime(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetVideoTime()
	_u.mutation.SetVideoTime(v)
	return _u
}

// SetNillableVideoTime sets the "video_time" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableVideoTime(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetVideoTime(*v)
	}
	return _u
}

// AddVideoTime adds value to the "video_time" field.
func (_u *InteractionEventUpdateOne) AddVideoTime(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddVideoTime(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *InteractionEventUpdateOne) SetDetails(v string) *InteractionEventUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableDetails(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InteractionEventUpdateOne) SetMetadata(v map[string]string) *InteractionEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InteractionEventUpdateOne) ClearMetadata() *InteractionEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.WatchID(); ok {
		if err := interactionevent.WatchIDValidator(v); err != nil {
			return &ValidationError{Name: "watch_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.watch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := interactionevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := interactionevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
		_spec.SetField(interactionevent.FieldWatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(interactionevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(interactionevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoTime(); ok {
		_spec.SetField(interactionevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoTime(); ok {
		_spec.AddField(interactionevent.FieldVideoTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(interactionevent.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(interactionevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(interactionevent.FieldMetadata, field.TypeJSON)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
