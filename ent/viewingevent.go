// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lecto/ent/viewingevent"
)

// ViewingEvent is the model entity for the ViewingEvent schema.
type ViewingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a viewing session
	WatchID string `json:"watch_id,omitempty"`
	// Lecture watched
	LectureID string `json:"lecture_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Video seconds covered (on end only)
	WatchedSecs float64 `json:"watched_secs,omitempty"`
	// Checkpoints completed this session (on end only)
	CompletedCheckpoints int `json:"completed_checkpoints,omitempty"`
	// Wall-clock session length in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViewingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case viewingevent.FieldWatchedSecs:
			values[i] = new(sql.NullFloat64)
		case viewingevent.FieldID, viewingevent.FieldSequence, viewingevent.FieldCompletedCheckpoints, viewingevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case viewingevent.FieldWatchID, viewingevent.FieldLectureID, viewingevent.FieldAction:
			values[i] = new(sql.NullString)
		case viewingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViewingEvent fields.
func (_m *ViewingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case viewingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case viewingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case viewingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case viewingevent.FieldWatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field watch_id", values[i])
			} else if value.Valid {
				_m.WatchID = value.String
			}
		case viewingevent.FieldLectureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lecture_id", values[i])
			} else if value.Valid {
				_m.LectureID = value.String
			}
		case viewingevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case viewingevent.FieldWatchedSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field watched_secs", values[i])
			} else if value.Valid {
				_m.WatchedSecs = value.Float64
			}
		case viewingevent.FieldCompletedCheckpoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_checkpoints", values[i])
			} else if value.Valid {
				_m.CompletedCheckpoints = int(value.Int64)
			}
		case viewingevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ViewingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ViewingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ViewingEvent.
// Note that you need to call ViewingEvent.Unwrap() before calling this method if this ViewingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ViewingEvent) Update() *ViewingEventUpdateOne {
	return NewViewingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ViewingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ViewingEvent) Unwrap() *ViewingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViewingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ViewingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ViewingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("watch_id=")
	builder.WriteString(_m.WatchID)
	builder.WriteString(", ")
	builder.WriteString("lecture_id=")
	builder.WriteString(_m.LectureID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("watched_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.WatchedSecs))
	builder.WriteString(", ")
	builder.WriteString("completed_checkpoints=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCheckpoints))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// ViewingEvents is a parsable slice of ViewingEvent.
type ViewingEvents []*ViewingEvent
