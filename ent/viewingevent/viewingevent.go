// Code generated by ent, DO NOT EDIT.

package viewingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the viewingevent type in the database.
	Label = "viewing_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldWatchID holds the string denoting the watch_id field in the database.
	FieldWatchID = "watch_id"
	// FieldLectureID holds the string denoting the lecture_id field in the database.
	FieldLectureID = "lecture_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldWatchedSecs holds the string denoting the watched_secs field in the database.
	FieldWatchedSecs = "watched_secs"
	// FieldCompletedCheckpoints holds the string denoting the completed_checkpoints field in the database.
	FieldCompletedCheckpoints = "completed_checkpoints"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the viewingevent in the database.
	Table = "viewing_events"
)

// Columns holds all SQL columns for viewingevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldWatchID,
	FieldLectureID,
	FieldAction,
	FieldWatchedSecs,
	FieldCompletedCheckpoints,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// WatchIDValidator is a validator for the "watch_id" field. It is called by the builders before save.
	WatchIDValidator func(string) error
	// LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	LectureIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultWatchedSecs holds the default value on creation for the "watched_secs" field.
	DefaultWatchedSecs float64
	// DefaultCompletedCheckpoints holds the default value on creation for the "completed_checkpoints" field.
	DefaultCompletedCheckpoints int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the ViewingEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByWatchID orders the results by the watch_id field.
func ByWatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchID, opts...).ToFunc()
}

// ByLectureID orders the results by the lecture_id field.
func ByLectureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLectureID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByWatchedSecs orders the results by the watched_secs field.
func ByWatchedSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatchedSecs, opts...).ToFunc()
}

// ByCompletedCheckpoints orders the results by the completed_checkpoints field.
func ByCompletedCheckpoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCheckpoints, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
