// Code generated by ent, DO NOT EDIT.

package viewingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lecto/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// WatchID applies equality check predicate on the "watch_id" field. It's identical to WatchIDEQ.
func WatchID(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldWatchID, v))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldLectureID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldAction, v))
}

// WatchedSecs applies equality check predicate on the "watched_secs" field. It's identical to WatchedSecsEQ.
func WatchedSecs(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldWatchedSecs, v))
}

// CompletedCheckpoints applies equality check predicate on the "completed_checkpoints" field. It's identical to CompletedCheckpointsEQ.
func CompletedCheckpoints(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldCompletedCheckpoints, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// WatchIDEQ applies the EQ predicate on the "watch_id" field.
func WatchIDEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldWatchID, v))
}

// WatchIDNEQ applies the NEQ predicate on the "watch_id" field.
func WatchIDNEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldWatchID, v))
}

// WatchIDIn applies the In predicate on the "watch_id" field.
func WatchIDIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldWatchID, vs...))
}

// WatchIDNotIn applies the NotIn predicate on the "watch_id" field.
func WatchIDNotIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldWatchID, vs...))
}

// WatchIDGT applies the GT predicate on the "watch_id" field.
func WatchIDGT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldWatchID, v))
}

// WatchIDGTE applies the GTE predicate on the "watch_id" field.
func WatchIDGTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldWatchID, v))
}

// WatchIDLT applies the LT predicate on the "watch_id" field.
func WatchIDLT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldWatchID, v))
}

// WatchIDLTE applies the LTE predicate on the "watch_id" field.
func WatchIDLTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldWatchID, v))
}

// WatchIDContains applies the Contains predicate on the "watch_id" field.
func WatchIDContains(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContains(FieldWatchID, v))
}

// WatchIDHasPrefix applies the HasPrefix predicate on the "watch_id" field.
func WatchIDHasPrefix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasPrefix(FieldWatchID, v))
}

// WatchIDHasSuffix applies the HasSuffix predicate on the "watch_id" field.
func WatchIDHasSuffix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasSuffix(FieldWatchID, v))
}

// WatchIDEqualFold applies the EqualFold predicate on the "watch_id" field.
func WatchIDEqualFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEqualFold(FieldWatchID, v))
}

// WatchIDContainsFold applies the ContainsFold predicate on the "watch_id" field.
func WatchIDContainsFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContainsFold(FieldWatchID, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContainsFold(FieldLectureID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldContainsFold(FieldAction, v))
}

// WatchedSecsEQ applies the EQ predicate on the "watched_secs" field.
func WatchedSecsEQ(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldWatchedSecs, v))
}

// WatchedSecsNEQ applies the NEQ predicate on the "watched_secs" field.
func WatchedSecsNEQ(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldWatchedSecs, v))
}

// WatchedSecsIn applies the In predicate on the "watched_secs" field.
func WatchedSecsIn(vs ...float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldWatchedSecs, vs...))
}

// WatchedSecsNotIn applies the NotIn predicate on the "watched_secs" field.
func WatchedSecsNotIn(vs ...float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldWatchedSecs, vs...))
}

// WatchedSecsGT applies the GT predicate on the "watched_secs" field.
func WatchedSecsGT(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldWatchedSecs, v))
}

// WatchedSecsGTE applies the GTE predicate on the "watched_secs" field.
func WatchedSecsGTE(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldWatchedSecs, v))
}

// WatchedSecsLT applies the LT predicate on the "watched_secs" field.
func WatchedSecsLT(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldWatchedSecs, v))
}

// WatchedSecsLTE applies the LTE predicate on the "watched_secs" field.
func WatchedSecsLTE(v float64) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldWatchedSecs, v))
}

// CompletedCheckpointsEQ applies the EQ predicate on the "completed_checkpoints" field.
func CompletedCheckpointsEQ(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldCompletedCheckpoints, v))
}

// CompletedCheckpointsNEQ applies the NEQ predicate on the "completed_checkpoints" field.
func CompletedCheckpointsNEQ(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldCompletedCheckpoints, v))
}

// CompletedCheckpointsIn applies the In predicate on the "completed_checkpoints" field.
func CompletedCheckpointsIn(vs ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldCompletedCheckpoints, vs...))
}

// CompletedCheckpointsNotIn applies the NotIn predicate on the "completed_checkpoints" field.
func CompletedCheckpointsNotIn(vs ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldCompletedCheckpoints, vs...))
}

// CompletedCheckpointsGT applies the GT predicate on the "completed_checkpoints" field.
func CompletedCheckpointsGT(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldCompletedCheckpoints, v))
}

// CompletedCheckpointsGTE applies the GTE predicate on the "completed_checkpoints" field.
func CompletedCheckpointsGTE(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldCompletedCheckpoints, v))
}

// CompletedCheckpointsLT applies the LT predicate on the "completed_checkpoints" field.
func CompletedCheckpointsLT(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldCompletedCheckpoints, v))
}

// CompletedCheckpointsLTE applies the LTE predicate on the "completed_checkpoints" field.
func CompletedCheckpointsLTE(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldCompletedCheckpoints, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViewingEvent) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViewingEvent) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViewingEvent) predicate.ViewingEvent {
	return predicate.ViewingEvent(sql.NotPredicates(p))
}
