// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lecto/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// WatchID applies equality check predicate on the "watch_id" field. It's identical to WatchIDEQ.
func WatchID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldWatchID, v))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldLectureID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldEventType, v))
}

// VideoTime applies equality check predicate on the "video_time" field. It's identical to VideoTimeEQ.
func VideoTime(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldVideoTime, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldDetails, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// WatchIDEQ applies the EQ predicate on the "watch_id" field.
func WatchIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldWatchID, v))
}

// WatchIDNEQ applies the NEQ predicate on the "watch_id" field.
func WatchIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldWatchID, v))
}

// WatchIDIn applies the In predicate on the "watch_id" field.
func WatchIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldWatchID, vs...))
}

// WatchIDNotIn applies the NotIn predicate on the "watch_id" field.
func WatchIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldWatchID, vs...))
}

// WatchIDGT applies the GT predicate on the "watch_id" field.
func WatchIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldWatchID, v))
}

// WatchIDGTE applies the GTE predicate on the "watch_id" field.
func WatchIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldWatchID, v))
}

// WatchIDLT applies the LT predicate on the "watch_id" field.
func WatchIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldWatchID, v))
}

// WatchIDLTE applies the LTE predicate on the "watch_id" field.
func WatchIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldWatchID, v))
}

// WatchIDContains applies the Contains predicate on the "watch_id" field.
func WatchIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldWatchID, v))
}

// WatchIDHasPrefix applies the HasPrefix predicate on the "watch_id" field.
func WatchIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldWatchID, v))
}

// WatchIDHasSuffix applies the HasSuffix predicate on the "watch_id" field.
func WatchIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldWatchID, v))
}

// WatchIDEqualFold applies the EqualFold predicate on the "watch_id" field.
func WatchIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldWatchID, v))
}

// WatchIDContainsFold applies the ContainsFold predicate on the "watch_id" field.
func WatchIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldWatchID, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldLectureID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldEventType, v))
}

// VideoTimeEQ applies the EQ predicate on the "video_time" field.
func VideoTimeEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldVideoTime, v))
}

// VideoTimeNEQ applies the NEQ predicate on the "video_time" field.
func VideoTimeNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldVideoTime, v))
}

// VideoTimeIn applies the In predicate on the "video_time" field.
func VideoTimeIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldVideoTime, vs...))
}

// VideoTimeNotIn applies the NotIn predicate on the "video_time" field.
func VideoTimeNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldVideoTime, vs...))
}

// VideoTimeGT applies the GT predicate on the "video_time" field.
func VideoTimeGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldVideoTime, v))
}

// VideoTimeGTE applies the GTE predicate on the "video_time" field.
func VideoTimeGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldVideoTime, v))
}

// VideoTimeLT applies the LT predicate on the "video_time" field.
func VideoTimeLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldVideoTime, v))
}

// VideoTimeLTE applies the LTE predicate on the "video_time" field.
func VideoTimeLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldVideoTime, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldDetails, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.NotPredicates(p))
}
