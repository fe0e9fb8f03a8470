// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lecto/ent/interactionevent"
	"github.com/abhisek/lecto/ent/llmrequestevent"
	"github.com/abhisek/lecto/ent/responseevent"
	"github.com/abhisek/lecto/ent/schema"
	"github.com/abhisek/lecto/ent/snapshot"
	"github.com/abhisek/lecto/ent/viewingevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescWatchID is the schema descriptor for watch_id field.
	interactioneventDescWatchID := interactioneventFields[0].Descriptor()
	// interactionevent.WatchIDValidator is a validator for the "watch_id" field. It is called by the builders before save.
	interactionevent.WatchIDValidator = interactioneventDescWatchID.Validators[0].(func(string) error)
	// interactioneventDescLectureID is the schema descriptor for lecture_id field.
	interactioneventDescLectureID := interactioneventFields[1].Descriptor()
	// interactionevent.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	interactionevent.LectureIDValidator = interactioneventDescLectureID.Validators[0].(func(string) error)
	// interactioneventDescEventType is the schema descriptor for event_type field.
	interactioneventDescEventType := interactioneventFields[2].Descriptor()
	// interactionevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	interactionevent.EventTypeValidator = interactioneventDescEventType.Validators[0].(func(string) error)
	// interactioneventDescDetails is the schema descriptor for details field.
	interactioneventDescDetails := interactioneventFields[4].Descriptor()
	// interactionevent.DefaultDetails holds the default value on creation for the details field.
	interactionevent.DefaultDetails = interactioneventDescDetails.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescUserID is the schema descriptor for user_id field.
	responseeventDescUserID := responseeventFields[0].Descriptor()
	// responseevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	responseevent.UserIDValidator = responseeventDescUserID.Validators[0].(func(string) error)
	// responseeventDescLectureID is the schema descriptor for lecture_id field.
	responseeventDescLectureID := responseeventFields[1].Descriptor()
	// responseevent.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	responseevent.LectureIDValidator = responseeventDescLectureID.Validators[0].(func(string) error)
	// responseeventDescCheckpointType is the schema descriptor for checkpoint_type field.
	responseeventDescCheckpointType := responseeventFields[3].Descriptor()
	// responseevent.CheckpointTypeValidator is a validator for the "checkpoint_type" field. It is called by the builders before save.
	responseevent.CheckpointTypeValidator = responseeventDescCheckpointType.Validators[0].(func(string) error)
	// responseeventDescPrompt is the schema descriptor for prompt field.
	responseeventDescPrompt := responseeventFields[4].Descriptor()
	// responseevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	responseevent.PromptValidator = responseeventDescPrompt.Validators[0].(func(string) error)
	// responseeventDescSelectedIndex is the schema descriptor for selected_index field.
	responseeventDescSelectedIndex := responseeventFields[5].Descriptor()
	// responseevent.DefaultSelectedIndex holds the default value on creation for the selected_index field.
	responseevent.DefaultSelectedIndex = responseeventDescSelectedIndex.Default.(int)
	// responseeventDescAnswerText is the schema descriptor for answer_text field.
	responseeventDescAnswerText := responseeventFields[6].Descriptor()
	// responseevent.DefaultAnswerText holds the default value on creation for the answer_text field.
	responseevent.DefaultAnswerText = responseeventDescAnswerText.Default.(string)
	// responseeventDescVideoTime is the schema descriptor for video_time field.
	responseeventDescVideoTime := responseeventFields[8].Descriptor()
	// responseevent.DefaultVideoTime holds the default value on creation for the video_time field.
	responseevent.DefaultVideoTime = responseeventDescVideoTime.Default.(float64)
	// responseeventDescFeedback is the schema descriptor for feedback field.
	responseeventDescFeedback := responseeventFields[9].Descriptor()
	// responseevent.DefaultFeedback holds the default value on creation for the feedback field.
	responseevent.DefaultFeedback = responseeventDescFeedback.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	viewingeventMixin := schema.ViewingEvent{}.Mixin()
	viewingeventMixinFields0 := viewingeventMixin[0].Fields()
	_ = viewingeventMixinFields0
	viewingeventFields := schema.ViewingEvent{}.Fields()
	_ = viewingeventFields
	// viewingeventDescTimestamp is the schema descriptor for timestamp field.
	viewingeventDescTimestamp := viewingeventMixinFields0[1].Descriptor()
	// viewingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	viewingevent.DefaultTimestamp = viewingeventDescTimestamp.Default.(func() time.Time)
	// viewingeventDescWatchID is the schema descriptor for watch_id field.
	viewingeventDescWatchID := viewingeventFields[0].Descriptor()
	// viewingevent.WatchIDValidator is a validator for the "watch_id" field. It is called by the builders before save.
	viewingevent.WatchIDValidator = viewingeventDescWatchID.Validators[0].(func(string) error)
	// viewingeventDescLectureID is the schema descriptor for lecture_id field.
	viewingeventDescLectureID := viewingeventFields[1].Descriptor()
	// viewingevent.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	viewingevent.LectureIDValidator = viewingeventDescLectureID.Validators[0].(func(string) error)
	// viewingeventDescAction is the schema descriptor for action field.
	viewingeventDescAction := viewingeventFields[2].Descriptor()
	// viewingevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	viewingevent.ActionValidator = viewingeventDescAction.Validators[0].(func(string) error)
	// viewingeventDescWatchedSecs is the schema descriptor for watched_secs field.
	viewingeventDescWatchedSecs := viewingeventFields[3].Descriptor()
	// viewingevent.DefaultWatchedSecs holds the default value on creation for the watched_secs field.
	viewingevent.DefaultWatchedSecs = viewingeventDescWatchedSecs.Default.(float64)
	// viewingeventDescCompletedCheckpoints is the schema descriptor for completed_checkpoints field.
	viewingeventDescCompletedCheckpoints := viewingeventFields[4].Descriptor()
	// viewingevent.DefaultCompletedCheckpoints holds the default value on creation for the completed_checkpoints field.
	viewingevent.DefaultCompletedCheckpoints = viewingeventDescCompletedCheckpoints.Default.(int)
	// viewingeventDescDurationSecs is the schema descriptor for duration_secs field.
	viewingeventDescDurationSecs := viewingeventFields[5].Descriptor()
	// viewingevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	viewingevent.DefaultDurationSecs = viewingeventDescDurationSecs.Default.(int)
}
