package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a student's answer to one checkpoint. The checkpoint
// is identified by its durable identity fields, not an index, so responses
// survive re-analysis of the lecture.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Student this response belongs to"),
		field.String("lecture_id").
			NotEmpty().
			Comment("Lecture pack the checkpoint came from"),
		field.Float("checkpoint_ts").
			Comment("Checkpoint timestamp in video seconds"),
		field.String("checkpoint_type").
			NotEmpty().
			Comment("quickQuiz, reflection, prediction, or application"),
		field.String("prompt").
			NotEmpty().
			Comment("Checkpoint prompt text"),
		field.Int("selected_index").
			Default(-1).
			Comment("Chosen option index, -1 when free text"),
		field.String("answer_text").
			Default("").
			Comment("What the student answered, verbatim"),
		field.Bool("correct").
			Comment("Whether the answer matched the expected one"),
		field.Float("video_time").
			Default(0).
			Comment("Playhead when the answer was submitted"),
		field.String("feedback").
			Default("").
			Comment("Feedback shown to the student"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lecture_id"),
		index.Fields("correct"),
	}
}
