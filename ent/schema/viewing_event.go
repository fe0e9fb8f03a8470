package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViewingEvent records viewing session lifecycle (start/end) per lecture.
type ViewingEvent struct {
	ent.Schema
}

func (ViewingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ViewingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("watch_id").
			NotEmpty().
			Comment("UUID grouping events in a viewing session"),
		field.String("lecture_id").
			NotEmpty().
			Comment("Lecture watched"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Float("watched_secs").
			Default(0).
			Comment("Video seconds covered (on end only)"),
		field.Int("completed_checkpoints").
			Default(0).
			Comment("Checkpoints completed this session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length in seconds (on end only)"),
	}
}

func (ViewingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("watch_id"),
		index.Fields("lecture_id"),
		index.Fields("action"),
	}
}
