package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records one player interaction (pause, seek, speed
// change, checkpoint engagement) for analytics and struggle detection
// across sessions.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("watch_id").
			NotEmpty().
			Comment("UUID grouping events in a viewing session"),
		field.String("lecture_id").
			NotEmpty().
			Comment("Lecture being watched"),
		field.String("event_type").
			NotEmpty().
			Comment("manual_pause, seek, rewind, checkpoint_engage, ..."),
		field.Float("video_time").
			Comment("Playhead position when the event happened"),
		field.String("details").
			Default("").
			Comment("Free-form detail, e.g. seek target or new rate"),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Structured key-value detail"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("watch_id"),
		index.Fields("lecture_id"),
		index.Fields("event_type"),
	}
}
