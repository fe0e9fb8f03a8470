// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "watch_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "video_time", Type: field.TypeFloat64},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_watch_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
			{
				Name:    "interactionevent_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4]},
			},
			{
				Name:    "interactionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "checkpoint_ts", Type: field.TypeFloat64},
		{Name: "checkpoint_type", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "selected_index", Type: field.TypeInt, Default: -1},
		{Name: "answer_text", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "video_time", Type: field.TypeFloat64, Default: 0},
		{Name: "feedback", Type: field.TypeString, Default: ""},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_user_id_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3], ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[10]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// ViewingEventsColumns holds the columns for the "viewing_events" table.
	ViewingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "watch_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "watched_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_checkpoints", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// ViewingEventsTable holds the schema information for the "viewing_events" table.
	ViewingEventsTable = &schema.Table{
		Name:       "viewing_events",
		Columns:    ViewingEventsColumns,
		PrimaryKey: []*schema.Column{ViewingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "viewingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ViewingEventsColumns[1]},
			},
			{
				Name:    "viewingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ViewingEventsColumns[2]},
			},
			{
				Name:    "viewingevent_watch_id",
				Unique:  false,
				Columns: []*schema.Column{ViewingEventsColumns[3]},
			},
			{
				Name:    "viewingevent_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{ViewingEventsColumns[4]},
			},
			{
				Name:    "viewingevent_action",
				Unique:  false,
				Columns: []*schema.Column{ViewingEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InteractionEventsTable,
		LlmRequestEventsTable,
		ResponseEventsTable,
		SnapshotsTable,
		ViewingEventsTable,
	}
)

func init() {
}
