package store

import (
	"context"
	"time"

	"github.com/abhisek/lecto/internal/responses"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ResumePosition is where a lecture should resume on next open.
type ResumePosition struct {
	VideoTime float64   `json:"video_time"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SnapshotData captures the full viewing state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`
	// Positions maps lecture ID to the last known playhead.
	Positions map[string]ResumePosition `json:"positions,omitempty"`
}

// Snapshot represents a point-in-time capture of viewing state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages viewing state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsage aggregates token usage for one request purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// InteractionEventData captures one player interaction.
type InteractionEventData struct {
	WatchID   string
	LectureID string
	EventType string
	VideoTime float64
	Details   string
	Metadata  map[string]string
}

// ViewingEventData captures a viewing session start or end.
type ViewingEventData struct {
	WatchID              string
	LectureID            string
	Action               string
	WatchedSecs          float64
	CompletedCheckpoints int
	DurationSecs         int
}

// LectureStats summarizes one lecture's answer history.
type LectureStats struct {
	LectureID    string
	Answered     int
	Correct      int
	Interactions int
}

// EventRepo provides append and query access to domain events. It also
// serves as the response persistence backend: SaveResponse and
// ResponsesForLecture satisfy responses.Persistence.
type EventRepo interface {
	responses.Persistence

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendInteraction records one player interaction event.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// AppendViewing records a viewing session start or end.
	AppendViewing(ctx context.Context, data ViewingEventData) error

	// Stats summarizes answer and interaction history per lecture.
	Stats(ctx context.Context, userID string) ([]LectureStats, error)
}
