package tutor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/responses"
	"github.com/abhisek/lecto/internal/telemetry"
)

// Bounds on the context snapshot, keeping every tutor payload small enough
// to send on each sync.
const (
	transcriptHalfWindow = 40.0
	transcriptMaxLines   = 20
	nearestCount         = 5
	listCap              = 100
	interactionWindow    = 180 * time.Second
	conversationTail     = 10
)

// Message is one turn of the tutor conversation.
type Message struct {
	Role    string // "student" or "tutor"
	Content string
}

// SnapshotInput is everything the snapshot derives from. The snapshot has
// no lifecycle of its own; it is recomputed on demand.
type SnapshotInput struct {
	Lecture     *lecture.Lecture
	Checkpoints []checkpoint.Checkpoint
	Telemetry   *telemetry.Log
	Responses   *responses.Store
	Messages    []Message
	CurrentTime float64
	Now         time.Time
}

// Snapshot is the bounded view of playback state handed to the AI tutor.
type Snapshot struct {
	LectureTitle      string
	CurrentTime       float64
	Transcript        []lecture.TranscriptLine
	NearestConcepts   []lecture.Concept
	NearestCheckpoint []checkpoint.Checkpoint
	AllConcepts       []lecture.Concept
	AllCheckpoints    []checkpoint.Checkpoint
	InteractionCounts map[telemetry.EventType]int
	AnsweredCount     int
	Conversation      []Message
}

// BuildSnapshot assembles the bounded tutor context.
func BuildSnapshot(in SnapshotInput) *Snapshot {
	snap := &Snapshot{
		CurrentTime:       in.CurrentTime,
		InteractionCounts: make(map[telemetry.EventType]int),
	}

	if in.Lecture != nil {
		snap.LectureTitle = in.Lecture.Title
		snap.Transcript = in.Lecture.TranscriptWindow(in.CurrentTime, transcriptHalfWindow, transcriptMaxLines)
		snap.NearestConcepts = nearestConcepts(in.Lecture.Concepts, in.CurrentTime, nearestCount)
		snap.AllConcepts = capConcepts(in.Lecture.Concepts, listCap)
	}

	snap.NearestCheckpoint = nearestCheckpoints(in.Checkpoints, in.CurrentTime, nearestCount)
	if len(in.Checkpoints) > listCap {
		snap.AllCheckpoints = in.Checkpoints[:listCap]
	} else {
		snap.AllCheckpoints = in.Checkpoints
	}

	if in.Telemetry != nil {
		for _, ev := range in.Telemetry.Window(in.Now, interactionWindow) {
			snap.InteractionCounts[ev.Type]++
		}
	}
	if in.Responses != nil {
		snap.AnsweredCount = in.Responses.Len()
	}

	if n := len(in.Messages); n > conversationTail {
		snap.Conversation = in.Messages[n-conversationTail:]
	} else {
		snap.Conversation = in.Messages
	}

	return snap
}

// Render flattens the snapshot into the context string sent to the tutor
// session.
func (s *Snapshot) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lecture: %s\n", s.LectureTitle)
	fmt.Fprintf(&b, "Playhead: %.0fs\n\n", s.CurrentTime)

	if len(s.Transcript) > 0 {
		b.WriteString("Transcript near the playhead:\n")
		for _, line := range s.Transcript {
			fmt.Fprintf(&b, "  [%.0fs] %s\n", line.Start, line.Text)
		}
		b.WriteString("\n")
	}

	if len(s.NearestConcepts) > 0 {
		b.WriteString("Nearby concepts:\n")
		for _, c := range s.NearestConcepts {
			fmt.Fprintf(&b, "  %s (%.0fs)\n", c.Name, c.Timestamp)
		}
		b.WriteString("\n")
	}

	if len(s.NearestCheckpoint) > 0 {
		b.WriteString("Nearby checkpoints:\n")
		for _, cp := range s.NearestCheckpoint {
			fmt.Fprintf(&b, "  %s @ %.0fs: %s\n", cp.Type(), cp.Timestamp(), cp.Prompt())
		}
		b.WriteString("\n")
	}

	if len(s.InteractionCounts) > 0 {
		b.WriteString("Recent interactions (last 3 min):")
		types := make([]string, 0, len(s.InteractionCounts))
		for t := range s.InteractionCounts {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(&b, " %s=%d", t, s.InteractionCounts[telemetry.EventType(t)])
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Checkpoints answered so far: %d\n", s.AnsweredCount)

	return b.String()
}

// Hash fingerprints the snapshot for consecutive-payload dedup. The
// playhead is bucketed to 10 seconds so the hash only moves when the bucket
// or the underlying data does, not on every tick.
func (s *Snapshot) Hash() string {
	bucketed := *s
	bucketed.CurrentTime = math.Floor(s.CurrentTime/10) * 10
	sum := sha256.Sum256([]byte(bucketed.Render()))
	return hex.EncodeToString(sum[:])
}

func nearestConcepts(concepts []lecture.Concept, current float64, n int) []lecture.Concept {
	out := append([]lecture.Concept(nil), concepts...)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Timestamp-current) < math.Abs(out[j].Timestamp-current)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func nearestCheckpoints(cps []checkpoint.Checkpoint, current float64, n int) []checkpoint.Checkpoint {
	out := append([]checkpoint.Checkpoint(nil), cps...)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Timestamp()-current) < math.Abs(out[j].Timestamp()-current)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func capConcepts(concepts []lecture.Concept, n int) []lecture.Concept {
	if len(concepts) > n {
		return concepts[:n]
	}
	return concepts
}
