package tutor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/telemetry"
)

func testLecture() *lecture.Lecture {
	lec := &lecture.Lecture{
		ID:              "lec-1",
		Title:           "Signals and Systems",
		DurationSeconds: 600,
	}
	for i := 0; i < 60; i++ {
		lec.Transcript = append(lec.Transcript, lecture.TranscriptLine{
			Start: float64(i * 10),
			End:   float64(i*10 + 9),
			Text:  fmt.Sprintf("line %d", i),
		})
	}
	for i := 0; i < 12; i++ {
		lec.Concepts = append(lec.Concepts, lecture.Concept{
			Name:      fmt.Sprintf("concept %d", i),
			Timestamp: float64(i * 50),
		})
	}
	return lec
}

func TestBuildSnapshotBounds(t *testing.T) {
	lec := testLecture()
	var cps []checkpoint.Checkpoint
	for i := 0; i < 150; i++ {
		cps = append(cps, checkpoint.Checkpoint{
			Key: checkpoint.Key{
				Timestamp: float64(i * 4),
				Type:      checkpoint.TypeQuickQuiz,
				Prompt:    fmt.Sprintf("q%d", i),
			},
		})
	}
	var msgs []Message
	for i := 0; i < 25; i++ {
		msgs = append(msgs, Message{Role: "student", Content: fmt.Sprintf("m%d", i)})
	}

	snap := BuildSnapshot(SnapshotInput{
		Lecture:     lec,
		Checkpoints: cps,
		Messages:    msgs,
		CurrentTime: 300,
		Now:         time.Now(),
	})

	require.Equal(t, "Signals and Systems", snap.LectureTitle)
	require.LessOrEqual(t, len(snap.Transcript), 20)
	for _, line := range snap.Transcript {
		require.GreaterOrEqual(t, line.End, 260.0)
		require.LessOrEqual(t, line.Start, 340.0)
	}
	require.Len(t, snap.NearestConcepts, 5)
	require.Equal(t, "concept 6", snap.NearestConcepts[0].Name)
	require.Len(t, snap.NearestCheckpoint, 5)
	require.Equal(t, 300.0, snap.NearestCheckpoint[0].Timestamp())
	require.Len(t, snap.AllCheckpoints, 100)
	require.Len(t, snap.Conversation, 10)
	require.Equal(t, "m15", snap.Conversation[0].Content)
}

func TestBuildSnapshotInteractionWindow(t *testing.T) {
	log := telemetry.NewLog()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := now.Add(-5 * time.Minute)
	log.SetClock(func() time.Time { return clock })

	log.Append(telemetry.EventSeek, 40, "", nil) // 5 min old, outside window
	clock = now.Add(-time.Minute)
	log.Append(telemetry.EventSeek, 50, "", nil)
	log.Append(telemetry.EventManualPause, 55, "", nil)

	snap := BuildSnapshot(SnapshotInput{
		Telemetry:   log,
		CurrentTime: 60,
		Now:         now,
	})

	require.Equal(t, 1, snap.InteractionCounts[telemetry.EventSeek])
	require.Equal(t, 1, snap.InteractionCounts[telemetry.EventManualPause])
}

func TestSnapshotHashBucketsPlayhead(t *testing.T) {
	lec := testLecture()

	at := func(current float64) string {
		return BuildSnapshot(SnapshotInput{Lecture: lec, CurrentTime: current}).Hash()
	}

	// Within the same 10s bucket the hash is stable even though the
	// rendered playhead differs.
	require.Equal(t, at(301), at(309))
	// Crossing a bucket boundary moves the hash.
	require.NotEqual(t, at(309), at(311))
}

func TestSnapshotRenderMentionsKeyFacts(t *testing.T) {
	lec := testLecture()
	snap := BuildSnapshot(SnapshotInput{Lecture: lec, CurrentTime: 120})
	text := snap.Render()
	require.Contains(t, text, "Signals and Systems")
	require.Contains(t, text, "Playhead: 120s")
	require.Contains(t, text, "line 12")
}
