package tutor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldPushGates(t *testing.T) {
	snap := BuildSnapshot(SnapshotInput{CurrentTime: 42})

	tests := []struct {
		name                          string
		panelOpen, connected, textMode bool
		want                          bool
	}{
		{"panel closed", false, true, true, false},
		{"disconnected", true, false, true, false},
		{"voice mode", true, true, false, false},
		{"all open", true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSynchronizer()
			require.Equal(t, tt.want, s.ShouldPush(snap, tt.panelOpen, tt.connected, tt.textMode))
		})
	}
}

func TestShouldPushDedupesConsecutivePayloads(t *testing.T) {
	s := NewSynchronizer()

	snap := BuildSnapshot(SnapshotInput{CurrentTime: 42})
	require.True(t, s.ShouldPush(snap, true, true, true))

	// Same bucket, nothing changed: no second push.
	again := BuildSnapshot(SnapshotInput{CurrentTime: 44})
	require.False(t, s.ShouldPush(again, true, true, true))

	// Playhead crossed a bucket boundary.
	moved := BuildSnapshot(SnapshotInput{CurrentTime: 51})
	require.True(t, s.ShouldPush(moved, true, true, true))

	// Data changed within the same bucket.
	answered := BuildSnapshot(SnapshotInput{CurrentTime: 52})
	answered.AnsweredCount = 3
	require.True(t, s.ShouldPush(answered, true, true, true))
}

func TestSuppressedTicksDoNotRecordHistory(t *testing.T) {
	s := NewSynchronizer()
	snap := BuildSnapshot(SnapshotInput{CurrentTime: 42})

	// A snapshot seen only while the panel was closed still pushes when
	// the panel opens.
	require.False(t, s.ShouldPush(snap, false, true, true))
	require.True(t, s.ShouldPush(snap, true, true, true))
}

func TestResetForcesNextPush(t *testing.T) {
	s := NewSynchronizer()
	snap := BuildSnapshot(SnapshotInput{CurrentTime: 42})

	require.True(t, s.ShouldPush(snap, true, true, true))
	require.False(t, s.ShouldPush(snap, true, true, true))

	s.Reset()
	require.True(t, s.ShouldPush(snap, true, true, true))
}
