package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/responses"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestResponseLatestWinsPerCheckpoint(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	key := checkpoint.Key{Timestamp: 120, Type: checkpoint.TypeQuickQuiz, Prompt: "pick one"}
	first := responses.Record{
		Key:           key,
		SelectedIndex: 0,
		IsCorrect:     false,
		AnswerText:    "Paris",
		AnsweredAt:    time.Now().UTC(),
		VideoTime:     121,
	}
	if err := repo.SaveResponse(ctx, "u1", "lec-1", first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := first
	second.SelectedIndex = 1
	second.IsCorrect = true
	second.AnswerText = "London"
	if err := repo.SaveResponse(ctx, "u1", "lec-1", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	recs, err := repo.ResponsesForLecture(ctx, "u1", "lec-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if !recs[0].IsCorrect || recs[0].SelectedIndex != 1 {
		t.Errorf("latest record not returned: %+v", recs[0])
	}
	if recs[0].Key != key {
		t.Errorf("key = %+v, want %+v", recs[0].Key, key)
	}
}

func TestResponsesScopedToUserAndLecture(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rec := responses.Record{
		Key:        checkpoint.Key{Timestamp: 30, Type: checkpoint.TypeReflection, Prompt: "why?"},
		AnswerText: "because",
		AnsweredAt: time.Now().UTC(),
	}
	if err := repo.SaveResponse(ctx, "u1", "lec-1", rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	for _, q := range []struct{ user, lecture string }{
		{"u2", "lec-1"},
		{"u1", "lec-2"},
	} {
		recs, err := repo.ResponsesForLecture(ctx, q.user, q.lecture)
		if err != nil {
			t.Fatalf("load %s/%s: %v", q.user, q.lecture, err)
		}
		if len(recs) != 0 {
			t.Errorf("%s/%s: records = %d, want 0", q.user, q.lecture, len(recs))
		}
	}
}

func TestAppendInteractionAndViewing(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendInteraction(ctx, InteractionEventData{
		WatchID:   "w1",
		LectureID: "lec-1",
		EventType: "seek",
		VideoTime: 42,
		Details:   "to 30",
		Metadata:  map[string]string{"from": "42"},
	})
	if err != nil {
		t.Fatalf("append interaction: %v", err)
	}

	err = repo.AppendViewing(ctx, ViewingEventData{
		WatchID:      "w1",
		LectureID:    "lec-1",
		Action:       "end",
		WatchedSecs:  300,
		DurationSecs: 350,
	})
	if err != nil {
		t.Fatalf("append viewing: %v", err)
	}

	n, err := s.Client().InteractionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count interactions: %v", err)
	}
	if n != 1 {
		t.Errorf("interactions = %d, want 1", n)
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "tutor-chat",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "tutor-chat",
			InputTokens: 200, OutputTokens: 60, LatencyMs: 1100, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "tutor-chat",
			InputTokens: 300, OutputTokens: 80, LatencyMs: 2000, Success: false,
			ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].Sequence <= recs[1].Sequence {
		t.Errorf("expected newest first, got sequences %d, %d", recs[0].Sequence, recs[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != recs[0].ID {
		t.Fatalf("GetLLMEvent returned %+v", got)
	}
	if missing, err := repo.GetLLMEvent(ctx, 999999); err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing id, got %+v, %v", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Purpose != "tutor-chat" {
		t.Fatalf("usage rows = %+v, want one tutor-chat row", byPurpose)
	}
	if byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 600 {
		t.Errorf("aggregate = %+v, want 3 calls, 600 input tokens", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("model rows = %d, want 2", len(byModel))
	}
}

func TestStatsCountsLatestAnswersOnly(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	key := checkpoint.Key{Timestamp: 60, Type: checkpoint.TypeQuickQuiz, Prompt: "q"}
	wrong := responses.Record{Key: key, IsCorrect: false, AnsweredAt: time.Now().UTC()}
	right := wrong
	right.IsCorrect = true

	if err := repo.SaveResponse(ctx, "u1", "lec-1", wrong); err != nil {
		t.Fatalf("save wrong: %v", err)
	}
	if err := repo.SaveResponse(ctx, "u1", "lec-1", right); err != nil {
		t.Fatalf("save right: %v", err)
	}

	stats, err := repo.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats rows = %d, want 1", len(stats))
	}
	if stats[0].Answered != 1 || stats[0].Correct != 1 {
		t.Errorf("stats = %+v, want 1 answered 1 correct", stats[0])
	}
}
