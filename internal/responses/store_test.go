package responses

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecto/internal/checkpoint"
)

// fakePersistence is an in-memory Persistence with scriptable failures.
type fakePersistence struct {
	mu       sync.Mutex
	saved    []Record
	load     []Record
	saveErr  error
	loadErr  error
	loadGate chan struct{} // when set, ResponsesForLecture blocks until closed
}

func (f *fakePersistence) SaveResponse(_ context.Context, _, _ string, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakePersistence) ResponsesForLecture(_ context.Context, _, _ string) ([]Record, error) {
	if f.loadGate != nil {
		<-f.loadGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.load, nil
}

func key(ts float64, prompt string) checkpoint.Key {
	return checkpoint.Key{Timestamp: ts, Type: checkpoint.TypeQuickQuiz, Prompt: prompt}
}

func TestPutAppliesLocallyAndPersists(t *testing.T) {
	p := &fakePersistence{}
	s := NewStore(p, "student-1", "lec-1")

	rec := Record{Key: key(120, "q"), SelectedIndex: 1, AnswerText: "B", AnsweredAt: time.Now()}
	s.Put(context.Background(), rec)

	got, ok := s.Get(rec.Key)
	require.True(t, ok)
	require.Equal(t, 1, got.SelectedIndex)

	s.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.Len(t, p.saved, 1)
}

func TestPutSurvivesPersistenceFailure(t *testing.T) {
	p := &fakePersistence{saveErr: errors.New("network down")}
	s := NewStore(p, "student-1", "lec-1")

	rec := Record{Key: key(120, "q"), SelectedIndex: 0}
	s.Put(context.Background(), rec)
	s.Wait()

	_, ok := s.Get(rec.Key)
	require.True(t, ok, "local record must survive a failed save")
}

func TestHydrateMergesPriorAnswers(t *testing.T) {
	prior := Record{Key: key(60, "old"), SelectedIndex: 0, AnswerText: "A"}
	p := &fakePersistence{load: []Record{prior}}
	s := NewStore(p, "student-1", "lec-1")

	done := make(chan []checkpoint.Key, 1)
	s.Hydrate(context.Background(), func(merged []checkpoint.Key) { done <- merged })

	merged := <-done
	require.Equal(t, []checkpoint.Key{prior.Key}, merged)
	_, ok := s.Get(prior.Key)
	require.True(t, ok)
}

func TestHydrateSessionWinsOnConflict(t *testing.T) {
	k := key(60, "q")
	p := &fakePersistence{
		load:     []Record{{Key: k, AnswerText: "stale persisted answer"}},
		loadGate: make(chan struct{}),
	}
	s := NewStore(p, "student-1", "lec-1")

	done := make(chan []checkpoint.Key, 1)
	s.Hydrate(context.Background(), func(merged []checkpoint.Key) { done <- merged })

	// The student answers while the fetch is still in flight.
	s.Put(context.Background(), Record{Key: k, AnswerText: "fresh session answer"})
	close(p.loadGate)

	merged := <-done
	require.Empty(t, merged, "conflicting key must not be reported as merged")

	got, _ := s.Get(k)
	require.Equal(t, "fresh session answer", got.AnswerText)
}

func TestHydrateFailureDegradesToEmpty(t *testing.T) {
	p := &fakePersistence{loadErr: errors.New("offline")}
	s := NewStore(p, "student-1", "lec-1")

	done := make(chan []checkpoint.Key, 1)
	s.Hydrate(context.Background(), func(merged []checkpoint.Key) { done <- merged })

	require.Empty(t, <-done)
	require.Equal(t, 0, s.Len())
}

func TestReviewListReconciliation(t *testing.T) {
	cps := checkpoint.Normalize([]checkpoint.Definition{
		{Timestamp: 120.0, Type: checkpoint.TypeQuickQuiz, Prompt: "answered"},
		{Timestamp: 60.0, Type: checkpoint.TypeQuickQuiz, Prompt: "skipped"},
		{Timestamp: 200.0, Type: checkpoint.TypeReflection, Prompt: "untouched"},
		{Timestamp: 90.0, Type: checkpoint.TypeQuickQuiz, Prompt: "both-sets"},
	})

	s := NewStore(nil, "student-1", "lec-1")
	answeredKey := key(120, "answered")
	s.Put(context.Background(), Record{Key: answeredKey, SelectedIndex: 0})

	dismissed := map[checkpoint.Key]bool{
		key(60, "skipped"):    true,
		key(90, "both-sets"):  true,
	}
	completed := map[checkpoint.Key]bool{
		answeredKey:           true,
		key(90, "both-sets"):  true,
	}

	list := ReviewList(cps, dismissed, completed, s)

	require.Len(t, list, 3, "untouched checkpoint excluded; both-sets appears once")
	require.Equal(t, "skipped", list[0].Checkpoint.Prompt())
	require.Equal(t, "both-sets", list[1].Checkpoint.Prompt())
	require.Equal(t, "answered", list[2].Checkpoint.Prompt())
	require.True(t, list[2].Answered)
	require.Nil(t, list[0].Record)
}
