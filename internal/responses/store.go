package responses

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/lecto/internal/checkpoint"
)

// Record is one student's answer to one checkpoint, keyed by durable
// checkpoint identity.
type Record struct {
	Key           checkpoint.Key
	SelectedIndex int // -1 when no option was chosen
	IsCorrect     bool
	AnswerText    string
	AnsweredAt    time.Time
	VideoTime     float64
	Feedback      string
}

// Persistence is the external response-persistence service. Both operations
// are asynchronous from the store's point of view and their failures are
// silent-degraded: playback must never block on the network.
type Persistence interface {
	SaveResponse(ctx context.Context, userID, lectureID string, rec Record) error
	ResponsesForLecture(ctx context.Context, userID, lectureID string) ([]Record, error)
}

// Store is the canonical per-session response map. Local writes apply
// synchronously and persist fire-and-forget; previously persisted answers
// hydrate in asynchronously and never overwrite an answer produced during
// the current session (session wins).
type Store struct {
	persistence Persistence
	userID      string
	lectureID   string

	mu      sync.Mutex
	records map[checkpoint.Key]Record
	// session marks keys answered in this session; hydration skips them.
	session map[checkpoint.Key]bool
	wg      sync.WaitGroup
}

// NewStore creates a store for one (student, lecture) session.
func NewStore(p Persistence, userID, lectureID string) *Store {
	return &Store{
		persistence: p,
		userID:      userID,
		lectureID:   lectureID,
		records:     make(map[checkpoint.Key]Record),
		session:     make(map[checkpoint.Key]bool),
	}
}

// Hydrate fetches persisted responses in the background and merges them in.
// onDone, when non-nil, receives the keys that were merged (answers from
// prior sessions); the scheduler marks those completed without replaying
// nudges. A failed fetch merges nothing: the session degrades to "no prior
// answers".
func (s *Store) Hydrate(ctx context.Context, onDone func(merged []checkpoint.Key)) {
	if s.persistence == nil {
		if onDone != nil {
			onDone(nil)
		}
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		recs, err := s.persistence.ResponsesForLecture(ctx, s.userID, s.lectureID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: loading saved responses: %v\n", err)
			if onDone != nil {
				onDone(nil)
			}
			return
		}

		merged := s.merge(recs)
		if onDone != nil {
			onDone(merged)
		}
	}()
}

func (s *Store) merge(recs []Record) []checkpoint.Key {
	s.mu.Lock()
	defer s.mu.Unlock()

	var merged []checkpoint.Key
	for _, rec := range recs {
		if s.session[rec.Key] {
			continue
		}
		s.records[rec.Key] = rec
		merged = append(merged, rec.Key)
	}
	return merged
}

// Put applies the answer to the in-memory map synchronously and queues the
// persistence write. Save failures are logged, never surfaced: the local
// record is the session's source of truth.
func (s *Store) Put(ctx context.Context, rec Record) {
	s.mu.Lock()
	s.records[rec.Key] = rec
	s.session[rec.Key] = true
	s.mu.Unlock()

	if s.persistence == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.persistence.SaveResponse(ctx, s.userID, s.lectureID, rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving response %q: %v\n", rec.Key.String(), err)
		}
	}()
}

// Get returns the record for a checkpoint, if any.
func (s *Store) Get(key checkpoint.Key) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	return rec, ok
}

// Len returns the number of recorded responses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Snapshot returns a copy of the response map.
func (s *Store) Snapshot() map[checkpoint.Key]Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[checkpoint.Key]Record, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}

// Wait blocks until in-flight persistence calls finish. Test helper.
func (s *Store) Wait() {
	s.wg.Wait()
}
