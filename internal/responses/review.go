package responses

import "github.com/abhisek/lecto/internal/checkpoint"

// ReviewItem is one row of the review list: a checkpoint the student has
// been through, with whatever answer exists for it.
type ReviewItem struct {
	Checkpoint checkpoint.Checkpoint
	Record     *Record // nil when skipped without answering
	Dismissed  bool
	Answered   bool
}

// ReviewList reconciles the scheduler's dismissed and completed sets against
// the canonical checkpoint sequence. A checkpoint appears when it is in
// either set, exactly once, in timestamp order (cps is already the
// normalized sequence).
func ReviewList(cps []checkpoint.Checkpoint, dismissed, completed map[checkpoint.Key]bool, store *Store) []ReviewItem {
	var out []ReviewItem
	for _, cp := range cps {
		key := cp.Key
		if !dismissed[key] && !completed[key] {
			continue
		}
		item := ReviewItem{
			Checkpoint: cp,
			Dismissed:  dismissed[key],
		}
		if store != nil {
			if rec, ok := store.Get(key); ok {
				item.Record = &rec
				item.Answered = true
			}
		}
		out = append(out, item)
	}
	return out
}
