package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/lecto/ent"
	"github.com/abhisek/lecto/ent/interactionevent"
	"github.com/abhisek/lecto/ent/responseevent"
	"github.com/abhisek/lecto/internal/checkpoint"
)

// Stats summarizes answered checkpoints and recorded interactions per
// lecture, counting each checkpoint's latest answer only.
func (r *eventRepo) Stats(ctx context.Context, userID string) ([]LectureStats, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.UserID(userID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response stats: %w", err)
	}

	type cpKey struct {
		lecture string
		key     checkpoint.Key
	}
	latest := make(map[cpKey]bool)
	for _, e := range events {
		k := cpKey{
			lecture: e.LectureID,
			key: checkpoint.Key{
				Timestamp: e.CheckpointTs,
				Type:      checkpoint.Type(e.CheckpointType),
				Prompt:    e.Prompt,
			},
		}
		latest[k] = e.Correct
	}

	byLecture := make(map[string]*LectureStats)
	lectureStats := func(id string) *LectureStats {
		if s, ok := byLecture[id]; ok {
			return s
		}
		s := &LectureStats{LectureID: id}
		byLecture[id] = s
		return s
	}
	for k, correct := range latest {
		s := lectureStats(k.lecture)
		s.Answered++
		if correct {
			s.Correct++
		}
	}

	var interactionRows []struct {
		LectureID string `json:"lecture_id"`
		Count     int    `json:"count"`
	}
	err = r.client.InteractionEvent.Query().
		GroupBy(interactionevent.FieldLectureID).
		Aggregate(ent.Count()).
		Scan(ctx, &interactionRows)
	if err != nil {
		return nil, fmt.Errorf("query interaction stats: %w", err)
	}
	for _, row := range interactionRows {
		lectureStats(row.LectureID).Interactions = row.Count
	}

	out := make([]LectureStats, 0, len(byLecture))
	for _, s := range byLecture {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LectureID < out[j].LectureID })
	return out, nil
}
