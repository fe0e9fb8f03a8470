package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendViewing(ctx context.Context, data ViewingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ViewingEvent.Create().
		SetSequence(seqNum).
		SetWatchID(data.WatchID).
		SetLectureID(data.LectureID).
		SetAction(data.Action).
		SetWatchedSecs(data.WatchedSecs).
		SetCompletedCheckpoints(data.CompletedCheckpoints).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save viewing event: %w", err)
	}
	return nil
}
