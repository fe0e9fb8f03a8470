package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lecto/internal/telemetry"
)

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetWatchID(data.WatchID).
		SetLectureID(data.LectureID).
		SetEventType(data.EventType).
		SetVideoTime(data.VideoTime).
		SetDetails(data.Details)

	if len(data.Metadata) > 0 {
		builder = builder.SetMetadata(data.Metadata)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

// InteractionSink adapts the repo to a telemetry sink for one viewing
// session. Writes happen off the caller's goroutine and failures are
// dropped; the in-memory log stays authoritative.
func InteractionSink(repo EventRepo, watchID, lectureID string) telemetry.Sink {
	return func(ev telemetry.Event) {
		go func() {
			_ = repo.AppendInteraction(context.Background(), InteractionEventData{
				WatchID:   watchID,
				LectureID: lectureID,
				EventType: string(ev.Type),
				VideoTime: ev.VideoTime,
				Details:   ev.Details,
				Metadata:  ev.Metadata,
			})
		}()
	}
}
