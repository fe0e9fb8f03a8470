package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lecto/ent"
	"github.com/abhisek/lecto/ent/responseevent"
	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/responses"
)

// SaveResponse appends a response event. Later saves for the same
// checkpoint shadow earlier ones on read; the log itself stays append-only.
func (r *eventRepo) SaveResponse(ctx context.Context, userID, lectureID string, rec responses.Record) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.AnsweredAt).
		SetUserID(userID).
		SetLectureID(lectureID).
		SetCheckpointTs(rec.Key.Timestamp).
		SetCheckpointType(string(rec.Key.Type)).
		SetPrompt(rec.Key.Prompt).
		SetSelectedIndex(rec.SelectedIndex).
		SetAnswerText(rec.AnswerText).
		SetCorrect(rec.IsCorrect).
		SetVideoTime(rec.VideoTime).
		SetFeedback(rec.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

// ResponsesForLecture returns the latest response per checkpoint for one
// (student, lecture) pair, in answer order.
func (r *eventRepo) ResponsesForLecture(ctx context.Context, userID, lectureID string) ([]responses.Record, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(
			responseevent.UserID(userID),
			responseevent.LectureID(lectureID),
		).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	// Keep only the most recent record per checkpoint identity.
	latest := make(map[checkpoint.Key]int)
	var out []responses.Record
	for _, e := range events {
		rec := responses.Record{
			Key: checkpoint.Key{
				Timestamp: e.CheckpointTs,
				Type:      checkpoint.Type(e.CheckpointType),
				Prompt:    e.Prompt,
			},
			SelectedIndex: e.SelectedIndex,
			IsCorrect:     e.Correct,
			AnswerText:    e.AnswerText,
			AnsweredAt:    e.Timestamp,
			VideoTime:     e.VideoTime,
			Feedback:      e.Feedback,
		}
		if i, ok := latest[rec.Key]; ok {
			out[i] = rec
			continue
		}
		latest[rec.Key] = len(out)
		out = append(out, rec)
	}
	return out, nil
}
