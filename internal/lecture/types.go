package lecture

import "github.com/abhisek/lecto/internal/checkpoint"

// TranscriptLine is one timed caption line.
type TranscriptLine struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Concept is a key idea the analysis service extracted, anchored to a time.
type Concept struct {
	Name        string  `json:"name"`
	Timestamp   float64 `json:"timestamp"`
	Description string  `json:"description,omitempty"`
}

// Lecture is one analyzed lecture pack: the transcript, concepts, and
// checkpoints an external AI analysis service produced for a video.
type Lecture struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	DurationSeconds float64                 `json:"durationSeconds"`
	MinAppVersion   string                  `json:"minAppVersion,omitempty"`
	Transcript      []TranscriptLine        `json:"transcript"`
	Concepts        []Concept               `json:"concepts,omitempty"`
	Checkpoints     []checkpoint.Definition `json:"checkpoints,omitempty"`
}

// TranscriptWindow returns the lines overlapping [center-half, center+half],
// capped at maxLines centered on the playhead.
func (l *Lecture) TranscriptWindow(center, half float64, maxLines int) []TranscriptLine {
	var out []TranscriptLine
	for _, line := range l.Transcript {
		if line.End < center-half || line.Start > center+half {
			continue
		}
		out = append(out, line)
	}
	if maxLines > 0 && len(out) > maxLines {
		// Keep the lines closest to the playhead.
		start := 0
		for i, line := range out {
			if line.Start <= center {
				start = i
			}
		}
		lo := start - maxLines/2
		if lo < 0 {
			lo = 0
		}
		hi := lo + maxLines
		if hi > len(out) {
			hi = len(out)
			lo = hi - maxLines
		}
		out = out[lo:hi]
	}
	return out
}
