package checkpoint

import (
	"fmt"
	"strconv"
	"strings"
)

// Type classifies what a checkpoint asks the learner to do.
type Type string

const (
	TypeQuickQuiz   Type = "quickQuiz"
	TypeReflection  Type = "reflection"
	TypePrediction  Type = "prediction"
	TypeApplication Type = "application"
)

// DefaultRewatchLead is how far before the trigger time a rewatch starts
// when a checkpoint carries no explicit context start.
const DefaultRewatchLead = 8.0

// DefaultPauseDelay is the grace period between a checkpoint's trigger time
// and any playback intervention.
const DefaultPauseDelay = 0.35

// Definition is a raw checkpoint as delivered in a lecture pack. Timestamps
// may be numeric seconds or "MM:SS"/"HH:MM:SS" strings.
type Definition struct {
	Timestamp         any      `json:"timestamp"`
	Type              Type     `json:"type"`
	Prompt            string   `json:"prompt"`
	Options           []string `json:"options,omitempty"`
	CorrectAnswer     string   `json:"correctAnswer,omitempty"`
	ContextStart      any      `json:"contextStartTimestamp,omitempty"`
	PauseDelaySeconds float64  `json:"pauseDelaySeconds,omitempty"`
}

// Key is the durable identity of a checkpoint. Two checkpoints with the same
// timestamp, type, and prompt are the same logical checkpoint across
// sessions; render ordinals never participate in this identity.
type Key struct {
	Timestamp float64
	Type      Type
	Prompt    string
}

// String renders the key in its persisted form: "timestamp-type-prompt".
func (k Key) String() string {
	return fmt.Sprintf("%s-%s-%s", formatSeconds(k.Timestamp), k.Type, k.Prompt)
}

// Checkpoint is a normalized checkpoint with resolved times and a stable
// identity. Produced by Normalize; immutable afterwards.
type Checkpoint struct {
	Key           Key
	Options       []string
	CorrectAnswer string
	ContextStart  float64 // resolved; Timestamp - DefaultRewatchLead when absent
	PauseDelay    float64
	Ordinal       int // position in the normalized sequence, render-only
}

// Timestamp returns the resolved trigger time in seconds.
func (c Checkpoint) Timestamp() float64 { return c.Key.Timestamp }

// Type returns the checkpoint type.
func (c Checkpoint) Type() Type { return c.Key.Type }

// Prompt returns the prompt text.
func (c Checkpoint) Prompt() string { return c.Key.Prompt }

// RenderKey returns a list key unique within one normalized sequence. It
// appends the ordinal so duplicate-looking UI rows stay distinct; it must
// never be used as a persistence key.
func (c Checkpoint) RenderKey() string {
	return fmt.Sprintf("%s-%d", c.Key.String(), c.Ordinal)
}

// ParseTimestamp resolves a pack timestamp value into seconds. Accepted
// forms: float64/int seconds, a numeric string, "MM:SS", or "HH:MM:SS".
// Unparseable values resolve to 0 with ok=false rather than failing the
// whole pack.
func ParseTimestamp(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		if t < 0 {
			return 0, false
		}
		return t, true
	case int:
		if t < 0 {
			return 0, false
		}
		return float64(t), true
	case string:
		return parseTimestampString(t)
	default:
		return 0, false
	}
}

func parseTimestampString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if !strings.Contains(s, ":") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, false
		}
		return f, true
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0.0
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || f < 0 {
			return 0, false
		}
		total = total*60 + f
	}
	return total, true
}

// formatSeconds renders seconds the way they entered the identity: integral
// values without a decimal point, fractional values with minimal digits.
func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
