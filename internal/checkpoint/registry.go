package checkpoint

import (
	"fmt"
	"os"
	"sort"
)

// Normalize turns raw definitions into a strictly time-ordered,
// duplicate-free sequence with stable identities.
//
// Rules:
//   - Timestamps are resolved via ParseTimestamp; failures resolve to 0.
//   - Duplicates by (timestamp, type, prompt) keep the first occurrence;
//     discards are logged to stderr.
//   - Output is sorted ascending by resolved timestamp. Sorting is stable so
//     repeated calls with the same input produce the same sequence.
//
// Normalize is idempotent: Normalize(defs(Normalize(x))) == Normalize(x).
func Normalize(defs []Definition) []Checkpoint {
	seen := make(map[Key]bool, len(defs))
	out := make([]Checkpoint, 0, len(defs))

	for _, d := range defs {
		ts, _ := ParseTimestamp(d.Timestamp)
		key := Key{Timestamp: ts, Type: d.Type, Prompt: d.Prompt}

		if seen[key] {
			fmt.Fprintf(os.Stderr, "warning: discarding duplicate checkpoint %q\n", key.String())
			continue
		}
		seen[key] = true

		ctxStart := ts - DefaultRewatchLead
		if cs, ok := ParseTimestamp(d.ContextStart); ok {
			ctxStart = cs
		}
		if ctxStart < 0 {
			ctxStart = 0
		}

		pause := d.PauseDelaySeconds
		if pause <= 0 {
			pause = DefaultPauseDelay
		}

		out = append(out, Checkpoint{
			Key:           key,
			Options:       d.Options,
			CorrectAnswer: d.CorrectAnswer,
			ContextStart:  ctxStart,
			PauseDelay:    pause,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.Timestamp < out[j].Key.Timestamp
	})

	for i := range out {
		out[i].Ordinal = i
	}

	return out
}

// FindNear locates the checkpoint whose trigger time is within tolerance of
// target, optionally disambiguated by type and prompt. Returns the closest
// match, or nil when nothing qualifies.
func FindNear(cps []Checkpoint, target float64, tolerance float64, typ Type, prompt string) *Checkpoint {
	var best *Checkpoint
	bestDist := tolerance

	for i := range cps {
		c := &cps[i]
		if typ != "" && c.Key.Type != typ {
			continue
		}
		if prompt != "" && c.Key.Prompt != prompt {
			continue
		}
		dist := c.Key.Timestamp - target
		if dist < 0 {
			dist = -dist
		}
		if dist <= bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
