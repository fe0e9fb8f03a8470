package struggle

import (
	"math"
	"time"

	"github.com/abhisek/lecto/internal/telemetry"
)

// Config holds the detection thresholds.
type Config struct {
	// RewindThreshold is the minimum number of seeks into one section.
	RewindThreshold int

	// SectionWindow is the bucket width in video seconds.
	SectionWindow float64

	// ObservationWindow bounds how far back in wall-clock time seeks count,
	// and how long a dismissal suppresses re-triggering.
	ObservationWindow time.Duration
}

// DefaultConfig returns the reference thresholds.
func DefaultConfig() Config {
	return Config{
		RewindThreshold:   3,
		SectionWindow:     15,
		ObservationWindow: 90 * time.Second,
	}
}

// Result is one evaluation of the struggle heuristic.
type Result struct {
	Struggling  bool
	RewindCount int     // seeks into the hottest section
	Section     float64 // start of the hottest section in video seconds
}

// Detector infers "the student is stuck on this section" from repeated seeks
// clustered in one part of the video. Evaluation itself is a pure function
// of the log, the playhead, and the clock; the detector only carries the
// dismissal deadline.
type Detector struct {
	cfg            Config
	dismissedUntil time.Time
}

// New creates a detector with the given thresholds.
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Evaluate runs the heuristic against the telemetry log.
func (d *Detector) Evaluate(log *telemetry.Log, currentVideoTime float64, now time.Time) Result {
	if now.Before(d.dismissedUntil) {
		return Result{}
	}

	seeks := seeksWithin(log, now, d.cfg.ObservationWindow)
	if len(seeks) < d.cfg.RewindThreshold {
		return Result{}
	}

	buckets := make(map[float64]int)
	for _, ev := range seeks {
		b := math.Floor(ev.VideoTime/d.cfg.SectionWindow) * d.cfg.SectionWindow
		buckets[b]++
	}

	maxBucket, maxCount := 0.0, 0
	for b, n := range buckets {
		if n > maxCount || (n == maxCount && b < maxBucket) {
			maxBucket, maxCount = b, n
		}
	}

	if maxCount < d.cfg.RewindThreshold {
		return Result{}
	}
	if math.Abs(currentVideoTime-maxBucket) >= 2*d.cfg.SectionWindow {
		return Result{}
	}

	return Result{Struggling: true, RewindCount: maxCount, Section: maxBucket}
}

// Dismiss suppresses struggle signals for one observation window, after
// which the detector re-arms on its own.
func (d *Detector) Dismiss(now time.Time) {
	d.dismissedUntil = now.Add(d.cfg.ObservationWindow)
}

func seeksWithin(log *telemetry.Log, now time.Time, window time.Duration) []telemetry.Event {
	var out []telemetry.Event
	for _, ev := range log.Window(now, window) {
		if ev.Type == telemetry.EventSeek {
			out = append(out, ev)
		}
	}
	return out
}
