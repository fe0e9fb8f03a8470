package player

import (
	"time"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/tutor"
)

// playTickMsg drives the scheduler. Sent at a coarse interval; the
// scheduler tolerates irregular ticks.
type playTickMsg time.Time

// hydratedMsg is sent when persisted responses finished merging in.
type hydratedMsg struct {
	Keys []checkpoint.Key
}

// tutorEventMsg carries one tutor session event into the UI loop.
type tutorEventMsg tutor.Event

// feedbackDoneMsg ends the answer feedback overlay.
type feedbackDoneMsg struct{}
