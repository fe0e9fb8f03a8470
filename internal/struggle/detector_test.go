package struggle

import (
	"testing"
	"time"

	"github.com/abhisek/lecto/internal/telemetry"
)

func seekLog(t *testing.T, base time.Time, videoTimes ...float64) *telemetry.Log {
	t.Helper()
	l := telemetry.NewLog()
	l.SetClock(func() time.Time { return base })
	for _, vt := range videoTimes {
		l.Append(telemetry.EventSeek, vt, "", nil)
	}
	return l
}

func TestStruggleScenario(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// 4 seeks all landing in the [30,45) section.
	log := seekLog(t, base, 31, 33, 38, 42)

	d := New(DefaultConfig())
	res := d.Evaluate(log, 35, base.Add(10*time.Second))

	if !res.Struggling {
		t.Fatal("expected struggling")
	}
	if res.RewindCount != 4 {
		t.Errorf("RewindCount = %d, want 4", res.RewindCount)
	}
	if res.Section != 30 {
		t.Errorf("Section = %v, want 30", res.Section)
	}
}

func TestBelowThresholdNotStruggling(t *testing.T) {
	base := time.Now()
	log := seekLog(t, base, 31, 33)

	d := New(DefaultConfig())
	if d.Evaluate(log, 35, base).Struggling {
		t.Error("2 seeks should not trigger (threshold 3)")
	}
}

func TestScatteredSeeksNotStruggling(t *testing.T) {
	base := time.Now()
	log := seekLog(t, base, 10, 40, 70, 100)

	d := New(DefaultConfig())
	if d.Evaluate(log, 35, base).Struggling {
		t.Error("seeks spread over distinct sections should not trigger")
	}
}

func TestPlayheadFarFromHotSection(t *testing.T) {
	base := time.Now()
	log := seekLog(t, base, 31, 33, 38, 42)

	d := New(DefaultConfig())
	// 2 * sectionWindow = 30; |200 - 30| >= 30 so no signal.
	if d.Evaluate(log, 200, base).Struggling {
		t.Error("struggle should only fire near the hot section")
	}
}

func TestDismissSuppressesThenRearms(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	log := telemetry.NewLog()
	clock := base
	log.SetClock(func() time.Time { return clock })
	for _, vt := range []float64{31, 33, 38, 42} {
		log.Append(telemetry.EventSeek, vt, "", nil)
	}

	d := New(DefaultConfig())
	if !d.Evaluate(log, 35, base).Struggling {
		t.Fatal("precondition: struggling")
	}

	d.Dismiss(base)
	if d.Evaluate(log, 35, base.Add(time.Second)).Struggling {
		t.Error("dismiss should suppress immediately")
	}
	if d.Evaluate(log, 35, base.Add(89*time.Second)).Struggling {
		t.Error("dismiss should hold for the full observation window")
	}

	// After the window the detector re-arms; a fresh burst re-triggers.
	clock = base.Add(95 * time.Second)
	for _, vt := range []float64{31, 34, 39, 41} {
		log.Append(telemetry.EventSeek, vt, "", nil)
	}
	if !d.Evaluate(log, 35, base.Add(100*time.Second)).Struggling {
		t.Error("detector should re-arm after the observation window")
	}
}

func TestOldSeeksAgeOut(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	log := seekLog(t, base, 31, 33, 38, 42)

	d := New(DefaultConfig())
	// 91 seconds later all four seeks are outside the observation window.
	if d.Evaluate(log, 35, base.Add(91*time.Second)).Struggling {
		t.Error("seeks outside the observation window should not count")
	}
}
