package checkpoint

import (
	"reflect"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{120.0, 120, true},
		{0.0, 0, true},
		{45, 45, true},
		{"90", 90, true},
		{"90.5", 90.5, true},
		{"2:00", 120, true},
		{"02:30", 150, true},
		{"1:02:03", 3723, true},
		{" 3:15 ", 195, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1:2:3:4", 0, false},
		{"-5", 0, false},
		{-5.0, 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTimestamp(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNormalizeDedupAndSort(t *testing.T) {
	defs := []Definition{
		{Timestamp: 120.0, Type: TypeQuickQuiz, Prompt: "Capital of France?", Options: []string{"Paris", "London"}},
		{Timestamp: 30.0, Type: TypeReflection, Prompt: "What did you notice?"},
		{Timestamp: "2:00", Type: TypeQuickQuiz, Prompt: "Capital of France?", Options: []string{"Paris", "London"}},
		{Timestamp: 30.0, Type: TypeReflection, Prompt: "What did you notice?"},
	}

	got := Normalize(defs)
	if len(got) != 2 {
		t.Fatalf("Normalize produced %d checkpoints, want 2", len(got))
	}
	if got[0].Timestamp() != 30 || got[1].Timestamp() != 120 {
		t.Errorf("not sorted: %v, %v", got[0].Timestamp(), got[1].Timestamp())
	}
	if got[0].Ordinal != 0 || got[1].Ordinal != 1 {
		t.Errorf("ordinals = %d, %d, want 0, 1", got[0].Ordinal, got[1].Ordinal)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	defs := []Definition{
		{Timestamp: "1:00", Type: TypeQuickQuiz, Prompt: "q1", Options: []string{"a", "b"}},
		{Timestamp: 15.0, Type: TypePrediction, Prompt: "p1"},
		{Timestamp: 60.0, Type: TypeQuickQuiz, Prompt: "q1", Options: []string{"a", "b"}},
	}

	once := Normalize(defs)

	// Feed the normalized output back through as definitions.
	again := make([]Definition, len(once))
	for i, c := range once {
		again[i] = Definition{
			Timestamp:     c.Timestamp(),
			Type:          c.Type(),
			Prompt:        c.Prompt(),
			Options:       c.Options,
			CorrectAnswer: c.CorrectAnswer,
			ContextStart:  c.ContextStart,
		}
	}
	twice := Normalize(again)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeMalformedTimestampDefaultsToZero(t *testing.T) {
	got := Normalize([]Definition{
		{Timestamp: "not-a-time", Type: TypeReflection, Prompt: "r"},
		{Timestamp: 10.0, Type: TypeReflection, Prompt: "s"},
	})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Timestamp() != 0 {
		t.Errorf("malformed timestamp resolved to %v, want 0", got[0].Timestamp())
	}
}

func TestNormalizeContextStart(t *testing.T) {
	got := Normalize([]Definition{
		{Timestamp: 120.0, Type: TypeQuickQuiz, Prompt: "q", ContextStart: 100.0},
		{Timestamp: 120.0, Type: TypeReflection, Prompt: "r"},
		{Timestamp: 3.0, Type: TypeReflection, Prompt: "early"},
	})
	if got[1].ContextStart != 100 {
		t.Errorf("explicit ContextStart = %v, want 100", got[1].ContextStart)
	}
	if got[2].ContextStart != 112 {
		t.Errorf("fallback ContextStart = %v, want 112", got[2].ContextStart)
	}
	// Fallback never goes negative.
	if got[0].ContextStart != 0 {
		t.Errorf("clamped ContextStart = %v, want 0", got[0].ContextStart)
	}
}

func TestKeyStringStableAcrossSessions(t *testing.T) {
	k := Key{Timestamp: 120, Type: TypeQuickQuiz, Prompt: "Capital of France?"}
	if k.String() != "120-quickQuiz-Capital of France?" {
		t.Errorf("Key.String() = %q", k.String())
	}

	c := Checkpoint{Key: k, Ordinal: 3}
	if c.RenderKey() != "120-quickQuiz-Capital of France?-3" {
		t.Errorf("RenderKey() = %q", c.RenderKey())
	}
}

func TestFindNear(t *testing.T) {
	cps := Normalize([]Definition{
		{Timestamp: 60.0, Type: TypeQuickQuiz, Prompt: "a"},
		{Timestamp: 120.0, Type: TypeQuickQuiz, Prompt: "b"},
		{Timestamp: 120.5, Type: TypeReflection, Prompt: "c"},
	})

	got := FindNear(cps, 120.4, 0.75, "", "")
	if got == nil || got.Prompt() != "c" {
		t.Fatalf("FindNear picked %+v, want closest (c)", got)
	}

	got = FindNear(cps, 120.4, 0.75, TypeQuickQuiz, "")
	if got == nil || got.Prompt() != "b" {
		t.Fatalf("FindNear with type filter picked %+v, want b", got)
	}

	if got := FindNear(cps, 200, 0.75, "", ""); got != nil {
		t.Errorf("FindNear far target = %+v, want nil", got)
	}
}
