package answers

import (
	"testing"

	"github.com/abhisek/lecto/internal/checkpoint"
)

func quizCP(options []string, correct string) checkpoint.Checkpoint {
	return checkpoint.Checkpoint{
		Key: checkpoint.Key{
			Timestamp: 120,
			Type:      checkpoint.TypeQuickQuiz,
			Prompt:    "Capital of England?",
		},
		Options:       options,
		CorrectAnswer: correct,
	}
}

func TestCorrectIndex(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		correct string
		want    int
	}{
		{"numeric string", []string{"Paris", "London", "Berlin"}, "1", 1},
		{"option text", []string{"Paris", "London", "Berlin"}, "London", 1},
		{"option text case-insensitive", []string{"Paris", "London"}, "london", 1},
		{"unresolvable", []string{"Paris", "London"}, "Madrid", -1},
		{"out of range index", []string{"Paris", "London"}, "7", -1},
		{"no correct answer", []string{"Paris", "London"}, "", -1},
		{"no options", nil, "1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectIndex(quizCP(tt.options, tt.correct))
			if got != tt.want {
				t.Errorf("CorrectIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveDirectSelection(t *testing.T) {
	cp := quizCP([]string{"Paris", "London", "Berlin"}, "1")
	idx := 1
	out := Resolve(cp, Input{SelectedIndex: &idx}, DefaultConfig())

	if out.SelectedIndex != 1 || !out.IsCorrect {
		t.Errorf("Resolve(selectedIndex=1) = %+v, want correct selection of 1", out)
	}
	if out.AnswerText != "London" {
		t.Errorf("AnswerText = %q, want London", out.AnswerText)
	}

	idx = 0
	out = Resolve(cp, Input{SelectedIndex: &idx}, DefaultConfig())
	if out.SelectedIndex != 0 || out.IsCorrect {
		t.Errorf("Resolve(selectedIndex=0) = %+v, want incorrect selection of 0", out)
	}
}

func TestResolveSelectionOutOfBoundsNeverPanics(t *testing.T) {
	cp := quizCP(nil, "")
	idx := 3
	out := Resolve(cp, Input{SelectedIndex: &idx}, DefaultConfig())
	if out.SelectedIndex != -1 || out.IsCorrect {
		t.Errorf("out-of-bounds selection = %+v, want no match", out)
	}
}

func TestResolveOrdinal(t *testing.T) {
	cp := quizCP([]string{"Paris", "London", "Berlin"}, "1")

	tests := []struct {
		text    string
		wantIdx int
	}{
		{"option 2", 1},
		{"Option 2!", 1},
		{"choice b", 1},
		{"answer second", 1},
		{"second", 1},
		{"the second one", 1},
		{"B", 1},
		{"2", 1},
		{"first", 0},
		{"c", 2},
		{"3", 2},
	}

	for _, tt := range tests {
		out := Resolve(cp, Input{Text: tt.text}, DefaultConfig())
		if out.SelectedIndex != tt.wantIdx {
			t.Errorf("Resolve(%q).SelectedIndex = %d, want %d", tt.text, out.SelectedIndex, tt.wantIdx)
		}
		if tt.wantIdx == 1 && !out.IsCorrect {
			t.Errorf("Resolve(%q) should be correct", tt.text)
		}
	}
}

func TestResolveSemantic(t *testing.T) {
	cp := quizCP([]string{"Paris", "London", "Berlin"}, "1")

	out := Resolve(cp, Input{Text: "I think it's london"}, DefaultConfig())
	if out.SelectedIndex != 1 {
		t.Fatalf("semantic match picked %d, want 1 (%+v)", out.SelectedIndex, out)
	}
	if !out.IsCorrect || out.Method != MethodSemantic {
		t.Errorf("semantic outcome = %+v", out)
	}
}

func TestResolveFreeTextFallback(t *testing.T) {
	cp := quizCP([]string{"Paris", "London", "Berlin"}, "1")

	out := Resolve(cp, Input{Text: "banana"}, DefaultConfig())
	if out.SelectedIndex != -1 || out.Method != MethodFreeText {
		t.Errorf("unmatched answer = %+v, want free-text fallback", out)
	}
	if out.AnswerText != "banana" {
		t.Errorf("AnswerText = %q, want verbatim input", out.AnswerText)
	}
	if out.IsCorrect {
		t.Error("free text must not be scored correct")
	}
}

func TestResolveNonQuizTypesStoreFreeText(t *testing.T) {
	cp := checkpoint.Checkpoint{
		Key: checkpoint.Key{Timestamp: 30, Type: checkpoint.TypeReflection, Prompt: "Reflect"},
	}
	out := Resolve(cp, Input{Text: "second"}, DefaultConfig())
	if out.Method != MethodFreeText || out.AnswerText != "second" {
		t.Errorf("reflection answer = %+v, want verbatim free text", out)
	}
}

func TestResolveDeterministic(t *testing.T) {
	cp := quizCP([]string{"The water cycle", "Photosynthesis", "Mitosis"}, "0")
	in := Input{Text: "something about the water cycle maybe"}

	first := Resolve(cp, in, DefaultConfig())
	for range 20 {
		if got := Resolve(cp, in, DefaultConfig()); got != first {
			t.Fatalf("Resolve not deterministic: %+v vs %+v", got, first)
		}
	}
}
