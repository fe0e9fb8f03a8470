package answers

import (
	"strconv"
	"strings"

	"github.com/abhisek/lecto/internal/checkpoint"
)

// Method records how an answer was resolved, for telemetry and display.
type Method string

const (
	MethodSelection Method = "selection" // explicit option index
	MethodOrdinal   Method = "ordinal"   // "option 2", "second", "B"
	MethodSemantic  Method = "semantic"  // fuzzy match against option text
	MethodFreeText  Method = "free_text" // stored verbatim, no option chosen
)

// Config holds the resolver's matching policy.
type Config struct {
	// SemanticThreshold is the minimum similarity score for a free-text
	// answer to count as an option selection.
	SemanticThreshold float64

	// ContainmentBonus is added when one normalized string contains the
	// other.
	ContainmentBonus float64
}

// DefaultConfig returns the reference matching policy.
func DefaultConfig() Config {
	return Config{
		SemanticThreshold: 0.35,
		ContainmentBonus:  0.25,
	}
}

// Input is a student answer before interpretation. Exactly one of
// SelectedIndex or Text is meaningful; SelectedIndex wins when both are set.
type Input struct {
	SelectedIndex *int
	Text          string
}

// Outcome is the structured interpretation of an answer.
type Outcome struct {
	// SelectedIndex is the 0-based chosen option, or -1 when no option was
	// resolved.
	SelectedIndex int

	// IsCorrect is meaningful only when SelectedIndex >= 0. Free-text
	// answers leave it false for persistence schema compatibility.
	IsCorrect bool

	// AnswerText is the stored answer: the chosen option's text, or the raw
	// input for free-text answers.
	AnswerText string

	Method Method
}

// ordinalWords maps spelled-out ordinals to 1-based positions.
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// Resolve interprets a student's answer for the given checkpoint. It is pure:
// the outcome depends only on the checkpoint and input.
//
// Resolution order for text input on option-bearing checkpoints:
// ordinal/letter/digit parsing, then semantic matching, then free-text
// fallback. Non-quiz checkpoint types always store free text.
func Resolve(cp checkpoint.Checkpoint, in Input, cfg Config) Outcome {
	if in.SelectedIndex != nil {
		return resolveSelection(cp, *in.SelectedIndex)
	}

	text := strings.TrimSpace(in.Text)
	if cp.Type() != checkpoint.TypeQuickQuiz || len(cp.Options) == 0 {
		return Outcome{SelectedIndex: -1, AnswerText: text, Method: MethodFreeText}
	}

	if idx, ok := parseOrdinal(text, len(cp.Options)); ok {
		out := resolveSelection(cp, idx)
		out.Method = MethodOrdinal
		return out
	}

	if idx, ok := semanticMatch(text, cp.Options, cfg); ok {
		out := resolveSelection(cp, idx)
		out.Method = MethodSemantic
		return out
	}

	return Outcome{SelectedIndex: -1, AnswerText: text, Method: MethodFreeText}
}

// resolveSelection scores an explicit 0-based option choice.
func resolveSelection(cp checkpoint.Checkpoint, idx int) Outcome {
	if idx < 0 || idx >= len(cp.Options) {
		return Outcome{SelectedIndex: -1, Method: MethodSelection}
	}
	correct := CorrectIndex(cp)
	return Outcome{
		SelectedIndex: idx,
		IsCorrect:     correct >= 0 && idx == correct,
		AnswerText:    cp.Options[idx],
		Method:        MethodSelection,
	}
}

// CorrectIndex resolves the checkpoint's correct option index. The stored
// CorrectAnswer may be a numeric index or the option's text. Returns -1 when
// it cannot be resolved; a -1 correct index marks every selection incorrect.
func CorrectIndex(cp checkpoint.Checkpoint) int {
	if len(cp.Options) == 0 || cp.CorrectAnswer == "" {
		return -1
	}

	if n, err := strconv.Atoi(strings.TrimSpace(cp.CorrectAnswer)); err == nil {
		if n >= 0 && n < len(cp.Options) {
			return n
		}
		return -1
	}

	for i, opt := range cp.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(cp.CorrectAnswer)) {
			return i
		}
	}
	return -1
}

// parseOrdinal interprets voice-style option references: "option 2",
// "choice b", "answer 3", a bare ordinal word, a single letter, or a single
// digit. Returns a 0-based index within bounds.
func parseOrdinal(text string, numOptions int) (int, bool) {
	norm := normalizeWords(text)
	if norm == "" {
		return 0, false
	}

	words := strings.Fields(norm)

	// "option <token>" / "choice <token>" / "answer <token>", where the
	// token may be a digit, letter, or ordinal word.
	for i := 0; i < len(words)-1; i++ {
		switch words[i] {
		case "option", "choice", "answer":
			if idx, ok := tokenToIndex(words[i+1]); ok && idx < numOptions {
				return idx, true
			}
		}
	}

	// A bare single token.
	if len(words) == 1 {
		if idx, ok := tokenToIndex(words[0]); ok && idx < numOptions {
			return idx, true
		}
	}

	// A bare ordinal word anywhere ("the second one").
	for _, w := range words {
		if n, ok := ordinalWords[w]; ok && n-1 < numOptions {
			return n - 1, true
		}
	}

	return 0, false
}

// tokenToIndex maps a single token to a 0-based option index: ordinal words
// and digits are 1-based, letters map a→0, b→1, …
func tokenToIndex(tok string) (int, bool) {
	if n, ok := ordinalWords[tok]; ok {
		return n - 1, true
	}
	if len(tok) == 1 {
		c := tok[0]
		if c >= 'a' && c <= 'z' {
			return int(c - 'a'), true
		}
		if c >= '1' && c <= '9' {
			return int(c - '1'), true
		}
	}
	return 0, false
}

// semanticMatch scores the answer against each option by token Jaccard
// similarity with a containment bonus, returning the best option when it
// clears the threshold.
func semanticMatch(text string, options []string, cfg Config) (int, bool) {
	normAnswer := normalizeAlnum(text)
	if normAnswer == "" {
		return 0, false
	}

	bestIdx := -1
	bestScore := 0.0
	for i, opt := range options {
		normOpt := normalizeAlnum(opt)
		if normOpt == "" {
			continue
		}
		score := jaccard(normAnswer, normOpt)
		if strings.Contains(normAnswer, normOpt) || strings.Contains(normOpt, normAnswer) {
			score += cfg.ContainmentBonus
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore < cfg.SemanticThreshold {
		return 0, false
	}
	return bestIdx, true
}

// jaccard computes token-set Jaccard similarity between two normalized
// strings.
func jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

// normalizeWords lowercases and strips punctuation, keeping word boundaries.
func normalizeWords(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// normalizeAlnum is normalizeWords with collapsed whitespace, used for
// semantic comparison of both answers and option texts.
func normalizeAlnum(s string) string {
	return normalizeWords(s)
}
