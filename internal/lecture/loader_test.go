package lecture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validPack = `{
  "id": "lec-1",
  "title": "Photosynthesis Basics",
  "durationSeconds": 600,
  "transcript": [
    {"start": 0, "end": 4, "text": "Welcome back."},
    {"start": 4, "end": 9, "text": "Today we cover how plants make food."}
  ],
  "concepts": [
    {"name": "Chlorophyll", "timestamp": 45, "description": "The green pigment."}
  ],
  "checkpoints": [
    {"timestamp": 120, "type": "quickQuiz", "prompt": "What pigment?", "options": ["Chlorophyll", "Melanin"], "correctAnswer": "0"},
    {"timestamp": "4:30", "type": "reflection", "prompt": "What surprised you?"}
  ]
}`

func writePack(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidPack(t *testing.T) {
	path := writePack(t, t.TempDir(), "lec.json", validPack)

	lec, err := Load(path, "(devel)")
	require.NoError(t, err)
	require.Equal(t, "Photosynthesis Basics", lec.Title)
	require.Len(t, lec.Transcript, 2)
	require.Len(t, lec.Checkpoints, 2)
}

func TestLoadRejectsInvalidPack(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writePack(t, dir, "bad.json", `{"id": "x"}`), "(devel)")
	require.Error(t, err, "missing required fields")

	_, err = Load(writePack(t, dir, "badtype.json", `{
	  "id": "x", "title": "t", "durationSeconds": 10, "transcript": [],
	  "checkpoints": [{"timestamp": 5, "type": "essay", "prompt": "p"}]
	}`), "(devel)")
	require.Error(t, err, "unknown checkpoint type")
}

func TestLoadVersionGate(t *testing.T) {
	path := writePack(t, t.TempDir(), "lec.json", `{
	  "id": "x", "title": "t", "durationSeconds": 10, "minAppVersion": "2.0.0",
	  "transcript": []
	}`)

	_, err := Load(path, "1.4.0")
	require.Error(t, err)

	_, err = Load(path, "2.1.0")
	require.NoError(t, err)

	// Dev builds are never gated.
	_, err = Load(path, "(devel)")
	require.NoError(t, err)
}

func TestLoadLibrarySkipsBadPacks(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "good.json", validPack)
	writePack(t, dir, "broken.json", `not json`)
	writePack(t, dir, "notes.txt", `ignored`)

	lecs, err := LoadLibrary(dir, "(devel)")
	require.NoError(t, err)
	require.Len(t, lecs, 1)
}

func TestTranscriptWindow(t *testing.T) {
	lec := &Lecture{}
	for i := 0; i < 100; i++ {
		start := float64(i * 5)
		lec.Transcript = append(lec.Transcript, TranscriptLine{Start: start, End: start + 5, Text: "line"})
	}

	win := lec.TranscriptWindow(250, 40, 20)
	require.Len(t, win, 20)
	for _, line := range win {
		require.GreaterOrEqual(t, line.End, 210.0)
		require.LessOrEqual(t, line.Start, 290.0)
	}
}
