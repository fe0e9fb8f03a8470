package lecture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// Load reads and validates a single lecture pack file.
func Load(path string, appVersion string) (*Lecture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lecture pack: %w", err)
	}

	if err := validatePack(data); err != nil {
		return nil, fmt.Errorf("lecture pack %s: %w", filepath.Base(path), err)
	}

	var lec Lecture
	if err := json.Unmarshal(data, &lec); err != nil {
		return nil, fmt.Errorf("parse lecture pack: %w", err)
	}

	if err := checkVersion(lec.MinAppVersion, appVersion); err != nil {
		return nil, err
	}

	return &lec, nil
}

// LoadLibrary loads every .json pack under dir, sorted by title. Packs that
// fail validation are skipped with a warning so one bad pack never hides
// the rest of the library.
func LoadLibrary(dir string, appVersion string) ([]*Lecture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read library dir: %w", err)
	}

	var out []*Lecture
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		lec, err := Load(filepath.Join(dir, e.Name()), appVersion)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", e.Name(), err)
			continue
		}
		out = append(out, lec)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// DefaultLibraryDir resolves the lecture library path in priority order:
// LECTO_LIBRARY, then $XDG_DATA_HOME/lecto/lectures, then
// ~/.local/share/lecto/lectures.
func DefaultLibraryDir() (string, error) {
	if p := os.Getenv("LECTO_LIBRARY"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lecto", "lectures"), nil
}

// checkVersion gates a pack on its declared minimum app version. Dev builds
// ("(devel)") accept everything.
func checkVersion(minVersion, appVersion string) error {
	if minVersion == "" || appVersion == "" || appVersion == "(devel)" {
		return nil
	}
	min := canonical(minVersion)
	cur := canonical(appVersion)
	if !semver.IsValid(min) || !semver.IsValid(cur) {
		return nil // unparseable versions never block playback
	}
	if semver.Compare(cur, min) < 0 {
		return fmt.Errorf("pack requires lecto %s or newer (running %s)", minVersion, appVersion)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func validatePack(data []byte) error {
	compileSchemaOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(packSchema))
		if err != nil {
			compileSchemaError = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://lecture-pack.json", parsed); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://lecture-pack.json")
	})
	if compileSchemaError != nil {
		return compileSchemaError
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
