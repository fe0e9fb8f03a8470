package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lecto/internal/app"
	"github.com/abhisek/lecto/internal/llm"
	"github.com/abhisek/lecto/internal/store"
	"github.com/spf13/cobra"
)

// resolveUserID returns the student identity events are recorded under.
// Single-user installs stay on the default.
func resolveUserID() string {
	if u := os.Getenv("LECTO_USER"); u != "" {
		return u
	}
	return "local"
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	libraryDir, err := resolveLibraryDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve library dir: %w", err)
	}

	opts := app.Options{
		LibraryDir: libraryDir,
		AppVersion: version,
		UserID:     resolveUserID(),
		EventRepo:  st.EventRepo(),
		SnapRepo:   st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
