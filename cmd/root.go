package cmd

import (
	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lecto",
	Short: "AI-assisted lecture player",
	Long:  "Lecto — terminal lecture player with interactive checkpoints and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LECTO_DB env var)")
	rootCmd.PersistentFlags().String("library", "", "Path to the lecture library directory (overrides LECTO_LIBRARY env var)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LECTO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLibraryDir returns the lecture library directory using --library,
// then LECTO_LIBRARY, then the default XDG path.
func resolveLibraryDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("library"); p != "" {
		return p, nil
	}
	return lecture.DefaultLibraryDir()
}
