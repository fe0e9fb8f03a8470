package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lecto/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer history per lecture",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(context.Background(), resolveUserID())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("%-28s  %8s  %8s  %9s  %12s\n",
			"Lecture", "Answered", "Correct", "Accuracy", "Interactions")
		fmt.Println(strings.Repeat("─", 72))

		for _, st := range stats {
			var accuracy float64
			if st.Answered > 0 {
				accuracy = float64(st.Correct) / float64(st.Answered) * 100
			}
			fmt.Printf("%-28s  %8d  %8d  %8.0f%%  %12d\n",
				st.LectureID, st.Answered, st.Correct, accuracy, st.Interactions)
		}
		return nil
	},
}
