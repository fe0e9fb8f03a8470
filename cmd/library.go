package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/lecto/internal/lecture"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List lectures in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveLibraryDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve library dir: %w", err)
		}

		lectures, err := lecture.LoadLibrary(dir, version)
		if err != nil {
			return fmt.Errorf("load library: %w", err)
		}

		if len(lectures) == 0 {
			fmt.Printf("No lectures in %s\n", dir)
			return nil
		}

		fmt.Printf("%-24s  %-36s  %8s  %11s\n", "ID", "Title", "Length", "Checkpoints")
		fmt.Println(strings.Repeat("─", 86))
		for _, lec := range lectures {
			mins := int(lec.DurationSeconds) / 60
			secs := int(lec.DurationSeconds) % 60
			fmt.Printf("%-24s  %-36s  %5d:%02d  %11d\n",
				lec.ID, lec.Title, mins, secs, len(lec.Checkpoints))
		}
		return nil
	},
}
