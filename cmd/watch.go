package cmd

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the lecture library and start watching",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
