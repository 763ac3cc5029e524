package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into an exercise",
	Long:  "Open the exercise for the configured variant, skipping the welcome screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	playCmd.Flags().Uint64("seed", 0, "Seed for reproducible problems (0 draws from the clock)")
}
