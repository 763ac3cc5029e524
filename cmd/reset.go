package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every recorded attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this deletes the attempt log at %s; re-run with --yes to confirm", cfg.DBPath)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset attempt log: %w", err)
		}
		slog.Info("attempt log reset", "db", cfg.DBPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Attempt log cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
