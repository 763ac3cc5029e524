package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quotientpow/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		printStats(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print statistics as JSON")
}

func printStats(w io.Writer, stats *store.Stats) {
	fmt.Fprintf(w, "Problems drawn:   %d\n", stats.Generated)
	fmt.Fprintf(w, "Problems started: %d\n", stats.Started)
	fmt.Fprintf(w, "Solve refused:    %d\n", stats.Refused)
	fmt.Fprintf(w, "Problems solved:  %d\n", stats.Solved)

	if len(stats.Steps) == 0 {
		fmt.Fprintln(w, "\nNo step attempts yet.")
		return
	}

	fmt.Fprintf(w, "\n%-4s  %-20s  %8s  %7s  %9s  %7s  %8s\n",
		"Step", "Name", "Attempts", "Correct", "Incorrect", "Skipped", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 76))
	for _, s := range stats.Steps {
		accuracy := "-"
		if graded := s.Correct + s.Incorrect; graded > 0 {
			accuracy = fmt.Sprintf("%.0f%%", float64(s.Correct)/float64(graded)*100)
		}
		fmt.Fprintf(w, "%-4d  %-20s  %8d  %7d  %9d  %7d  %8s\n",
			s.StepIndex+1, s.Step, s.Attempts, s.Correct, s.Incorrect, s.Skipped, accuracy)
	}
}
