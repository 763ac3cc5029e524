package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quotientpow/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent step attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		exerciseID, _ := cmd.Flags().GetString("exercise")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := loadAttempts(cmd.Context(), st.EventRepo(), limit, exerciseID)
		if err != nil {
			return err
		}

		printAttempts(cmd.OutOrStdout(), attempts)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of attempts to show (0 for all)")
	historyCmd.Flags().String("exercise", "", "Show every attempt of one exercise, oldest first (the ID shown by history, or any prefix of it)")
}

func loadAttempts(ctx context.Context, repo store.EventRepo, limit int, exerciseID string) ([]store.Attempt, error) {
	var (
		attempts []store.Attempt
		err      error
	)
	if exerciseID != "" {
		attempts, err = repo.AttemptsFor(ctx, exerciseID)
	} else {
		attempts, err = repo.RecentAttempts(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	return attempts, nil
}

func printAttempts(w io.Writer, attempts []store.Attempt) {
	if len(attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded.")
		return
	}

	fmt.Fprintf(w, "%-19s  %-8s  %-4s  %-10s  %-16s  %s\n",
		"Time", "Exercise", "Step", "Status", "Answer", "Expected")
	fmt.Fprintln(w, strings.Repeat("─", 84))
	for _, a := range attempts {
		answer := a.Answer
		if answer == "" {
			answer = "-"
		}
		fmt.Fprintf(w, "%-19s  %-8s  %-4d  %-10s  %-16s  %s\n",
			a.Timestamp.Local().Format("2006-01-02 15:04:05"), shortID(a.ExerciseID),
			a.StepIndex+1, a.Status, answer, a.Expected)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
