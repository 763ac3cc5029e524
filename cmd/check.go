package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/store"
)

// checkInput is one non-interactive pass through the exercise.
type checkInput struct {
	Numerator   string
	Denominator string
	Power       string
	Step1       string
	Step2       string
	Skip        []int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Grade a full answer without the TUI",
	Long: "Solve the given problem and grade the answers for each step.\n\n" +
		"Step 1 takes the two exponents as \"n,n\". Step 2 takes \"num/den\" for the\n" +
		"paged variant or \"num,den\" for the single variant.",
	Example: "  quotientpow check -a 3 -b 4 -n 2 --step1 2,2 --step2 9/16",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in checkInput
		in.Numerator, _ = cmd.Flags().GetString("numerator")
		in.Denominator, _ = cmd.Flags().GetString("denominator")
		in.Power, _ = cmd.Flags().GetString("power")
		in.Step1, _ = cmd.Flags().GetString("step1")
		in.Step2, _ = cmd.Flags().GetString("step2")
		in.Skip, _ = cmd.Flags().GetIntSlice("skip")
		asJSON, _ := cmd.Flags().GetBool("json")
		record, _ := cmd.Flags().GetBool("record")

		var recorder stepRecorder
		if record {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			recorder = newStepRecorder(st.EventRepo(), cfg.ExerciseVariant())
		}

		s, err := runCheck(cfg.ExerciseVariant(), in, recorder)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(s.Snapshot()); encErr != nil {
				return fmt.Errorf("encode snapshot: %w", encErr)
			}
		} else {
			printCheck(cmd.OutOrStdout(), s)
		}
		return err
	},
}

func init() {
	checkCmd.Flags().StringP("numerator", "a", "", "Numerator (1-10)")
	checkCmd.Flags().StringP("denominator", "b", "", "Denominator (1-10)")
	checkCmd.Flags().StringP("power", "n", "", "Power (variant range)")
	checkCmd.Flags().String("step1", "", `Exponents on numerator and denominator, e.g. "2,2"`)
	checkCmd.Flags().String("step2", "", `Evaluated powers, e.g. "9/16" or "9,16"`)
	checkCmd.Flags().IntSlice("skip", nil, "Steps to skip (1, 2)")
	checkCmd.Flags().Bool("json", false, "Print the final state as JSON")
	checkCmd.Flags().Bool("record", false, "Record the attempts in the attempt log")
}

// stepRecorder receives the events of a check run. A nil recorder drops them.
type stepRecorder func(action string, s exercise.State, id exercise.StepID, answer string)

func newStepRecorder(repo store.EventRepo, v exercise.Variant) stepRecorder {
	ctx := context.Background()
	id := uuid.NewString()
	return func(action string, s exercise.State, step exercise.StepID, answer string) {
		var err error
		if action == "" {
			st := s.Steps[step]
			err = repo.AppendStepAttempt(ctx, store.StepAttemptData{
				ExerciseID: id,
				Step:       s.Step(step).Name(),
				StepIndex:  int(step),
				Status:     string(st.Outcome()),
				Answer:     answer,
				Expected:   strings.Join(s.Expected(step), ", "),
			})
		} else {
			p := s.Problem
			if s.Solving {
				p = s.Solution
			}
			err = repo.AppendExerciseEvent(ctx, store.ExerciseEventData{
				ExerciseID:  id,
				Variant:     v.Name,
				Action:      action,
				Numerator:   p.Numerator,
				Denominator: p.Denominator,
				Power:       p.Power,
			})
		}
		if err != nil {
			slog.Warn("record check event", "action", action, "error", err)
		}
	}
}

// runCheck enters the problem, solves it and grades or skips each step in
// order. Steps without an answer are left as they are.
func runCheck(v exercise.Variant, in checkInput, rec stepRecorder) (exercise.State, error) {
	if rec == nil {
		rec = func(string, exercise.State, exercise.StepID, string) {}
	}

	s := exercise.New(v, exercise.Problem{})
	raw := map[exercise.Field]string{
		exercise.FieldNumerator:   in.Numerator,
		exercise.FieldDenominator: in.Denominator,
		exercise.FieldPower:       in.Power,
	}
	for _, f := range exercise.Fields {
		if r := strings.TrimSpace(raw[f]); r != "" {
			if _, ok := exercise.ParseInt(exercise.TruncateDecimal(r)); !ok {
				return s, fmt.Errorf("%s %q is not a number", f, r)
			}
		}
		s = exercise.SetField(s, f, raw[f])
	}

	s, err := exercise.Solve(s)
	if err != nil {
		rec(store.ActionRefused, s, 0, "")
		return s, fmt.Errorf("%s: %w", s.Message, err)
	}
	rec(store.ActionSolve, s, 0, "")

	answers := []string{in.Step1, in.Step2}
	for i, answer := range answers {
		id := exercise.StepID(i)
		if !s.Visible(id) {
			break
		}
		switch {
		case slices.Contains(in.Skip, i+1):
			s = exercise.Skip(s, id)
			rec("", s, id, "")
		case answer != "":
			s, _ = exercise.CheckStep(s, id, splitAnswer(s.Step(id), answer)...)
			rec("", s, id, answer)
		}
	}

	if s.Solved() {
		rec(store.ActionSolved, s, 0, "")
	}
	return s, nil
}

// splitAnswer splits raw on commas when the step takes several inputs.
func splitAnswer(v exercise.StepValidator, raw string) []string {
	if v.Inputs() == 1 {
		return []string{raw}
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printCheck(w io.Writer, s exercise.State) {
	if !s.Solving {
		fmt.Fprintf(w, "Problem: (%s/%s)^%s\n", s.Raw.Numerator, s.Raw.Denominator, s.Raw.Power)
		fmt.Fprintln(w, s.Message)
		return
	}

	fmt.Fprintf(w, "Problem: %s\n", s.Solution)
	for i, st := range s.Steps {
		id := exercise.StepID(i)
		step := s.Step(id)
		line := fmt.Sprintf("Step %d %-20s %-10s", i+1, step.Name(), st.Outcome())
		if st.Status != exercise.StatusCorrect && s.Visible(id) {
			line += "  expected " + strings.Join(s.Expected(id), ", ")
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	if s.Solved() {
		num, den := s.Solution.Result()
		fmt.Fprintf(w, "Solved: %s = %s\n", s.Solution, exercise.FormatFraction(num, den))
	} else {
		fmt.Fprintln(w, "Not solved yet.")
	}
}
