package exercise

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/layout"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

func (s *ExerciseScreen) View(width, height int) string {
	var sections []string

	if !layout.IsCompactHeight(height) {
		sections = append(sections, theme.Subtitle.Width(width-4).
			Render("Power of a quotient:  (a/b)ⁿ = aⁿ/bⁿ"))
	}
	sections = append(sections, s.renderProblem())

	if s.state.Solving {
		if s.state.Variant.Paged {
			sections = append(sections, s.renderPage())
		} else {
			for i := range s.state.Steps {
				id := ex.StepID(i)
				if !s.state.Visible(id) {
					break
				}
				sections = append(sections, s.renderStep(id))
			}
		}
		if s.state.Solved() {
			sections = append(sections, s.renderSolved())
		}
	}

	sections = append(sections, s.renderButtons())

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		Render(strings.Join(sections, "\n\n"))
}

// renderProblem draws the editable problem as a fraction raised to a power,
// followed by the field inputs.
func (s *ExerciseScreen) renderProblem() string {
	raw := s.state.Raw
	frac := components.Fraction{
		Num:      orBlank(raw.Numerator),
		Den:      orBlank(raw.Denominator),
		OuterExp: orBlank(raw.Power),
	}

	inputs := make([]string, len(s.fields))
	for i := range s.fields {
		inputs[i] = s.fields[i].View()
	}

	body := theme.Body.Render("Simplify") + "\n\n" +
		frac.View() + "\n\n" +
		strings.Join(inputs, "    ")
	if s.state.Message != "" {
		body += "\n" + theme.Incorrect.Render(s.state.Message)
	}

	card := theme.Card
	if !s.state.Solving {
		card = theme.ActiveCard
	}
	return card.Render(body)
}

// renderPage draws the displayed step of the paged variant with a page
// indicator.
func (s *ExerciseScreen) renderPage() string {
	n := len(s.state.Steps)
	dots := make([]string, n)
	for i := range dots {
		switch {
		case i == s.state.Current:
			dots[i] = theme.Selected.Render("●")
		case s.state.Steps[i].Completed():
			dots[i] = theme.Correct.Render("●")
		default:
			dots[i] = theme.Hint.Render("○")
		}
	}
	indicator := fmt.Sprintf("Step %d of %d  %s", s.state.Current+1, n, strings.Join(dots, " "))

	out := theme.Hint.Render(indicator) + "\n" + s.renderStep(ex.StepID(s.state.Current))
	if s.canContinue() {
		out += "\n" + theme.Hint.Render("Press Enter to continue")
	}
	return out
}

func (s *ExerciseScreen) renderStep(id ex.StepID) string {
	step := s.state.Step(id)
	st := s.state.Steps[id]
	sol := s.state.Solution
	inputs := s.steps[id]

	var b strings.Builder
	b.WriteString(theme.Selected.Render(fmt.Sprintf("Step %d", int(id)+1)))
	b.WriteString("  " + theme.Body.Render(step.Title()) + "\n\n")

	switch id {
	case ex.StepDistribute:
		b.WriteString(fmt.Sprintf("  %s to the power %s\n", pad(sol.Numerator), inputs[0].View()))
		b.WriteString(fmt.Sprintf("  %s to the power %s", pad(sol.Denominator), inputs[1].View()))
	case ex.StepEvaluate:
		exp := components.Superscript(strconv.Itoa(sol.Power))
		if len(inputs) == 1 {
			b.WriteString(fmt.Sprintf("  %d%s/%d%s = %s", sol.Numerator, exp, sol.Denominator, exp, inputs[0].View()))
		} else {
			b.WriteString(fmt.Sprintf("  %s%s = %s\n", pad(sol.Numerator), exp, inputs[0].View()))
			b.WriteString(fmt.Sprintf("  %s%s = %s", pad(sol.Denominator), exp, inputs[1].View()))
		}
	}

	switch st.Outcome() {
	case ex.StatusCorrect:
		b.WriteString("\n\n" + theme.Correct.Render("✓ Correct!"))
	case ex.StatusIncorrect:
		b.WriteString("\n\n" + theme.Incorrect.Render("✗ Not quite. Fix the marked fields and try again."))
	case ex.StatusSkipped:
		b.WriteString("\n\n" + theme.Skipped.Render("↷ Skipped. Answer: "+strings.Join(s.state.Expected(id), ", ")))
	}

	card := theme.Card
	if id == s.activeStep() && !st.Completed() {
		card = theme.ActiveCard
	}
	return card.Render(b.String())
}

func (s *ExerciseScreen) renderSolved() string {
	sol := s.state.Solution
	num, den := sol.Result()
	exp := strconv.Itoa(sol.Power)

	distributed := components.Fraction{
		Num: strconv.Itoa(sol.Numerator), Den: strconv.Itoa(sol.Denominator),
		NumExp: exp, DenExp: exp,
	}
	result := components.Fraction{Num: strconv.FormatInt(num, 10), Den: strconv.FormatInt(den, 10)}
	original := components.Fraction{
		Num: strconv.Itoa(sol.Numerator), Den: strconv.Itoa(sol.Denominator), OuterExp: exp,
	}

	eq := lipgloss.NewStyle().PaddingTop(1).Render(" = ")
	chain := lipgloss.JoinHorizontal(lipgloss.Top,
		original.View(), eq, distributed.View(), eq, result.View())

	return theme.Banner.Render("Great Work!") + "\n\n" + chain
}

func (s *ExerciseScreen) renderButtons() string {
	enter := components.Button{Key: "Enter", Label: "Solve", Enabled: true}
	skip := components.Button{Key: "Ctrl+S", Label: "Skip"}
	if s.state.Solving {
		id := s.activeStep()
		switch {
		case !s.state.Steps[id].Completed():
			enter.Label = "Check"
			skip.Enabled = true
		case s.canContinue():
			enter.Label = "Continue"
		default:
			enter.Label = "Check"
			enter.Enabled = false
		}
	}
	return components.ButtonRow(
		components.Button{Key: "Ctrl+R", Label: "Random", Enabled: true},
		enter,
		skip,
		components.Button{Key: "F5", Label: "Restart", Enabled: s.state.Solving},
	)
}

func orBlank(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func pad(n int) string {
	return fmt.Sprintf("%2d", n)
}
