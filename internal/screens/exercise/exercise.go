package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	ex "github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/screen"
	"github.com/abhisek/quotientpow/internal/store"
	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/layout"
)

// ExerciseScreen runs one variant of the power-of-a-quotient exercise.
type ExerciseScreen struct {
	state     ex.State
	gen       *ex.Generator
	eventRepo store.EventRepo
	logger    *slog.Logger

	// exerciseID groups the events of one problem in the attempt log.
	exerciseID string
	started    bool

	fields []components.TextInput
	steps  [][]components.TextInput
	focus  int

	solvedCount int
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)
var _ screen.StatusProvider = (*ExerciseScreen)(nil)

// New creates an ExerciseScreen with a freshly drawn problem. eventRepo may
// be nil, in which case nothing is recorded.
func New(v ex.Variant, gen *ex.Generator, eventRepo store.EventRepo) *ExerciseScreen {
	if gen == nil {
		gen = ex.NewGenerator()
	}
	s := &ExerciseScreen{
		state:      ex.New(v, gen.Draw(v)),
		gen:        gen,
		eventRepo:  eventRepo,
		logger:     slog.Default().With("screen", "exercise", "variant", v.Name),
		exerciseID: uuid.NewString(),
	}

	for _, f := range ex.Fields {
		r := v.Range(f)
		s.fields = append(s.fields, components.NewTextInput(
			fieldLabel(f), r.String(), components.DigitChars, 3))
	}
	for id, step := range s.state.Curriculum() {
		inputs := make([]components.TextInput, step.Inputs())
		for i := range inputs {
			inputs[i] = newStepInput(ex.StepID(id), v.Format)
		}
		s.steps = append(s.steps, inputs)
	}
	s.sync()
	return s
}

func newStepInput(id ex.StepID, format ex.InputFormat) components.TextInput {
	if id == ex.StepDistribute {
		return components.NewTextInput("", "?", components.DigitChars, 2)
	}
	if format == ex.FormatSlash {
		return components.NewTextInput("", "num/den", components.FractionChars, 24)
	}
	return components.NewTextInput("", "?", components.DigitChars, 10)
}

func fieldLabel(f ex.Field) string {
	switch f {
	case ex.FieldNumerator:
		return "a"
	case ex.FieldDenominator:
		return "b"
	}
	return "n"
}

func (s *ExerciseScreen) Init() tea.Cmd {
	s.recordExercise(store.ActionGenerate, s.state.Problem)
	return s.refocus()
}

func (s *ExerciseScreen) Title() string {
	return s.state.Variant.Label
}

func (s *ExerciseScreen) Status() string {
	return fmt.Sprintf("✓ %d solved", s.solvedCount)
}

func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Ctrl+R", Description: "Random"}}
	switch {
	case !s.state.Solving:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Solve"})
	case !s.state.Steps[s.activeStep()].Completed():
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Check"},
			layout.KeyHint{Key: "Ctrl+S", Description: "Skip"},
		)
	case s.canContinue():
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	if s.state.Solving {
		hints = append(hints, layout.KeyHint{Key: "F5", Description: "Restart"})
	}
	if s.state.NavigationUnlocked() && s.state.Variant.Paged {
		hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Steps"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Next field"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.forward(msg)
	}

	switch kmsg.String() {
	case "ctrl+r":
		s.random()
	case "enter":
		s.submit()
	case "f5":
		s.solve()
	case "ctrl+s":
		s.skip()
	case "pgup":
		s.state = ex.Advance(s.state, ex.Back)
	case "pgdown":
		s.state = ex.Advance(s.state, ex.Forward)
	case "tab", "down":
		s.focus++
		if n := len(s.focusables()); s.focus >= n {
			s.focus = 0
		}
	case "shift+tab", "up":
		s.focus--
		if s.focus < 0 {
			s.focus = len(s.focusables()) - 1
		}
	default:
		return s, s.forward(msg)
	}

	s.sync()
	return s, s.refocus()
}

// forward passes msg to the focused input and applies any edit it made.
func (s *ExerciseScreen) forward(msg tea.Msg) tea.Cmd {
	inputs := s.focusables()
	if s.focus < 0 || s.focus >= len(inputs) {
		return nil
	}
	in := inputs[s.focus]
	before := in.Value()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if after := in.Value(); after != before {
		s.applyEdit(s.focus, after)
		s.sync()
		return tea.Batch(cmd, s.refocus())
	}
	return cmd
}

func (s *ExerciseScreen) applyEdit(idx int, value string) {
	if idx < len(s.fields) {
		s.state = ex.SetField(s.state, ex.Fields[idx], value)
		return
	}
	s.state = ex.SetStepInput(s.state, s.activeStep(), idx-len(s.fields), value)
}

func (s *ExerciseScreen) random() {
	s.state = s.gen.Generate(s.state)
	s.exerciseID = uuid.NewString()
	s.started = false
	s.focus = 0
	s.recordExercise(store.ActionGenerate, s.state.Problem)
}

// solve starts the steps for the current problem. While solving it starts
// them over.
func (s *ExerciseScreen) solve() {
	next, err := ex.Solve(s.state)
	s.state = next
	if err != nil {
		s.recordExercise(store.ActionRefused, s.state.Problem)
		return
	}
	if s.started {
		s.exerciseID = uuid.NewString()
	}
	s.started = true
	s.focus = len(s.fields)
	s.recordExercise(store.ActionSolve, s.state.Solution)
}

// submit solves the problem, checks the active step or moves on, depending
// on where the exercise is.
func (s *ExerciseScreen) submit() {
	if !s.state.Solving {
		s.solve()
		return
	}

	id := s.activeStep()
	if s.state.Steps[id].Completed() {
		if s.canContinue() {
			s.state = ex.Continue(s.state)
			s.focus = len(s.fields)
		}
		return
	}

	answer := s.state.Steps[id].Answer()
	next, res := ex.CheckStep(s.state, id)
	s.state = next
	s.recordAttempt(id, answer)
	if res.Completed {
		s.focus = len(s.fields)
		s.afterCompletion()
	}
}

func (s *ExerciseScreen) skip() {
	if !s.state.Solving {
		return
	}
	id := s.activeStep()
	if s.state.Steps[id].Completed() {
		return
	}
	answer := s.state.Steps[id].Answer()
	s.state = ex.Skip(s.state, id)
	s.recordAttempt(id, answer)
	s.focus = len(s.fields)
	s.afterCompletion()
}

func (s *ExerciseScreen) afterCompletion() {
	if !s.state.Solved() {
		return
	}
	s.solvedCount++
	s.recordExercise(store.ActionSolved, s.state.Solution)
}

// activeStep is the step that takes input: the displayed page for the paged
// variant, otherwise the first step not yet completed.
func (s *ExerciseScreen) activeStep() ex.StepID {
	if s.state.Variant.Paged {
		return ex.StepID(s.state.Current)
	}
	return s.state.ActiveStep()
}

func (s *ExerciseScreen) canContinue() bool {
	return s.state.Variant.Paged && s.state.Solving &&
		s.state.Current < len(s.state.Steps)-1 &&
		s.state.Steps[s.state.Current].Completed()
}

// focusables lists the inputs Tab cycles through: the problem fields, then
// the inputs of the active step while it is open.
func (s *ExerciseScreen) focusables() []*components.TextInput {
	out := make([]*components.TextInput, 0, len(s.fields)+2)
	for i := range s.fields {
		out = append(out, &s.fields[i])
	}
	if s.state.Solving {
		id := s.activeStep()
		if s.state.Visible(id) && !s.state.Steps[id].Completed() {
			for i := range s.steps[id] {
				out = append(out, &s.steps[id][i])
			}
		}
	}
	return out
}

func (s *ExerciseScreen) refocus() tea.Cmd {
	inputs := s.focusables()
	if s.focus >= len(inputs) {
		s.focus = len(inputs) - 1
	}
	if s.focus < 0 {
		s.focus = 0
	}
	for i := range s.fields {
		s.fields[i].Blur()
	}
	for _, step := range s.steps {
		for i := range step {
			step[i].Blur()
		}
	}
	if len(inputs) == 0 {
		return nil
	}
	return inputs[s.focus].Focus()
}

// sync copies the exercise state into the inputs.
func (s *ExerciseScreen) sync() {
	for i, f := range ex.Fields {
		if raw := s.state.Raw.Get(f); s.fields[i].Value() != raw {
			s.fields[i].SetValue(raw)
		}
	}
	for id, st := range s.state.Steps {
		for i := range s.steps[id] {
			in := &s.steps[id][i]
			if i < len(st.Inputs) && in.Value() != st.Inputs[i] {
				in.SetValue(st.Inputs[i])
			}
			if i < len(st.Fields) {
				in.SetStatus(st.Fields[i])
			}
		}
	}
}

func (s *ExerciseScreen) recordExercise(action string, p ex.Problem) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendExerciseEvent(context.Background(), store.ExerciseEventData{
		ExerciseID:  s.exerciseID,
		Variant:     s.state.Variant.Name,
		Action:      action,
		Numerator:   p.Numerator,
		Denominator: p.Denominator,
		Power:       p.Power,
	})
	if err != nil {
		s.logger.Warn("record exercise event", "action", action, "error", err)
	}
}

func (s *ExerciseScreen) recordAttempt(id ex.StepID, answer string) {
	if s.eventRepo == nil {
		return
	}
	step := s.state.Step(id)
	err := s.eventRepo.AppendStepAttempt(context.Background(), store.StepAttemptData{
		ExerciseID: s.exerciseID,
		Step:       step.Name(),
		StepIndex:  int(id),
		Status:     string(s.state.Steps[id].Outcome()),
		Answer:     answer,
		Expected:   strings.Join(s.state.Expected(id), ", "),
	})
	if err != nil {
		s.logger.Warn("record step attempt", "step", step.Name(), "error", err)
	}
}
