package exercise

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// IncompleteMessage is shown when Solve is refused.
const IncompleteMessage = "Fill in a numerator, denominator and power within the allowed ranges before solving."

// ErrIncompleteProblem is returned by Solve when a field is blank or out of range.
var ErrIncompleteProblem = errors.New("incomplete problem")

// RawFields holds the text currently typed into each problem field. A blank
// entry is a transient value that blocks Solve.
type RawFields struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
	Power       string `json:"power"`
}

// Get returns the raw text of the named field.
func (r RawFields) Get(f Field) string {
	switch f {
	case FieldNumerator:
		return r.Numerator
	case FieldDenominator:
		return r.Denominator
	case FieldPower:
		return r.Power
	}
	return ""
}

func (r RawFields) with(f Field, v string) RawFields {
	switch f {
	case FieldNumerator:
		r.Numerator = v
	case FieldDenominator:
		r.Denominator = v
	case FieldPower:
		r.Power = v
	}
	return r
}

// Complete reports whether every field holds text.
func (r RawFields) Complete() bool {
	for _, f := range Fields {
		if r.Get(f) == "" {
			return false
		}
	}
	return true
}

func rawFrom(p Problem) RawFields {
	return RawFields{
		Numerator:   strconv.Itoa(p.Numerator),
		Denominator: strconv.Itoa(p.Denominator),
		Power:       strconv.Itoa(p.Power),
	}
}

// State is the whole exercise. Transitions are functions that take a State
// and return a new one; a State is never modified in place.
type State struct {
	Variant Variant

	// Problem is the editable problem.
	Problem Problem

	// Raw mirrors Problem as typed text.
	Raw RawFields

	// Solution is the problem captured by the last successful Solve.
	Solution Problem

	// Solving is true while steps are shown.
	Solving bool

	// Steps holds one entry per curriculum step.
	Steps []StepState

	// Current is the index of the displayed step.
	Current int

	// Message is the validation message from a refused Solve.
	Message string

	curriculum Curriculum
}

// New creates the initial state for a variant. p is clamped into range.
func New(v Variant, p Problem) State {
	s := State{
		Variant:    v,
		curriculum: NewCurriculum(v.Format),
	}
	s.Problem = v.Clamp(p)
	s.Raw = rawFrom(s.Problem)
	return s.reset()
}

// Curriculum returns the steps of the exercise.
func (s State) Curriculum() Curriculum {
	return s.curriculum
}

// Step returns the validator for id, or nil when out of range.
func (s State) Step(id StepID) StepValidator {
	if !s.validStep(id) {
		return nil
	}
	return s.curriculum[id]
}

// Expected returns the ground-truth inputs of a step for the current solution.
func (s State) Expected(id StepID) []string {
	v := s.Step(id)
	if v == nil {
		return nil
	}
	return v.Expected(s.Solution)
}

// Visible reports whether a step can be attempted: the exercise is being
// solved and every earlier step is completed.
func (s State) Visible(id StepID) bool {
	if !s.Solving || !s.validStep(id) {
		return false
	}
	for i := 0; i < int(id); i++ {
		if !s.Steps[i].Completed() {
			return false
		}
	}
	return true
}

// Solved reports whether the final step is completed.
func (s State) Solved() bool {
	if !s.Solving || len(s.Steps) == 0 {
		return false
	}
	return s.Steps[len(s.Steps)-1].Completed()
}

// ActiveStep returns the first step that is not yet completed, or the last
// step when all are.
func (s State) ActiveStep() StepID {
	for i, st := range s.Steps {
		if !st.Completed() {
			return StepID(i)
		}
	}
	return StepID(len(s.Steps) - 1)
}

func (s State) validStep(id StepID) bool {
	return id >= 0 && int(id) < len(s.curriculum) && int(id) < len(s.Steps)
}

func (s State) clone() State {
	steps := make([]StepState, len(s.Steps))
	for i, st := range s.Steps {
		steps[i] = st.clone()
	}
	s.Steps = steps
	return s
}

// reset clears steps and navigation. The receiver must already be a clone.
func (s State) reset() State {
	s.Steps = make([]StepState, len(s.curriculum))
	for i, v := range s.curriculum {
		s.Steps[i] = newStepState(v.Inputs())
	}
	s.Current = 0
	return s
}

// Reset clears every step and the navigation position.
func Reset(s State) State {
	return s.clone().reset()
}

// Replace makes p the active problem, clamped into range, and leaves solving.
func Replace(s State, p Problem) State {
	s = s.clone()
	s.Problem = s.Variant.Clamp(p)
	s.Raw = rawFrom(s.Problem)
	s.Solving = false
	s.Message = ""
	return s.reset()
}

// SetField applies a typed value to one problem field. Numbers are truncated
// to whole numbers and clamped into the field's range; blank input is held
// as a transient blank; anything else is ignored.
func SetField(s State, f Field, raw string) State {
	trimmed := TruncateDecimal(raw)
	r := s.Variant.Range(f)

	var value int
	switch n, err := strconv.Atoi(trimmed); {
	case trimmed == "":
		s = s.clone()
		s.Raw = s.Raw.with(f, "")
		s.Solving = false
		s.Message = ""
		return s.reset()
	case err == nil:
		value = r.Clamp(n)
	case errors.Is(err, strconv.ErrRange):
		value = r.Max
		if strings.HasPrefix(trimmed, "-") {
			value = r.Min
		}
	default:
		return s
	}

	s = s.clone()
	s.Problem = s.Problem.With(f, value)
	s.Raw = s.Raw.with(f, strconv.Itoa(value))
	s.Solving = false
	s.Message = ""
	return s.reset()
}

// Solve captures the problem as the solution and starts the steps. It fails
// with ErrIncompleteProblem when a field is blank or out of range.
func Solve(s State) (State, error) {
	s = s.clone()
	if !s.Raw.Complete() || !s.Variant.Accepts(s.Problem) {
		s.Solving = false
		s.Message = IncompleteMessage
		return s.reset(), ErrIncompleteProblem
	}
	s.Solution = s.Problem
	s.Solving = true
	s.Message = ""
	return s.reset(), nil
}

// SetStepInput records typing into a step field and clears that field's
// error flag.
func SetStepInput(s State, id StepID, field int, raw string) State {
	if !s.Solving || !s.validStep(id) {
		return s
	}
	st := s.Steps[id]
	if st.Completed() || field < 0 || field >= len(st.Inputs) {
		return s
	}

	s = s.clone()
	st = s.Steps[id]
	st.Inputs[field] = s.curriculum[id].Normalize(field, raw)
	st.Fields[field] = StatusUnanswered
	if st.Status == StatusIncorrect && !slices.Contains(st.Fields, StatusIncorrect) {
		st.Status = StatusUnanswered
	}
	s.Steps[id] = st
	return s
}

// CheckResult reports the outcome of grading a step.
type CheckResult struct {
	Fields    []Status `json:"fields"`
	Completed bool     `json:"completed"`
}

// CheckStep grades a step. With no inputs the step's stored inputs are
// graded. Completed steps are left untouched.
func CheckStep(s State, id StepID, inputs ...string) (State, CheckResult) {
	if !s.Solving || !s.validStep(id) {
		return s, CheckResult{}
	}
	if st := s.Steps[id]; st.Completed() {
		return s, CheckResult{Fields: slices.Clone(st.Fields), Completed: true}
	}

	s = s.clone()
	st := s.Steps[id]
	v := s.curriculum[id]
	if len(inputs) > 0 {
		st.Inputs = make([]string, v.Inputs())
		copy(st.Inputs, inputs)
	}

	st.Fields = v.Validate(s.Solution, st.Inputs)
	switch {
	case allCorrect(st.Fields):
		st.Status = StatusCorrect
	case slices.Contains(st.Fields, StatusCorrect):
		// Partly right: the wrong fields are flagged, the step stays open.
		st.Status = StatusUnanswered
	default:
		st.Status = StatusIncorrect
	}
	s.Steps[id] = st

	return s, CheckResult{Fields: slices.Clone(st.Fields), Completed: st.Completed()}
}

// CheckStep1 grades the exponents written on numerator and denominator.
func CheckStep1(s State, numPower, denPower string) (State, CheckResult) {
	return CheckStep(s, StepDistribute, numPower, denPower)
}

// CheckStep2 grades the evaluated powers: one "num/den" string or two
// separate values depending on the variant.
func CheckStep2(s State, inputs ...string) (State, CheckResult) {
	return CheckStep(s, StepEvaluate, inputs...)
}

// Skip completes a step without grading and fills in the expected answer.
// Completed steps are left untouched.
func Skip(s State, id StepID) State {
	if !s.Solving || !s.validStep(id) || s.Steps[id].Completed() {
		return s
	}

	s = s.clone()
	st := s.Steps[id]
	st.Inputs = s.curriculum[id].Expected(s.Solution)
	st.Fields = make([]Status, len(st.Inputs))
	for i := range st.Fields {
		st.Fields[i] = StatusSkipped
	}
	st.Status = StatusSkipped
	s.Steps[id] = st
	return s
}
