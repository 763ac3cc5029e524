package exercise

import (
	"slices"
	"strings"
)

// StepID indexes a step of the curriculum.
type StepID int

const (
	// StepDistribute asks for the exponent on numerator and denominator.
	StepDistribute StepID = iota

	// StepEvaluate asks for the evaluated powers.
	StepEvaluate
)

// Status is the grading state of a step or of one of its input fields.
type Status string

const (
	StatusUnanswered Status = "unanswered"
	StatusCorrect    Status = "correct"
	StatusIncorrect  Status = "incorrect"
	StatusSkipped    Status = "skipped"
)

// StepState is the learner's progress on one step.
type StepState struct {
	// Inputs holds the raw text of each input field.
	Inputs []string `json:"inputs"`

	// Fields holds the per-field grading status.
	Fields []Status `json:"fields"`

	// Status is the step-level status.
	Status Status `json:"status"`
}

func newStepState(inputs int) StepState {
	fields := make([]Status, inputs)
	for i := range fields {
		fields[i] = StatusUnanswered
	}
	return StepState{
		Inputs: make([]string, inputs),
		Fields: fields,
		Status: StatusUnanswered,
	}
}

// Completed reports whether the step was answered correctly or skipped.
func (s StepState) Completed() bool {
	return s.Status == StatusCorrect || s.Status == StatusSkipped
}

// Answer joins the input fields for display and logging. It is empty when
// nothing was typed.
func (s StepState) Answer() string {
	if !slices.ContainsFunc(s.Inputs, func(in string) bool { return in != "" }) {
		return ""
	}
	return strings.Join(s.Inputs, ", ")
}

// Outcome is the result of the last check: the step status, or incorrect
// when an open step still has a field flagged wrong.
func (s StepState) Outcome() Status {
	if s.Status == StatusUnanswered && slices.Contains(s.Fields, StatusIncorrect) {
		return StatusIncorrect
	}
	return s.Status
}

func (s StepState) clone() StepState {
	s.Inputs = slices.Clone(s.Inputs)
	s.Fields = slices.Clone(s.Fields)
	return s
}

func allCorrect(fields []Status) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if f != StatusCorrect {
			return false
		}
	}
	return true
}
