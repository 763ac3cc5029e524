package store

import (
	"context"
	"time"
)

// Exercise lifecycle actions.
const (
	ActionGenerate = "generate"
	ActionSolve    = "solve"
	ActionRefused  = "refused"
	ActionSolved   = "solved"
)

// ExerciseEventData captures one exercise lifecycle event.
type ExerciseEventData struct {
	ExerciseID  string
	Variant     string
	Action      string
	Numerator   int
	Denominator int
	Power       int
}

// StepAttemptData captures one check or skip of a step.
type StepAttemptData struct {
	ExerciseID string
	Step       string
	StepIndex  int
	Status     string
	Answer     string
	Expected   string
}

// Attempt is a stored step attempt.
type Attempt struct {
	Sequence  int64
	Timestamp time.Time
	StepAttemptData
}

// StepStats aggregates attempts on one step.
type StepStats struct {
	Step      string
	StepIndex int
	Attempts  int
	Correct   int
	Incorrect int
	Skipped   int
}

// Stats aggregates the whole attempt log.
type Stats struct {
	Generated int
	Started   int
	Refused   int
	Solved    int
	Steps     []StepStats
}

// EventRepo provides append and query access to the attempt log.
type EventRepo interface {
	// AppendExerciseEvent records an exercise lifecycle event.
	AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error

	// AppendStepAttempt records a check or skip.
	AppendStepAttempt(ctx context.Context, data StepAttemptData) error

	// RecentAttempts returns the newest attempts first. limit <= 0 means all.
	RecentAttempts(ctx context.Context, limit int) ([]Attempt, error)

	// AttemptsFor returns, in order, the attempts of every exercise whose ID
	// starts with idPrefix. A full ID selects one exercise.
	AttemptsFor(ctx context.Context, idPrefix string) ([]Attempt, error)

	// Stats aggregates every recorded event.
	Stats(ctx context.Context) (*Stats, error)

	// Reset deletes every recorded event.
	Reset(ctx context.Context) error
}
