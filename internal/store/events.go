package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with queries built by ent's SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

var attemptColumns = []string{
	"sequence", "timestamp", "exercise_id", "step", "step_index", "status", "answer", "expected",
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(tableExerciseEvents).
		Columns("sequence", "timestamp", "exercise_id", "variant", "action", "numerator", "denominator", "power").
		Values(seqNum, r.now().UTC(), data.ExerciseID, data.Variant, data.Action, data.Numerator, data.Denominator, data.Power).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save exercise event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendStepAttempt(ctx context.Context, data StepAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(tableStepAttempts).
		Columns(attemptColumns...).
		Values(seqNum, r.now().UTC(), data.ExerciseID, data.Step, data.StepIndex, data.Status, data.Answer, data.Expected).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save step attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	sel := builder().
		Select(attemptColumns...).
		From(entsql.Table(tableStepAttempts)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()
	return r.queryAttempts(ctx, query, args)
}

func (r *eventRepo) AttemptsFor(ctx context.Context, idPrefix string) ([]Attempt, error) {
	if idPrefix == "" {
		return nil, nil
	}
	query, args := builder().
		Select(attemptColumns...).
		From(entsql.Table(tableStepAttempts)).
		Where(entsql.HasPrefix("exercise_id", idPrefix)).
		OrderBy("sequence").
		Query()
	return r.queryAttempts(ctx, query, args)
}

func (r *eventRepo) queryAttempts(ctx context.Context, query string, args []any) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.Sequence, &a.Timestamp, &a.ExerciseID, &a.Step, &a.StepIndex,
			&a.Status, &a.Answer, &a.Expected); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}

func (r *eventRepo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	query, args := builder().
		Select("action", entsql.Count("*")).
		From(entsql.Table(tableExerciseEvents)).
		GroupBy("action").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercise stats: %w", err)
	}
	for rows.Next() {
		var (
			action string
			count  int
		)
		if err := rows.Scan(&action, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan exercise stats: %w", err)
		}
		switch action {
		case ActionGenerate:
			stats.Generated = count
		case ActionSolve:
			stats.Started = count
		case ActionRefused:
			stats.Refused = count
		case ActionSolved:
			stats.Solved = count
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise stats: %w", err)
	}

	query, args = builder().
		Select("step_index", "step", "status", entsql.Count("*")).
		From(entsql.Table(tableStepAttempts)).
		GroupBy("step_index", "step", "status").
		OrderBy("step_index").
		Query()
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query step stats: %w", err)
	}
	defer rows.Close()

	byIndex := make(map[int]int)
	for rows.Next() {
		var (
			index        int
			step, status string
			count        int
		)
		if err := rows.Scan(&index, &step, &status, &count); err != nil {
			return nil, fmt.Errorf("scan step stats: %w", err)
		}
		pos, ok := byIndex[index]
		if !ok {
			stats.Steps = append(stats.Steps, StepStats{Step: step, StepIndex: index})
			pos = len(stats.Steps) - 1
			byIndex[index] = pos
		}
		ss := &stats.Steps[pos]
		ss.Attempts += count
		switch status {
		case "correct":
			ss.Correct += count
		case "incorrect":
			ss.Incorrect += count
		case "skipped":
			ss.Skipped += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate step stats: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, t := range tables {
		query, args := builder().Delete(t.name).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", t.name, err)
		}
	}
	return nil
}
