package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/quotientpow/ent/schema"
)

const (
	tableExerciseEvents = "exercise_events"
	tableStepAttempts   = "step_attempts"
)

// entSchema is the part of an ent schema the migration reads.
type entSchema interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
	Indexes() []ent.Index
}

type table struct {
	name   string
	schema entSchema
}

var tables = []table{
	{name: tableExerciseEvents, schema: entschema.ExerciseEvent{}},
	{name: tableStepAttempts, schema: entschema.StepAttempt{}},
}

// migrate creates every table and index declared by the ent schemas.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, t := range tables {
		stmts, err := createStatements(t)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create %s: %w", t.name, err)
			}
		}
	}
	return nil
}

// createStatements renders CREATE TABLE and CREATE INDEX statements for t.
// Mixin fields come first, matching ent's column order.
func createStatements(t table) ([]string, error) {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range t.schema.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, t.schema.Fields()...)
	indexes = append(indexes, t.schema.Indexes()...)

	cols := []string{"id INTEGER PRIMARY KEY AUTOINCREMENT"}
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.name, d.Name, d.Err)
		}
		col := strconv.Quote(d.Name) + " " + sqliteType(d.Info.Type)
		if !d.Optional && !d.Nillable {
			col += " NOT NULL"
		}
		if d.Unique {
			col += " UNIQUE"
		}
		cols = append(cols, col)
	}

	stmts := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", strconv.Quote(t.name), strings.Join(cols, ", ")),
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		name := t.name + "_" + strings.Join(d.Fields, "_")
		quoted := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			quoted[i] = strconv.Quote(f)
		}
		kind := "INDEX"
		if d.Unique {
			kind = "UNIQUE INDEX"
		}
		stmts = append(stmts, fmt.Sprintf("CREATE %s IF NOT EXISTS %s ON %s (%s)",
			kind, strconv.Quote(name), strconv.Quote(t.name), strings.Join(quoted, ", ")))
	}
	return stmts, nil
}

// sqliteType maps an ent field type to a SQLite column type.
func sqliteType(t field.Type) string {
	switch {
	case t == field.TypeBool:
		return "BOOLEAN"
	case t == field.TypeTime:
		return "DATETIME"
	case t == field.TypeBytes:
		return "BLOB"
	case t.Integer():
		return "INTEGER"
	case t.Float():
		return "REAL"
	default:
		return "TEXT"
	}
}
