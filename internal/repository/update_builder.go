package repository

import (
	"context"
	"database/sql"
	"strings"
)

// Fields is a sparse set of column values decoded from a request body.  A
// key that is missing means "leave the column untouched"; a key holding the
// empty string is skipped as well, mirroring the partial-edit behavior the
// front end relies on.
type Fields map[string]any

// BuildUpdate constructs a parameterized UPDATE statement touching only the
// whitelisted columns present in fields.  Column names come exclusively
// from the whitelist; client-supplied keys never reach the statement text,
// and every value is bound as a placeholder.  The scope clause is always
// the entity's own primary identity column.
//
// Returns ErrNoFieldsToUpdate when no column survives filtering.
func BuildUpdate(table, idColumn string, id uint64, fields Fields, whitelist []string) (string, []any, error) {
	var sets []string
	var args []any
	for _, col := range whitelist {
		v, ok := fields[col]
		if !ok || v == nil {
			continue // absent: column stays untouched
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue // empty string: skipped, not written
		}
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	q := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + idColumn + " = ?"
	args = append(args, id)
	return q, args, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecUpdate runs a statement and reports a missing row distinctly from an
// execution failure: zero affected rows yields ErrNotFound.  The connection
// is opened with clientFoundRows=true, so affected means matched; an edit
// that re-submits a row's current values still counts as one row and is
// never mistaken for a missing row.
func ExecUpdate(ctx context.Context, db execer, query string, args []any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullIfEmpty maps the empty string to SQL NULL.  Used for optional DATE
// columns where an empty form value must not be written as a zero date.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
