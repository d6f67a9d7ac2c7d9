package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/scurve/internal/db"
)

const (
	// dateLayout stores planning dates as calendar days.
	dateLayout = "2006-01-02"
	// stampLayout stores audit and recording times in UTC at a fixed width,
	// so text order is time order and same-second readings stay distinct.
	// Stamps are parsed with time.RFC3339Nano, which also reads older
	// second-precision rows.
	stampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullable maps a nil pointer to SQL NULL.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func ptrFromNull[T any](v sql.Null[T]) *T {
	if !v.Valid {
		return nil
	}
	out := v.V
	return &out
}

// dateFromNull drops unparseable dates: a task with a corrupt date simply
// stops participating in the schedule.
func dateFromNull(v sql.Null[string]) *time.Time {
	if !v.Valid || v.V == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v.V)
	if err != nil {
		return nil
	}
	return &t
}

func stamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}

// parseStamps parses stored stamps into dst in order, naming the failing
// column.
func parseStamps(columns []string, raw []string, dst ...*time.Time) error {
	for i, s := range raw {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", columns[i], err)
		}
		*dst[i] = t
	}
	return nil
}

// notFound wraps ErrNotFound for a missing row and annotates anything else.
func notFound(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return fmt.Errorf("scanning %s: %w", entity, err)
}

// execOne runs a statement expected to touch exactly one row.
func execOne(ctx context.Context, conn db.DBTX, entity, verb, query string, args ...any) error {
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", verb, entity, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: %w", verb, entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return nil
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, conn db.DBTX, entity string, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", entity, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %ss: %w", entity, err)
	}
	return out, nil
}
