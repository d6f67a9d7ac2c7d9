package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/scurve/internal/db"
)

// FailOnNthExecUoW returns Err from the FailOn-th write issued inside
// WithinTx (counting from 1) and rolls the transaction back. Reads are never
// counted, so an import can be failed after its project row is written but
// before its snapshots are.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

var _ db.UnitOfWork = (*FailOnNthExecUoW)(nil)

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	counted := &countingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, counted); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ReadConsistent does not inject failures.
func (u *FailOnNthExecUoW) ReadConsistent(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).ReadConsistent(ctx, fn)
}

type countingExec struct {
	db.DBTX
	n      atomic.Int32
	failOn int32
	err    error
}

func (c *countingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.n.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
