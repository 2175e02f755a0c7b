// Package dbx holds the small database plumbing shared by the repository
// packages: DBTX, a minimal query interface implemented by both *sql.DB and
// *sql.Tx, and WithTx for running multi-statement writes in one transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories operate on. Because
// both *sql.DB and *sql.Tx satisfy it, the same repository code serves plain
// calls and transactional ones; the repository manager binds repos to either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// The reset flow relies on this to pair token consumption with the password
// overwrite:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    rt, err := repos.ResetTokens(tx).Consume(ctx, token, time.Now())
//	    if err != nil {
//	        return err
//	    }
//	    return repos.Users(tx).UpdatePassword(ctx, rt.UserID, hash)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
