// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"
	_ "github.com/mattn/go-sqlite3"

	coredatabase "github.com/juju/stakeledger/core/database"
	"github.com/juju/stakeledger/internal/database/txn"
)

// OpenSQLite opens the SQLite ledger database at path. The database is
// limited to one connection; the ledger is only ever mutated by a single
// state transition at a time.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000&_txlock=immediate", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Annotatef(err, "opening ledger database %q", path)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Annotatef(err, "connecting to ledger database %q", path)
	}
	return db, nil
}

// txnRunner binds a database to a retrying transaction runner.
type txnRunner struct {
	db     *sqlair.DB
	runner *txn.RetryingTxnRunner
}

// NewTxnRunner returns a TxnRunner for db.
func NewTxnRunner(db *sql.DB, opts ...txn.Option) coredatabase.TxnRunner {
	return &txnRunner{
		db:     sqlair.NewDB(db),
		runner: txn.NewRetryingTxnRunner(opts...),
	}
}

// Txn is part of the coredatabase.TxnRunner interface.
func (t *txnRunner) Txn(ctx context.Context, fn func(context.Context, *sqlair.TX) error) error {
	return errors.Trace(t.runner.Txn(ctx, t.db, fn))
}

// StdTxn is part of the coredatabase.TxnRunner interface.
func (t *txnRunner) StdTxn(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	return t.runner.Retry(ctx, func() error {
		return errors.Trace(t.runner.StdTxn(ctx, t.db.PlainDB(), fn))
	})
}

// TxnRunnerFactory returns a factory that always yields runner.
func TxnRunnerFactory(runner coredatabase.TxnRunner) coredatabase.TxnRunnerFactory {
	return func() (coredatabase.TxnRunner, error) {
		if runner == nil {
			return nil, errors.New("nil txn runner")
		}
		return runner, nil
	}
}
