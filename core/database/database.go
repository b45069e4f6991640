// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package database

import (
	"context"
	"database/sql"

	"github.com/canonical/sqlair"
)

// TxnRunner defines an interface for running transactions against the
// ledger database.
type TxnRunner interface {
	// Txn executes the input function against the database, using the
	// sqlair package, within a single transaction. Retry semantics are
	// applied automatically based on transient failures. This is the
	// function that almost all downstream database consumers should use.
	Txn(context.Context, func(context.Context, *sqlair.TX) error) error

	// StdTxn executes the input function against the database, within a
	// transaction that depends on the input context. Retry semantics are
	// applied automatically based on transient failures.
	StdTxn(context.Context, func(context.Context, *sql.Tx) error) error
}

// TxnRunnerFactory returns a TxnRunner, or an error if the database is not
// available.
type TxnRunnerFactory func() (TxnRunner, error)
