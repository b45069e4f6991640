// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package txn

import (
	"context"
	"database/sql"
	"time"

	"github.com/canonical/sqlair"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/retry"
)

// Logger is the logging interface used by the transaction runner.
type Logger interface {
	Warningf(string, ...any)
	Debugf(string, ...any)
	Tracef(string, ...any)
}

// RetryStrategy runs fn until it succeeds, returns a fatal error or the
// strategy gives up.
type RetryStrategy func(context.Context, func() error) error

type option struct {
	logger        Logger
	retryStrategy RetryStrategy
}

// Option configures a RetryingTxnRunner.
type Option func(*option)

// WithLogger sets the logger used by the runner.
func WithLogger(logger Logger) Option {
	return func(o *option) {
		o.logger = logger
	}
}

// WithRetryStrategy sets the strategy used to retry transient failures.
func WithRetryStrategy(retryStrategy RetryStrategy) Option {
	return func(o *option) {
		o.retryStrategy = retryStrategy
	}
}

func newOptions() *option {
	logger := loggo.GetLogger("stakeledger.database.txn")
	return &option{
		logger:        logger,
		retryStrategy: DefaultRetryStrategy(clock.WallClock, logger),
	}
}

// RetryingTxnRunner runs transactions against the ledger database,
// retrying when the database reports a transient failure.
type RetryingTxnRunner struct {
	logger        Logger
	retryStrategy RetryStrategy
}

// NewRetryingTxnRunner returns a new RetryingTxnRunner.
func NewRetryingTxnRunner(opts ...Option) *RetryingTxnRunner {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &RetryingTxnRunner{
		logger:        o.logger,
		retryStrategy: o.retryStrategy,
	}
}

// Txn executes fn inside a single sqlair transaction. The transaction is
// rolled back if fn returns an error and committed otherwise. The whole
// transaction is retried on transient failures.
func (t *RetryingTxnRunner) Txn(ctx context.Context, db *sqlair.DB, fn func(context.Context, *sqlair.TX) error) error {
	return t.Retry(ctx, func() error {
		if err := ctx.Err(); err != nil {
			return errors.Trace(err)
		}

		tx, err := db.Begin(ctx, nil)
		if err != nil {
			return errors.Trace(err)
		}

		if err := fn(ctx, tx); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				t.logger.Warningf("failed to rollback transaction: %v", rErr)
			}
			return errors.Trace(err)
		}

		return errors.Trace(tx.Commit())
	})
}

// StdTxn executes fn inside a single database/sql transaction. It does not
// retry; callers that want retries wrap it with Retry.
func (t *RetryingTxnRunner) StdTxn(ctx context.Context, db *sql.DB, fn func(context.Context, *sql.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Trace(err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Trace(err)
	}

	if err := fn(ctx, tx); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			t.logger.Warningf("failed to rollback transaction: %v", rErr)
		}
		return errors.Trace(err)
	}

	return errors.Trace(tx.Commit())
}

// Retry runs fn using the runner's retry strategy.
func (t *RetryingTxnRunner) Retry(ctx context.Context, fn func() error) error {
	return t.retryStrategy(ctx, fn)
}

// DefaultRetryStrategy retries retryable errors with an exponential
// backoff, for at most 250 attempts.
func DefaultRetryStrategy(clock clock.Clock, logger Logger) RetryStrategy {
	return func(ctx context.Context, fn func() error) error {
		return retry.Call(retry.CallArgs{
			Func: fn,
			IsFatalError: func(err error) bool {
				return !IsErrRetryable(err)
			},
			NotifyFunc: func(err error, attempt int) {
				logger.Debugf("retrying transaction (attempt %d): %v", attempt, err)
			},
			Attempts:    250,
			Delay:       time.Millisecond,
			MaxDelay:    100 * time.Millisecond,
			BackoffFunc: retry.ExpBackoff(time.Millisecond, 100*time.Millisecond, 1.5, true),
			Clock:       clock,
			Stop:        ctx.Done(),
		})
	}
}
