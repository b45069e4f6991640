// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package database

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	"github.com/juju/errors"

	coredatabase "github.com/juju/stakeledger/core/database"
)

// Delta is a single schema change.
type Delta struct {
	stmt string
	args []any
}

// MakeDelta returns a Delta for the statement and its bind arguments.
func MakeDelta(stmt string, args ...any) Delta {
	return Delta{stmt: stmt, args: args}
}

func (d Delta) hash() string {
	sum := sha256.Sum256([]byte(d.stmt))
	return hex.EncodeToString(sum[:])
}

// Schema is an ordered list of deltas. Deltas are only ever appended; an
// applied delta is never changed.
type Schema struct {
	deltas []Delta
}

// NewSchema returns a schema made of deltas.
func NewSchema(deltas ...Delta) *Schema {
	return &Schema{deltas: deltas}
}

// ChangeSet reports the number of deltas applied before and after an
// Ensure. Post minus Current is the number newly applied.
type ChangeSet struct {
	Current, Post int
}

const createPatchTable = `
CREATE TABLE IF NOT EXISTS schema_patch (
    version INT PRIMARY KEY,
    hash    TEXT NOT NULL
);`

// Ensure applies every delta that has not been applied yet, in order,
// inside a single transaction. It fails if an applied delta no longer
// matches its recorded hash, or if more deltas were applied than the
// schema holds.
func (s *Schema) Ensure(ctx context.Context, runner coredatabase.TxnRunner) (ChangeSet, error) {
	var changes ChangeSet
	err := runner.StdTxn(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createPatchTable); err != nil {
			return errors.Annotate(err, "creating schema patch table")
		}

		applied, err := appliedHashes(ctx, tx)
		if err != nil {
			return errors.Trace(err)
		}
		changes = ChangeSet{Current: len(applied), Post: len(applied)}
		if len(applied) > len(s.deltas) {
			return errors.Errorf("database has %d schema patches applied, only %d known", len(applied), len(s.deltas))
		}

		for i, delta := range s.deltas {
			if i < len(applied) {
				if applied[i] != delta.hash() {
					return errors.Errorf("schema patch %d has changed since it was applied", i)
				}
				continue
			}
			if _, err := tx.ExecContext(ctx, delta.stmt, delta.args...); err != nil {
				return errors.Annotatef(err, "applying schema patch %d", i)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_patch (version, hash) VALUES (?, ?)", i, delta.hash(),
			); err != nil {
				return errors.Annotatef(err, "recording schema patch %d", i)
			}
			changes.Post++
		}
		return nil
	})
	return changes, errors.Trace(err)
}

func appliedHashes(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT hash FROM schema_patch ORDER BY version")
	if err != nil {
		return nil, errors.Annotate(err, "reading schema patches")
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, errors.Trace(err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, errors.Trace(rows.Err())
}
