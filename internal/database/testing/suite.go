// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	coredatabase "github.com/juju/stakeledger/core/database"
	"github.com/juju/stakeledger/internal/database"
)

// SQLiteSuite provides each test with a fresh, file backed SQLite
// database.
type SQLiteSuite struct {
	testing.IsolationSuite

	// Verbose dumps applied schema changes to the test log.
	Verbose bool

	db     *sql.DB
	runner coredatabase.TxnRunner
}

// SetUpTest opens a new database in a temporary directory.
func (s *SQLiteSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)

	db, err := database.OpenSQLite(filepath.Join(c.MkDir(), "ledger.db"))
	c.Assert(err, jc.ErrorIsNil)
	s.db = db
	s.runner = database.NewTxnRunner(db)
}

// TearDownTest closes the database.
func (s *SQLiteSuite) TearDownTest(c *gc.C) {
	if s.db != nil {
		c.Check(s.db.Close(), jc.ErrorIsNil)
		s.db = nil
	}
	s.IsolationSuite.TearDownTest(c)
}

// DB returns the raw database handle.
func (s *SQLiteSuite) DB() *sql.DB {
	return s.db
}

// TxnRunner returns the transaction runner bound to the database.
func (s *SQLiteSuite) TxnRunner() coredatabase.TxnRunner {
	return s.runner
}

// TxnRunnerFactory returns a factory yielding the suite's runner.
func (s *SQLiteSuite) TxnRunnerFactory() coredatabase.TxnRunnerFactory {
	return database.TxnRunnerFactory(s.runner)
}

// ApplyDDL applies schema to the suite's database.
func (s *SQLiteSuite) ApplyDDL(c *gc.C, schema *database.Schema) {
	changes, err := schema.Ensure(context.Background(), s.runner)
	c.Assert(err, jc.ErrorIsNil)
	if s.Verbose {
		c.Logf("applied %d schema patches", changes.Post-changes.Current)
	}
}
