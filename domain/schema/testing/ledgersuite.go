// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	gc "gopkg.in/check.v1"

	"github.com/juju/stakeledger/domain/schema"
	databasetesting "github.com/juju/stakeledger/internal/database/testing"
)

// LedgerSuite is used to provide a database to tests. It is pre-populated
// with the ledger schema.
type LedgerSuite struct {
	databasetesting.SQLiteSuite
}

// SetUpTest is responsible for setting up a testing database suite
// initialised with the ledger schema.
func (s *LedgerSuite) SetUpTest(c *gc.C) {
	s.SQLiteSuite.SetUpTest(c)
	s.SQLiteSuite.ApplyDDL(c, schema.LedgerDDL())
}
