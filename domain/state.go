// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package domain

import (
	"sync"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/database"
)

// StateBase defines a base struct for requesting a database. This will
// cache the database for the lifetime of the state, along with every
// prepared statement.
type StateBase struct {
	mu         sync.Mutex
	getDB      database.TxnRunnerFactory
	db         database.TxnRunner
	statements map[string]*sqlair.Statement
}

// NewStateBase returns a new StateBase.
func NewStateBase(getDB database.TxnRunnerFactory) *StateBase {
	return &StateBase{
		getDB:      getDB,
		statements: make(map[string]*sqlair.Statement),
	}
}

// DB returns the database for the state.
func (st *StateBase) DB() (database.TxnRunner, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.getDB == nil {
		return nil, errors.New("nil getDB")
	}
	if st.db != nil {
		return st.db, nil
	}

	db, err := st.getDB()
	if err != nil {
		return nil, errors.Trace(err)
	}
	st.db = db
	return st.db, nil
}

// Prepare prepares a SQLair query. If the query has been prepared
// previously it is retrieved from the statement cache.
//
// Every type that appears in the query must be passed as a sample, in
// the same way as sqlair.Prepare.
func (st *StateBase) Prepare(query string, typeSamples ...any) (*sqlair.Statement, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if stmt, ok := st.statements[query]; ok {
		return stmt, nil
	}

	stmt, err := sqlair.Prepare(query, typeSamples...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	st.statements[query] = stmt
	return stmt, nil
}
