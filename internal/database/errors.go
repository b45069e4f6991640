// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package database

import (
	"github.com/juju/errors"
	"github.com/mattn/go-sqlite3"
)

// IsErrConstraintPrimaryKey reports whether err is a primary key
// constraint violation.
func IsErrConstraintPrimaryKey(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintPrimaryKey)
}

// IsErrConstraintForeignKey reports whether err is a foreign key
// constraint violation.
func IsErrConstraintForeignKey(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintForeignKey)
}

func hasExtendedCode(err error, code sqlite3.ErrNoExtended) bool {
	if err == nil {
		return false
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == code
	}
	return false
}
