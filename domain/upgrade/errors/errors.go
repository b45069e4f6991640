// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package errors

import "github.com/juju/errors"

const (
	// DowngradeNotSupported describes an error that occurs when recording
	// a storage version lower than the one already on the ledger.
	DowngradeNotSupported = errors.ConstError("storage version downgrade not supported")
)
