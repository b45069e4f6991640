// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrade

import "fmt"

// StorageVersion is the version of a pallet's on-ledger storage layout.
// A pallet that has never been upgraded is at version 0.
type StorageVersion uint16

// String implements fmt.Stringer.
func (v StorageVersion) String() string {
	return fmt.Sprintf("v%d", uint16(v))
}
