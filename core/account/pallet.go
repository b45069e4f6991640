// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"fmt"

	"github.com/juju/errors"
)

// PalletIDLength is the length in bytes of a pallet identity.
const PalletIDLength = 8

// PalletID identifies the ledger module that owns derived accounts.
type PalletID [PalletIDLength]byte

// DelegatedStakingPalletID is the identity of the delegated staking pallet.
var DelegatedStakingPalletID = MustNewPalletID("py/dlstk")

// NewPalletID returns the pallet identity for s, which must be exactly
// eight bytes long.
func NewPalletID(s string) (PalletID, error) {
	var p PalletID
	if len(s) != PalletIDLength {
		return p, errors.NotValidf("pallet id %q (expected %d bytes)", s, PalletIDLength)
	}
	copy(p[:], s)
	return p, nil
}

// MustNewPalletID is NewPalletID but panics on error.
func MustNewPalletID(s string) PalletID {
	p, err := NewPalletID(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String implements fmt.Stringer.
func (p PalletID) String() string {
	return string(p[:])
}

// Type discriminates the purposes accounts are derived for.
type Type uint8

const (
	// ProxyDelegator accounts hold stake delegated on behalf of an agent.
	ProxyDelegator Type = iota
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case ProxyDelegator:
		return "proxy-delegator"
	}
	return fmt.Sprintf("account-type(%d)", uint8(t))
}
