// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/juju/errors"
)

// IDLength is the length in bytes of an account identifier.
const IDLength = 32

// ID is an opaque ledger account identifier.
type ID [IDLength]byte

// ParseID parses the hex form of an account identifier. The "0x" prefix
// is optional.
func ParseID(s string) (ID, error) {
	var id ID
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return id, errors.NotValidf("account id %q", s)
	}
	if len(raw) != IDLength {
		return id, errors.NotValidf("account id %q of length %d", s, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the "0x" prefixed hex form of the identifier.
func (id ID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero reports whether the identifier is all zero bytes.
func (id ID) IsZero() bool {
	return id == ID{}
}

// Agent is the role an account plays when it is the beneficiary of
// delegated stake.
type Agent ID

// ID returns the underlying account identifier.
func (a Agent) ID() ID {
	return ID(a)
}

// String implements fmt.Stringer.
func (a Agent) String() string {
	return ID(a).String()
}

// Delegator is the role an account plays when it holds stake delegated to
// an agent.
type Delegator ID

// ID returns the underlying account identifier.
func (d Delegator) ID() ID {
	return ID(d)
}

// String implements fmt.Stringer.
func (d Delegator) String() string {
	return ID(d).String()
}
