// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package account

import (
	"golang.org/x/crypto/blake2b"
)

// modulePrefix is prepended to every account derived for a pallet.
var modulePrefix = []byte("modl")

// subAccountTruncating derives an account from the pallet identity and the
// encoded seed. The encoding is read into an identifier, truncating
// anything beyond IDLength bytes and zero filling anything short of it.
func subAccountTruncating(pallet PalletID, seed []byte) ID {
	var id ID
	n := copy(id[:], modulePrefix)
	n += copy(id[n:], pallet[:])
	copy(id[n:], seed)
	return id
}

// DeriveV1 is the first generation derivation of a typed sub account for
// seed. The tag and seed are encoded directly after the pallet prefix, so
// only the first 19 bytes of the seed survive truncation and seeds sharing
// that prefix collide.
func DeriveV1(pallet PalletID, t Type, seed ID) ID {
	encoded := make([]byte, 0, 1+IDLength)
	encoded = append(encoded, byte(t))
	encoded = append(encoded, seed[:]...)
	return subAccountTruncating(pallet, encoded)
}

// DeriveV2 is the current derivation of a typed sub account for seed. The
// seed is hashed first so every seed byte contributes to the identifier
// that follows the pallet prefix and tag.
func DeriveV2(pallet PalletID, t Type, seed ID) ID {
	encoded := make([]byte, 0, 1+IDLength)
	encoded = append(encoded, byte(t))
	encoded = append(encoded, seed[:]...)
	digest := blake2b.Sum256(encoded)

	tagged := make([]byte, 0, 1+len(digest))
	tagged = append(tagged, byte(t))
	tagged = append(tagged, digest[:]...)
	return subAccountTruncating(pallet, tagged)
}

// ProxyDelegatorV1 returns the first generation proxy delegator for agent.
func ProxyDelegatorV1(pallet PalletID, agent Agent) Delegator {
	return Delegator(DeriveV1(pallet, ProxyDelegator, agent.ID()))
}

// ProxyDelegatorV2 returns the current proxy delegator for agent.
func ProxyDelegatorV2(pallet PalletID, agent Agent) Delegator {
	return Delegator(DeriveV2(pallet, ProxyDelegator, agent.ID()))
}
