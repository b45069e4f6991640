// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package weight describes the cost of state transition work as reported
// to the host's resource accounting.
package weight

import (
	"fmt"
	"math"
)

// Weight is a two dimensional cost: computation time and the size of the
// storage proof the work requires.
type Weight struct {
	// RefTime is the computation time in picoseconds on reference hardware.
	RefTime uint64
	// ProofSize is the storage proof size in bytes.
	ProofSize uint64
}

// Zero is the weight of no work.
var Zero = Weight{}

// FromRefTime returns a weight that only consumes computation time.
func FromRefTime(refTime uint64) Weight {
	return Weight{RefTime: refTime}
}

// Add returns the saturating sum of w and other.
func (w Weight) Add(other Weight) Weight {
	return Weight{
		RefTime:   saturatingAdd(w.RefTime, other.RefTime),
		ProofSize: saturatingAdd(w.ProofSize, other.ProofSize),
	}
}

// Mul returns w scaled by n, saturating at the maximum weight.
func (w Weight) Mul(n uint64) Weight {
	return Weight{
		RefTime:   saturatingMul(w.RefTime, n),
		ProofSize: saturatingMul(w.ProofSize, n),
	}
}

// IsZero reports whether w is the weight of no work.
func (w Weight) IsZero() bool {
	return w == Zero
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return fmt.Sprintf("Weight(ref_time: %d, proof_size: %d)", w.RefTime, w.ProofSize)
}

// DBWeight is the cost of a single storage read and a single storage write.
type DBWeight struct {
	Read  uint64
	Write uint64
}

// DefaultDBWeight matches the cost of RocksDB backed storage on reference
// hardware.
var DefaultDBWeight = DBWeight{
	Read:  25_000 * 1_000,
	Write: 100_000 * 1_000,
}

// Reads returns the weight of n storage reads.
func (d DBWeight) Reads(n uint64) Weight {
	return FromRefTime(d.Read).Mul(n)
}

// Writes returns the weight of n storage writes.
func (d DBWeight) Writes(n uint64) Weight {
	return FromRefTime(d.Write).Mul(n)
}

// ReadsWrites returns the weight of r storage reads and w storage writes.
func (d DBWeight) ReadsWrites(r, w uint64) Weight {
	return d.Reads(r).Add(d.Writes(w))
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}
