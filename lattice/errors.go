// SPDX-License-Identifier: MIT
// Package: lattix/lattice
//
// errors.go - sentinel errors and the per-query NotALatticeError.
//
// Error policy:
//   • Query errors are local: a failed Join/Meet leaves the Lattice usable.
//   • errors.Is(err, ErrNotALattice) holds for every *NotALatticeError.
//   • Invalid indices surface core.ErrIndexOutOfRange unchanged.

package lattice

import (
	"errors"
	"fmt"
)

// ErrNotALattice indicates a pair without a unique least upper (or greatest
// lower) bound.
var ErrNotALattice = errors.New("lattice: bound is not unique")

// ErrUnbounded indicates an operation that needs a unique bottom and top on a
// poset lacking one of them.
var ErrUnbounded = errors.New("lattice: poset has no unique bottom and top")

// NotALatticeError reports the pair (A, B) whose join or meet does not exist.
// Bounds lists the minimal common upper bounds (join) or the maximal common
// lower bounds (meet), ascending.
type NotALatticeError struct {
	Op     string // "join" or "meet"
	A, B   int
	Bounds []int
}

// Error implements error.
func (e *NotALatticeError) Error() string {
	kind := "minimal upper bounds"
	if e.Op == opMeet {
		kind = "maximal lower bounds"
	}

	return fmt.Sprintf("lattice: %s(%d, %d) is not unique: %s %v", e.Op, e.A, e.B, kind, e.Bounds)
}

// Unwrap returns ErrNotALattice.
func (e *NotALatticeError) Unwrap() error {
	return ErrNotALattice
}

// unbounded wraps ErrUnbounded with the operation name.
func unbounded(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnbounded)
}
