// SPDX-License-Identifier: MIT
// Package: lattix/poset
//
// errors.go - sentinel errors for the poset package.
//
// Error policy:
//   • Every construction failure matches ErrConstruction AND one cause
//     sentinel below (ErrCycle, ErrCoverOutOfRange, ...), so callers can
//     branch on either with errors.Is.
//   • Duplicate universe values surface core.ErrDuplicateElement as the cause.
//   • Query-time index errors surface core.ErrIndexOutOfRange and leave the
//     poset usable.

package poset

import (
	"errors"
	"fmt"
)

// ErrConstruction marks any failed poset construction. No partially built
// poset is ever returned alongside it.
var ErrConstruction = errors.New("poset: construction failed")

// ErrShape indicates a cover (or filter) table whose length does not fit the universe.
var ErrShape = errors.New("poset: table does not match universe size")

// ErrCoverOutOfRange indicates a cover or filter entry outside [0, n).
var ErrCoverOutOfRange = errors.New("poset: index in cover relation out of range")

// ErrSelfCover indicates an element listed as its own upper cover.
var ErrSelfCover = errors.New("poset: element covers itself")

// ErrCycle indicates that the transitive closure of the covers is not antisymmetric.
var ErrCycle = errors.New("poset: cyclic cover relation")

// ErrRedundantCover indicates an upper-cover entry that is already implied
// by another cover of the same element. The cover relation must be the Hasse
// diagram itself; such entries are rejected rather than dropped.
var ErrRedundantCover = errors.New("poset: cover entry implied by transitivity")

// ErrNotTransitive indicates filter data (or a leq predicate) that is not
// the principal filter family of the order it induces.
var ErrNotTransitive = errors.New("poset: order relation is not transitive")

// ErrInvalidOption indicates a rejected functional option.
var ErrInvalidOption = errors.New("poset: invalid option")

// ErrNilPredicate indicates a nil leq predicate passed to FromLeq.
var ErrNilPredicate = errors.New("poset: nil predicate")

// constructionErr wraps cause under ErrConstruction with operation context.
func constructionErr(op string, cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w: %s", op, ErrConstruction, cause, fmt.Sprintf(format, args...))
}
