// SPDX-License-Identifier: MIT
// Package core defines the indexed element store shared by every lattix
// package: the universe of a finite poset is frozen into an immutable list
// and each value is addressed by a stable zero-based index.
//
// This file declares Edge, KeyFunc and the sentinel errors.
//
// Errors:
//
//	ErrIndexOutOfRange  - index is negative or >= universe size.
//	ErrElementNotFound  - value has no index in the store.
//	ErrDuplicateElement - two universe values map to the same key.
package core

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for element store operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrElementNotFound indicates a value that is not part of the universe.
	ErrElementNotFound = errors.New("core: element not found")

	// ErrDuplicateElement indicates two universe values sharing one key.
	ErrDuplicateElement = errors.New("core: duplicate element")
)

// Edge is a covering pair: Upper covers Lower.
type Edge struct {
	// Lower is the index of the covered element.
	Lower int

	// Upper is the index of the covering element.
	Upper int
}

// String renders the edge as "lower->upper".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.Lower, e.Upper)
}

// CompareEdges orders edges by Lower, then by Upper.
// It is suitable for slices.SortFunc and yields the export order.
func CompareEdges(a, b Edge) int {
	if c := cmp.Compare(a.Lower, b.Lower); c != 0 {
		return c
	}

	return cmp.Compare(a.Upper, b.Upper)
}

// KeyFunc maps a universe value to the string used for reverse lookup.
// Keys must be unique within one universe.
type KeyFunc[T any] func(v T) string

// DefaultKey keys a value by its fmt.Sprint form.
func DefaultKey[T any](v T) string {
	return fmt.Sprint(v)
}
