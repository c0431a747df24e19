// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels wrapped with operation context; tests
// match them via errors.Is. No algorithm panics on caller input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or edge endpoint is outside
	// [0, n). Public setters return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
