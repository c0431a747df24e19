// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name and parameters with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewElements indicates that a size parameter (chain length, number of
// atoms, Boolean rank, n) is below the minimum for the requested family.
// Usage: if errors.Is(err, ErrTooFewElements) { /* report invalid size */ }.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrTooLarge indicates that the family would exceed the configured element
// cap (see WithMaxElements) or a carrier enumeration limit.
var ErrTooLarge = errors.New("builder: lattice too large")

// ErrOptionViolation indicates an option combination the constructor cannot
// honour, such as an ID scheme that yields duplicate element names.
var ErrOptionViolation = errors.New("builder: option violation")

// builderErrorf prefixes a formatted message with the method name.
// Use %w in format to keep a sentinel reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
