// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in the lattice families.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that got ≥ min.
// Returns "<Method>: n=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "n=%d < min=%d: %w", got, min, ErrTooFewElements)
	}

	return nil
}

// validateMax ensures that a family of size got fits under the configured cap.
//
// Complexity: O(1) time and space.
func validateMax(method string, got, max int) error {
	if got > max {
		return builderErrorf(method, "%d elements > max=%d: %w", got, max, ErrTooLarge)
	}

	return nil
}
