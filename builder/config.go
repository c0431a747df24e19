// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn          ("0","1","2",...)
//   • atomFn      = lowerExcelID         ("a","b",...,"z","aa",...)
//   • maxElements = DefaultMaxElements
//
// newBuilderConfig applies options in order; later options override earlier.

package builder

import (
	"strings"
)

// builderConfig aggregates all knobs used by the families.
// It is passed by value to constructors.
type builderConfig struct {
	// Chain element names: index -> ID.
	idFn func(int) string
	// Atom names of Antichain: index -> ID.
	atomFn func(int) string
	// Upper bound on the number of generated elements.
	maxElements int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		atomFn:      lowerExcelID,
		maxElements: DefaultMaxElements,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// lowerExcelID renders idx as a lowercase Excel-style column ("a", "z", "aa").
func lowerExcelID(idx int) string {
	return strings.ToLower(ExcelColumnIDFn(idx))
}

// names renders n element names with fn. A panicking fn or duplicate names
// are reported as ErrOptionViolation.
func names(method string, fn func(int) string, n int) (ids []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ids, err = nil, builderErrorf(method, "id scheme: %v: %w", r, ErrOptionViolation)
		}
	}()

	ids = make([]string, n)
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id := fn(i)
		if j, dup := seen[id]; dup {
			return nil, builderErrorf(method, "id scheme: duplicate %q at %d and %d: %w", id, j, i, ErrOptionViolation)
		}
		seen[id] = i
		ids[i] = id
	}

	return ids, nil
}
