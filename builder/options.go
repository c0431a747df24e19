// SPDX-License-Identifier: MIT
// Package: lattix/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Family constructors themselves never panic.
//   • Use WithIDScheme to align element names across tests and golden files.

package builder

import "fmt"

// BuilderOption customizes a family constructor by mutating a builderConfig
// before the source is assembled.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the element name generator of Chain: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithAtomScheme sets the atom name generator of Antichain. The names must
// not collide with BottomID or TopID. Panics on nil.
func WithAtomScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithAtomScheme(nil)")
	}
	return func(c *builderConfig) {
		c.atomFn = fn
	}
}

// WithMaxElements caps the number of elements any family may generate.
// Panics if max < 1.
func WithMaxElements(max int) BuilderOption {
	if max < 1 {
		panic(fmt.Sprintf("builder: WithMaxElements(%d)", max))
	}
	return func(c *builderConfig) {
		c.maxElements = max
	}
}
