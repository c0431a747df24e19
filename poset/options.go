// SPDX-License-Identifier: MIT

package poset

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lattix/core"
)

// DefaultClosureThreshold is the largest universe for which a full
// closure bit-matrix is precomputed on first order query. Larger posets
// compute principal filters/ideals on demand and memoize them per element.
const DefaultClosureThreshold = 2048

// Option configures a Poset before construction.
type Option[T any] func(*options[T])

// options holds resolved construction settings.
type options[T any] struct {
	closureThreshold int
	key              core.KeyFunc[T]
	logger           *slog.Logger
	err              error // first invalid option, surfaced by New
}

// defaultOptions returns threshold DefaultClosureThreshold, fmt.Sprint keys
// and a discarding logger.
func defaultOptions[T any]() options[T] {
	return options[T]{
		closureThreshold: DefaultClosureThreshold,
		key:              core.DefaultKey[T],
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithClosureThreshold sets the matrix/on-demand switch point.
// 0 forces on-demand reachability; negative values are rejected.
func WithClosureThreshold[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: closure threshold %d", ErrInvalidOption, n)
			return
		}
		o.closureThreshold = n
	}
}

// WithKey sets the key function used for value → index lookup.
// A nil fn keeps the default.
func WithKey[T any](fn core.KeyFunc[T]) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.key = fn
		}
	}
}

// WithLogger routes construction diagnostics to l. A nil l keeps the default.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.logger = l
		}
	}
}

// ClosureMode reports how order queries are answered.
type ClosureMode int

const (
	// ModeMatrix answers from a precomputed reflexive-transitive closure.
	ModeMatrix ClosureMode = iota
	// ModeOnDemand answers from per-element BFS results, memoized.
	ModeOnDemand
)

// String returns "matrix" or "on-demand".
func (m ClosureMode) String() string {
	if m == ModeMatrix {
		return "matrix"
	}

	return "on-demand"
}
