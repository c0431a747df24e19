// SPDX-License-Identifier: MIT
// Package: lattix/label
//
// label.go - classification of cover edges by an external function.
//
// Contract:
//   - Apply calls fn exactly once per cover edge, in (Lower, Upper) order.
//   - A failing call (error, panic, or a code outside 1..5) leaves the edge
//     unlabeled and appends a Diagnostic; Apply itself never fails.

package label

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/poset"
)

// Type is a tame congruence theory type code, 1 through 5.
type Type int

const (
	TypeUnary       Type = iota + 1 // 1
	TypeAffine                      // 2
	TypeBoolean                     // 3
	TypeLattice                     // 4
	TypeSemilattice                 // 5
)

var typeNames = [...]string{"", "unary", "affine", "boolean", "lattice", "semilattice"}

// Valid reports whether t is one of the five type codes.
func (t Type) Valid() bool {
	return t >= TypeUnary && t <= TypeSemilattice
}

// String returns the numeric code ("1".."5"), the form used for edge labels.
func (t Type) String() string {
	return fmt.Sprintf("%d", int(t))
}

// Name returns the descriptive name ("unary", ...), or "invalid".
func (t Type) Name() string {
	if !t.Valid() {
		return "invalid"
	}

	return typeNames[t]
}

var (
	// ErrUnclassified is returned by labeling functions that cannot classify an edge.
	ErrUnclassified = errors.New("label: edge cannot be classified")

	// ErrInvalidType indicates a labeling function returned a code outside 1..5.
	ErrInvalidType = errors.New("label: invalid type code")

	// ErrPanic wraps a panic raised by a labeling function.
	ErrPanic = errors.New("label: labeling function panicked")
)

// Func classifies the interval [lower, upper] of a cover edge.
type Func[T, A any] func(lower, upper T, algebra A) (Type, error)

// Diagnostic records one edge that could not be labeled.
type Diagnostic struct {
	Edge core.Edge
	Err  error
}

// String renders "l->u: err".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Edge, d.Err)
}

// Result holds the labels of classified edges and the diagnostics of the rest.
type Result struct {
	Labels      map[core.Edge]Type
	Diagnostics []Diagnostic
}

// Strings returns the labels in export form.
func (r Result) Strings() map[core.Edge]string {
	out := make(map[core.Edge]string, len(r.Labels))
	for e, t := range r.Labels {
		out[e] = t.String()
	}

	return out
}

// Option configures Apply.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger reports each diagnostic at Warn level on l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Apply labels every cover edge of p. A nil fn yields an empty Result.
func Apply[T, A any](p *poset.Poset[T], algebra A, fn Func[T, A], opts ...Option) Result {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Labels: map[core.Edge]Type{}, Diagnostics: []Diagnostic{}}
	if fn == nil {
		return res
	}

	for _, e := range p.Edges() {
		lower, _ := p.Element(e.Lower)
		upper, _ := p.Element(e.Upper)
		t, err := classify(fn, lower, upper, algebra)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Edge: e, Err: err})
			o.logger.Warn("edge left unlabeled", "edge", e.String(), "err", err)
			continue
		}
		res.Labels[e] = t
	}

	return res
}

// classify runs fn with panic recovery and validates its result.
func classify[T, A any](fn Func[T, A], lower, upper T, algebra A) (t Type, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = 0, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	t, err = fn(lower, upper, algebra)
	if err != nil {
		return 0, err
	}
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidType, int(t))
	}

	return t, nil
}
