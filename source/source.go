// SPDX-License-Identifier: MIT
// Package: lattix/source
//
// source.go - the Source capability, the Data variant it produces, and
// Build, the single entry point from a source to a Lattice.
//
// Data is a tagged variant: exactly one of Upper (explicit covers) or
// Filters (principal filters, covers derived) is used. Build picks
// poset.New or poset.FromFilters accordingly and never returns a partially
// built lattice.

package source

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/poset"
)

var (
	// ErrNilSource indicates Build was called without a source.
	ErrNilSource = errors.New("source: nil source")

	// ErrNilFunc indicates a variant missing its predicate or operation.
	ErrNilFunc = errors.New("source: nil function")

	// ErrInconsistentOperations indicates join and meet that do not induce
	// the same order, or that are not idempotent or closed on the carrier.
	ErrInconsistentOperations = errors.New("source: join and meet disagree on the order")

	// ErrAmbiguousData indicates Data with both Upper and Filters set.
	ErrAmbiguousData = errors.New("source: both covers and filters given")
)

// Data is what a Source produces: a universe plus either its upper covers
// or its principal filters (Filters[i] lists the elements ≥ Universe[i]).
type Data[T any] struct {
	Universe []T
	Upper    [][]int
	Filters  [][]int
}

// Source produces the inputs of an ordered set.
type Source[T any] interface {
	Produce() (Data[T], error)
}

// Kind names a source variant in logs and metrics.
type Kind interface {
	Kind() string
}

// Build produces data from src and constructs the lattice.
// Construction errors wrap poset.ErrConstruction; adapter errors wrap the
// sentinels of this package.
func Build[T any](src Source[T], opts ...poset.Option[T]) (l *lattice.Lattice[T], err error) {
	kind := "custom"
	if k, ok := src.(Kind); ok {
		kind = k.Kind()
	}
	defer func() { observeBuild(kind, err) }()

	if src == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilSource)
	}
	data, err := src.Produce()
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", kind, err)
	}

	var p *poset.Poset[T]
	switch {
	case data.Upper != nil && data.Filters != nil:
		return nil, fmt.Errorf("Build(%s): %w", kind, ErrAmbiguousData)
	case data.Filters != nil:
		p, err = poset.FromFilters(data.Universe, data.Filters, opts...)
	default:
		p, err = poset.New(data.Universe, data.Upper, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", kind, err)
	}

	return lattice.New(p), nil
}
