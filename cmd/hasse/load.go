// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lattix/builder"
	"github.com/katalvlaran/lattix/carrier"
	"github.com/katalvlaran/lattix/export"
	"github.com/katalvlaran/lattix/label"
	"github.com/katalvlaran/lattix/lattice"
	"github.com/katalvlaran/lattix/poset"
	"github.com/katalvlaran/lattix/source"
)

// loadConfig carries the flag values load needs.
type loadConfig struct {
	family      string
	n           int
	maxElements int
	closure     int // < 0 keeps the poset default
	labels      bool
	properties  bool // run the whole-lattice checks (info only)
	logger      *slog.Logger
}

// report is the type-erased view of a built lattice that the subcommands print.
type report struct {
	Family   string
	Elements []string
	Covers   int
	Closure  string
	Bounded  bool
	Bottom   string
	Top      string

	Atoms            []string
	Coatoms          []string
	JoinIrreducibles []string
	MeetIrreducibles []string

	// Set only when loadConfig.properties is true. LatticeErr is nil when
	// every pair has a join and a meet.
	Checked      bool
	LatticeErr   error
	Distributive bool
	Modular      bool
	Complemented bool

	Graph export.GraphData
}

// load builds the requested family and summarizes it.
func load(cfg loadConfig) (*report, error) {
	opts := []builder.BuilderOption{builder.WithMaxElements(cfg.maxElements)}
	if cfg.labels && cfg.family != "partition" {
		return nil, fmt.Errorf("hasse: -label: no labeling function for family %q", cfg.family)
	}

	switch cfg.family {
	case "chain":
		src, err := builder.Chain(cfg.n, opts...)
		return summarize(cfg, src, err, nil)
	case "antichain":
		src, err := builder.Antichain(cfg.n, opts...)
		return summarize(cfg, src, err, nil)
	case "diamond":
		return summarize(cfg, builder.Diamond(), nil, nil)
	case "pentagon":
		return summarize(cfg, builder.Pentagon(), nil, nil)
	case "bowtie":
		return summarize(cfg, builder.Bowtie(), nil, nil)
	case "boolean":
		src, err := builder.Boolean(cfg.n, opts...)
		return summarize(cfg, src, err, nil)
	case "divisors":
		src, err := builder.Divisors(cfg.n, opts...)
		return summarize(cfg, src, err, nil)
	case "partition":
		src, err := builder.PartitionLattice(cfg.n, opts...)
		var fn label.Func[carrier.Partition, builder.Set]
		if cfg.labels {
			fn = builder.SetTypes
		}
		return summarize(cfg, src, err, func(p *poset.Poset[carrier.Partition]) label.Result {
			return label.Apply(p, builder.Set{N: cfg.n}, fn, label.WithLogger(cfg.logger))
		})
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFamily, cfg.family, families)
	}
}

// summarize builds src and collects what the subcommands print. The
// whole-lattice checks run only when cfg.properties is set.
func summarize[T any](cfg loadConfig, src source.Source[T], err error, labeler func(*poset.Poset[T]) label.Result) (*report, error) {
	if err != nil {
		return nil, err
	}
	popts := []poset.Option[T]{poset.WithLogger[T](cfg.logger)}
	if cfg.closure >= 0 {
		popts = append(popts, poset.WithClosureThreshold[T](cfg.closure))
	}
	l, err := source.Build(src, popts...)
	if err != nil {
		return nil, err
	}
	p := l.Poset()

	r := &report{
		Family:   cfg.family,
		Elements: names(l, allIndices(l.Len())),
		Covers:   p.EdgeCount(),
		Closure:  p.ClosureMode().String(),
		Bounded:  l.Bounded(),
	}
	if r.Bounded {
		b, _ := l.Bottom()
		t, _ := l.Top()
		r.Bottom, r.Top = r.Elements[b], r.Elements[t]
		r.Atoms = namesOf(l, l.Atoms)
		r.Coatoms = namesOf(l, l.Coatoms)
		r.JoinIrreducibles = namesOf(l, l.JoinIrreducibles)
		r.MeetIrreducibles = namesOf(l, l.MeetIrreducibles)
	}

	if cfg.properties {
		if err := checkProperties(l, r); err != nil {
			return nil, err
		}
	}

	if labeler != nil {
		res := labeler(p)
		r.Graph = export.ToGraphData(p, export.WithLabels(res))
	} else {
		r.Graph = l.GraphData()
	}
	cfg.logger.Debug("lattice loaded",
		"family", r.Family, "elements", len(r.Elements), "covers", r.Covers, "closure", r.Closure)

	return r, nil
}

// checkProperties fills the lattice checks of r. A non-lattice is reported
// through LatticeErr, not as a failure.
func checkProperties[T any](l *lattice.Lattice[T], r *report) (err error) {
	r.Checked = true
	r.LatticeErr = l.IsLattice()
	if r.LatticeErr != nil {
		return nil
	}
	if r.Distributive, err = l.IsDistributive(); err != nil {
		return err
	}
	if r.Modular, err = l.IsModular(); err != nil {
		return err
	}
	if r.Complemented, err = l.IsComplemented(); err != nil && !errors.Is(err, lattice.ErrUnbounded) {
		return err
	}

	return nil
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

func names[T any](l *lattice.Lattice[T], idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range l.Elements(idx) {
		out[i] = fmt.Sprint(v)
	}

	return out
}

func namesOf[T any](l *lattice.Lattice[T], fn func() ([]int, error)) []string {
	idx, err := fn()
	if err != nil {
		return nil
	}

	return names(l, idx)
}
