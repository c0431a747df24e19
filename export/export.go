// SPDX-License-Identifier: MIT
// Package export flattens a poset and optional edge labels into GraphData,
// the serialization boundary consumed by visualization adapters.
//
// Ordering is fixed: nodes by index, edges by (Source, Target). Exporting
// the same poset twice yields equal values, and the result shares no memory
// with the poset.
package export

import (
	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/label"
	"github.com/katalvlaran/lattix/poset"
)

// Node is one element: its index and display label.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Edge is one cover pair; Label is nil when the edge is unlabeled.
type Edge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Label  *string `json:"label,omitempty"`
}

// Diagnostic is a labeling failure in serializable form: the cover edge
// and the error text.
type Diagnostic struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Error  string `json:"error"`
}

// GraphData is a Hasse diagram snapshot. Diagnostics lists the edges a
// labeling run left unlabeled; it is omitted from JSON when empty.
type GraphData struct {
	Nodes       []Node       `json:"nodes"`
	Edges       []Edge       `json:"edges"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Option configures ToGraphData.
type Option func(*options)

type options struct {
	labels      map[core.Edge]string
	diagnostics []label.Diagnostic
}

// WithLabels attaches the labels and diagnostics of a labeling run.
func WithLabels(r label.Result) Option {
	return func(o *options) {
		o.labels = r.Strings()
		o.diagnostics = r.Diagnostics
	}
}

// WithEdgeLabels attaches arbitrary string labels keyed by cover edge.
// Keys that are not cover edges are ignored.
func WithEdgeLabels(m map[core.Edge]string) Option {
	return func(o *options) {
		o.labels = m
	}
}

// ToGraphData exports p. Complexity: O(n + e).
func ToGraphData[T any](p *poset.Poset[T], opts ...Option) GraphData {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	gd := GraphData{
		Nodes:       make([]Node, p.Len()),
		Edges:       make([]Edge, 0, p.EdgeCount()),
		Diagnostics: make([]Diagnostic, 0, len(o.diagnostics)),
	}
	for _, d := range o.diagnostics {
		gd.Diagnostics = append(gd.Diagnostics, Diagnostic{
			Source: d.Edge.Lower,
			Target: d.Edge.Upper,
			Error:  d.Err.Error(),
		})
	}
	for i := range gd.Nodes {
		gd.Nodes[i] = Node{ID: i, Label: p.Label(i)}
	}
	for _, e := range p.Edges() {
		edge := Edge{Source: e.Lower, Target: e.Upper}
		if s, ok := o.labels[e]; ok {
			edge.Label = &s
		}
		gd.Edges = append(gd.Edges, edge)
	}

	return gd
}

// Clone returns a deep copy.
func (g GraphData) Clone() GraphData {
	out := GraphData{
		Nodes:       append([]Node{}, g.Nodes...),
		Edges:       make([]Edge, len(g.Edges)),
		Diagnostics: append([]Diagnostic{}, g.Diagnostics...),
	}
	for i, e := range g.Edges {
		if e.Label != nil {
			s := *e.Label
			e.Label = &s
		}
		out.Edges[i] = e
	}

	return out
}

// Labeled returns the number of edges carrying a label.
func (g GraphData) Labeled() int {
	total := 0
	for _, e := range g.Edges {
		if e.Label != nil {
			total++
		}
	}

	return total
}
