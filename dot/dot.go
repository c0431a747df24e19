// SPDX-License-Identifier: MIT
// Package dot renders export.GraphData as Graphviz DOT text and, through
// go-graphviz, as SVG or PNG images.
//
// Encode is fully deterministic: nodes and edges are written in GraphData
// order and every attribute list is fixed, so the output is suitable for
// golden-file comparison. The core packages never import dot.
package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lattix/export"
)

const tmplGraph = `digraph {{quote .Name}} {
	rankdir={{quote .RankDir}};
	node [shape={{quote .Shape}}];
{{- range .Nodes}}
	{{.ID}} [label={{quote .Label}}];
{{- end}}
{{- range .Edges}}
	{{.From}} -> {{.To}}{{if .Labeled}} [label={{quote .Label}}]{{end}};
{{- end}}
}
`

var graphTemplate = template.Must(template.New("graph").
	Funcs(template.FuncMap{"quote": quote}).
	Parse(tmplGraph))

// dotEscaper escapes the two characters DOT treats specially inside a
// double-quoted string. Everything else, control characters and non-ASCII
// included, is written as is.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// Format is an image format understood by Render.
type Format = graphviz.Format

// Supported image formats.
const (
	SVG = graphviz.SVG
	PNG = graphviz.PNG
)

// Option configures Encode and Render.
type Option func(*options)

type options struct {
	name    string
	rankDir string
	shape   string
}

func defaultOptions() options {
	return options{name: "hasse", rankDir: "BT", shape: "ellipse"}
}

// WithName sets the graph name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithRankDir sets the layout direction ("BT" draws bottom at the bottom).
func WithRankDir(dir string) Option {
	return func(o *options) { o.rankDir = dir }
}

// WithShape sets the node shape.
func WithShape(shape string) Option {
	return func(o *options) { o.shape = shape }
}

type dotNode struct {
	ID    int
	Label string
}

type dotEdge struct {
	From, To int
	Labeled  bool
	Label    string
}

type dotGraph struct {
	Name    string
	RankDir string
	Shape   string
	Nodes   []dotNode
	Edges   []dotEdge
}

// Encode writes gd as DOT text to w.
func Encode(w io.Writer, gd export.GraphData, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := dotGraph{Name: o.name, RankDir: o.rankDir, Shape: o.shape}
	for _, n := range gd.Nodes {
		g.Nodes = append(g.Nodes, dotNode{ID: n.ID, Label: n.Label})
	}
	for _, e := range gd.Edges {
		de := dotEdge{From: e.Source, To: e.Target}
		if e.Label != nil {
			de.Labeled, de.Label = true, *e.Label
		}
		g.Edges = append(g.Edges, de)
	}

	if err := graphTemplate.Execute(w, g); err != nil {
		return fmt.Errorf("dot: encode: %w", err)
	}

	return nil
}

// Render lays out gd with Graphviz and writes the image to w.
func Render(w io.Writer, gd export.GraphData, format Format, opts ...Option) (err error) {
	var buf bytes.Buffer
	if err = Encode(&buf, gd, opts...); err != nil {
		return err
	}

	g := graphviz.New()
	graph, err := graphviz.ParseBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("dot: parse: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		g.Close()
	}()

	if err = g.Render(graph, format, w); err != nil {
		return fmt.Errorf("dot: render %s: %w", format, err)
	}

	return nil
}
