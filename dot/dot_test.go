package dot_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/dot"
	"github.com/katalvlaran/lattix/export"
	"github.com/katalvlaran/lattix/poset"
)

// encode renders gd to a string or fails the test.
func encode(t *testing.T, gd export.GraphData, opts ...dot.Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dot.Encode(&buf, gd, opts...))

	return buf.Bytes()
}

// TestEncode_Golden compares DOT output with fixtures in testdata/.
func TestEncode_Golden(t *testing.T) {
	chain, err := poset.New([]int{0, 1, 2}, [][]int{{1}, {2}})
	require.NoError(t, err)

	b2, err := poset.New([]string{"{}", "{a}", "{b}", "{a,b}"}, [][]int{{1, 2}, {3}, {3}})
	require.NoError(t, err)
	labels := map[core.Edge]string{{Lower: 0, Upper: 1}: "3", {Lower: 0, Upper: 2}: "3"}

	empty, err := poset.New([]int{}, nil)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "chain3", encode(t, export.ToGraphData(chain)))
	g.Assert(t, "boolean2_labeled", encode(t, export.ToGraphData(b2, export.WithEdgeLabels(labels)), dot.WithName("B2")))
	g.Assert(t, "empty", encode(t, export.ToGraphData(empty)))
}

// TestEncode_Deterministic encodes the same data twice.
func TestEncode_Deterministic(t *testing.T) {
	p, err := poset.New([]int{0, 1, 2, 3}, [][]int{{1, 2}, {3}, {3}})
	require.NoError(t, err)
	gd := export.ToGraphData(p)

	assert.Equal(t, encode(t, gd), encode(t, gd))
}

// TestEncode_Escaping quotes labels and honours options.
func TestEncode_Escaping(t *testing.T) {
	gd := export.GraphData{Nodes: []export.Node{{ID: 0, Label: `say "hi"`}}}
	out := string(encode(t, gd, dot.WithRankDir("LR"), dot.WithShape("box")))

	assert.Contains(t, out, `0 [label="say \"hi\""];`)
	assert.Contains(t, out, `rankdir="LR";`)
	assert.Contains(t, out, `node [shape="box"];`)
}

// TestEncode_Quoting escapes only quotes and backslashes.
func TestEncode_Quoting(t *testing.T) {
	label := "tab\there"
	gd := export.GraphData{
		Nodes: []export.Node{
			{ID: 0, Label: `a\b"c`},
			{ID: 1, Label: "ctl\x01 sep\u2028 é"},
		},
		Edges: []export.Edge{{Source: 0, Target: 1, Label: &label}},
	}
	out := string(encode(t, gd, dot.WithName(`my "graph"`)))

	assert.Contains(t, out, `digraph "my \"graph\"" {`)
	assert.Contains(t, out, `0 [label="a\\b\"c"];`)
	assert.Contains(t, out, "1 [label=\"ctl\x01 sep\u2028 é\"];")
	assert.Contains(t, out, "0 -> 1 [label=\"tab\there\"];")
	assert.NotContains(t, out, `\x01`)
	assert.NotContains(t, out, `\u2028`)
}

// TestRender_SVG lays out a small diagram.
func TestRender_SVG(t *testing.T) {
	p, err := poset.New([]string{"0", "a", "b", "1"}, [][]int{{1, 2}, {3}, {3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.Render(&buf, export.ToGraphData(p), dot.SVG))
	assert.Contains(t, buf.String(), "<svg")
}
