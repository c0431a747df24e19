package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/core"
	"github.com/katalvlaran/lattix/export"
	"github.com/katalvlaran/lattix/label"
	"github.com/katalvlaran/lattix/poset"
)

// boolean2 returns the subsets of {a,b} ordered by inclusion.
func boolean2(t *testing.T) *poset.Poset[string] {
	t.Helper()
	p, err := poset.New([]string{"{}", "{a}", "{b}", "{a,b}"}, [][]int{{1, 2}, {3}, {3}})
	require.NoError(t, err)

	return p
}

// TestToGraphData_Shape checks nodes, edges and their order.
func TestToGraphData_Shape(t *testing.T) {
	gd := export.ToGraphData(boolean2(t))

	assert.Equal(t, []export.Node{{0, "{}"}, {1, "{a}"}, {2, "{b}"}, {3, "{a,b}"}}, gd.Nodes)
	require.Len(t, gd.Edges, 4)
	for i, want := range []core.Edge{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 2}, {Lower: 1, Upper: 3}, {Lower: 2, Upper: 3}} {
		assert.Equal(t, want.Lower, gd.Edges[i].Source)
		assert.Equal(t, want.Upper, gd.Edges[i].Target)
		assert.Nil(t, gd.Edges[i].Label)
	}
	assert.Zero(t, gd.Labeled())
}

// TestToGraphData_NoImpliedEdges: bottom→top is never exported.
func TestToGraphData_NoImpliedEdges(t *testing.T) {
	for _, e := range export.ToGraphData(boolean2(t)).Edges {
		assert.False(t, e.Source == 0 && e.Target == 3)
	}
}

// TestToGraphData_Deterministic exports twice and compares the JSON bytes.
func TestToGraphData_Deterministic(t *testing.T) {
	p := boolean2(t)
	res := label.Apply(p, 0, func(_, up string, _ int) (label.Type, error) {
		if up == "{a,b}" {
			return 0, label.ErrUnclassified
		}
		return label.TypeBoolean, nil
	})

	first, err := json.Marshal(export.ToGraphData(p, export.WithLabels(res)))
	require.NoError(t, err)
	second, err := json.Marshal(export.ToGraphData(p, export.WithLabels(res)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.JSONEq(t, `{
		"nodes":[{"id":0,"label":"{}"},{"id":1,"label":"{a}"},{"id":2,"label":"{b}"},{"id":3,"label":"{a,b}"}],
		"edges":[{"source":0,"target":1,"label":"3"},{"source":0,"target":2,"label":"3"},
		         {"source":1,"target":3},{"source":2,"target":3}]
	}`, string(first))
}

// TestToGraphData_Diagnostics carries labeler failures along.
func TestToGraphData_Diagnostics(t *testing.T) {
	p := boolean2(t)
	res := label.Apply(p, 0, func(string, string, int) (label.Type, error) {
		return 0, label.ErrUnclassified
	})

	gd := export.ToGraphData(p, export.WithLabels(res))
	assert.Len(t, gd.Diagnostics, 4)
	assert.Len(t, gd.Edges, 4)
	assert.Zero(t, gd.Labeled())
	assert.Equal(t, export.Diagnostic{Source: 0, Target: 1, Error: label.ErrUnclassified.Error()}, gd.Diagnostics[0])

	// Diagnostics cross the JSON boundary with the graph.
	raw, err := json.Marshal(gd)
	require.NoError(t, err)
	var back export.GraphData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, gd.Diagnostics, back.Diagnostics)
	assert.Contains(t, string(raw), `"diagnostics":[{"source":0,"target":1,"error":"label: edge cannot be classified"}`)
}

// TestGraphData_CloneIsIndependent mutates a clone.
func TestGraphData_CloneIsIndependent(t *testing.T) {
	gd := export.ToGraphData(boolean2(t), export.WithEdgeLabels(map[core.Edge]string{
		{Lower: 0, Upper: 1}: "x",
		{Lower: 0, Upper: 3}: "ignored",
	}))
	require.Equal(t, 1, gd.Labeled())

	c := gd.Clone()
	*c.Edges[0].Label = "y"
	c.Nodes[0].Label = "changed"

	assert.Equal(t, "x", *gd.Edges[0].Label)
	assert.Equal(t, "{}", gd.Nodes[0].Label)
}
