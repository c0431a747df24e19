package poset

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetrics_CountsOncePerConstruction checks that the filter factories do
// not double count through the shared build path.
func TestMetrics_CountsOncePerConstruction(t *testing.T) {
	ok := constructionsTotal.WithLabelValues("ok")
	bad := constructionsTotal.WithLabelValues("error")
	okBefore, badBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad)

	_, err := FromLeq([]int{1, 2, 4}, func(a, b int) bool { return b%a == 0 })
	require.NoError(t, err)
	_, err = New([]int{0, 1}, [][]int{{1}, {0}})
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(bad))
}

// TestMetrics_ClosureBuilds counts one matrix build and one row per element.
func TestMetrics_ClosureBuilds(t *testing.T) {
	matrixBuilds := closureBuildsTotal.WithLabelValues(ModeMatrix.String())
	rowBuilds := closureBuildsTotal.WithLabelValues(ModeOnDemand.String())
	m0, r0 := testutil.ToFloat64(matrixBuilds), testutil.ToFloat64(rowBuilds)

	chain := [][]int{{1}, {2}, {}}
	p, err := New([]int{0, 1, 2}, chain)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, _ = p.Leq(i, 2)
	}
	assert.Equal(t, m0+1, testutil.ToFloat64(matrixBuilds))

	q, err := New([]int{0, 1, 2}, chain, WithClosureThreshold[int](0))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, _ = q.Leq(i, 2)
		_, _ = q.Leq(i, 2)
	}
	assert.Equal(t, r0+3, testutil.ToFloat64(rowBuilds))
}
