package source

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestMetrics_BuildsByKind labels builds with the variant kind.
func TestMetrics_BuildsByKind(t *testing.T) {
	ok := buildsTotal.WithLabelValues("covers", "ok")
	bad := buildsTotal.WithLabelValues("order", "error")
	ok0, bad0 := testutil.ToFloat64(ok), testutil.ToFloat64(bad)

	_, err := Build[int](Covers[int]{Universe: []int{0, 1}, Upper: [][]int{{1}}})
	assert.NoError(t, err)
	_, err = Build[int](Order[int]{Universe: []int{0}})
	assert.Error(t, err)

	assert.Equal(t, ok0+1, testutil.ToFloat64(ok))
	assert.Equal(t, bad0+1, testutil.ToFloat64(bad))
}
