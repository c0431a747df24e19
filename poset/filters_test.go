package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/poset"
)

// TestFromFilters_DerivesCovers drops transitively implied members.
func TestFromFilters_DerivesCovers(t *testing.T) {
	// Chain 0 < 1 < 2 < 3 given by full filters, self-membership mixed.
	filters := [][]int{{0, 1, 2, 3}, {2, 3}, {2, 3, 3}, {}}
	p, err := poset.FromFilters([]int{0, 1, 2, 3}, filters)
	require.NoError(t, err)

	for i, want := range [][]int{{1}, {2}, {3}, {}} {
		got, err := p.UpperCovers(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "covers of %d", i)
	}
}

// TestFromFilters_Errors covers shape, range, antisymmetry and transitivity.
func TestFromFilters_Errors(t *testing.T) {
	cases := []struct {
		name    string
		filters [][]int
		cause   error
	}{
		{"shape", [][]int{{}, {}}, poset.ErrShape},
		{"range", [][]int{{3}, {}, {}}, poset.ErrCoverOutOfRange},
		{"mutual", [][]int{{1}, {0}, {}}, poset.ErrCycle},
		{"not transitive", [][]int{{1}, {2}, {}}, poset.ErrNotTransitive},
		{"long cycle", [][]int{{1}, {2}, {0}}, poset.ErrNotTransitive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := poset.FromFilters([]int{0, 1, 2}, tc.filters)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, poset.ErrConstruction)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

// TestFromLeq_Divisibility builds the divisors of 12 under divisibility.
func TestFromLeq_Divisibility(t *testing.T) {
	universe := []int{1, 2, 3, 4, 6, 12}
	p, err := poset.FromLeq(universe, func(a, b int) bool { return b%a == 0 })
	require.NoError(t, err)

	want := map[int][]int{1: {2, 3}, 2: {4, 6}, 3: {6}, 4: {12}, 6: {12}, 12: {}}
	for v, covers := range want {
		i, err := p.Index(v)
		require.NoError(t, err)
		up, err := p.UpperCovers(i)
		require.NoError(t, err)
		assert.Equal(t, covers, p.Store().Pick(up), "covers of %d", v)
	}
	assert.Equal(t, 7, p.EdgeCount())
}

// TestFromLeq_MatchesNew compares against explicit covers.
func TestFromLeq_MatchesNew(t *testing.T) {
	universe := []string{"", "a", "b", "ab"}
	sub := func(x, y string) bool {
		for _, r := range x {
			found := false
			for _, s := range y {
				found = found || r == s
			}
			if !found {
				return false
			}
		}
		return true
	}
	fromLeq, err := poset.FromLeq(universe, sub)
	require.NoError(t, err)
	explicit, err := poset.New(universe, [][]int{{1, 2}, {3}, {3}})
	require.NoError(t, err)

	assert.Equal(t, explicit.Edges(), fromLeq.Edges())
}

// TestFromLeq_Nil rejects a missing predicate.
func TestFromLeq_Nil(t *testing.T) {
	_, err := poset.FromLeq[int]([]int{1}, nil)
	assert.ErrorIs(t, err, poset.ErrNilPredicate)
	assert.ErrorIs(t, err, poset.ErrConstruction)
}

// TestFiltersOf evaluates each off-diagonal pair exactly once.
func TestFiltersOf(t *testing.T) {
	calls := 0
	divides := func(a, b int) bool {
		calls++
		require.NotEqual(t, a, b, "diagonal pair evaluated")
		return b%a == 0
	}
	got := poset.FiltersOf([]int{1, 2, 3, 6}, divides)
	assert.Equal(t, [][]int{{1, 2, 3}, {3}, {3}, {}}, got)
	assert.Equal(t, 12, calls)

	assert.Equal(t, [][]int{}, poset.FiltersOf([]int{}, divides))
}
