package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/carrier"
)

// mustPartition builds a partition or fails the test.
func mustPartition(t *testing.T, n int, blocks ...[]int) carrier.Partition {
	t.Helper()
	p, err := carrier.NewPartition(n, blocks)
	require.NoError(t, err)

	return p
}

// TestNewPartition_Canonical orders blocks by least element.
func TestNewPartition_Canonical(t *testing.T) {
	p := mustPartition(t, 4, []int{3, 1}, []int{2}, []int{0})
	assert.Equal(t, [][]int{{0}, {1, 3}, {2}}, p.Blocks())
	assert.Equal(t, "|0|1 3|2|", p.String())
	assert.Equal(t, 3, p.NumBlocks())
	assert.True(t, p.Related(1, 3))
	assert.False(t, p.Related(0, 9))

	q := mustPartition(t, 4, []int{0}, []int{2}, []int{1, 3}, []int{})
	assert.True(t, p.Equal(q))
}

// TestNewPartition_Errors covers invalid block lists.
func TestNewPartition_Errors(t *testing.T) {
	_, err := carrier.NewPartition(-1, nil)
	assert.ErrorIs(t, err, carrier.ErrNegativeSize)
	_, err = carrier.NewPartition(2, [][]int{{0, 2}})
	assert.ErrorIs(t, err, carrier.ErrOutOfRange)
	_, err = carrier.NewPartition(3, [][]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, carrier.ErrOverlap)
	_, err = carrier.NewPartition(3, [][]int{{0, 1}})
	assert.ErrorIs(t, err, carrier.ErrUncovered)
}

// TestFromPairs generates the equivalence closure.
func TestFromPairs(t *testing.T) {
	p, err := carrier.FromPairs(5, [][2]int{{0, 2}, {2, 4}})
	require.NoError(t, err)
	assert.Equal(t, "|0 2 4|1|3|", p.String())

	_, err = carrier.FromPairs(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, carrier.ErrOutOfRange)

	d, err := carrier.FromPairs(3, nil)
	require.NoError(t, err)
	assert.True(t, d.Equal(carrier.Discrete(3)))
}

// TestPartition_Order checks refinement, join and meet.
func TestPartition_Order(t *testing.T) {
	a := mustPartition(t, 4, []int{0, 1}, []int{2}, []int{3})
	b := mustPartition(t, 4, []int{0}, []int{1, 2}, []int{3})

	assert.True(t, carrier.Discrete(4).Refines(a))
	assert.True(t, a.Refines(carrier.Indiscrete(4)))
	assert.False(t, a.Refines(b))
	assert.True(t, a.Refines(a))

	j, err := a.Join(b)
	require.NoError(t, err)
	assert.Equal(t, "|0 1 2|3|", j.String())

	m, err := a.Meet(b)
	require.NoError(t, err)
	assert.True(t, m.Equal(carrier.Discrete(4)))

	_, err = a.Join(carrier.Discrete(3))
	assert.ErrorIs(t, err, carrier.ErrSizeMismatch)
	_, err = a.Meet(carrier.Discrete(5))
	assert.ErrorIs(t, err, carrier.ErrSizeMismatch)
	assert.False(t, a.Refines(carrier.Indiscrete(5)))
}

// TestPartitions counts Bell numbers.
func TestPartitions(t *testing.T) {
	for n, bell := range []int{1, 1, 2, 5, 15, 52} {
		ps, err := carrier.Partitions(n)
		require.NoError(t, err)
		assert.Len(t, ps, bell, "Bell(%d)", n)

		seen := map[string]bool{}
		for _, p := range ps {
			assert.False(t, seen[p.String()], "duplicate %s", p)
			seen[p.String()] = true
		}
	}

	ps, err := carrier.Partitions(3)
	require.NoError(t, err)
	assert.True(t, ps[0].Equal(carrier.Indiscrete(3)))
	assert.True(t, ps[len(ps)-1].Equal(carrier.Discrete(3)))

	_, err = carrier.Partitions(carrier.MaxPartitionSize + 1)
	assert.ErrorIs(t, err, carrier.ErrTooLarge)
	_, err = carrier.Partitions(-2)
	assert.ErrorIs(t, err, carrier.ErrNegativeSize)
}

// TestSubset covers the set algebra.
func TestSubset(t *testing.T) {
	s, err := carrier.NewSubset(2, 0, 2)
	require.NoError(t, err)
	u, err := carrier.NewSubset(0, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, "{0,2}", s.String())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.SubsetOf(u))
	assert.False(t, u.SubsetOf(s))
	assert.True(t, s.Contains(2))
	assert.Equal(t, []int{0, 1, 2}, s.Union(u).Elements())
	assert.Equal(t, "{0,2}", u.Intersect(s).String())
	assert.Equal(t, "{}", carrier.Subset{}.String())
	assert.True(t, carrier.Subset{}.SubsetOf(s))

	_, err = carrier.NewSubset(-1)
	assert.ErrorIs(t, err, carrier.ErrOutOfRange)
}

// TestPowerSet enumerates by bit mask.
func TestPowerSet(t *testing.T) {
	ps, err := carrier.PowerSet(2)
	require.NoError(t, err)
	got := make([]string, len(ps))
	for i, s := range ps {
		got[i] = s.String()
	}
	assert.Equal(t, []string{"{}", "{0}", "{1}", "{0,1}"}, got)

	_, err = carrier.PowerSet(carrier.MaxPowerSetSize + 1)
	assert.ErrorIs(t, err, carrier.ErrTooLarge)
}
