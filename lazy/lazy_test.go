package lazy_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lattix/lazy"
)

// TestCell_ComputesOnce verifies that only the first compute function runs.
func TestCell_ComputesOnce(t *testing.T) {
	var c lazy.Cell[[]int]
	var calls int32

	first := c.Get(func() []int {
		atomic.AddInt32(&calls, 1)
		return []int{1, 2}
	})
	second := c.Get(func() []int {
		atomic.AddInt32(&calls, 1)
		return []int{3}
	})

	assert.Equal(t, []int{1, 2}, first)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

// TestCell_ConcurrentFirstAccess races many goroutines on an empty cell.
func TestCell_ConcurrentFirstAccess(t *testing.T) {
	var c lazy.Cell[int]
	var calls int32
	const workers = 64

	results := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = c.Get(func() int {
				return int(atomic.AddInt32(&calls, 1)) * 100
			})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 100, r)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

// TestMemo_PerKey checks values are cached per key and published once.
func TestMemo_PerKey(t *testing.T) {
	var m lazy.Memo[string]

	assert.Equal(t, "a", m.Get(1, func() string { return "a" }))
	assert.Equal(t, "a", m.Get(1, func() string { return "other" }))
	assert.Equal(t, "b", m.Get(2, func() string { return "b" }))
	assert.Equal(t, 2, m.Len())
}

// TestMemo_ConcurrentSameKey ensures every caller sees the same published value.
func TestMemo_ConcurrentSameKey(t *testing.T) {
	var m lazy.Memo[*int]
	const workers = 64

	results := make([]*int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id] = m.Get(7, func() *int {
				v := id
				return &v
			})
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.Equal(t, 1, m.Len())
}
