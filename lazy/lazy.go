// SPDX-License-Identifier: MIT
// Package lazy provides compute-once cache primitives for immutable data.
//
// Cell[T] publishes a single value the first time it is requested; every
// caller, including concurrent first callers, observes the same value.
// Memo[T] is the keyed variant: concurrent first requests for one key are
// collapsed by singleflight and the result is published through a sync.Map.
//
// Neither type supports invalidation. They are meant for caches derived
// from structures that never change after construction.
package lazy

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cell caches one lazily computed value. The zero value is ready to use.
// A Cell must not be copied after first use.
type Cell[T any] struct {
	once sync.Once
	val  T
}

// Get returns the cached value, computing it with compute on first call.
// Later compute functions are ignored.
func (c *Cell[T]) Get(compute func() T) T {
	c.once.Do(func() { c.val = compute() })

	return c.val
}

// Memo caches lazily computed values per integer key.
// The zero value is ready to use. A Memo must not be copied after first use.
type Memo[T any] struct {
	group singleflight.Group
	done  sync.Map // int → T
}

// Get returns the value for key, computing it with compute on first call.
// Concurrent first callers share one computation; the stored value wins
// over any redundant result, so all callers see the same T.
func (m *Memo[T]) Get(key int, compute func() T) T {
	// Fast path: already published.
	if v, ok := m.done.Load(key); ok {
		return v.(T)
	}

	v, _, _ := m.group.Do(strconv.Itoa(key), func() (any, error) {
		// A previous flight may have published between Load and Do.
		if v, ok := m.done.Load(key); ok {
			return v, nil
		}
		actual, _ := m.done.LoadOrStore(key, compute())

		return actual, nil
	})

	return v.(T)
}

// Len reports how many keys have been published.
func (m *Memo[T]) Len() int {
	n := 0
	m.done.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
