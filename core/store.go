// SPDX-License-Identifier: MIT
// Package core: indexed element store.
//
// Store freezes a universe into an immutable.List so that index → value is a
// constant-time lookup that can be shared by any number of readers without
// locks. The reverse direction goes through a key map built once at
// construction time.

package core

import (
	"fmt"

	"github.com/benbjohnson/immutable"
)

// Store is an immutable, index-addressed universe of values.
// All methods are safe for concurrent use.
type Store[T any] struct {
	values *immutable.List[T] // index → value
	index  map[string]int     // key(value) → index
	key    KeyFunc[T]
}

// NewStore assigns indices 0..len(universe)-1 in the given order.
// A nil key falls back to DefaultKey.
// Returns ErrDuplicateElement if two values share a key.
// Complexity: O(n).
func NewStore[T any](universe []T, key KeyFunc[T]) (*Store[T], error) {
	if key == nil {
		key = DefaultKey[T]
	}

	// Build the list in one pass; immutable.NewList copies the values.
	s := &Store[T]{
		values: immutable.NewList(universe...),
		index:  make(map[string]int, len(universe)),
		key:    key,
	}

	for i, v := range universe {
		k := key(v)
		if j, dup := s.index[k]; dup {
			return nil, fmt.Errorf("NewStore: key %q at %d and %d: %w", k, j, i, ErrDuplicateElement)
		}
		s.index[k] = i
	}

	return s, nil
}

// Len returns the number of elements.
func (s *Store[T]) Len() int {
	return s.values.Len()
}

// CheckIndex returns ErrIndexOutOfRange unless 0 <= i < Len().
func (s *Store[T]) CheckIndex(i int) error {
	if i < 0 || i >= s.values.Len() {
		return fmt.Errorf("index %d not in [0,%d): %w", i, s.values.Len(), ErrIndexOutOfRange)
	}

	return nil
}

// At returns the value stored at index i.
func (s *Store[T]) At(i int) (T, error) {
	if err := s.CheckIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return s.values.Get(i), nil
}

// IndexOf returns the index of v, matched by key.
func (s *Store[T]) IndexOf(v T) (int, error) {
	k := s.key(v)
	i, ok := s.index[k]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%q): %w", k, ErrElementNotFound)
	}

	return i, nil
}

// Label returns the display form of the value at index i (fmt.Sprint).
// An out-of-range index yields the empty string.
func (s *Store[T]) Label(i int) string {
	if s.CheckIndex(i) != nil {
		return ""
	}

	return fmt.Sprint(s.values.Get(i))
}

// Values returns a fresh slice of all values in index order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, s.values.Len())
	itr := s.values.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		out = append(out, v)
	}

	return out
}

// Pick maps a list of indices to their values. Indices are assumed valid.
func (s *Store[T]) Pick(idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = s.values.Get(j)
	}

	return out
}
