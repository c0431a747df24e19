// SPDX-License-Identifier: MIT

package carrier

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxPowerSetSize bounds PowerSet(n).
const MaxPowerSetSize = 16

// Subset is an immutable set of carrier elements, kept sorted.
type Subset struct {
	elems []int
}

// NewSubset sorts and deduplicates elems. Negative elements are rejected.
func NewSubset(elems ...int) (Subset, error) {
	for _, x := range elems {
		if x < 0 {
			return Subset{}, fmt.Errorf("NewSubset: element %d: %w", x, ErrOutOfRange)
		}
	}
	s := slices.Clone(elems)
	slices.Sort(s)

	return Subset{elems: slices.Compact(s)}, nil
}

// Len returns the number of elements.
func (s Subset) Len() int {
	return len(s.elems)
}

// Elements returns the members in ascending order.
func (s Subset) Elements() []int {
	return slices.Clone(s.elems)
}

// Contains reports membership of x.
func (s Subset) Contains(x int) bool {
	_, ok := slices.BinarySearch(s.elems, x)

	return ok
}

// Equal reports whether s and t have the same members.
func (s Subset) Equal(t Subset) bool {
	return slices.Equal(s.elems, t.elems)
}

// SubsetOf reports s ⊆ t. Both are sorted, so one merge pass suffices.
func (s Subset) SubsetOf(t Subset) bool {
	j := 0
	for _, x := range s.elems {
		for j < len(t.elems) && t.elems[j] < x {
			j++
		}
		if j == len(t.elems) || t.elems[j] != x {
			return false
		}
	}

	return true
}

// Union returns s ∪ t.
func (s Subset) Union(t Subset) Subset {
	out := make([]int, 0, len(s.elems)+len(t.elems))
	out = append(out, s.elems...)
	out = append(out, t.elems...)
	slices.Sort(out)

	return Subset{elems: slices.Compact(out)}
}

// Intersect returns s ∩ t.
func (s Subset) Intersect(t Subset) Subset {
	out := []int{}
	for _, x := range s.elems {
		if t.Contains(x) {
			out = append(out, x)
		}
	}

	return Subset{elems: out}
}

// String renders "{0,2}".
func (s Subset) String() string {
	parts := make([]string, len(s.elems))
	for i, x := range s.elems {
		parts[i] = strconv.Itoa(x)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// PowerSet returns all 2ⁿ subsets of {0, ..., n-1}, ordered by bit mask
// (subset k contains i iff bit i of k is set).
func PowerSet(n int) ([]Subset, error) {
	if n < 0 {
		return nil, fmt.Errorf("PowerSet: n=%d: %w", n, ErrNegativeSize)
	}
	if n > MaxPowerSetSize {
		return nil, fmt.Errorf("PowerSet: n=%d > %d: %w", n, MaxPowerSetSize, ErrTooLarge)
	}

	out := make([]Subset, 1<<n)
	for mask := range out {
		elems := []int{}
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				elems = append(elems, i)
			}
		}
		out[mask] = Subset{elems: elems}
	}

	return out, nil
}
