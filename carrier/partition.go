// SPDX-License-Identifier: MIT
// Package: lattix/carrier
//
// partition.go - set partitions of {0, ..., n-1}.
//
// Representation: a restricted growth string rgs where rgs[i] is the block
// number of i and blocks are numbered in order of their least element.
// Two partitions are equal iff their strings are equal, so the canonical form
// doubles as a key (String).

package carrier

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	uf "github.com/spakin/disjoint"
)

// MaxPartitionSize bounds Partitions(n); Bell(10) = 115975.
const MaxPartitionSize = 10

// Partition is an immutable set partition of {0, ..., Size()-1}.
// The zero value is the partition of the empty set.
type Partition struct {
	rgs    []int
	blocks int
}

// NewPartition validates blocks and returns the canonical partition.
// Every element of [0, n) must appear in exactly one block; empty blocks
// are ignored.
func NewPartition(n int, blocks [][]int) (Partition, error) {
	if n < 0 {
		return Partition{}, fmt.Errorf("NewPartition: n=%d: %w", n, ErrNegativeSize)
	}
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for b, block := range blocks {
		for _, x := range block {
			if x < 0 || x >= n {
				return Partition{}, fmt.Errorf("NewPartition: element %d (n=%d): %w", x, n, ErrOutOfRange)
			}
			if owner[x] >= 0 && owner[x] != b {
				return Partition{}, fmt.Errorf("NewPartition: element %d in blocks %d and %d: %w", x, owner[x], b, ErrOverlap)
			}
			owner[x] = b
		}
	}
	for x, b := range owner {
		if b < 0 {
			return Partition{}, fmt.Errorf("NewPartition: element %d: %w", x, ErrUncovered)
		}
	}

	return canonical(owner), nil
}

// FromPairs returns the least partition in which every pair is related,
// that is the equivalence relation generated by pairs.
func FromPairs(n int, pairs [][2]int) (Partition, error) {
	if n < 0 {
		return Partition{}, fmt.Errorf("FromPairs: n=%d: %w", n, ErrNegativeSize)
	}
	elems := make([]*uf.Element, n)
	for i := range elems {
		elems[i] = uf.NewElement()
	}
	for _, pr := range pairs {
		for _, x := range pr {
			if x < 0 || x >= n {
				return Partition{}, fmt.Errorf("FromPairs: element %d (n=%d): %w", x, n, ErrOutOfRange)
			}
		}
		uf.Union(elems[pr[0]], elems[pr[1]])
	}

	return fromUnionFind(elems), nil
}

// fromUnionFind numbers each element by its representative.
func fromUnionFind(elems []*uf.Element) Partition {
	rep := make(map[*uf.Element]int, len(elems))
	owner := make([]int, len(elems))
	for i, e := range elems {
		root := e.Find()
		b, ok := rep[root]
		if !ok {
			b = len(rep)
			rep[root] = b
		}
		owner[i] = b
	}

	return canonical(owner)
}

// canonical renumbers arbitrary block ids by first occurrence.
func canonical(owner []int) Partition {
	ids := make(map[int]int, len(owner))
	rgs := make([]int, len(owner))
	for i, b := range owner {
		id, ok := ids[b]
		if !ok {
			id = len(ids)
			ids[b] = id
		}
		rgs[i] = id
	}

	return Partition{rgs: rgs, blocks: len(ids)}
}

// Discrete returns the partition into singletons (the least partition).
func Discrete(n int) Partition {
	owner := make([]int, max(n, 0))
	for i := range owner {
		owner[i] = i
	}

	return canonical(owner)
}

// Indiscrete returns the one-block partition (the greatest partition).
func Indiscrete(n int) Partition {
	return canonical(make([]int, max(n, 0)))
}

// Size returns the size of the underlying set.
func (p Partition) Size() int {
	return len(p.rgs)
}

// NumBlocks returns the number of blocks.
func (p Partition) NumBlocks() int {
	return p.blocks
}

// Blocks returns the blocks in canonical order, each sorted.
func (p Partition) Blocks() [][]int {
	out := make([][]int, p.blocks)
	for i, b := range p.rgs {
		out[b] = append(out[b], i)
	}

	return out
}

// Related reports whether x and y lie in one block.
func (p Partition) Related(x, y int) bool {
	if x < 0 || y < 0 || x >= len(p.rgs) || y >= len(p.rgs) {
		return false
	}

	return p.rgs[x] == p.rgs[y]
}

// Equal reports whether p and q are the same partition.
func (p Partition) Equal(q Partition) bool {
	return slices.Equal(p.rgs, q.rgs)
}

// Refines reports p ≤ q: every block of p lies inside a block of q.
// Partitions of different sizes are incomparable.
func (p Partition) Refines(q Partition) bool {
	if p.Size() != q.Size() {
		return false
	}
	target := make([]int, p.blocks)
	for i := range target {
		target[i] = -1
	}
	for i, b := range p.rgs {
		switch target[b] {
		case -1:
			target[b] = q.rgs[i]
		case q.rgs[i]:
		default:
			return false
		}
	}

	return true
}

// Join returns the least partition above p and q (transitive closure of
// both relations). Sizes must match.
func (p Partition) Join(q Partition) (Partition, error) {
	if p.Size() != q.Size() {
		return Partition{}, fmt.Errorf("Join: sizes %d and %d: %w", p.Size(), q.Size(), ErrSizeMismatch)
	}
	elems := make([]*uf.Element, p.Size())
	for i := range elems {
		elems[i] = uf.NewElement()
	}
	for _, part := range []Partition{p, q} {
		first := make([]int, part.blocks)
		for i := range first {
			first[i] = -1
		}
		for i, b := range part.rgs {
			if first[b] < 0 {
				first[b] = i
				continue
			}
			uf.Union(elems[first[b]], elems[i])
		}
	}

	return fromUnionFind(elems), nil
}

// Meet returns the greatest partition below p and q (block intersections).
func (p Partition) Meet(q Partition) (Partition, error) {
	if p.Size() != q.Size() {
		return Partition{}, fmt.Errorf("Meet: sizes %d and %d: %w", p.Size(), q.Size(), ErrSizeMismatch)
	}
	owner := make([]int, p.Size())
	for i := range owner {
		owner[i] = p.rgs[i]*q.blocks + q.rgs[i]
	}

	return canonical(owner), nil
}

// String renders the blocks as "|0 1|2|".
func (p Partition) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, block := range p.Blocks() {
		for j, x := range block {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte('|')
	}
	if p.blocks == 0 {
		sb.WriteByte('|')
	}

	return sb.String()
}

// Partitions enumerates every partition of {0, ..., n-1} in lexicographic
// order of restricted growth strings: the indiscrete partition first, the
// discrete one last.
func Partitions(n int) ([]Partition, error) {
	if n < 0 {
		return nil, fmt.Errorf("Partitions: n=%d: %w", n, ErrNegativeSize)
	}
	if n > MaxPartitionSize {
		return nil, fmt.Errorf("Partitions: n=%d > %d: %w", n, MaxPartitionSize, ErrTooLarge)
	}

	var out []Partition
	rgs := make([]int, n)
	var grow func(i, blocks int)
	grow = func(i, blocks int) {
		if i == n {
			out = append(out, Partition{rgs: slices.Clone(rgs), blocks: blocks})
			return
		}
		for b := 0; b <= blocks; b++ {
			rgs[i] = b
			if b == blocks {
				grow(i+1, blocks+1)
			} else {
				grow(i+1, blocks)
			}
		}
	}
	if n == 0 {
		return []Partition{{}}, nil
	}
	rgs[0] = 0
	grow(1, 1)

	return out, nil
}
