// Package core provides the element store and the small vocabulary types
// shared by the lattix packages.
//
// Every finite poset in lattix is an arena of elements addressed by integer
// index. Core owns that arena:
//
//   - Store[T]: immutable universe (index → value, value → index by key).
//   - Edge:     a covering pair (Lower, Upper) of indices.
//   - KeyFunc:  how values are keyed for reverse lookup (fmt.Sprint by default).
//
// Core Methods:
//
//	NewStore(universe, key) (*Store[T], error) // O(n)
//	Len() int                                  // O(1)
//	At(i) (T, error)                           // O(log n)
//	IndexOf(v) (int, error)                    // O(1) amortized + key cost
//	Label(i) string                            // fmt.Sprint of the value
//	Values() []T                               // O(n) copy
//
// Errors:
//
//	ErrIndexOutOfRange  – index outside [0, Len())
//	ErrElementNotFound  – value not in the universe
//	ErrDuplicateElement – two values share a key
//
// A Store never changes after NewStore returns, so it can be read from any
// number of goroutines without synchronization.
package core
