// Package lattice answers lattice queries on top of a poset.Poset.
//
// A Lattice wraps an immutable poset and never fails to construct. Whether
// the poset has a unique bottom and top is recorded up front; join and meet
// validate the lattice property per query, so a poset that is not a lattice
// still answers every pair that does have a unique bound.
//
//	l := lattice.New(p)
//	j, err := l.Join(a, b)
//	var nl *lattice.NotALatticeError
//	if errors.As(err, &nl) { ... nl.Bounds ... }
//
// Atoms, Coatoms, JoinIrreducibles and MeetIrreducibles are computed once
// per Lattice and returned as fresh slices. IsLattice, IsDistributive,
// IsModular and Complements share one cached pair of operation tables.
//
// All methods are safe for concurrent use.
package lattice
