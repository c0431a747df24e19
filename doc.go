// Package lattix is an in-memory engine for finite partially ordered sets
// and lattices: build an order from covers, filters, a predicate or a pair
// of operations, then query bounds, joins, meets and structure.
//
// What is lattix?
//
//	A small, deterministic library that brings together:
//		• Posets: validated cover relations, closure, up/down sets, bounds
//		• Lattices: join, meet, atoms, irreducibles, distributivity, modularity
//		• Sources: covers, order predicates, join/meet operations,
//		  congruence (partition) and subalgebra (subset) carriers
//		• Labeling: tame congruence theory type codes on cover edges
//		• Export: node-link data, Graphviz DOT, SVG/PNG rendering
//
// Under the hood, everything is organized into subpackages:
//
//	core/     - element store, cover edges, key functions
//	poset/    - Poset construction and order queries
//	lattice/  - Lattice operations and properties
//	source/   - the Source capability and Build
//	carrier/  - partitions and subsets used as lattice elements
//	label/    - cover-edge classification
//	export/   - GraphData for renderers
//	dot/      - DOT text and Graphviz images
//	builder/  - ready-made families: chains, M_n, N_5, 2^k, divisors, Π_n
//	matrix/   - bit-matrix closure
//	bfs/, dfs/, lazy/ - traversal and memoization building blocks
//
// Quick ASCII example, the divisors of 12:
//
//	      12
//	     /  \
//	    4    6
//	    |  / |
//	    2    3
//	     \  /
//	      1
//
//	l, _ := builder.Build(builder.Divisors(12))
//	j, _ := l.JoinElements(4, 6) // 12
//
//	go install github.com/katalvlaran/lattix/cmd/hasse@latest
package lattix
