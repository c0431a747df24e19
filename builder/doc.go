// SPDX-License-Identifier: MIT
// Package builder provides ready-made lattice families in the
// functional-options style: chains, M_n, N_5, the bowtie, Boolean
// lattices, divisor lattices and partition lattices.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     element-name schemes and the size cap.
//   - Element name schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefixed decimals ("x0","x1",…).
//   - Families (each returns a source.Source):
//     – Chain, Antichain, Diamond, Pentagon, Bowtie.
//     – Boolean (carrier.Subset), Divisors (int), PartitionLattice
//     (carrier.Partition).
//   - Labeling:
//     – SetTypes:          type labels of Π_n for an operation-free Set.
//   - Validation helpers:
//     – validateMin, validateMax.
//
// Usage:
//
//	l, err := builder.Build(builder.Divisors(60))
//	if err != nil {
//		return err
//	}
//	ji, _ := l.JoinIrreducibles()
//	fmt.Println(l.Elements(ji)) // [2 3 4 5]
package builder
