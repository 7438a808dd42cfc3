// SPDX-License-Identifier: MIT

// Package generate builds deterministic polymers for tests, benchmarks and
// the polymer CLI.
//
// What:
//
//   - Random:      n units, identities drawn from the first k letters.
//   - Collapsing:  a properly nested polymer that reduces to nothing.
//   - Irreducible: a polymer in which no adjacent pair reacts.
//   - Batch:       many Random polymers, each reproducible on its own.
//   - OracleResidue: a slow reducer that removes a random reacting pair at
//     every step. It exists to check that the residue does not depend on
//     removal order.
//
// Options are functional and resolve into an immutable config:
//
//	units, err := generate.Random(1_000,
//	    generate.WithSeed(42),
//	    generate.WithIdentities(3), // only a, b, c: dense reactions
//	)
//
// Determinism: the same n, options and seed give the same polymer on every
// platform. Option constructors panic on meaningless values; generators
// return sentinel errors and never panic.
package generate
