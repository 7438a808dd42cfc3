// Package polymer reduces reactive polymers: strings of units where two
// adjacent units of the same identity and opposite polarity annihilate.
//
// 🚀 What is polymer?
//
//	A small, dependency-light engine that brings together:
//		• Unit model: identity (letter) + polarity (case), validated parsing
//		• Reducers: a one-pass stack reducer and an in-place tombstone arena
//		• Alphabet scan: the identity whose removal leaves the shortest residue,
//		  sequential or fanned out over an errgroup
//		• Generators: deterministic random, collapsing and irreducible polymers
//		• Harness: named solutions run in timed generate/run phases
//
// ✨ Guarantees
//
//   - Confluent – every removal order reaches the same residue
//   - Pure engine – unit/, reduce/ and scan/ never log, never panic on input
//   - Streaming – reducers consume iter.Seq views, filtered without copying
//
// Layout:
//
//	unit/             — Unit, Identity, Polarity, Parse, filtered views
//	reduce/           — Stack, Index (Arena), Strategy
//	scan/             — MinResidue with Workers/Context options
//	generate/         — seeded polymer generators and a random-order oracle
//	runner/           — Registry, Runner, Report, PhaseError
//	internal/config   — YAML config with POLYMER_* env overrides
//	internal/logger   — slog setup
//	internal/metrics  — Prometheus collectors and /metrics server
//	cmd/polymer       — reduce, scan, run and generate commands
//
// Quick example:
//
//	dabAcCaCBAcCcaDA  →  dabCBAcaDA   (10 units)
//	remove C/c        →  dabAaBAaDA  →  daDA  (4 units, the best choice)
//
//	go install github.com/katalvlaran/polymer/cmd/polymer@latest
package polymer
