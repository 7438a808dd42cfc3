// Package scan finds the shortest residue reachable by deleting one whole
// identity family (both polarities) from a polymer before reducing it.
//
// MinResidue runs 26 independent trials, one per identity. Each trial feeds
// a filtered, read-only view of the source (unit.Without) to the chosen
// reduce.Func and records its residue. Trials share no mutable state, so
// with WithWorkers(n > 1) they fan out over an errgroup and the results are
// merged by a final minimum; completion order never affects the answer.
//
// Errors:
//
//   - ErrNoValue: every view was empty (the input was empty), so there is no
//     minimum to report. A normal outcome, not a failure of the engine.
//   - ErrReducerNil: no reducer supplied.
//   - ErrOptionViolation: a meaningless option value (e.g. zero workers).
//   - context errors from WithContext, checked between trials.
//
// Complexity: 26 × the chosen reducer on at most n units.
package scan
