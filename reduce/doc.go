// Package reduce collapses a polymer by repeatedly removing adjacent units
// of the same identity and opposite polarity, and reports the residue: the
// number of units left when no adjacent pair can react.
//
// What:
//
//   - Stack: one forward pass with an explicit stack. Each unit either
//     cancels the stack top or is pushed. The reference reducer.
//   - Index: an Arena of slots with tombstones. A cursor walks the present
//     slots; after a reaction it steps back to re-examine the newly adjacent
//     pair. Works in place on a buffer the caller hands over.
//
// Why two strategies:
//
//	The reaction is confluent, so the residue does not depend on the order in
//	which pairs are removed. Stack exploits that for O(n); Index follows the
//	rewrite directly on the input storage. Tests check both agree on every
//	input, and Stack is treated as the oracle.
//
// Complexity:
//
//   - Stack: Time O(n), Memory O(n) for the stack.
//   - Index: Time O(n²) worst case (backward and forward skip-scans over
//     tombstones), Memory O(n) for the present flags, no compaction.
//
// Errors:
//
//   - Reducers never fail; empty input yields 0.
//   - ErrUnknownStrategy: ParseStrategy got a name it does not know.
//
// Both reducers accept an iter.Seq so that filtered views from
// unit.Without can be fed without materializing a copy first.
package reduce
