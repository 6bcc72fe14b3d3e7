// Package verrors collects the sentinel and structural errors raised across
// blueprint decoding, front-end compilation, and proof evaluation.
//
// Four categories are distinguished: malformed input (caught at the decoder
// boundary and wrapped with enough context to locate the bad field),
// unsupported entities (skipped silently rather than erroring — a blueprint
// may contain decorative or unrelated entities that carry no belt-balance
// meaning), solver timeouts/resource exhaustion (propagated verbatim as
// smt.Unknown, never upgraded to an error), and structural invariant
// violations (StructuralError). No package in this module constructs a
// StructuralError; lowering a graph that breaks its degree invariants
// fails with a runtime panic instead.
package verrors
