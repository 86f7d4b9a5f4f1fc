// Package typestatex provides the building blocks for typestate builders:
// builders whose type records which attribute slots have been filled, so
// that assigning a slot twice or finalizing too early fails to compile.
//
// A builder is generic over one witness type per slot:
//
//	type Builder[C, G typestatex.Presence, R typestatex.Cardinality] struct {
//		_ [0]C
//		_ [0]G
//		_ [0]R
//		h typestatex.Handle[payload]
//	}
//
// Witnesses are zero-size markers (Unset/Set, Empty/NonEmpty). Leading [0]W
// fields keep them out of the layout while making every witness combination
// a distinct, non-convertible type.
//
// A transition is a generic function that pins the witness of the slot it
// touches and leaves every other slot as a type parameter:
//
//	func SetCPU[G typestatex.Presence, R typestatex.Cardinality](
//		b Builder[typestatex.Unset, G, R], cpu CPU) Builder[typestatex.Set, G, R]
//
// One such function serves every state of the other slots, so the number of
// functions to write grows with the number of transitions, not with the
// number of witness combinations.
//
// Go cannot move values, so a builder kept after a transition is still
// addressable. Handle turns that into a runtime failure: the first Take
// spends the handle and every later use panics with ErrConsumed. The absence
// of an operation on a given builder type is still checked by the compiler.
//
// Value-dependent checks (ranges, non-empty strings) are never encoded in
// witnesses. They are collected with a Checker and reported by finalization
// as a *ValidationError.
//
// See the computer and person packages for worked examples.
package typestatex
