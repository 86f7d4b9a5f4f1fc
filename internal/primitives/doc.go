// Package primitives provides the static descriptors of typestate builders:
// state domains, slots, transitions and the layouts that combine them.
//
// This package uses ONLY the Go standard library and the typestatex core.
// Layouts are data about builder types, written next to the builder code.
// They are used to render the witness state space, to persist it and to
// check the generalization law in tests:
// - TypeCount is the product of the domain sizes of all slots
// - ImplementationCount is the sum over slots of their transitions
//
// Nothing here inspects a live builder.
package primitives
