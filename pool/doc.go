// Package pool serializes and deserializes a set of rrb vectors that may
// share structure, preserving that sharing across the round trip: each
// distinct node is written once (keyed by its pointer identity) and
// referenced by id from every vector and parent that holds it.
package pool
