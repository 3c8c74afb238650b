// Package rrb implements a persistent Relaxed Radix-Balanced (RRB) vector:
// a persistent sequence with efficient random access, update, push,
// concatenation and slicing, plus a transient builder mode for batched
// in-place mutation. There is no Pop method; Take(v.Len()-1) removes the
// last element.
//
// The branching factor is fixed at compile time: both inner nodes and
// leaves fan out 1<<B = 32 ways. A Vector is an immutable value; call
// Transient to obtain a builder, mutate it, and call Persist to freeze
// the result back into a Vector. FlexTransient additionally exposes
// Concat/PushFront-style batched mutation.
package rrb
