package rrb

import (
	"github.com/arximboldi/rrb-go/internal/heap"
	"github.com/arximboldi/rrb-go/internal/refcount"
)

// Policy wires the allocation and ownership strategy a Vector[T] uses for
// its whole lifetime: where leaf values and inner-node children come
// from, and how node ownership is counted. internal/config selects one of
// these for a host process; tests and library callers can also build one
// directly.
type Policy[T any] struct {
	RC       refcount.Policy
	Values   heap.Heap[T]
	Children heap.Heap[*Node[T]]
}

// DefaultPolicy is a GC-backed heap with atomic refcounting, suitable for
// concurrent readers of a shared Vector.
func DefaultPolicy[T any]() *Policy[T] {
	return &Policy[T]{
		RC:       refcount.PolicyAtomic,
		Values:   heap.NewGC[T](),
		Children: heap.NewGC[*Node[T]](),
	}
}

// NewPolicy builds a Policy from explicit heap and refcount choices.
func NewPolicy[T any](rc refcount.Policy, values heap.Heap[T], children heap.Heap[*Node[T]]) *Policy[T] {
	return &Policy[T]{RC: rc, Values: values, Children: children}
}
