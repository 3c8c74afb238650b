package rrb

import "github.com/arximboldi/rrb-go/internal/refcount"

// This file exposes the minimal surface package pool needs to walk and
// rebuild trees without reaching into Node's unexported fields: structural
// introspection (IsLeaf/IsRelaxed/Count/ValueAt/ChildAt/SizeAt), raw node
// constructors (NewLeaf/NewInner), and a Vector constructor from an
// already-assembled root/tail pair (FromParts).

func (n *Node[T]) IsLeaf() bool           { return n.leaf }
func (n *Node[T]) IsRelaxed() bool        { return n.relaxed() }
func (n *Node[T]) Count() int             { return n.count() }
func (n *Node[T]) ValueAt(i int) T        { return n.values[i] }
func (n *Node[T]) ChildAt(i int) *Node[T] { return n.children[i] }
func (n *Node[T]) SizeAt(i int) int       { return n.sizes[i] }

// NewLeaf builds a fresh, singly-owned leaf node directly from values
// (taking ownership of the slice).
func NewLeaf[T any](p *Policy[T], values []T) *Node[T] {
	return &Node[T]{leaf: true, values: values, rc: refcount.New(p.RC)}
}

// NewInner builds a fresh, singly-owned inner node from already-owned
// children (the caller must Retain any child it wants to keep a separate
// reference to) and, if sizes is non-nil, marks it relaxed with that
// cumulative-size table.
func NewInner[T any](p *Policy[T], children []*Node[T], sizes []int) *Node[T] {
	n := &Node[T]{children: children, rc: refcount.New(p.RC)}
	if sizes != nil {
		n.relaxedF = true
		n.sizes = sizes
	}
	return n
}

// Root, Tail and Shift expose a Vector's head for serialization.
func (v *Vector[T]) Root() *Node[T] { return v.root }
func (v *Vector[T]) Tail() *Node[T] { return v.tail }
func (v *Vector[T]) Shift() int     { return v.shift }

// FromParts assembles a Vector directly from an already-built root/tail
// pair (as produced by NewLeaf/NewInner), taking ownership of both.
func FromParts[T any](p *Policy[T], size, shift int, root, tail *Node[T]) *Vector[T] {
	return &Vector[T]{policy: p, size: size, shift: shift, root: root, tail: tail}
}

// Retain increments n's reference count and returns n, for callers (like
// package pool) that need to keep a second owning reference to a shared
// node.
func Retain[T any](n *Node[T]) *Node[T] { return retain(n) }

// Release decrements n's reference count, recursively releasing and
// freeing n's children if n was the last owner.
func Release[T any](p *Policy[T], n *Node[T]) { release(p, n) }
