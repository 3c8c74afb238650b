package rrb

import "github.com/arximboldi/rrb-go/internal/errs"

// Vector is a persistent, immutable sequence of T. The zero value is not
// usable; build one with New or NewWithPolicy.
//
// size/shift/root/tail form the canonical RRB head. shift is always a
// multiple of B; shift == 0 while descending a tree always means "this
// node is a leaf". The canonical empty vector has shift == B, an empty
// strict inner root, and an empty leaf tail — not shift == 0 — since an
// all-zero root would otherwise have to be special-cased in every
// descent.
type Vector[T any] struct {
	policy *Policy[T]
	size   int
	shift  int
	root   *Node[T]
	tail   *Node[T]
}

// New builds an empty vector with DefaultPolicy.
func New[T any]() *Vector[T] { return NewWithPolicy[T](DefaultPolicy[T]()) }

// NewWithPolicy builds an empty vector under an explicit Policy.
func NewWithPolicy[T any](p *Policy[T]) *Vector[T] {
	return &Vector[T]{policy: p, size: 0, shift: B, root: makeInnerStrict(p), tail: makeLeaf(p)}
}

// Of builds a vector by pushing each value in order.
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	for _, x := range values {
		v = v.PushBack(x)
	}
	return v
}

func (v *Vector[T]) Len() int { return v.size }

func (v *Vector[T]) Policy() *Policy[T] { return v.policy }

func (v *Vector[T]) retainSelf() *Vector[T] {
	return &Vector[T]{policy: v.policy, size: v.size, shift: v.shift, root: retain(v.root), tail: retain(v.tail)}
}

// Release drops this process's logical ownership of v's backing nodes.
// Only meaningful when the policy's refcount is actually tracked
// (PolicyAtomic/PolicyPlain); under PolicyNone it is a no-op and the
// garbage collector reclaims storage once nothing reaches it.
func (v *Vector[T]) Release() {
	release(v.policy, v.root)
	release(v.policy, v.tail)
}

func (v *Vector[T]) tailOffset() int {
	if v.root.relaxed() {
		return v.root.sizes[v.root.count()-1]
	}
	if v.size > 0 {
		return (v.size - 1) &^ mask
	}
	return 0
}

func (v *Vector[T]) tailSize() int { return v.size - v.tailOffset() }

// arrayFor returns the leaf holding index, and index's position within it.
func (v *Vector[T]) arrayFor(index int) (*Node[T], int) {
	tailOff := v.tailOffset()
	if index >= tailOff {
		return v.tail, index - tailOff
	}
	node := v.root
	for level := v.shift; level > 0; level -= B {
		if node.relaxed() {
			nodeIndex := (index >> level) & mask
			for node.sizes[nodeIndex] <= index {
				nodeIndex++
			}
			if nodeIndex > 0 {
				index -= node.sizes[nodeIndex-1]
			}
			node = node.children[nodeIndex]
		} else {
			for {
				node = node.children[(index>>level)&mask]
				level -= B
				if level == 0 {
					break
				}
			}
			return node, index & mask
		}
	}
	return node, index & mask
}

// Get returns the value at index, panicking with an *errs.Error if index
// is out of range.
func (v *Vector[T]) Get(index int) T {
	if index < 0 || index >= v.size {
		panic(errs.ErrIndexOutOfRange)
	}
	n, local := v.arrayFor(index)
	return n.values[local]
}
