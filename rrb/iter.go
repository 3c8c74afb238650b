package rrb

import "iter"

// ForEachChunk calls fn once per leaf, in order, passing that leaf's
// backing slice directly. fn must not retain the slice past the call.
func (v *Vector[T]) ForEachChunk(fn func(values []T)) {
	tailOff := v.tailOffset()
	if tailOff > 0 {
		forEachChunkNode(v.root, v.shift, fn)
	}
	if tailSize := v.size - tailOff; tailSize > 0 {
		fn(v.tail.values[:tailSize])
	}
}

func forEachChunkNode[T any](n *Node[T], shift int, fn func([]T)) {
	if shift == 0 {
		fn(n.values[:n.count()])
		return
	}
	for _, c := range n.children {
		forEachChunkNode(c, shift-B, fn)
	}
}

// All returns a range-over-func iterator of (index, value) pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		stop := false
		v.ForEachChunk(func(vals []T) {
			if stop {
				return
			}
			for _, x := range vals {
				if !yield(idx, x) {
					stop = true
					return
				}
				idx++
			}
		})
	}
}

// Values returns a range-over-func iterator of just the values.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Reduce folds step over every value of v, left to right.
func Reduce[T, A any](v *Vector[T], init A, step func(A, T) A) A {
	acc := init
	v.ForEachChunk(func(vals []T) {
		for _, x := range vals {
			acc = step(acc, x)
		}
	})
	return acc
}

// Cursor is a stateful forward iterator over a Vector. It caches the leaf
// currently being read along with the vector index its first element
// corresponds to, so stepping within a leaf is O(1); only crossing into the
// next leaf pays for a fresh descent via arrayFor.
type Cursor[T any] struct {
	v     *Vector[T]
	index int
	leaf  *Node[T]
	base  int // v's index of leaf.values[0]
}

func (v *Vector[T]) Cursor() *Cursor[T] { return &Cursor[T]{v: v} }

func (c *Cursor[T]) Done() bool { return c.index >= c.v.size }

func (c *Cursor[T]) Next() (T, bool) {
	if c.Done() {
		var zero T
		return zero, false
	}
	if c.leaf == nil || c.index >= c.base+c.leaf.count() {
		var local int
		c.leaf, local = c.v.arrayFor(c.index)
		c.base = c.index - local
	}
	x := c.leaf.values[c.index-c.base]
	c.index++
	return x, true
}

// Equal reports whether v and other hold the same length and
// elementwise-eq-equal values.
func (v *Vector[T]) Equal(other *Vector[T], eq func(a, b T) bool) bool {
	if v == other {
		return true
	}
	if v.size != other.size {
		return false
	}
	if v.root == other.root && v.tail == other.tail {
		return true
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.Get(i), other.Get(i)) {
			return false
		}
	}
	return true
}

// EqualComparable is a convenience wrapper around Equal for comparable T.
func EqualComparable[T comparable](a, b *Vector[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}
