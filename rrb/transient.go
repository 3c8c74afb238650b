package rrb

import (
	"sync/atomic"

	"github.com/arximboldi/rrb-go/internal/errs"
)

var editCounter atomic.Uint64

// Transient is a single-owner, in-place-mutating builder over an RRB
// tree: PushBack and Set mutate nodes stamped with this Transient's edit
// token directly instead of copying, falling back to copy-on-write for
// any node still shared with a persistent Vector. Take/Drop are
// correctness-equivalent to their persistent counterparts but are not
// specially optimized for in-place reuse. A Transient is not safe for
// concurrent use, and must not be touched again after Persist.
type Transient[T any] struct {
	policy *Policy[T]
	edit   uint64
	size   int
	shift  int
	root   *Node[T]
	tail   *Node[T]
	valid  bool
}

// Transient begins a batch of in-place mutations over v's structure.
func (v *Vector[T]) Transient() *Transient[T] {
	return &Transient[T]{
		policy: v.policy,
		edit:   editCounter.Add(1),
		size:   v.size,
		shift:  v.shift,
		root:   retain(v.root),
		tail:   retain(v.tail),
		valid:  true,
	}
}

func (t *Transient[T]) mustBeValid() {
	if !t.valid {
		panic(errs.ErrTransientInvalidated)
	}
}

// Persist freezes the Transient's current state into an immutable
// Vector. The Transient must not be used again afterward.
func (t *Transient[T]) Persist() *Vector[T] {
	t.mustBeValid()
	t.valid = false
	return &Vector[T]{policy: t.policy, size: t.size, shift: t.shift, root: t.root, tail: t.tail}
}

func (t *Transient[T]) Len() int { return t.size }

func (t *Transient[T]) tailOffset() int {
	if t.root.relaxed() {
		return t.root.sizes[t.root.count()-1]
	}
	if t.size > 0 {
		return (t.size - 1) &^ mask
	}
	return 0
}

// ownLeaf returns n if it is already owned by this edit, or a freshly
// stamped copy otherwise.
func (t *Transient[T]) ownLeaf(n *Node[T]) *Node[T] {
	if n.edit == t.edit {
		return n
	}
	cp := copyLeafN(t.policy, n, n.count())
	cp.edit = t.edit
	return cp
}

func (t *Transient[T]) ownInner(n *Node[T]) *Node[T] {
	if n.edit == t.edit {
		return n
	}
	var cp *Node[T]
	if n.relaxed() {
		cp = copyInnerRelaxedN(t.policy, n, n.count())
	} else {
		cp = copyInnerStrictN(t.policy, n, n.count())
	}
	cp.edit = t.edit
	return cp
}

func (t *Transient[T]) ownLeafAppend(x T) *Node[T] {
	if t.tail.edit == t.edit {
		t.tail.values = append(t.tail.values, x)
		return t.tail
	}
	n := copyLeafEmplace(t.policy, t.tail, len(t.tail.values), x)
	n.edit = t.edit
	release(t.policy, t.tail)
	return n
}

// PushBack appends x in place when the tail is owned by this edit.
func (t *Transient[T]) PushBack(x T) {
	t.mustBeValid()
	tailOff := t.tailOffset()
	ts := t.size - tailOff
	if ts < Branches {
		t.tail = t.ownLeafAppend(x)
		t.size++
		return
	}
	newShift, newRoot := pushTail(t.policy, t.root, t.shift, tailOff, retain(t.tail), ts)
	if newRoot != t.root {
		release(t.policy, t.root)
	}
	t.shift = newShift
	t.root = newRoot
	t.tail = makeLeafSingle(t.policy, x)
	t.tail.edit = t.edit
	t.size++
}

func (t *Transient[T]) ownUpdateNode(n *Node[T], shift, idx int, x T) *Node[T] {
	if shift == 0 {
		owned := t.ownLeaf(n)
		owned.values[idx] = x
		return owned
	}
	owned := t.ownInner(n)
	var slot, localIdx int
	if owned.relaxed() {
		slot = (idx >> shift) & mask
		for owned.sizes[slot] <= idx {
			slot++
		}
		localIdx = idx
		if slot > 0 {
			localIdx -= owned.sizes[slot-1]
		}
	} else {
		slot = (idx >> shift) & mask
		localIdx = idx & (1<<shift - 1)
	}
	child := owned.children[slot]
	newChild := t.ownUpdateNode(child, shift-B, localIdx, x)
	if newChild != child {
		release(t.policy, child)
		owned.children[slot] = newChild
	}
	return owned
}

// Set replaces the value at idx in place when its leaf is owned by this
// edit.
func (t *Transient[T]) Set(idx int, x T) {
	t.mustBeValid()
	if idx < 0 || idx >= t.size {
		panic(errs.ErrIndexOutOfRange)
	}
	tailOff := t.tailOffset()
	if idx >= tailOff {
		local := idx - tailOff
		if t.tail.edit == t.edit {
			t.tail.values[local] = x
			return
		}
		n := copyLeafSet(t.policy, t.tail, len(t.tail.values), local, func(T) T { return x })
		n.edit = t.edit
		release(t.policy, t.tail)
		t.tail = n
		return
	}
	newRoot := t.ownUpdateNode(t.root, t.shift, idx, x)
	if newRoot != t.root {
		release(t.policy, t.root)
		t.root = newRoot
	}
}

// snapshot builds a persistent Vector sharing the Transient's current
// nodes, for delegating the less-hot structural operations to their
// persistent implementation.
func (t *Transient[T]) snapshot() *Vector[T] {
	return &Vector[T]{policy: t.policy, size: t.size, shift: t.shift, root: retain(t.root), tail: retain(t.tail)}
}

func (t *Transient[T]) adopt(v *Vector[T]) {
	release(t.policy, t.root)
	release(t.policy, t.tail)
	t.size = v.size
	t.shift = v.shift
	t.root = v.root
	t.tail = v.tail
}

// Take truncates to the first n elements.
func (t *Transient[T]) Take(n int) {
	t.mustBeValid()
	t.adopt(t.snapshot().Take(n))
}

// Drop removes the first n elements.
func (t *Transient[T]) Drop(n int) {
	t.mustBeValid()
	t.adopt(t.snapshot().Drop(n))
}
