package rrb

import "github.com/arximboldi/rrb-go/internal/errs"

// updateNode path-copies the spine from node down to the leaf holding
// idx, applying set to the single value there.
func updateNode[T any](p *Policy[T], node *Node[T], shift, idx int, set func(T) T) *Node[T] {
	if shift == 0 {
		return copyLeafSet(p, node, node.count(), idx, set)
	}
	var slot, localIdx int
	if node.relaxed() {
		slot = (idx >> shift) & mask
		for node.sizes[slot] <= idx {
			slot++
		}
		localIdx = idx
		if slot > 0 {
			localIdx -= node.sizes[slot-1]
		}
	} else {
		slot = (idx >> shift) & mask
		localIdx = idx & (1<<shift - 1)
	}
	newChild := updateNode(p, node.children[slot], shift-B, localIdx, set)

	var newParent *Node[T]
	if node.relaxed() {
		newParent = copyInnerRelaxedN(p, node, node.count())
	} else {
		newParent = copyInnerStrictN(p, node, node.count())
	}
	release(p, newParent.children[slot])
	newParent.children[slot] = newChild
	return newParent
}

// Update returns a new vector with the value at idx replaced by fn of the
// old value.
func (v *Vector[T]) Update(idx int, fn func(T) T) *Vector[T] {
	if idx < 0 || idx >= v.size {
		panic(errs.ErrIndexOutOfRange)
	}
	tailOff := v.tailOffset()
	if idx >= tailOff {
		newTail := copyLeafSet(v.policy, v.tail, v.size-tailOff, idx-tailOff, fn)
		return &Vector[T]{policy: v.policy, size: v.size, shift: v.shift, root: retain(v.root), tail: newTail}
	}
	newRoot := updateNode(v.policy, v.root, v.shift, idx, fn)
	return &Vector[T]{policy: v.policy, size: v.size, shift: v.shift, root: newRoot, tail: retain(v.tail)}
}

// Assoc returns a new vector with the value at idx replaced by x.
func (v *Vector[T]) Assoc(idx int, x T) *Vector[T] {
	return v.Update(idx, func(T) T { return x })
}
