package rrb

// This file implements RRB-tree concatenation: catenate two trees by
// descending their rightmost/leftmost spines until shifts (or leaf level)
// match, then rebalance the pair of frontier nodes (plus whatever they
// merged into) into nodes that respect the tree's shape invariants. The
// rebalance step packs children into as few nodes as possible, allowing a
// bounded amount of slack (rrbExtras/rrbInvariant below) so that
// concatenating already-balanced trees doesn't force a full repack.

const (
	rrbExtras    = 2
	rrbInvariant = 1
)

// Concat returns a new vector holding v's elements followed by r's.
func (v *Vector[T]) Concat(r *Vector[T]) *Vector[T] {
	if v.size == 0 {
		return r.retainSelf()
	}
	if r.size == 0 {
		return v.retainSelf()
	}
	if r.tailOffset() == 0 {
		return v.concatIntoOpenRightTail(r)
	}

	tailOff := v.tailOffset()
	lshift, lroot := pushTail(v.policy, v.root, v.shift, tailOff, retain(v.tail), v.size-tailOff)
	newShift, newRoot := concatSubTree(v.policy, v.size, lshift, lroot, r.tailOffset(), r.shift, r.root, true)
	release(v.policy, lroot)
	return &Vector[T]{policy: v.policy, size: v.size + r.size, shift: newShift, root: newRoot, tail: retain(r.tail)}
}

// concatIntoOpenRightTail handles r having an empty root (r is just a
// single tail): no tree-level merge is needed, only tail bookkeeping.
func (v *Vector[T]) concatIntoOpenRightTail(r *Vector[T]) *Vector[T] {
	tailOff := v.tailOffset()
	tailSize := v.size - tailOff
	switch {
	case tailSize == Branches:
		newShift, newRoot := pushTail(v.policy, v.root, v.shift, tailOff, retain(v.tail), tailSize)
		return &Vector[T]{policy: v.policy, size: v.size + r.size, shift: newShift, root: newRoot, tail: retain(r.tail)}
	case tailSize+r.size <= Branches:
		newTail := copyLeafConcat(v.policy, v.tail, tailSize, r.tail, r.size)
		return &Vector[T]{policy: v.policy, size: v.size + r.size, shift: v.shift, root: retain(v.root), tail: newTail}
	default:
		remaining := Branches - tailSize
		fullTail := copyLeafConcat(v.policy, v.tail, tailSize, r.tail, remaining)
		newTail := copyLeafRange(v.policy, r.tail, remaining, r.size)
		newShift, newRoot := pushTail(v.policy, v.root, v.shift, tailOff, fullTail, Branches)
		return &Vector[T]{policy: v.policy, size: v.size + r.size, shift: newShift, root: newRoot, tail: newTail}
	}
}

func lastChildSize[T any](n *Node[T], size, shift int) (idx, subSize int) {
	if n.relaxed() {
		idx = n.count() - 1
		if idx > 0 {
			subSize = n.sizes[idx] - n.sizes[idx-1]
		} else {
			subSize = n.sizes[idx]
		}
		return
	}
	idx = ((size - 1) >> shift) & mask
	subSize = size - (idx << shift)
	return
}

func firstChildSize[T any](n *Node[T], size, shift int) int {
	if n.relaxed() {
		return n.sizes[0]
	}
	return min(size, 1<<shift)
}

// concatSubTree merges the subtree (lnode, lshift, lsize) with
// (rnode, rshift, rsize), descending whichever side sits deeper until
// shifts align or both sides are leaves.
func concatSubTree[T any](p *Policy[T], lsize int, lshift int, lnode *Node[T], rsize int, rshift int, rnode *Node[T], isTop bool) (int, *Node[T]) {
	switch {
	case lshift > rshift:
		lidx, llsize := lastChildSize(lnode, lsize, lshift)
		_, cnode := concatSubTree(p, llsize, lshift-B, lnode.children[lidx], rsize, rshift, rnode, false)
		newShift, result := concatRebalance(p, lsize, lnode, llsize, cnode, 0, nil, lshift, isTop)
		release(p, cnode)
		return newShift, result

	case lshift < rshift:
		rrsize := firstChildSize(rnode, rsize, rshift)
		_, cnode := concatSubTree(p, lsize, lshift, lnode, rrsize, rshift-B, rnode.children[0], false)
		newShift, result := concatRebalance(p, 0, nil, rrsize, cnode, rsize, rnode, rshift, isTop)
		release(p, cnode)
		return newShift, result

	case lshift == 0:
		lslots := (((lsize - 1) >> lshift) & mask) + 1
		rslots := (((rsize - 1) >> lshift) & mask) + 1
		if isTop && lslots+rslots <= Branches {
			return 0, copyLeafConcat(p, lnode, lslots, rnode, rslots)
		}
		return B, makeInnerRelaxedWrap(p, retain(lnode), lslots, retain(rnode), rslots)

	default:
		lidx, llsize := lastChildSize(lnode, lsize, lshift)
		rrsize := firstChildSize(rnode, rsize, rshift)
		_, cnode := concatSubTree(p, llsize, lshift-B, lnode.children[lidx], rrsize, rshift-B, rnode.children[0], false)
		newShift, result := concatRebalance(p, lsize, lnode, llsize+rrsize, cnode, rsize, rnode, lshift, isTop)
		release(p, cnode)
		return newShift, result
	}
}

// addSlots records, for each of node's children in [offset, count-endoff),
// how many slots (grandchildren, or values if nshift==0) that child
// occupies, appending each count to *allSlots. It returns node's total
// child count.
func addSlots[T any](node *Node[T], shift, size, offset, endoff int, allSlots *[]int) int {
	if node == nil {
		return 0
	}
	nshift := shift - B
	if node.relaxed() {
		slotsCount := node.count()
		var lastSize int
		if offset > 0 {
			lastSize = node.sizes[offset-1]
		}
		for i := offset; i+endoff < slotsCount; i++ {
			nsize := node.sizes[i] - lastSize
			child := node.children[i]
			var s int
			if nshift == 0 || !child.relaxed() {
				s = ((nsize - 1) >> nshift) + 1
			} else {
				s = child.count()
			}
			*allSlots = append(*allSlots, s)
			lastSize = node.sizes[i]
		}
		return slotsCount
	}

	lidx := ((size - 1) >> shift) & mask
	slotsCount := lidx + 1
	i := offset
	for ; i+endoff < lidx; i++ {
		*allSlots = append(*allSlots, Branches)
	}
	if i+endoff < slotsCount {
		var s int
		if i == lidx {
			s = (((size - 1) >> nshift) & mask) + 1
		} else {
			s = Branches
		}
		*allSlots = append(*allSlots, s)
	}
	return slotsCount
}

// concatRebalance builds the plan (target slot counts after squeezing out
// slack) for (lnode minus its last child, cnode, rnode minus its first
// child), then drives a merger over the three sources to produce the
// rebalanced result.
func concatRebalance[T any](p *Policy[T], lsize int, lnode *Node[T], csize int, cnode *Node[T], rsize int, rnode *Node[T], shift int, isTop bool) (int, *Node[T]) {
	var allSlots []int
	lslots := addSlots(lnode, shift, lsize, 0, 1, &allSlots)
	cslots := addSlots(cnode, shift, csize, 0, 0, &allSlots)
	rslots := addSlots(rnode, shift, rsize, 1, 0, &allSlots)

	totalAllSlots := 0
	for _, s := range allSlots {
		totalAllSlots += s
	}
	optimalSlots := ((totalAllSlots - 1) / Branches) + 1

	shuffledN := len(allSlots)
	i := 0
	for shuffledN >= optimalSlots+rrbExtras {
		for allSlots[i] > Branches-rrbInvariant {
			i++
		}
		remaining := allSlots[i]
		for {
			minSize := remaining + allSlots[i+1]
			if minSize > Branches {
				minSize = Branches
			}
			allSlots[i] = minSize
			remaining += allSlots[i+1] - minSize
			i++
			if remaining <= 0 {
				break
			}
		}
		copy(allSlots[i:], allSlots[i+1:shuffledN])
		shuffledN--
		i--
	}
	plan := allSlots[:shuffledN]

	m := newMerger(p, plan, shift == B)
	m.merge(lnode, shift, lsize, lslots, 0, 1)
	m.merge(cnode, shift, csize, cslots, 0, 0)
	m.merge(rnode, shift, rsize, rslots, 1, 0)
	return m.finish(shift, isTop)
}

// merger packs three child sequences into nodes of the sizes given by
// plan. When leafMode is set, the sources/destinations are leaves and
// items are individual T values; otherwise sources/destinations are inner
// nodes and items are their children (one level below shift).
type merger[T any] struct {
	p        *Policy[T]
	plan     []int
	planIdx  int
	leafMode bool

	result  *Node[T]
	parent  *Node[T]
	to      *Node[T]
	sizeSum int
}

func newMerger[T any](p *Policy[T], plan []int, leafMode bool) *merger[T] {
	result := makeInnerRelaxed(p)
	return &merger[T]{p: p, plan: plan, leafMode: leafMode, result: result, parent: result}
}

func (m *merger[T]) curSlot() int { return m.plan[m.planIdx] }

func (m *merger[T]) newDest() *Node[T] {
	if m.leafMode {
		return makeLeaf(m.p)
	}
	return makeInnerRelaxed(m.p)
}

func (m *merger[T]) toLen() int {
	if m.leafMode {
		return len(m.to.values)
	}
	return len(m.to.children)
}

func (m *merger[T]) destSize() int {
	if m.leafMode {
		return len(m.to.values)
	}
	return m.to.sizes[len(m.to.sizes)-1]
}

func (m *merger[T]) addChild(n *Node[T], size int) {
	m.planIdx++
	if m.parent.count() == Branches {
		newParent := makeInnerRelaxed(m.p)
		m.result = makeInnerRelaxedWrapPartial(m.p, m.parent, m.sizeSum, newParent)
		m.parent = newParent
		m.sizeSum = 0
	}
	m.sizeSum += size
	m.parent.children = append(m.parent.children, n)
	m.parent.sizes = append(m.parent.sizes, m.sizeSum)
}

// copyFrom appends toCopy items from from (starting at fromOffset, whose
// own logical size is fromSize at level childShift) into m.to, extending
// m.to's relaxed sizes table (or leaf values) as it goes.
func (m *merger[T]) copyFrom(from *Node[T], fromOffset, toCopy, childShift, fromSize int) {
	if m.leafMode {
		m.to.values = append(m.to.values, from.values[fromOffset:fromOffset+toCopy]...)
		return
	}

	srcChildren := from.children[fromOffset : fromOffset+toCopy]
	for _, c := range srcChildren {
		c.rc.Inc()
	}
	m.to.children = append(m.to.children, srcChildren...)

	toOffset := len(m.to.sizes)
	var lastToSize int
	if toOffset > 0 {
		lastToSize = m.to.sizes[toOffset-1]
	}
	if from.relaxed() {
		var lastFromSize int
		if fromOffset > 0 {
			lastFromSize = from.sizes[fromOffset-1]
		}
		for i := 0; i < toCopy; i++ {
			fromCum := from.sizes[fromOffset+i]
			v := lastToSize + (fromCum - lastFromSize)
			m.to.sizes = append(m.to.sizes, v)
			lastToSize = v
			lastFromSize = fromCum
		}
		return
	}

	lidx := ((fromSize - 1) >> childShift) & mask
	childWidth := 1 << childShift
	lastFromCum := fromOffset << childShift
	for i := 0; i < toCopy; i++ {
		idx := fromOffset + i
		var fromCum int
		if idx < lidx {
			fromCum = (idx + 1) * childWidth
		} else {
			fromCum = fromSize
		}
		v := lastToSize + (fromCum - lastFromCum)
		m.to.sizes = append(m.to.sizes, v)
		lastToSize = v
		lastFromCum = fromCum
	}
}

// merge consumes node's children in [offset, nslots-endoff), packing them
// according to m.plan.
func (m *merger[T]) merge(node *Node[T], shift, size, nslots, offset, endoff int) {
	if node == nil {
		return
	}
	childShift := shift - B
	for idx := offset; idx+endoff < nslots; idx++ {
		from := node.children[idx]
		var fromSize int
		if node.relaxed() {
			var last int
			if idx > 0 {
				last = node.sizes[idx-1]
			}
			fromSize = node.sizes[idx] - last
		} else if idx < nslots-1 {
			fromSize = 1 << shift
		} else {
			fromSize = size - (idx << shift)
		}

		var fromSlots int
		if from.relaxed() {
			fromSlots = from.count()
		} else {
			fromSlots = ((fromSize - 1) >> childShift) + 1
		}

		if m.to == nil && m.curSlot() == fromSlots {
			m.addChild(retain(from), fromSize)
			continue
		}

		fromOffset := 0
		for {
			if m.to == nil {
				m.to = m.newDest()
			}
			toCopy := min(fromSlots-fromOffset, m.curSlot()-m.toLen())
			m.copyFrom(from, fromOffset, toCopy, childShift, fromSize)
			fromOffset += toCopy
			if m.curSlot() == m.toLen() {
				m.addChild(m.to, m.destSize())
				m.to = nil
			}
			if fromSlots == fromOffset {
				break
			}
		}
	}
}

func (m *merger[T]) finish(shift int, isTop bool) (int, *Node[T]) {
	if m.parent != m.result {
		m.result.sizes[1] = m.result.sizes[0] + m.sizeSum
		return shift + B, m.result
	}
	if isTop {
		return shift, m.result
	}
	return shift, makeInnerRelaxedSingle(m.p, m.result, m.sizeSum)
}
