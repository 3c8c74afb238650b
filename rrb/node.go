package rrb

import "github.com/arximboldi/rrb-go/internal/refcount"

// Node is either a leaf (holding up to Branches values), a strict/regular
// inner node (every child but the last is completely full), or a relaxed
// inner node (children may be any size, tracked by a cumulative sizes
// table). shift == 0 during a descent always means "this is a leaf" —
// there is no separate leaf/inner discriminant bit needed for that check,
// but nodes still carry one since a node's shift isn't always in scope
// where it is inspected (release, the merger, invariant checks).
type Node[T any] struct {
	leaf     bool
	relaxedF bool
	values   []T
	children []*Node[T]
	sizes    []int
	rc       refcount.Counter
	edit     uint64
}

func (n *Node[T]) relaxed() bool { return !n.leaf && n.relaxedF }

func (n *Node[T]) count() int {
	if n.leaf {
		return len(n.values)
	}
	return len(n.children)
}

func retain[T any](n *Node[T]) *Node[T] {
	if n != nil {
		n.rc.Inc()
	}
	return n
}

func release[T any](p *Policy[T], n *Node[T]) {
	if n == nil {
		return
	}
	if !n.rc.Dec() {
		return
	}
	if n.leaf {
		p.Values.ReleaseValues(n.values)
		return
	}
	for _, c := range n.children {
		release(p, c)
	}
	p.Children.ReleaseValues(n.children)
}

func makeLeaf[T any](p *Policy[T]) *Node[T] {
	return &Node[T]{leaf: true, values: p.Values.AllocValues(0), rc: refcount.New(p.RC)}
}

func makeLeafSingle[T any](p *Policy[T], x T) *Node[T] {
	vs := p.Values.AllocValues(1)
	vs = append(vs, x)
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func makeInnerStrict[T any](p *Policy[T]) *Node[T] {
	return &Node[T]{children: p.Children.AllocValues(0), rc: refcount.New(p.RC)}
}

func makeInnerRelaxed[T any](p *Policy[T]) *Node[T] {
	return &Node[T]{relaxedF: true, children: p.Children.AllocValues(0), sizes: make([]int, 0, Branches), rc: refcount.New(p.RC)}
}

func makeInnerSingle[T any](p *Policy[T], child *Node[T]) *Node[T] {
	n := makeInnerStrict(p)
	n.children = append(n.children, child)
	return n
}

func makeInnerPair[T any](p *Policy[T], a, b *Node[T]) *Node[T] {
	n := makeInnerStrict(p)
	n.children = append(n.children, a, b)
	return n
}

// makeInnerRelaxedWrap builds a 2-child relaxed node with both cumulative
// sizes already known.
func makeInnerRelaxedWrap[T any](p *Policy[T], a *Node[T], aSize int, b *Node[T], bSize int) *Node[T] {
	n := makeInnerRelaxed(p)
	n.children = append(n.children, a, b)
	n.sizes = append(n.sizes, aSize, aSize+bSize)
	return n
}

// makeInnerRelaxedWrapPartial builds a 2-child relaxed node whose second
// cumulative size isn't known yet; the merger fills it in once it finishes
// packing b's subtree.
func makeInnerRelaxedWrapPartial[T any](p *Policy[T], a *Node[T], aSize int, b *Node[T]) *Node[T] {
	n := makeInnerRelaxed(p)
	n.children = append(n.children, a, b)
	n.sizes = append(n.sizes, aSize, 0)
	return n
}

func makeInnerRelaxedSingle[T any](p *Policy[T], a *Node[T], aSize int) *Node[T] {
	n := makeInnerRelaxed(p)
	n.children = append(n.children, a)
	n.sizes = append(n.sizes, aSize)
	return n
}

func makePath[T any](p *Policy[T], level int, node *Node[T]) *Node[T] {
	if level == 0 {
		return node
	}
	return makeInnerSingle(p, makePath(p, level-B, node))
}

func copyLeafN[T any](p *Policy[T], src *Node[T], n int) *Node[T] {
	vs := p.Values.AllocValues(n)
	vs = append(vs, src.values[:n]...)
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func copyLeafRange[T any](p *Policy[T], src *Node[T], first, last int) *Node[T] {
	vs := p.Values.AllocValues(last - first)
	vs = append(vs, src.values[first:last]...)
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func copyLeafConcat[T any](p *Policy[T], a *Node[T], na int, b *Node[T], nb int) *Node[T] {
	vs := p.Values.AllocValues(na + nb)
	vs = append(vs, a.values[:na]...)
	vs = append(vs, b.values[:nb]...)
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func copyLeafEmplace[T any](p *Policy[T], src *Node[T], n int, x T) *Node[T] {
	vs := p.Values.AllocValues(n + 1)
	vs = append(vs, src.values[:n]...)
	vs = append(vs, x)
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func copyLeafSet[T any](p *Policy[T], src *Node[T], n, idx int, set func(T) T) *Node[T] {
	vs := p.Values.AllocValues(n)
	vs = append(vs, src.values[:n]...)
	vs[idx] = set(vs[idx])
	return &Node[T]{leaf: true, values: vs, rc: refcount.New(p.RC)}
}

func copyChildrenN[T any](p *Policy[T], src *Node[T], n int) []*Node[T] {
	cs := p.Children.AllocValues(n)
	cs = append(cs, src.children[:n]...)
	for _, c := range cs {
		c.rc.Inc()
	}
	return cs
}

func copyInnerStrictN[T any](p *Policy[T], src *Node[T], n int) *Node[T] {
	return &Node[T]{children: copyChildrenN(p, src, n), rc: refcount.New(p.RC)}
}

func copyInnerRelaxedN[T any](p *Policy[T], src *Node[T], n int) *Node[T] {
	sizes := make([]int, n, Branches)
	copy(sizes, src.sizes[:n])
	return &Node[T]{relaxedF: true, children: copyChildrenN(p, src, n), sizes: sizes, rc: refcount.New(p.RC)}
}
