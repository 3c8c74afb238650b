package pool

import (
	"context"
	"fmt"

	"github.com/arximboldi/rrb-go/internal/errs"
	"github.com/arximboldi/rrb-go/rrb"
)

// Load rebuilds the vectors a Document describes, validating it against
// the engine's shape rules as it goes: known, non-cyclic node ids;
// children counts within [1, Branches]; every child of an inner node at
// the same depth as its siblings; a strict node's non-last children
// themselves strict. Nodes referenced from more than one place keep that
// sharing in the rebuilt trees. On any error every node built so far is
// released and Load returns nil.
func Load[T any](doc *Document[T], p *rrb.Policy[T]) ([]*rrb.Vector[T], error) {
	return LoadWithTransform(doc, p, func(v T) (T, error) { return v, nil })
}

// LoadWithTransform rebuilds the vectors doc describes the same way Load
// does, but applies transform to every leaf value as it is read off the
// wire, so a Document[S] can be loaded into a Vector[T] of a different
// element type. A transform error aborts the load immediately; every node
// built so far (including in documents/vectors processed earlier in the
// same call) is released before the error is returned, the same as any
// other load failure.
func LoadWithTransform[S, T any](doc *Document[S], p *rrb.Policy[T], transform func(S) (T, error)) ([]*rrb.Vector[T], error) {
	return LoadWithTransformContext(context.Background(), doc, p, transform)
}

// LoadWithTransformContext is LoadWithTransform with a cancellable/bounded
// context: ctx is checked before every leaf's transform call, so a host
// that derives ctx from a deadline (e.g. internal/config's
// ElementTransformTimeoutMS) can abort a load whose transform is hanging or
// running long, the same way any other load failure unwinds — every node
// built so far is released.
func LoadWithTransformContext[S, T any](ctx context.Context, doc *Document[S], p *rrb.Policy[T], transform func(S) (T, error)) ([]*rrb.Vector[T], error) {
	if doc.B != rrb.B || doc.BL != rrb.BL {
		return nil, errs.Newf(errs.CodeIncompatibleBits, "pool uses B=%d BL=%d, engine uses B=%d BL=%d", doc.B, doc.BL, rrb.B, rrb.BL)
	}

	l := &loader[S, T]{
		p:         p,
		ctx:       ctx,
		transform: transform,
		leaves:    make(map[int]LeafRecord[S]),
		inners:    make(map[int]InnerRecord),
		status:    make(map[int]loadStatus),
		built:     make(map[int]*rrb.Node[T]),
		shiftOf:   make(map[int]int),
	}

	for _, lr := range doc.Leaves {
		if l.taken(lr.ID) {
			return nil, errs.Newf(errs.CodeInvalidNodeID, "duplicate node id %d", lr.ID)
		}
		l.leaves[lr.ID] = lr
	}
	for _, ir := range doc.Inners {
		if l.taken(ir.ID) {
			return nil, errs.Newf(errs.CodeInvalidNodeID, "duplicate node id %d", ir.ID)
		}
		l.inners[ir.ID] = ir
	}

	var result []*rrb.Vector[T]
	fail := func(err error) ([]*rrb.Vector[T], error) {
		for _, v := range result {
			v.Release()
		}
		l.releaseCache()
		return nil, err
	}

	for _, vr := range doc.Vectors {
		var root *rrb.Node[T]
		rootShift := rrb.B
		if vr.Root != -1 {
			n, shift, err := l.build(vr.Root)
			if err != nil {
				return fail(err)
			}
			root, rootShift = rrb.Retain(n), shift
		} else {
			root = rrb.NewInner(p, nil, nil)
		}

		tail, tailShift, err := l.build(vr.Tail)
		if err != nil {
			return fail(err)
		}
		if tailShift != 0 || !tail.IsLeaf() {
			return fail(errs.Newf(errs.CodeMixedDepth, "vector tail %d is not a leaf", vr.Tail))
		}
		tail = rrb.Retain(tail)

		size := tail.Count()
		if root.Count() > 0 {
			size += nodeSize(root, rootShift)
		}

		v := rrb.FromParts(p, size, rootShift, root, tail)
		if err := v.CheckInvariants(); err != nil {
			v.Release()
			return fail(errs.Wrap(errs.CodeVectorCorrupted, "reconstructed vector fails invariants", err))
		}
		result = append(result, v)
	}

	l.releaseCache()
	return result, nil
}

type loadStatus int

const (
	unvisited loadStatus = iota
	visiting
	done
)

// loader rebuilds a Document[S] into Vector[T]s, applying transform to
// every leaf value along the way. Load uses S == T with an identity
// transform; LoadWithTransform lets a host migrate a pool file's element
// type during load.
type loader[S, T any] struct {
	p         *rrb.Policy[T]
	ctx       context.Context
	transform func(S) (T, error)
	leaves    map[int]LeafRecord[S]
	inners    map[int]InnerRecord
	status    map[int]loadStatus
	built     map[int]*rrb.Node[T]
	shiftOf   map[int]int
}

func (l *loader[S, T]) taken(id int) bool {
	_, isLeaf := l.leaves[id]
	_, isInner := l.inners[id]
	return isLeaf || isInner
}

// build returns the node for id and its shift, constructing it (and its
// children, recursively) the first time id is seen. Later calls return
// the same *rrb.Node pointer without retaining it — callers that keep a
// reference to it (as a child or a vector root/tail) must Retain it
// themselves.
func (l *loader[S, T]) build(id int) (*rrb.Node[T], int, error) {
	if n, ok := l.built[id]; ok {
		return n, l.shiftOf[id], nil
	}
	if l.status[id] == visiting {
		return nil, 0, errs.Newf(errs.CodePoolHasCycles, "cycle through node %d", id)
	}

	if lr, ok := l.leaves[id]; ok {
		if len(lr.Values) > rrb.Branches {
			return nil, 0, errs.Newf(errs.CodeInvalidChildCount, "leaf %d holds %d values, max %d", id, len(lr.Values), rrb.Branches)
		}
		values := make([]T, len(lr.Values))
		for i, sv := range lr.Values {
			if err := l.ctx.Err(); err != nil {
				return nil, 0, errs.Wrap(errs.CodeTransform, fmt.Sprintf("transforming leaf %d value %d", id, i), err)
			}
			tv, err := l.transform(sv)
			if err != nil {
				return nil, 0, errs.Wrap(errs.CodeTransform, fmt.Sprintf("transforming leaf %d value %d", id, i), err)
			}
			values[i] = tv
		}
		n := rrb.NewLeaf(l.p, values)
		l.built[id] = n
		l.shiftOf[id] = 0
		return n, 0, nil
	}

	ir, ok := l.inners[id]
	if !ok {
		return nil, 0, errs.Newf(errs.CodeInvalidNodeID, "node id %d not found", id)
	}
	l.status[id] = visiting

	count := len(ir.Body.Children)
	if count < 1 || count > rrb.Branches {
		return nil, 0, errs.Newf(errs.CodeInvalidChildCount, "inner node %d has %d children", id, count)
	}

	children := make([]*rrb.Node[T], count)
	childShift := -1
	for i, cid := range ir.Body.Children {
		c, shift, err := l.build(cid)
		if err != nil {
			return nil, 0, err
		}
		if i == 0 {
			childShift = shift
		} else if shift != childShift {
			return nil, 0, errs.Newf(errs.CodeMixedDepth, "inner node %d mixes child depths", id)
		}
		children[i] = rrb.Retain(c)
	}

	if !ir.Body.Relaxed {
		for i := 0; i < count-1; i++ {
			if children[i].IsRelaxed() {
				return nil, 0, errs.Newf(errs.CodeRelaxedNotAllowed, "strict inner node %d has relaxed non-last child %d", id, i)
			}
		}
	}

	// Sizes are never trusted from the wire: recompute each child's
	// cumulative size from its own rebuilt subtree.
	var sizes []int
	if ir.Body.Relaxed {
		sizes = make([]int, count)
		total := 0
		for i, c := range children {
			total += nodeSize(c, childShift)
			sizes[i] = total
		}
	}
	n := rrb.NewInner(l.p, children, sizes)
	shift := childShift + rrb.B
	l.built[id] = n
	l.shiftOf[id] = shift
	l.status[id] = done
	return n, shift, nil
}

// releaseCache drops the loader's own holding reference to every node it
// built; whatever real references were retained for children and vector
// roots/tails along the way keep those nodes alive.
func (l *loader[S, T]) releaseCache() {
	for _, n := range l.built {
		rrb.Release(l.p, n)
	}
}

// nodeSize computes a built node's total logical size by walking down its
// rightmost spine, without needing an externally supplied size (strict
// nodes don't carry one; only their rightmost child may be partial).
func nodeSize[T any](n *rrb.Node[T], shift int) int {
	if n.IsLeaf() {
		return n.Count()
	}
	count := n.Count()
	if n.IsRelaxed() {
		return n.SizeAt(count - 1)
	}
	return (count-1)<<shift + nodeSize(n.ChildAt(count-1), shift-rrb.B)
}
