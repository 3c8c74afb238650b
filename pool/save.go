package pool

import "github.com/arximboldi/rrb-go/rrb"

// Save flattens vectors into a Document, writing each distinct node
// (identified by pointer) exactly once regardless of how many vectors or
// parents reference it.
func Save[T any](vectors ...*rrb.Vector[T]) *Document[T] {
	s := &saver[T]{ids: make(map[*rrb.Node[T]]int)}
	doc := &Document[T]{B: rrb.B, BL: rrb.BL}
	for _, v := range vectors {
		rootID := -1
		if v.Root().Count() > 0 {
			rootID = s.visit(v.Root())
		}
		tailID := s.visit(v.Tail())
		doc.Vectors = append(doc.Vectors, VectorRecord{Root: rootID, Tail: tailID})
	}
	doc.Leaves = s.leaves
	doc.Inners = s.inners
	return doc
}

type saver[T any] struct {
	ids    map[*rrb.Node[T]]int
	next   int
	leaves []LeafRecord[T]
	inners []InnerRecord
}

func (s *saver[T]) visit(n *rrb.Node[T]) int {
	if id, ok := s.ids[n]; ok {
		return id
	}
	id := s.next
	s.next++
	s.ids[n] = id

	if n.IsLeaf() {
		count := n.Count()
		values := make([]T, count)
		for i := 0; i < count; i++ {
			values[i] = n.ValueAt(i)
		}
		s.leaves = append(s.leaves, LeafRecord[T]{ID: id, Values: values})
		return id
	}

	count := n.Count()
	children := make([]int, count)
	for i := 0; i < count; i++ {
		children[i] = s.visit(n.ChildAt(i))
	}
	body := InnerBody{Children: children, Relaxed: n.IsRelaxed()}
	s.inners = append(s.inners, InnerRecord{ID: id, Body: body})
	return id
}
