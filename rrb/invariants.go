package rrb

import "github.com/arximboldi/rrb-go/internal/errs"

// CheckInvariants walks v's whole structure and returns an error the
// first time it finds a violation of the shape invariants an RRB tree is
// supposed to maintain: every leaf and inner node holds between 1 and
// Branches children; a strict node's children are all full except
// possibly the last; a relaxed node's cumulative sizes table is strictly
// increasing and ends at that node's total size; the tree's recorded
// size matches root size plus tail size. Intended for tests and the
// validate CLI subcommand, not the hot path.
func (v *Vector[T]) CheckInvariants() error {
	tailOff := v.tailOffset()
	if tailOff > 0 {
		if err := checkNode(v.root, v.shift, tailOff); err != nil {
			return err
		}
	} else if v.root.count() != 0 {
		return errs.Newf(errs.CodeVectorCorrupted, "empty tail offset but root has %d children", v.root.count())
	}

	tailSize := v.size - tailOff
	if tailSize < 0 || tailSize > Branches {
		return errs.Newf(errs.CodeVectorCorrupted, "tail size %d out of range", tailSize)
	}
	if !v.tail.leaf {
		return errs.New(errs.CodeVectorCorrupted, "tail is not a leaf")
	}
	if v.tail.count() != tailSize {
		return errs.Newf(errs.CodeVectorCorrupted, "tail holds %d values, expected %d", v.tail.count(), tailSize)
	}
	return nil
}

func checkNode[T any](n *Node[T], shift, size int) error {
	if size <= 0 {
		return errs.Newf(errs.CodeVectorCorrupted, "node at shift %d has non-positive size %d", shift, size)
	}
	if shift == 0 {
		if !n.leaf {
			return errs.New(errs.CodeVectorCorrupted, "expected leaf at shift 0")
		}
		if n.count() != size || n.count() < 1 || n.count() > Branches {
			return errs.Newf(errs.CodeVectorCorrupted, "leaf holds %d values, expected %d", n.count(), size)
		}
		return nil
	}
	if n.leaf {
		return errs.Newf(errs.CodeVectorCorrupted, "unexpected leaf at shift %d", shift)
	}
	count := n.count()
	if count < 1 || count > Branches {
		return errs.Newf(errs.CodeVectorCorrupted, "inner node at shift %d has %d children", shift, count)
	}

	if n.relaxed() {
		if len(n.sizes) != count {
			return errs.New(errs.CodeVectorCorrupted, "relaxed sizes table length mismatch")
		}
		if n.sizes[count-1] != size {
			return errs.Newf(errs.CodeVectorCorrupted, "relaxed node sizes total %d, expected %d", n.sizes[count-1], size)
		}
		var last int
		for i, c := range n.children {
			childSize := n.sizes[i] - last
			if childSize <= 0 {
				return errs.Newf(errs.CodeVectorCorrupted, "relaxed node child %d has non-positive size", i)
			}
			if err := checkNode(c, shift-B, childSize); err != nil {
				return err
			}
			last = n.sizes[i]
		}
		return nil
	}

	full := 1 << shift
	for i, c := range n.children {
		childSize := full
		if i == count-1 {
			childSize = size - i*full
		}
		if i != count-1 && childSize != full {
			return errs.Newf(errs.CodeVectorCorrupted, "strict node child %d not full", i)
		}
		if err := checkNode(c, shift-B, childSize); err != nil {
			return err
		}
	}
	return nil
}
