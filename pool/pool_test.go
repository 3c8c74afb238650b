package pool

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arximboldi/rrb-go/internal/errs"
	"github.com/arximboldi/rrb-go/rrb"
)

func buildSeq(n int) *rrb.Vector[int] {
	v := rrb.New[int]()
	for i := 0; i < n; i++ {
		v = v.PushBack(i)
	}
	return v
}

func roundTrip(t *testing.T, n int) *rrb.Vector[int] {
	t.Helper()
	v := buildSeq(n)
	doc := Save(v)
	got, err := Load(doc, rrb.DefaultPolicy[int]())
	require.NoError(t, err)
	require.Len(t, got, 1)
	return got[0]
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5, 31, 32, 33, 200, 1000} {
		got := roundTrip(t, n)
		assert.Equal(t, n, got.Len())
		for i := 0; i < n; i++ {
			assert.Equal(t, i, got.Get(i))
		}
		assert.NoError(t, got.CheckInvariants())
	}
}

func TestSaveLoadPreservesSharing(t *testing.T) {
	base := buildSeq(200)
	left := base.Take(100)
	right := base.Take(150)

	doc := Save(left, right)
	separate := Save(left)
	separate.Leaves = append(separate.Leaves, Save(right).Leaves...)
	separate.Inners = append(separate.Inners, Save(right).Inners...)
	// left and right share the three leaves holding elements 0..95; saved
	// together those leaves are written once, not twice.
	assert.Less(t, len(doc.Inners)+len(doc.Leaves), len(separate.Inners)+len(separate.Leaves))

	got, err := Load(doc, rrb.DefaultPolicy[int]())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].Len())
	assert.Equal(t, 150, got[1].Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, got[0].Get(i))
	}
	for i := 0; i < 150; i++ {
		assert.Equal(t, i, got[1].Get(i))
	}
}

// TestSaveLoadRoundTripRelaxed exercises a vector with genuinely relaxed
// inner nodes (concat of two uneven subtrees), making sure Load's
// recomputed-from-subtree sizes (not anything read off the wire) line up
// with the actual element positions.
func TestSaveLoadRoundTripRelaxed(t *testing.T) {
	left := buildSeq(77)
	right := rrb.New[int]()
	for i := 0; i < 900; i++ {
		right = right.PushBack(1000 + i)
	}
	joined := left.Concat(right)
	require.NoError(t, joined.CheckInvariants())

	doc := Save(joined)
	got, err := Load(doc, rrb.DefaultPolicy[int]())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, joined.Len(), got[0].Len())
	for i := 0; i < joined.Len(); i++ {
		assert.Equal(t, joined.Get(i), got[0].Get(i))
	}
	assert.NoError(t, got[0].CheckInvariants())
}

func TestLoadWithTransform(t *testing.T) {
	v := buildSeq(50)
	doc := Save(v)

	got, err := LoadWithTransform(doc, rrb.DefaultPolicy[string](), func(x int) (string, error) {
		return strconv.Itoa(x), nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, v.Len(), got[0].Len())
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, strconv.Itoa(i), got[0].Get(i))
	}
}

func TestLoadWithTransformPropagatesError(t *testing.T) {
	v := buildSeq(50)
	doc := Save(v)
	boom := errors.New("boom")

	_, err := LoadWithTransform(doc, rrb.DefaultPolicy[string](), func(x int) (string, error) {
		if x == 10 {
			return "", boom
		}
		return strconv.Itoa(x), nil
	})
	require.Error(t, err)
	assert.Equal(t, errs.CodeTransform, errs.Code(err))
	assert.True(t, errors.Is(err, boom))
}

func TestLoadWithTransformContextAbortsOnExpiredDeadline(t *testing.T) {
	v := buildSeq(50)
	doc := Save(v)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond) // make sure the deadline has actually elapsed

	_, err := LoadWithTransformContext(ctx, doc, rrb.DefaultPolicy[string](), func(x int) (string, error) {
		return strconv.Itoa(x), nil
	})
	require.Error(t, err)
	assert.Equal(t, errs.CodeTransform, errs.Code(err))
}

func TestLoadRejectsIncompatibleBits(t *testing.T) {
	doc := Save(buildSeq(10))
	doc.B = rrb.B + 1
	_, err := Load(doc, rrb.DefaultPolicy[int]())
	require.Error(t, err)
	assert.Equal(t, errs.CodeIncompatibleBits, errs.Code(err))
}

func TestLoadRejectsMissingNodeID(t *testing.T) {
	doc := Save(buildSeq(100))
	doc.Inners[0].Body.Children[0] = 999999
	_, err := Load(doc, rrb.DefaultPolicy[int]())
	require.Error(t, err)
	assert.Equal(t, errs.CodeInvalidNodeID, errs.Code(err))
}

func TestLoadRejectsOversizedLeaf(t *testing.T) {
	doc := &Document[int]{B: rrb.B, BL: rrb.BL}
	big := make([]int, rrb.Branches+1)
	doc.Leaves = append(doc.Leaves, LeafRecord[int]{ID: 0, Values: big})
	doc.Vectors = append(doc.Vectors, VectorRecord{Root: -1, Tail: 0})
	_, err := Load(doc, rrb.DefaultPolicy[int]())
	require.Error(t, err)
	assert.Equal(t, errs.CodeInvalidChildCount, errs.Code(err))
}

func TestLoadRejectsCycle(t *testing.T) {
	doc := &Document[int]{
		B:  rrb.B,
		BL: rrb.BL,
		Inners: []InnerRecord{
			{ID: 0, Body: InnerBody{Children: []int{1}}},
			{ID: 1, Body: InnerBody{Children: []int{0}}},
		},
		Leaves:  []LeafRecord[int]{{ID: 2}},
		Vectors: []VectorRecord{{Root: 0, Tail: 2}},
	}
	_, err := Load(doc, rrb.DefaultPolicy[int]())
	require.Error(t, err)
	assert.Equal(t, errs.CodePoolHasCycles, errs.Code(err))
}

func TestLoadRejectsMixedDepth(t *testing.T) {
	v := buildSeq(2000) // deep enough to have at least two inner levels above the leaves
	doc := Save(v)
	leafID := doc.Leaves[0].ID

	var root *InnerRecord
	for i := range doc.Inners {
		if doc.Inners[i].ID == doc.Vectors[0].Root {
			root = &doc.Inners[i]
			break
		}
	}
	require.NotNil(t, root)
	require.Greater(t, len(root.Body.Children), 1, "root needs a sibling to mismatch against")
	root.Body.Children[0] = leafID // the root's true children are inner nodes, not leaves

	_, err := Load(doc, rrb.DefaultPolicy[int]())
	require.Error(t, err)
	assert.Equal(t, errs.CodeMixedDepth, errs.Code(err))
}
