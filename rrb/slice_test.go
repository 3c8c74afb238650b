package rrb

import "testing"

func buildSeq(n int) *Vector[int] {
	v := New[int]()
	for i := 0; i < n; i++ {
		v = v.PushBack(i)
	}
	return v
}

func TestTakeDropIdentityAllSplits(t *testing.T) {
	const n = 500
	v := buildSeq(n)
	for split := 0; split <= n; split++ {
		left := v.Take(split)
		right := v.Drop(split)
		if left.Len() != split {
			t.Fatalf("Take(%d).Len() = %d", split, left.Len())
		}
		if right.Len() != n-split {
			t.Fatalf("Drop(%d).Len() = %d", split, right.Len())
		}
		for i := 0; i < split; i++ {
			if left.Get(i) != i {
				t.Fatalf("Take(%d)[%d] = %d, want %d", split, i, left.Get(i), i)
			}
		}
		for i := 0; i < n-split; i++ {
			if right.Get(i) != split+i {
				t.Fatalf("Drop(%d)[%d] = %d, want %d", split, i, right.Get(i), split+i)
			}
		}
		if err := left.CheckInvariants(); err != nil {
			t.Fatalf("Take(%d) invariants: %v", split, err)
		}
		if err := right.CheckInvariants(); err != nil {
			t.Fatalf("Drop(%d) invariants: %v", split, err)
		}
	}
}

func TestTakeZeroAndAll(t *testing.T) {
	v := buildSeq(40)
	if v.Take(0).Len() != 0 {
		t.Fatal("Take(0) not empty")
	}
	if v.Take(1000).Len() != v.Len() {
		t.Fatal("Take(huge) did not clamp to len")
	}
	if v.Drop(0).Len() != v.Len() {
		t.Fatal("Drop(0) changed length")
	}
	if v.Drop(1000).Len() != 0 {
		t.Fatal("Drop(huge) not empty")
	}
}
