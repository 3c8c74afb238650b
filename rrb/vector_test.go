package rrb

import "testing"

func TestPushBackAndGet(t *testing.T) {
	v := New[int]()
	const n = 666
	for i := 0; i < n; i++ {
		v = v.PushBack(i)
	}
	if v.Len() != n {
		t.Fatalf("Len() = %d, want %d", v.Len(), n)
	}
	for i := 0; i < n; i++ {
		if got := v.Get(i); got != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i)
		}
	}
	if err := v.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	v := Of(1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range Get")
		}
	}()
	v.Get(3)
}

func TestAssocAndUpdate(t *testing.T) {
	v := New[int]()
	for i := 0; i < 200; i++ {
		v = v.PushBack(i)
	}
	for i := 0; i < 200; i++ {
		v = v.Assoc(i, i*2)
	}
	for i := 0; i < 200; i++ {
		if got := v.Get(i); got != i*2 {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i*2)
		}
	}

	v2 := v.Update(5, func(x int) int { return x + 1 })
	if v2.Get(5) != v.Get(5)+1 {
		t.Fatalf("Update did not apply")
	}
	if v.Get(5) != 10 {
		t.Fatalf("Update mutated the original vector")
	}
}

func TestPersistentSharing(t *testing.T) {
	v1 := Of(1, 2, 3, 4, 5)
	v2 := v1.PushBack(6)
	if v1.Len() != 5 {
		t.Fatalf("v1 mutated by push on v2")
	}
	if v2.Len() != 6 {
		t.Fatalf("v2.Len() = %d, want 6", v2.Len())
	}
	for i := 0; i < 5; i++ {
		if v1.Get(i) != v2.Get(i) {
			t.Fatalf("v1/v2 diverge at %d", i)
		}
	}
}

func TestForEachChunkAndReduce(t *testing.T) {
	v := New[int]()
	const n = 221445
	sum := 0
	for i := 1; i <= n; i++ {
		v = v.PushBack(i)
		sum += i
	}
	got := Reduce(v, 0, func(acc, x int) int { return acc + x })
	if got != sum {
		t.Fatalf("Reduce sum = %d, want %d", got, sum)
	}
}

func TestAllIterator(t *testing.T) {
	v := Of(10, 20, 30)
	var idxs []int
	var vals []int
	for i, x := range v.All() {
		idxs = append(idxs, i)
		vals = append(vals, x)
	}
	want := []int{10, 20, 30}
	for i, x := range want {
		if vals[i] != x || idxs[i] != i {
			t.Fatalf("All() mismatch at %d: got (%d,%d)", i, idxs[i], vals[i])
		}
	}
}

func TestCursor(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Cursor()
	var got []int
	for !c.Done() {
		x, ok := c.Next()
		if !ok {
			t.Fatal("Next() returned ok=false before Done()")
		}
		got = append(got, x)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Cursor produced %v", got)
	}
}

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 4)
	if !EqualComparable(a, b) {
		t.Fatal("expected a == b")
	}
	if EqualComparable(a, c) {
		t.Fatal("expected a != c")
	}
}
