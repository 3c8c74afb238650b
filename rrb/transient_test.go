package rrb

import "testing"

func TestTransientPushBackMatchesPersistent(t *testing.T) {
	v := New[int]()
	tr := v.Transient()
	const n = 500
	for i := 0; i < n; i++ {
		tr.PushBack(i)
	}
	got := tr.Persist()
	if got.Len() != n {
		t.Fatalf("Len() = %d, want %d", got.Len(), n)
	}
	for i := 0; i < n; i++ {
		if got.Get(i) != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got.Get(i), i)
		}
	}
	if err := got.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestTransientSet(t *testing.T) {
	v := buildSeq(200)
	tr := v.Transient()
	for i := 0; i < 200; i++ {
		tr.Set(i, i*10)
	}
	got := tr.Persist()
	for i := 0; i < 200; i++ {
		if got.Get(i) != i*10 {
			t.Fatalf("Get(%d) = %d, want %d", i, got.Get(i), i*10)
		}
	}
	// original untouched
	for i := 0; i < 200; i++ {
		if v.Get(i) != i {
			t.Fatalf("original vector mutated at %d", i)
		}
	}
}

func TestTransientUsedAfterPersistPanics(t *testing.T) {
	v := buildSeq(10)
	tr := v.Transient()
	tr.Persist()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic using transient after Persist")
		}
	}()
	tr.PushBack(1)
}

func TestTransientTakeDrop(t *testing.T) {
	v := buildSeq(100)
	tr := v.Transient()
	tr.Take(60)
	tr.Drop(10)
	got := tr.Persist()
	if got.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", got.Len())
	}
	for i := 0; i < 50; i++ {
		if got.Get(i) != 10+i {
			t.Fatalf("Get(%d) = %d, want %d", i, got.Get(i), 10+i)
		}
	}
}

func TestFlexTransientAppendAndPushFront(t *testing.T) {
	v := buildSeq(50)
	ft := v.FlexTransient()
	ft.Append(buildSeq(30))
	ft.PushFront(-1)
	got := ft.Persist()
	if got.Len() != 81 {
		t.Fatalf("Len() = %d, want 81", got.Len())
	}
	if got.Get(0) != -1 {
		t.Fatalf("Get(0) = %d, want -1", got.Get(0))
	}
	if got.Get(1) != 0 || got.Get(50) != 49 {
		t.Fatalf("unexpected values after append/push_front")
	}
	if got.Get(51) != 0 {
		t.Fatalf("Get(51) = %d, want 0 (start of appended range)", got.Get(51))
	}
}
