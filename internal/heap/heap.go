// Package heap provides the allocation service the engine's node factories
// call through: a direct GC-backed allocator, and a sync.Pool-backed free
// list for workloads that churn many transient nodes. Allocation is always
// uninitialized capacity; placement construction is the caller's job.
package heap

import "sync"

// Heap allocates and releases backing storage for one element kind. The
// engine holds two instances per Vector type: Heap[T] for leaf values and
// Heap[*Node[T]] for inner-node children, so one interface covers both.
type Heap[T any] interface {
	AllocValues(capacity int) []T
	ReleaseValues([]T)
}

// GC is the default heap: allocation is a plain make, release is a no-op
// and lets the garbage collector reclaim storage. This matches spec.md's
// "externally-provided garbage-collected heap" policy.
type GC[T any] struct{}

func NewGC[T any]() *GC[T] { return &GC[T]{} }

func (GC[T]) AllocValues(capacity int) []T { return make([]T, 0, capacity) }
func (GC[T]) ReleaseValues([]T)            {}

// Pooled recycles value-slice backing arrays through a sync.Pool keyed by
// capacity class, grounded on perf-analysis's collections.SlicePool.
type Pooled[T any] struct {
	pools map[int]*sync.Pool
	mu    sync.Mutex
	cap   int
}

// NewPooled builds a Pooled heap. Its free list keeps one bucket per
// capacity passed to AllocValues; the capacity given here (typically 1<<BL,
// the leaf width) is recorded but does not select or limit the buckets.
func NewPooled[T any](capacity int) *Pooled[T] {
	return &Pooled[T]{pools: make(map[int]*sync.Pool), cap: capacity}
}

func (p *Pooled[T]) poolFor(capacity int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	pl, ok := p.pools[capacity]
	if !ok {
		pl = &sync.Pool{New: func() any {
			s := make([]T, 0, capacity)
			return &s
		}}
		p.pools[capacity] = pl
	}
	return pl
}

func (p *Pooled[T]) AllocValues(capacity int) []T {
	pl := p.poolFor(capacity)
	sp := pl.Get().(*[]T)
	s := (*sp)[:0]
	*sp = nil
	return s
}

func (p *Pooled[T]) ReleaseValues(s []T) {
	if cap(s) == 0 {
		return
	}
	pl := p.poolFor(cap(s))
	var zero T
	for i := range s {
		s[i] = zero
	}
	s = s[:0]
	pl.Put(&s)
}
