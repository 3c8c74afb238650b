// Package refcount implements the node reference-count policies: atomic
// (thread-safe readers), plain (single-threaded), and none (GC-backed hosts
// that never finalize through the refcount).
package refcount

import "sync/atomic"

// Counter is the policy interface every node embeds. Inc records an
// additional owner; Dec relinquishes ownership and reports whether the
// caller was the last one out; DecUnsafe decrements without reporting,
// for call sites that already know the node survives.
type Counter interface {
	Inc()
	Dec() bool
	DecUnsafe()
}

// Policy names a Counter constructor, selected by internal/config.
type Policy string

const (
	PolicyAtomic Policy = "atomic"
	PolicyPlain  Policy = "plain"
	PolicyNone   Policy = "none"
)

// New builds a fresh Counter (initialized to one owner) for the given policy.
func New(p Policy) Counter {
	switch p {
	case PolicyPlain:
		return &plain{n: 1}
	case PolicyNone:
		return noneCounter{}
	default:
		return newAtomic()
	}
}

// Atomic is a thread-safe counter; concurrent readers of the same shared
// node may Inc/Dec from distinct goroutines.
type Atomic struct {
	n atomic.Int32
}

func newAtomic() *Atomic {
	a := &Atomic{}
	a.n.Store(1)
	return a
}

func (a *Atomic) Inc() { a.n.Add(1) }

func (a *Atomic) Dec() bool {
	return a.n.Add(-1) == 0
}

func (a *Atomic) DecUnsafe() { a.n.Add(-1) }

// plain is the single-threaded, non-atomic counter.
type plain struct {
	n int32
}

func (p *plain) Inc() { p.n++ }

func (p *plain) Dec() bool {
	p.n--
	return p.n == 0
}

func (p *plain) DecUnsafe() { p.n-- }

// noneCounter backs GC-hosted nodes: Dec always reports "not last", since
// finalization is the collector's job, not this policy's.
type noneCounter struct{}

func (noneCounter) Inc()       {}
func (noneCounter) Dec() bool  { return false }
func (noneCounter) DecUnsafe() {}
