package refcount

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsAtOneOwner(t *testing.T) {
	for _, p := range []Policy{PolicyAtomic, PolicyPlain, PolicyNone, Policy("")} {
		c := New(p)
		assert.Equal(t, p != PolicyNone, c.Dec(), "policy %q: the single owner releasing once is the last one out (none never reports it)", p)
	}
}

func TestAtomicIncDec(t *testing.T) {
	c := New(PolicyAtomic)
	c.Inc()
	assert.False(t, c.Dec())
	assert.True(t, c.Dec())
}

func TestAtomicDecUnsafe(t *testing.T) {
	c := New(PolicyAtomic)
	c.Inc()
	c.DecUnsafe()
	assert.True(t, c.Dec())
}

func TestAtomicConcurrentIncDec(t *testing.T) {
	c := New(PolicyAtomic)
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		c.Inc()
		go func() {
			defer wg.Done()
			c.Dec()
		}()
	}
	wg.Wait()
	assert.True(t, c.Dec())
}

func TestPlainIncDec(t *testing.T) {
	c := New(PolicyPlain)
	c.Inc()
	c.Inc()
	assert.False(t, c.Dec())
	assert.False(t, c.Dec())
	assert.True(t, c.Dec())
}

func TestNoneCounterNeverReportsLast(t *testing.T) {
	c := New(PolicyNone)
	c.Inc()
	assert.False(t, c.Dec())
	assert.False(t, c.Dec())
	assert.NotPanics(t, func() { c.DecUnsafe() })
}
