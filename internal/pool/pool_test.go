package pool_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/jroosing/awsrest/internal/pool"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Pool Basic Operations Tests
// =============================================================================

func TestPool_GetAndPut(t *testing.T) {
	bufPool := pool.New(func() []byte {
		return make([]byte, 1024)
	})

	buf := bufPool.Get()
	assert.Len(t, buf, 1024)
	bufPool.Put(buf)

	buf2 := bufPool.Get()
	assert.Len(t, buf2, 1024)
}

func TestPool_ConstructorCalled(t *testing.T) {
	callCount := 0
	p := pool.New(func() int {
		callCount++
		return callCount
	})

	assert.Equal(t, 1, p.Get())
	assert.Equal(t, 2, p.Get())
	assert.Equal(t, 2, callCount)
}

func TestPool_ResetRunsOnPut(t *testing.T) {
	resets := 0
	p := pool.NewWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) {
			resets++
			b.Reset()
		},
	)

	b := p.Get()
	b.WriteString("<ChangeBatch/>")
	p.Put(b)

	assert.Equal(t, 1, resets)
	assert.Equal(t, 0, b.Len(), "buffer must be empty once returned")
}

// =============================================================================
// Pool Concurrency Tests
// =============================================================================

func TestPool_ConcurrentAccess(t *testing.T) {
	p := pool.NewWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) { b.Reset() },
	)

	var wg sync.WaitGroup
	const goroutines = 50
	const iterations = 500

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				buf := p.Get()
				assert.Equal(t, 0, buf.Len())
				buf.WriteString("x")
				p.Put(buf)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkPool_GetPut(b *testing.B) {
	p := pool.NewWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) { b.Reset() },
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := p.Get()
		p.Put(buf)
	}
}
