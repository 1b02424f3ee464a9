package rcslice

import (
	"sort"
	"sync"
	"sync/atomic"
)

// BufferPool recycles byte buffers between decode cycles so view-heavy
// workloads stop churning the allocator.
type BufferPool interface {
	// Get returns a buffer of the given length from the pool.
	Get(length int) []byte

	// Put returns a buffer to the pool. The buffer must no longer be
	// referenced by any view.
	Put([]byte)
}

// PooledBytes draws a buffer from pool and shares it as a full-range byte
// view; when the last reference is freed the buffer goes back to the pool.
// The backing container is Fixed so a Shrink can never swap the pooled
// allocation out from under the return hook.
func PooledBytes(pool BufferPool, length int) *View[byte] {
	buf := pool.Get(length)
	h := NewHandle[byte](NewFixed(buf))
	h.OnRelease(func() {
		pool.Put(buf)
	})
	return viewOf(h, All())
}

var defaultPoolSizes = []int{
	256,
	4 << 10,  // page size
	16 << 10, // typical frame payload
	32 << 10, // io.Copy buffer size
	1 << 20,
}

var defaultPool = func() *atomic.Pointer[BufferPool] {
	pool := NewTieredBufferPool(defaultPoolSizes...)
	ptr := new(atomic.Pointer[BufferPool])
	ptr.Store(&pool)
	return ptr
}()

// DefaultBufferPool returns the shared tiered pool.
func DefaultBufferPool() BufferPool {
	return *defaultPool.Load()
}

// SetDefaultBufferPool replaces the shared pool, for callers that want to
// instrument or disable pooling process-wide.
func SetDefaultBufferPool(pool BufferPool) {
	defaultPool.Store(&pool)
}

// NewTieredBufferPool builds a pool with one sync.Pool tier per size,
// routing each request to the smallest tier that fits and oversized
// requests to an unbounded fallback.
func NewTieredBufferPool(poolSizes ...int) BufferPool {
	sort.Ints(poolSizes)
	pools := make([]*sizedBufferPool, len(poolSizes))
	for i, s := range poolSizes {
		pools[i] = newSizedBufferPool(s)
	}
	return &tieredBufferPool{
		sizedPools:   pools,
		fallbackPool: newSizedBufferPool(0),
	}
}

type tieredBufferPool struct {
	sizedPools   []*sizedBufferPool
	fallbackPool *sizedBufferPool
}

func (p *tieredBufferPool) Get(size int) []byte {
	return p.getPool(size).Get(size)
}

func (p *tieredBufferPool) Put(buf []byte) {
	p.getPool(len(buf)).Put(buf)
}

func (p *tieredBufferPool) getPool(size int) *sizedBufferPool {
	poolIdx := sort.Search(len(p.sizedPools), func(i int) bool {
		return p.sizedPools[i].defaultSize >= size
	})
	if poolIdx == len(p.sizedPools) {
		return p.fallbackPool
	}
	return p.sizedPools[poolIdx]
}

type sizedBufferPool struct {
	pool        sync.Pool
	defaultSize int
}

func (p *sizedBufferPool) Get(size int) []byte {
	bs := *p.pool.Get().(*[]byte)
	if cap(bs) < size {
		p.pool.Put(&bs)
		return make([]byte, size)
	}
	return bs[:size]
}

func (p *sizedBufferPool) Put(buf []byte) {
	buf = buf[:cap(buf)]
	// Zero the buffer so pooled memory never leaks stale elements into the
	// next view, and so dropped references are collectable.
	clear(buf)
	p.pool.Put(&buf)
}

func newSizedBufferPool(size int) *sizedBufferPool {
	return &sizedBufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
		defaultSize: size,
	}
}

var _ BufferPool = NopBufferPool{}

// NopBufferPool allocates fresh buffers and pools nothing.
type NopBufferPool struct{}

func (NopBufferPool) Get(length int) []byte {
	return make([]byte, length)
}

func (NopBufferPool) Put([]byte) {
}
