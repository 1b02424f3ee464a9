package rcslice

import "sync/atomic"

// counter is the shared-ownership reference count. Its two implementations
// are the two concurrency flavors of the library: atomic counting for
// handles shared across goroutines, plain counting for single-goroutine
// use. Everything else is identical between the flavors.
type counter interface {
	ref()
	// unref reports whether the count reached zero. Panics below zero.
	unref() bool
	unique() bool
}

type atomicCount struct {
	n atomic.Int64
}

func (c *atomicCount) ref() { c.n.Add(1) }

func (c *atomicCount) unref() bool {
	n := c.n.Add(-1)
	if n < 0 {
		panic("rcslice: handle freed twice")
	}
	return n == 0
}

func (c *atomicCount) unique() bool { return c.n.Load() == 1 }

type localCount int64

func (c *localCount) ref() { *c++ }

func (c *localCount) unref() bool {
	*c--
	if *c < 0 {
		panic("rcslice: handle freed twice")
	}
	return *c == 0
}

func (c *localCount) unique() bool { return *c == 1 }

// Handle is the shared, reference-counted owner of a container. Every view
// holds one reference, and the handle returned by NewHandle holds one of
// its own until Free is called. When the count reaches zero the container
// is released, the release hook fires, and any further use of the handle
// panics.
type Handle[E any] struct {
	c       Container[E]
	refs    counter
	release func()
}

// NewHandle shares c under an atomically counted handle. Views of the
// handle may be cloned and freed concurrently from any goroutine.
// Ownership of c transfers to the handle.
func NewHandle[E any](c Container[E]) *Handle[E] {
	refs := &atomicCount{}
	refs.n.Store(1)
	return &Handle[E]{c: c, refs: refs}
}

// NewLocalHandle is NewHandle with an unsynchronized count: cheaper, but
// the handle and all of its views must stay on a single goroutine.
func NewLocalHandle[E any](c Container[E]) *Handle[E] {
	refs := localCount(1)
	return &Handle[E]{c: c, refs: &refs}
}

// Len returns the container's current element count.
func (h *Handle[E]) Len() int {
	h.check()
	return h.c.Len()
}

// Ref adds a reference and returns the handle. Every Ref needs a matching
// Free.
func (h *Handle[E]) Ref() *Handle[E] {
	h.check()
	h.refs.ref()
	return h
}

// Free drops one reference. Dropping the last reference releases the
// container and fires the release hook.
func (h *Handle[E]) Free() {
	h.check()
	h.unref()
}

// View creates a view over r. The range is clamped into the container's
// bounds: out-of-range and inverted inputs yield the nearest valid,
// possibly empty window, never an error. The view holds its own reference
// and must be freed independently of the handle.
func (h *Handle[E]) View(r Range) *View[E] {
	h.check()
	start, end := r.resolve(h.c.Len())
	h.refs.ref()
	return &View[E]{h: h, start: start, end: end}
}

// OnRelease registers fn to run exactly once, when the reference count
// reaches zero. It must be set before the handle is shared; a later call
// replaces the previous hook.
func (h *Handle[E]) OnRelease(fn func()) {
	h.check()
	h.release = fn
}

func (h *Handle[E]) check() {
	if h.c == nil {
		panic("rcslice: use of released handle")
	}
}

func (h *Handle[E]) unref() {
	if h.refs.unref() {
		fn := h.release
		h.c = nil
		h.release = nil
		if fn != nil {
			fn()
		}
	}
}
