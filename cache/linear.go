package cache

import "sync"

// Linear is a one-index precision-tagged memoization store.
//
// The zero value is not usable; construct with NewLinear or
// NewDisabledLinear. All methods are safe for concurrent use.
type Linear[T Settable[T]] struct {
	mu       sync.Mutex
	fresh    func() T
	slots    []slot[T]
	disabled bool
}

// NewLinear returns an empty store. fresh must allocate a new zero value
// of T; Store uses it to take full-precision private copies.
func NewLinear[T Settable[T]](fresh func() T) *Linear[T] {
	return &Linear[T]{fresh: fresh}
}

// NewDisabledLinear returns a permanently disabled store: CheckPrecision
// always reports a miss, Store and Clear are no-ops. Used where the
// memoized quantity depends on state the index does not capture.
func NewDisabledLinear[T Settable[T]]() *Linear[T] {
	return &Linear[T]{disabled: true}
}

// CheckPrecision reports the decimal precision of the value cached at
// index n, or 0 when the slot is empty. As a side effect it guarantees
// capacity for n, growing the backing store when needed; newly exposed
// slots start empty.
func (c *Linear[T]) CheckPrecision(n int) int {
	if c.disabled || n < 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.growLocked(n)

	return c.slots[n].prec
}

// Fetch copies the value cached at index n into dst and reports whether
// the slot was occupied. Callers are expected to have seen a positive
// CheckPrecision for n first.
func (c *Linear[T]) Fetch(dst T, n int) bool {
	if c.disabled || n < 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n >= len(c.slots) || c.slots[n].prec == 0 {
		return false
	}
	dst.Set(c.slots[n].val)

	return true
}

// Store records val at index n, tagged with the decimal precision it was
// computed at, growing the backing store when needed. The stored copy is
// private: later mutation of val does not affect the cache. prec must be
// positive; exact values conventionally use prec 1.
func (c *Linear[T]) Store(val T, n, prec int) {
	if c.disabled || n < 0 || prec <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.growLocked(n)
	// A fresh destination adopts the source's own precision on Set, so
	// the copy never rounds through a stale lower-precision slot value.
	c.slots[n] = slot[T]{val: c.fresh().Set(val), prec: prec}
}

// Clear resets every precision tag to 0. Storage is retained, so the
// next Store at any previously covered index allocates nothing.
func (c *Linear[T]) Clear() {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.slots {
		c.slots[i].prec = 0
	}
}

// growLocked ensures the slot slice covers index n. Caller holds c.mu.
func (c *Linear[T]) growLocked(n int) {
	if n < len(c.slots) {
		return
	}
	newLen := linearGrowthNum*n/linearGrowthDen + linearGrowthPad
	grown := make([]slot[T], newLen)
	copy(grown, c.slots)
	c.slots = grown
}
