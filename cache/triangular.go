package cache

import "sync"

// Triangular is a two-index precision-tagged memoization store for pairs
// (n,k) with 0 ≤ k ≤ n, packed row-by-row at linear offset n(n+1)/2+k.
// Binomial coefficients, Stirling numbers and similar triangle-shaped
// recurrences are its intended occupants.
//
// The zero value is not usable; construct with NewTriangular or
// NewDisabledTriangular. All methods are safe for concurrent use.
type Triangular[T Settable[T]] struct {
	mu       sync.Mutex
	fresh    func() T
	slots    []slot[T]
	rows     int
	disabled bool
}

// NewTriangular returns an empty store. fresh must allocate a new zero
// value of T; Store uses it to take full-precision private copies.
func NewTriangular[T Settable[T]](fresh func() T) *Triangular[T] {
	return &Triangular[T]{fresh: fresh}
}

// NewDisabledTriangular returns a permanently disabled store: lookups
// always miss and stores are dropped.
func NewDisabledTriangular[T Settable[T]]() *Triangular[T] {
	return &Triangular[T]{disabled: true}
}

// CheckPrecision reports the decimal precision of the value cached at
// (n,k), or 0 when the slot is empty. As a side effect it guarantees
// capacity through row n, growing to the exact row boundary when needed.
func (c *Triangular[T]) CheckPrecision(n, k int) int {
	if c.disabled || n < 0 || k < 0 || k > n {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.growLocked(n)

	return c.slots[triOffset(n, k)].prec
}

// Fetch copies the value cached at (n,k) into dst and reports whether
// the slot was occupied.
func (c *Triangular[T]) Fetch(dst T, n, k int) bool {
	if c.disabled || n < 0 || k < 0 || k > n {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n >= c.rows {
		return false
	}
	s := c.slots[triOffset(n, k)]
	if s.prec == 0 {
		return false
	}
	dst.Set(s.val)

	return true
}

// Store records val at (n,k) tagged with its decimal precision, growing
// the backing store when needed. The stored copy is private.
func (c *Triangular[T]) Store(val T, n, k, prec int) {
	if c.disabled || n < 0 || k < 0 || k > n || prec <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.growLocked(n)
	c.slots[triOffset(n, k)] = slot[T]{val: c.fresh().Set(val), prec: prec}
}

// Clear resets every precision tag to 0, retaining storage.
func (c *Triangular[T]) Clear() {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.slots {
		c.slots[i].prec = 0
	}
}

// growLocked ensures rows 0..n exist, allocating to the exact triangular
// boundary (n+1)(n+2)/2. At least two rows are always allocated so that
// the degenerate n=0 request still leaves room for the common (1,k)
// follow-up. Caller holds c.mu.
func (c *Triangular[T]) growLocked(n int) {
	if n < c.rows {
		return
	}
	if n < 1 {
		n = 1
	}
	grown := make([]slot[T], triOffset(n+1, 0))
	copy(grown, c.slots)
	c.slots = grown
	c.rows = n + 1
}
