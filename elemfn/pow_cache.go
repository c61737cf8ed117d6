package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/cplx"
)

// UintPowCache memoizes k^s for one complex exponent at a time, keyed
// by the base. The series that consume these sweep k for a fixed s, so
// a change of exponent flushes the store. Exponents are compared to
// the digits the request asks for.
type UintPowCache struct {
	memo  *cache.Linear[*cplx.Complex]
	key   cplx.Complex
	keyed bool
}

// NewUintPowCache returns an empty memo.
func NewUintPowCache() *UintPowCache {
	return &UintPowCache{
		memo: cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) }),
	}
}

// Value sets dst = k^s to at least prec decimal digits and returns
// dst.
func (p *UintPowCache) Value(dst *cplx.Complex, k uint64, s *cplx.Complex, prec int) *cplx.Complex {
	if !p.keyed || !p.key.EqBits(s, cplx.DigitBits(prec)) {
		p.memo.Clear()
		p.key.SetPrec(s.Prec()).Set(s)
		p.keyed = true
	}

	n := int(k)
	if prec <= p.memo.CheckPrecision(n) {
		p.memo.Fetch(dst, n)
		return dst
	}

	UintPow(dst, k, s, prec)
	p.memo.Store(dst, n, prec)
	return dst
}

// OffsetPowCache memoizes (k+q)^s for a real offset q and complex
// exponent s, keyed by k. Two stores are kept, bound to the two most
// recently seen (q, s) pairs, because the tail sums interleave sweeps
// at different offsets; when neither pair matches, eviction alternates
// between the stores.
type OffsetPowCache struct {
	memo [2]*cache.Linear[*cplx.Complex]
	off  [2]big.Float
	exp  [2]cplx.Complex
	used [2]bool
	next int
}

// NewOffsetPowCache returns an empty memo pair.
func NewOffsetPowCache() *OffsetPowCache {
	p := &OffsetPowCache{}
	for i := range p.memo {
		p.memo[i] = cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) })
	}
	return p
}

// slot returns the store bound to (q, s), rebinding the stalest one
// when neither matches.
func (p *OffsetPowCache) slot(q *big.Float, s *cplx.Complex, prec int) int {
	bits := cplx.DigitBits(prec)
	for i := range p.memo {
		if p.used[i] && cplx.FloatEqBits(&p.off[i], q, bits) && p.exp[i].EqBits(s, bits) {
			return i
		}
	}

	i := p.next
	p.next = 1 - p.next
	p.memo[i].Clear()
	p.off[i].SetPrec(q.Prec()).Set(q)
	p.exp[i].SetPrec(s.Prec()).Set(s)
	p.used[i] = true
	return i
}

// Value sets dst = (k+q)^s to at least prec decimal digits. Returns
// ErrNonPositiveBase when k+q ≤ 0.
func (p *OffsetPowCache) Value(dst *cplx.Complex, k uint64, q *big.Float, s *cplx.Complex, prec int) error {
	i := p.slot(q, s, prec)
	n := int(k)
	if prec <= p.memo[i].CheckPrecision(n) {
		p.memo[i].Fetch(dst, n)
		return nil
	}

	base := new(big.Float).SetPrec(cplx.Bits(prec)).SetUint64(k)
	base.Add(base, q)
	if err := PowReal(dst, base, s, prec); err != nil {
		return err
	}
	p.memo[i].Store(dst, n, prec)
	return nil
}

// OffsetPowCacheC is OffsetPowCache for a complex offset, backing the
// tail sums when the shift parameter itself is complex.
type OffsetPowCacheC struct {
	memo [2]*cache.Linear[*cplx.Complex]
	off  [2]cplx.Complex
	exp  [2]cplx.Complex
	used [2]bool
	next int
}

// NewOffsetPowCacheC returns an empty memo pair.
func NewOffsetPowCacheC() *OffsetPowCacheC {
	p := &OffsetPowCacheC{}
	for i := range p.memo {
		p.memo[i] = cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) })
	}
	return p
}

func (p *OffsetPowCacheC) slot(q, s *cplx.Complex, prec int) int {
	bits := cplx.DigitBits(prec)
	for i := range p.memo {
		if p.used[i] && p.off[i].EqBits(q, bits) && p.exp[i].EqBits(s, bits) {
			return i
		}
	}

	i := p.next
	p.next = 1 - p.next
	p.memo[i].Clear()
	p.off[i].SetPrec(q.Prec()).Set(q)
	p.exp[i].SetPrec(s.Prec()).Set(s)
	p.used[i] = true
	return i
}

// Value sets dst = (k+q)^s to at least prec decimal digits and returns
// dst. Panics on k+q = 0 through the principal logarithm.
func (p *OffsetPowCacheC) Value(dst *cplx.Complex, k uint64, q, s *cplx.Complex, prec int) *cplx.Complex {
	i := p.slot(q, s, prec)
	n := int(k)
	if prec <= p.memo[i].CheckPrecision(n) {
		p.memo[i].Fetch(dst, n)
		return dst
	}

	base := cplx.New(cplx.Bits(prec)).Set(q)
	base.AddInt64(base, int64(k), 0)
	Pow(dst, base, s, prec)
	p.memo[i].Store(dst, n, prec)
	return dst
}
