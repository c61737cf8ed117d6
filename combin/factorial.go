package combin

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/cplx"
)

// Factorial sets dst = n! and returns dst.
func Factorial(dst *big.Int, n uint64) *big.Int {
	return dst.MulRange(1, int64(n))
}

// InvFactorials memoizes reciprocal factorials 1/k!, each tagged with
// the decimal precision it was computed to. The exponential and
// circular series burn through these in bulk.
type InvFactorials struct {
	memo *cache.Linear[*big.Float]
}

// NewInvFactorials returns an empty reciprocal-factorial memo.
func NewInvFactorials() *InvFactorials {
	return &InvFactorials{
		memo: cache.NewLinear(func() *big.Float { return new(big.Float) }),
	}
}

// Value sets dst = 1/k! to at least prec decimal digits and returns
// dst.
func (f *InvFactorials) Value(dst *big.Float, k uint64, prec int) *big.Float {
	n := int(k)
	if prec <= f.memo.CheckPrecision(n) {
		f.memo.Fetch(dst, n)
		return dst
	}

	var fac big.Int
	fac.MulRange(1, int64(k))
	inv := new(big.Float).SetPrec(cplx.Bits(prec)).SetInt(&fac)
	inv.Quo(big.NewFloat(1), inv)

	f.memo.Store(inv, n, prec)
	return dst.Set(inv)
}

// Harmonics memoizes the harmonic numbers H(n) = Σ_{i≤n} 1/i. Partial
// sums are cached as they are produced, so a later call extends the
// longest cached prefix instead of restarting from 1.
type Harmonics struct {
	memo *cache.Linear[*big.Float]
}

// NewHarmonics returns an empty harmonic-number memo.
func NewHarmonics() *Harmonics {
	return &Harmonics{
		memo: cache.NewLinear(func() *big.Float { return new(big.Float) }),
	}
}

// Value sets dst = H(n) to at least prec decimal digits and returns
// dst. Arguments below 2 yield 1.
func (h *Harmonics) Value(dst *big.Float, n uint64, prec int) *big.Float {
	if n <= 1 {
		return dst.SetInt64(1)
	}
	m := int(n)
	if prec <= h.memo.CheckPrecision(m) {
		h.memo.Fetch(dst, m)
		return dst
	}

	// Walk back to the nearest prefix that still has enough digits.
	start := m - 1
	for start > 1 && h.memo.CheckPrecision(start) < prec {
		start--
	}

	sum := new(big.Float).SetPrec(cplx.Bits(prec))
	h.Value(sum, uint64(start), prec)

	one := big.NewFloat(1)
	term := new(big.Float).SetPrec(cplx.Bits(prec))
	for i := start + 1; i <= m; i++ {
		term.SetInt64(int64(i))
		term.Quo(one, term)
		sum.Add(sum, term)
		h.memo.Store(sum, i, prec)
	}
	return dst.Set(sum)
}
