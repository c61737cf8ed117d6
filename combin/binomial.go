package combin

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/cplx"
)

// Binomial sets dst = C(n,k) and returns dst. Out-of-range k yields 0.
func Binomial(dst *big.Int, n, k int64) *big.Int {
	if k < 0 || k > n {
		return dst.SetInt64(0)
	}
	return dst.Binomial(n, k)
}

// BinomialSequence walks Pascal's triangle row by row. It is built for
// strictly sequential access, k running 0..n within a row and n
// advancing by one between rows; each coefficient then costs a single
// addition against the previous row. Gaps in the access order are
// replayed to catch up, and truly random access falls back to a direct
// computation.
type BinomialSequence struct {
	currN, lastK int
	curr, next   *cache.Linear[*big.Int]
}

// NewBinomialSequence returns a walker positioned at C(0,0).
func NewBinomialSequence() *BinomialSequence {
	fresh := func() *big.Int { return new(big.Int) }
	return &BinomialSequence{
		curr: cache.NewLinear(fresh),
		next: cache.NewLinear(fresh),
	}
}

// Next sets dst = C(n,k) and returns dst.
func (b *BinomialSequence) Next(dst *big.Int, n, k int) *big.Int {
	// Gap in the access sequence; replay the skipped positions so the
	// row caches stay coherent.
	if k > b.lastK+1 || (n > b.currN && k != 0) {
		if n == b.currN {
			for j := b.lastK + 1; j < k; j++ {
				b.Next(dst, n, j)
			}
		} else {
			for j := b.lastK + 1; j <= b.currN; j++ {
				b.Next(dst, b.currN, j)
			}
			for m := b.currN + 1; m < n; m++ {
				for j := 0; j <= m; j++ {
					b.Next(dst, m, j)
				}
			}
			for j := 0; j < k; j++ {
				b.Next(dst, n, j)
			}
		}
	}

	// Standard sequential step within the current row.
	if k == b.lastK+1 && n == b.currN {
		if k == n {
			dst.SetInt64(1)
			b.next.Store(dst, k, 1)
			return dst
		}
		var left big.Int
		b.curr.Fetch(dst, k-1)
		b.curr.Fetch(&left, k)
		dst.Add(dst, &left)
		b.next.Store(dst, k, 1)
		b.lastK = k
		return dst
	}

	// Start of a new row: the freshly filled row becomes the source.
	if k == 0 && n == b.currN+1 {
		b.lastK = 0
		b.currN = n
		b.curr, b.next = b.next, b.curr
		b.next.CheckPrecision(n + 1)
		dst.SetInt64(1)
		b.next.Store(dst, 0, 1)
		return dst
	}

	// Rewind to the apex restarts the walk.
	if n == 0 && k == 0 {
		b.currN = 0
		b.lastK = 0
		b.curr.CheckPrecision(3)
		b.next.CheckPrecision(3)
		return dst.SetInt64(1)
	}

	if k > n || k < 0 || n < 0 {
		return dst.SetInt64(0)
	}

	// Random access; correct but slow relative to the sequential path.
	return Binomial(dst, int64(n), int64(k))
}

// BinomialFloat sets dst = C(s,k) for real s, via the rising
// Pochhammer form (s-k+1)_k / k!, and returns dst.
func BinomialFloat(dst *big.Float, s *big.Float, k uint64) *big.Float {
	var x big.Float
	x.SetPrec(s.Prec()).Set(s)
	if k > 0 {
		var shift big.Float
		shift.SetUint64(k - 1)
		x.Sub(&x, &shift)
	}

	var top big.Float
	top.SetPrec(x.Prec())
	PochhammerFloat(&top, &x, k)

	var fac big.Int
	fac.MulRange(1, int64(k))
	fb := new(big.Float).SetPrec(top.Prec()).SetInt(&fac)
	return dst.Quo(&top, fb)
}

// BinomialComplex sets dst = C(s,k) for complex s and returns dst.
func BinomialComplex(dst *cplx.Complex, s *cplx.Complex, k uint64) *cplx.Complex {
	if k == 0 {
		return dst.SetInt64(1, 0)
	}

	var bot cplx.Complex
	bot.Set(s)
	bot.SubInt64(&bot, int64(k-1), 0)

	var top cplx.Complex
	PochhammerComplex(&top, &bot, k)

	var fac big.Int
	fac.MulRange(1, int64(k))
	fb := new(big.Float).SetPrec(top.Prec()).SetInt(&fac)
	return dst.QuoFloat(&top, fb)
}

// ShiftedBinomials memoizes C(s+k,k) for a fixed complex s, keyed by
// k. Changing s flushes the memo; the series that consume these sweep
// k for one s at a time, so a single key slot is all that pays off.
type ShiftedBinomials struct {
	memo  *cache.Linear[*cplx.Complex]
	key   cplx.Complex
	keyed bool
}

// NewShiftedBinomials returns an empty memo.
func NewShiftedBinomials() *ShiftedBinomials {
	return &ShiftedBinomials{
		memo: cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) }),
	}
}

// Value sets dst = C(s+k,k) to at least prec decimal digits and
// returns dst.
func (b *ShiftedBinomials) Value(dst *cplx.Complex, s *cplx.Complex, k uint64, prec int) *cplx.Complex {
	if !b.keyed || !b.key.EqBits(s, cplx.DigitBits(prec)) {
		b.memo.Clear()
		b.key.SetPrec(s.Prec()).Set(s)
		b.keyed = true
	}

	n := int(k)
	if prec <= b.memo.CheckPrecision(n) {
		b.memo.Fetch(dst, n)
		return dst
	}

	var sn cplx.Complex
	sn.AddInt64(s, int64(k), 0)
	BinomialComplex(dst, &sn, k)
	b.memo.Store(dst, n, prec)
	return dst
}
