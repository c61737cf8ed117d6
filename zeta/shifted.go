package zeta

import (
	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/cplx"
)

// Shifted memoizes ζ(s+n) along the integer shifts of one base
// argument, keyed by the shift. The Taylor expansions that consume
// these walk n upward while s is held, so a change of base flushes
// the store. A Shifted is not safe for concurrent use on its own; the
// owning evaluator serializes access.
type Shifted struct {
	eng   *Engine
	memo  *cache.Linear[*cplx.Complex]
	key   cplx.Complex
	keyed bool
}

// NewShifted returns an empty shift ladder over e.
func NewShifted(e *Engine) *Shifted {
	return &Shifted{
		eng:  e,
		memo: cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) }),
	}
}

// Value sets dst = ζ(s+n) to at least prec decimal digits.
func (c *Shifted) Value(dst *cplx.Complex, s *cplx.Complex, n uint64, prec int) error {
	if !c.keyed || !c.key.EqBits(s, cplx.DigitBits(prec)) {
		c.memo.Clear()
		c.key.SetPrec(s.Prec()).Set(s)
		c.keyed = true
	}

	i := int(n)
	if prec <= c.memo.CheckPrecision(i) {
		c.memo.Fetch(dst, i)
		return nil
	}

	sn := cplx.New(cplx.Bits(prec)).AddInt64(s, int64(n), 0)
	if err := c.eng.BorweinC(dst, sn, prec); err != nil {
		return err
	}
	c.memo.Store(dst, i, prec)
	return nil
}
