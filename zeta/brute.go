package zeta

import (
	"math"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// Brute sets dst = ζ(s) by direct summation of Σ 1/n^s with enough
// terms for prec digits. The partial sum is retained: a later call at
// the same s appends only the missing tail. Growing prec restarts the
// sum, since the retained terms carry the old rounding. Returns
// ErrTooManyTerms when the series would exceed the term budget.
func (e *Engine) Brute(dst *big.Float, s, prec int) error {
	if s < 2 {
		return ErrBelowTwo
	}
	need := math.Pow(10, float64(prec)/float64(s-1)) + 3
	if need > bruteTermCap {
		e.log.Warn("zeta brute force refused",
			zap.Int("s", s), zap.Int("prec", prec), zap.Float64("terms", need))
		return ErrTooManyTerms
	}
	nmax := uint64(need)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bruteS != s || e.brutePrec < prec {
		e.bruteSum.SetPrec(cplx.Bits(prec)).SetInt64(0)
		e.bruteS = s
		e.brutePrec = prec
		e.bruteLast = 0
	}
	if e.bruteLast < nmax {
		one := big.NewFloat(1)
		term := new(big.Float).SetPrec(e.bruteSum.Prec())
		for n := e.bruteLast + 1; n <= nmax; n++ {
			term.SetUint64(n)
			elemfn.PowUint(term, term, uint64(s))
			term.Quo(one, term)
			e.bruteSum.Add(&e.bruteSum, term)
		}
		e.bruteLast = nmax
	}
	dst.Set(&e.bruteSum)
	return nil
}
