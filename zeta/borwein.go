package zeta

import (
	"math"
	"math/big"

	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// borweinOrder is the polynomial order delivering prec digits: each
// term contributes log10(3+√8) ≈ 1.76 of them, and an imaginary part
// in the exponent costs extra terms in proportion to |Im s|.
func borweinOrder(prec int, sim float64) int {
	return int((0.69+2.302585093*float64(prec)+1.5707963268*math.Abs(sim))*0.567296329) + 1
}

// coeffLocked sets dst = d(k) for the order-n Borwein polynomial,
//
//	d(k) = n · Σ_{i=0..k} (n+i−1)!·4^i / ((n−i)!·(2i)!),
//
// extending the cached cumulative row as needed. The row is invalidated
// whenever the order changes. Callers hold e.mu.
func (e *Engine) coeffLocked(dst *big.Float, n, k, prec int) {
	if e.coeffN != n {
		e.coeffs.Clear()
		e.coeffN = n
	}
	bits := cplx.Bits(prec)
	nf := new(big.Float).SetPrec(bits).SetInt64(int64(n))
	sum := new(big.Float).SetPrec(bits)

	// Resume from the longest usable prefix; seed slot 0 with the
	// i = 0 term (n−1)!/n! = 1/n when the row is cold.
	start := k
	for start >= 0 && e.coeffs.CheckPrecision(start) < prec {
		start--
	}
	if start >= 0 {
		e.coeffs.Fetch(sum, start)
	} else {
		sum.SetInt64(1)
		sum.Quo(sum, nf)
		e.coeffs.Store(sum, 0, prec)
		start = 0
	}

	var rising, fac big.Int
	term := new(big.Float).SetPrec(bits)
	den := new(big.Float).SetPrec(bits)
	for i := start + 1; i <= k; i++ {
		// (n+i−1)!/(n−i)! as the product (n−i+1)···(n+i−1), the 4^i
		// as an exact exponent shift.
		rising.MulRange(int64(n-i+1), int64(n+i-1))
		term.SetInt(&rising)
		term.SetMantExp(term, term.MantExp(nil)+2*i)
		combin.Factorial(&fac, uint64(2*i))
		den.SetInt(&fac)
		term.Quo(term, den)
		sum.Add(sum, term)
		e.coeffs.Store(sum, i, prec)
	}
	dst.Mul(nf, sum)
}

// Borwein sets dst = ζ(s) for integer s ≥ 2 by the alternating
// Chebyshev-weighted sum
//
//	ζ(s) = −1/(d(n)·(1−2^{1−s})) · Σ_{k=0..n−1} (−1)^k·(d(k)−d(n))/(k+1)^s.
func (e *Engine) Borwein(dst *big.Float, s, prec int) error {
	if s < 2 {
		return ErrBelowTwo
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	bits := cplx.Bits(prec)
	n := borweinOrder(prec, 0)

	dn := new(big.Float).SetPrec(bits)
	e.coeffLocked(dn, n, n, prec)

	sum := new(big.Float).SetPrec(bits)
	dk := new(big.Float).SetPrec(bits)
	pw := new(big.Float).SetPrec(bits)
	for k := 0; k < n; k++ {
		e.coeffLocked(dk, n, k, prec)
		dk.Sub(dk, dn)
		pw.SetInt64(int64(k + 1))
		elemfn.PowUint(pw, pw, uint64(s))
		dk.Quo(dk, pw)
		if k%2 == 0 {
			sum.Add(sum, dk)
		} else {
			sum.Sub(sum, dk)
		}
	}
	sum.Quo(sum, dn)

	den := pw.SetMantExp(big.NewFloat(1), 1-s) // 2^{1-s}, exact
	den.Neg(den)
	den.Add(den, big.NewFloat(1))
	sum.Quo(sum, den)
	dst.Neg(sum)
	return nil
}

// BorweinC sets dst = ζ(s) for complex s ≠ 1 by the same alternating
// sum, with the order widened to absorb |Im s|. The (k+1)^{-s} ladder
// and the 2^{s−1} tail ride the engine's offset power cache, so repeat
// calls at the same s reuse every power.
func (e *Engine) BorweinC(dst *cplx.Complex, s *cplx.Complex, prec int) error {
	sre, sim := s.Float64s()
	if sre == 1 && sim == 0 {
		return ErrPole
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	bits := cplx.Bits(prec)
	n := borweinOrder(prec, sim)

	dn := new(big.Float).SetPrec(bits)
	e.coeffLocked(dn, n, n, prec)

	negS := cplx.New(bits).Neg(s)
	one := big.NewFloat(1)
	sum := cplx.New(bits)
	po := cplx.New(bits)
	term := cplx.New(bits)
	dk := new(big.Float).SetPrec(bits)

	for k := 0; k < n; k++ {
		e.coeffLocked(dk, n, k, prec)
		dk.Sub(dk, dn)
		if err := e.powers.Value(po, uint64(k), one, negS, prec); err != nil {
			return err
		}
		term.MulFloat(po, dk)
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}
	sum.QuoFloat(sum, dn)

	// 1 − 2^{1−s}, with the 2^{s−1} built as (1+1)^{s−1} on the second
	// ladder slot.
	sm1 := cplx.New(bits).SubInt64(s, 1, 0)
	if err := e.powers.Value(po, 1, one, sm1, prec); err != nil {
		return err
	}
	po.Recip(po)
	po.Neg(po)
	po.AddInt64(po, 1, 0)
	sum.Quo(sum, po)
	dst.Neg(sum)
	return nil
}
