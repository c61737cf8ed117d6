package polylog

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// Sum sets dst = Σ_{n≥1} z^n/n^s by direct summation of the defining
// series. The term count grows like prec/(1−|z|·…), so this is for
// arguments well inside the unit disk; |z| ≥ 1 is a domain error, and
// arguments hugging the circle belong to Polylog, which accelerates.
// On error dst is the zero sentinel.
func (e *Engine) Sum(dst, s, z *cplx.Complex, prec int) error {
	zre, zim := z.Float64s()
	mag := zre*zre + zim*zim
	if mag >= 1.0 {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: |z| = %.4g not inside the unit disk: %w", math.Sqrt(mag), ErrDomain)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	bits := cplx.Bits(prec)
	acc := cplx.New(bits)
	zp := cplx.New(bits).Set(z)
	term := cplx.New(bits)

	// |z|^n below 10^{−prec} ends the sum
	nterms := int(-2.0 * float64(prec) * 2.302585093 / math.Log(mag))
	for n := 1; n < nterms; n++ {
		e.upow.Value(term, uint64(n), s, prec)
		term.Quo(zp, term)
		acc.Add(acc, term)
		zp.Mul(zp, z)
	}
	dst.Set(acc)
	return nil
}

// SumSeries sets dst = Σ_{n≥1} f(n)·z^n for a caller-supplied point
// function, the ordinary generating function of f. The iteration count
// comes from the distance to the unit circle under the assumption that
// |f(n)| grows no faster than n; |z| at the circle is a domain error.
// SumSeries touches no engine caches and takes no engine lock, so f
// may call back into this engine. On error dst is the zero sentinel.
func (e *Engine) SumSeries(dst *cplx.Complex, f PointFunc, z *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)

	abs := z.Abs(new(big.Float).SetPrec(bits))
	if abs.Cmp(eps) < 0 {
		dst.SetInt64(0, 0)
		return nil
	}
	dist := new(big.Float).SetPrec(bits).Sub(oneFloat, abs)
	if dist.Cmp(eps) < 0 {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: |z| within epsilon of the unit circle: %w", ErrDomain)
	}

	gap, _ := dist.Float64()
	niter := int(math.Ceil(2.302585 * float64(prec) / gap))
	niter += int(math.Ceil(math.Log(float64(niter)) / gap))

	acc := cplx.New(bits)
	zn := cplx.New(bits).Set(z)
	fv := cplx.New(bits)
	term := cplx.New(bits)

	for n := 1; n < niter; n++ {
		if err := f.Evaluate(fv, uint64(n), prec); err != nil {
			dst.SetInt64(0, 0)
			return fmt.Errorf("polylog: point function at n = %d: %w", n, err)
		}
		if !fv.IsZero() {
			term.Mul(zn, fv)
			acc.Add(acc, term)
		}
		zn.Mul(zn, z)
	}
	dst.Set(acc)
	return nil
}
