package polylog

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// endpointTol is how close the reduced offset may come to an integer
// before the exponential e^{2πiq} is treated as sitting on the z = 1
// branch point.
const endpointTol = 1.0e-15

// periodicZeta sets dst = F(s, q) = Σ_{n≥1} e^{2πinq}/n^s, reducing q
// into [1/4, 3/4] first: below and above that band the duplication
// identity
//
//	F(s, q) = 2^{1−s}·F(s, 2q) − F(s, q ± 1/2)
//
// doubles the distance from the nearest integer, so the reduction
// terminates for any interior offset. Inside the band e^{2πiq} sits
// far enough from z = 1 for the direct sum. Expects e.mu held.
func (e *Engine) periodicZeta(dst, s *cplx.Complex, q *big.Float, prec int) error {
	bits := cplx.Bits(prec)

	f := new(big.Float).SetPrec(bits)
	elemfn.Floor(f, q)
	f.Sub(q, f)
	fq, _ := f.Float64()

	switch {
	case fq < endpointTol || 1.0-fq < endpointTol:
		return fmt.Errorf("polylog: periodic zeta offset %.3g next to integer: %w", fq, ErrBranchPoint)

	case fq < 0.25:
		qd := new(big.Float).SetPrec(bits).Add(f, f)
		bt := cplx.New(bits)
		if err := e.periodicZeta(bt, s, qd, prec); err != nil {
			return err
		}
		qd.SetFloat64(0.5).Add(qd, f)
		zh := cplx.New(bits)
		if err := e.periodicZeta(zh, s, qd, prec); err != nil {
			return err
		}
		return e.periodicJoin(dst, s, bt, zh, prec)

	case fq > 0.75:
		qd := new(big.Float).SetPrec(bits).Add(f, f)
		qd.Sub(qd, oneFloat)
		bt := cplx.New(bits)
		if err := e.periodicZeta(bt, s, qd, prec); err != nil {
			return err
		}
		qd.SetFloat64(0.5)
		qd.Sub(f, qd)
		zh := cplx.New(bits)
		if err := e.periodicZeta(zh, s, qd, prec); err != nil {
			return err
		}
		return e.periodicJoin(dst, s, bt, zh, prec)

	default:
		ang := new(big.Float).SetPrec(bits)
		elemfn.TwoPi(ang, prec)
		ang.Mul(ang, f)
		z := cplx.New(bits)
		elemfn.Cos(z.Re(), ang, prec)
		elemfn.Sin(z.Im(), ang, prec)

		nterms := termEstimate(s, z, prec)
		if nterms <= 4 {
			e.log.Warn("periodic zeta term estimate too low",
				zap.Float64("q", fq), zap.Int("terms", nterms))
			return fmt.Errorf("polylog: periodic zeta estimate %d terms at q = %.3g: %w",
				nterms, fq, ErrNonConvergent)
		}
		wprec := prec + int(0.301029996*float64(nterms)) + 1
		e.borweinSum(dst, s, z, nterms, wprec)
		return nil
	}
}

// periodicJoin finishes a duplication step: dst = 2^{1−s}·bt − zh.
func (e *Engine) periodicJoin(dst, s, bt, zh *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)
	sm := cplx.New(bits).SetInt64(1, 0)
	sm.Sub(sm, s)
	ts := elemfn.UintPow(cplx.New(bits), 2, sm, prec)
	bt.Mul(bt, ts)
	bt.Sub(bt, zh)
	dst.Set(bt)
	return nil
}

// PeriodicZeta sets dst = F(s, q) = Σ_{n≥1} e^{2πinq}/n^s, the
// exponential sum of the polylogarithm on the unit circle. The offset
// enters modulo 1; offsets within endpointTol of an integer put the
// sum on its branch point, which is an error here rather than a
// silent ζ(s). On error dst is the zero sentinel.
func (e *Engine) PeriodicZeta(dst, s *cplx.Complex, q *big.Float, prec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.periodicZeta(dst, s, q, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}

// PeriodicBeta sets dst = β(s, q) = 2·Γ(s+1)·(2π)^{−s}·F(s, q). The
// normalization makes the Bernoulli polynomials drop out at negative
// integer s: β(−n, q) relates to B_{n+1}(q), and at s = 1 the
// imaginary part is exactly 1/2 − q on the interior. The scale factor
// is memoised against s. On error dst is the zero sentinel.
func (e *Engine) PeriodicBeta(dst, s *cplx.Complex, q *big.Float, prec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.betaFactor(s, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	z := cplx.New(cplx.Bits(prec))
	if err := e.periodicZeta(z, s, q, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	z.Mul(z, &e.betaScale)
	dst.Set(z)
	return nil
}

// betaFactor refreshes the memoised 2·Γ(s+1)·(2π)^{−s} scale.
func (e *Engine) betaFactor(s *cplx.Complex, prec int) error {
	if e.betaPrec >= prec && e.betaKey.EqBits(s, cplx.DigitBits(prec)) {
		return nil
	}

	bits := cplx.Bits(prec)
	sp := cplx.New(bits).AddInt64(s, 1, 0)
	sc := cplx.New(bits)
	if err := e.gam.Gamma(sc, sp, prec); err != nil {
		return err
	}

	tp := new(big.Float).SetPrec(bits)
	elemfn.TwoPi(tp, prec)
	ns := cplx.New(bits).Neg(s)
	tps := cplx.New(bits)
	if err := elemfn.PowReal(tps, tp, ns, prec); err != nil {
		return err
	}
	sc.Mul(sc, tps)
	sc.MulInt64(sc, 2)

	e.betaKey.SetPrec(s.Prec()).Set(s)
	e.betaScale.SetPrec(bits).Set(sc)
	e.betaPrec = prec
	return nil
}
