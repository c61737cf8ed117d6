package polylog

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// hurwitzAssembly sets dst = ζ(s, f) for an interior offset f ∈ (0,1)
// by reflection through the periodic zeta at w = 1−s:
//
//	ζ(s, f) = Γ(w)·(2π)^{−w}·(e^{−iπw/2}·F(w, f) + e^{iπw/2}·F(w, 1−f))
//
// The factors come out of the shared reflection memo, so holding s
// and sweeping f pays for Γ(w) once. Expects e.mu held.
func (e *Engine) hurwitzAssembly(dst, s *cplx.Complex, f *big.Float, prec int) error {
	bits := cplx.Bits(prec)

	w := cplx.New(bits).SetInt64(1, 0)
	w.Sub(w, s)
	phase, scale, err := e.reflectFactors(w, prec)
	if err != nil {
		return err
	}

	zp := cplx.New(bits)
	if err := e.periodicZeta(zp, w, f, prec); err != nil {
		return err
	}
	of := new(big.Float).SetPrec(bits).Sub(oneFloat, f)
	zm := cplx.New(bits)
	if err := e.periodicZeta(zm, w, of, prec); err != nil {
		return err
	}

	zp.Quo(zp, phase)
	zm.Mul(zm, phase)
	zp.Add(zp, zm)
	zp.Mul(zp, scale)
	dst.Set(zp)
	return nil
}

// hurwitz reduces a positive offset into the unit interval, evaluates
// there and subtracts the finite ladder back out:
//
//	ζ(s, q) = ζ(s, f) − Σ_{k=0}^{n−1} (f+k)^{−s},  q = n + f
//
// Real integer s skips the reflection: Γ(1−s) sits on or next to a
// pole there, while the Euler–Maclaurin form stays valid (and is
// exact for s a non-positive integer). Integer offsets take the same
// route, since the reduced f = 0 pins the periodic sum onto its
// branch point; head-on summation at the original q gives ζ(s, n)
// directly. Expects e.mu held.
func (e *Engine) hurwitz(dst, s *cplx.Complex, q *big.Float, prec int) error {
	bits := cplx.Bits(prec)

	if s.Im().Sign() == 0 && s.Re().IsInt() {
		return e.eulerMaclaurinReal(dst, s, q, prec)
	}

	nq, _ := q.Int64()
	f := new(big.Float).SetPrec(bits).SetInt64(nq)
	f.Sub(q, f)
	fq, _ := f.Float64()
	if fq < endpointTol || 1.0-fq < endpointTol {
		return e.eulerMaclaurinReal(dst, s, q, prec)
	}

	acc := cplx.New(bits)
	if err := e.hurwitzAssembly(acc, s, f, prec); err != nil {
		return err
	}

	negS := cplx.New(bits).Neg(s)
	term := cplx.New(bits)
	for k := int64(0); k < nq; k++ {
		if err := e.opowF.Value(term, uint64(k), f, negS, prec); err != nil {
			return err
		}
		acc.Sub(acc, term)
	}
	dst.Set(acc)
	return nil
}

// HurwitzZeta sets dst = ζ(s, q) = Σ_{n≥0} (n+q)^{−s} for real q > 0,
// continued to every s ≠ 1. Evaluation reflects through two periodic
// zeta sums, so holding s fixed while sweeping q reuses the Gamma and
// phase factors; large offsets cost one power per whole unit of q. On
// error dst is the zero sentinel.
func (e *Engine) HurwitzZeta(dst, s *cplx.Complex, q *big.Float, prec int) error {
	if q.Sign() <= 0 {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: Hurwitz offset %v not positive: %w", q, ErrDomain)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.hurwitz(dst, s, q, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}
