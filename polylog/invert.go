package polylog

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// reflectFactors returns the memoised constants shared by the
// inversion formula and the Hurwitz assembly for w = 1−s: the phase
// e^{iπw/2} and the scale Γ(w)·(2π)^{−w}. A sweep that holds s and
// moves the argument pays for the Gamma once. The returned pointers
// alias engine state; callers treat them as read-only.
func (e *Engine) reflectFactors(w *cplx.Complex, prec int) (phase, scale *cplx.Complex, err error) {
	if e.reflPrec >= prec && e.reflKey.EqBits(w, cplx.DigitBits(prec)) {
		return &e.reflPhase, &e.reflScale, nil
	}

	bits := cplx.Bits(prec)
	var half big.Float
	elemfn.PiHalf(&half, prec)
	ph := cplx.New(bits).MulFloat(w, &half)
	ph.MulI(ph)
	elemfn.ExpC(ph, ph, prec)

	sc := cplx.New(bits)
	if err = e.gam.Gamma(sc, w, prec); err != nil {
		return nil, nil, err
	}
	var l2p big.Float
	elemfn.LogTwoPi(&l2p, prec)
	t := cplx.New(bits).MulFloat(w, &l2p)
	t.Neg(t)
	elemfn.ExpC(t, t, prec)
	sc.Mul(sc, t)

	e.reflKey.SetPrec(w.Prec()).Set(w)
	e.reflPhase.SetPrec(bits).Set(ph)
	e.reflScale.SetPrec(bits).Set(sc)
	e.reflPrec = prec
	return &e.reflPhase, &e.reflScale, nil
}

// reflect continues Li_s(z) past the unit circle through the Hurwitz
// zeta on the second argument:
//
//	Li_s(z) = Γ(w)·(2π)^{−w}·(e^{iπw/2}·ζ(w, q) + e^{−iπw/2}·ζ(w, 1−q))
//
// with w = 1−s and q = log z/(2πi). When normalize is set, q is moved
// into Re q ≥ 0 by periodicity, which pins the branch cut onto the ray
// z ≥ 1. Γ(w) is at a pole when s is a positive integer, so those
// orders cannot come through here.
func (e *Engine) reflect(dst, s, z *cplx.Complex, normalize bool, prec int) error {
	bits := cplx.Bits(prec)

	w := cplx.New(bits).SetInt64(1, 0)
	w.Sub(w, s)
	phase, scale, err := e.reflectFactors(w, prec)
	if err != nil {
		return err
	}

	// q = log z/(2πi) = −i·log z/(2π)
	q := elemfn.LogC(cplx.New(bits), z, prec)
	var tp big.Float
	elemfn.TwoPi(&tp, prec)
	q.QuoFloat(q, &tp)
	q.MulI(q)
	q.Neg(q)
	if normalize && q.Re().Sign() < 0 {
		q.AddInt64(q, 1, 0)
	}
	oq := cplx.New(bits).SetInt64(1, 0)
	oq.Sub(oq, q)

	hp := cplx.New(bits)
	if err := e.eulerMaclaurin(hp, w, q, prec); err != nil {
		return err
	}
	hm := cplx.New(bits)
	if err := e.eulerMaclaurin(hm, w, oq, prec); err != nil {
		return err
	}

	hp.Mul(hp, phase)
	hm.Quo(hm, phase)
	hp.Add(hp, hm)
	hp.Mul(hp, scale)
	dst.Set(hp)
	return nil
}

// PolylogEuler sets dst = Li_s(z) through the Hurwitz reflection with
// the offset taken as the principal log z/(2πi) directly, without
// moving it back into Re q ≥ 0. Polylog applies that normalization and
// so stays on the principal sheet; this entry keeps the offset where
// the logarithm put it, which is the natural continuation when z
// tracks a path winding below the negative real axis. Positive integer
// s puts Γ(1−s) at a pole and fails. On error dst is the zero
// sentinel.
func (e *Engine) PolylogEuler(dst, s, z *cplx.Complex, prec int) error {
	if z.IsZero() {
		dst.SetInt64(0, 0)
		return nil
	}
	if z.Im().Sign() == 0 && z.Re().Cmp(oneFloat) == 0 {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: argument at z = 1: %w", ErrBranchPoint)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.reflect(dst, s, z, false, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}
