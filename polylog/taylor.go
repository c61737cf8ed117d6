package polylog

import (
	"fmt"
	"math"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// HurwitzTaylor sets dst = ζ(s, q) for complex q by the Taylor
// expansion about q = 1,
//
//	ζ(s, 1+x) = Σ_{n≥0} C(s−1+n, n)·ζ(s+n)·(−x)^n,
//
// after walking Re q into [1/2, 3/2] and peeling the crossed terms off
// the defining sum. The binomial and shifted-zeta ladders are memoised
// against s, so sweeps at a held order pay for the zetas once. The
// expansion needs |q−1| < 1 after reduction; an offset with a large
// imaginary part falls outside that disk and fails rather than
// summing a divergent series. On error dst is the zero sentinel.
func (e *Engine) HurwitzTaylor(dst, s, q *cplx.Complex, prec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.hurwitzTaylor(dst, s, q, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}

func (e *Engine) hurwitzTaylor(dst, s, q *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)
	negS := cplx.New(bits).Neg(s)
	acc := cplx.New(bits)
	term := cplx.New(bits)
	w := cplx.New(bits).Set(q)

	// ζ(s, q) = q^{−s} + ζ(s, q+1) upward, ζ(s, q) = ζ(s, q−1) −
	// (q−1)^{−s} downward; the ladder passes through the origin when q
	// is a non-positive real integer.
	half := big.NewFloat(0.5)
	for w.Re().Cmp(half) < 0 {
		if w.IsZero() {
			return fmt.Errorf("polylog: Hurwitz offset on the pole ladder: %w", ErrBranchPoint)
		}
		elemfn.Pow(term, w, negS, prec)
		acc.Add(acc, term)
		w.AddInt64(w, 1, 0)
	}
	sesqui := big.NewFloat(1.5)
	for w.Re().Cmp(sesqui) > 0 {
		w.SubInt64(w, 1, 0)
		elemfn.Pow(term, w, negS, prec)
		acc.Sub(acc, term)
	}

	x := cplx.New(bits).SubInt64(w, 1, 0)
	xre, xim := x.Float64s()
	if m := math.Sqrt(xre*xre + xim*xim); m > 0.9 {
		e.log.Warn("offset outside Taylor expansion radius",
			zap.Float64("re", xre), zap.Float64("im", xim))
		return fmt.Errorf("polylog: reduced offset %.3g from expansion point: %w", m, ErrNonConvergent)
	}

	x.Neg(x)
	qn := cplx.New(bits).SetInt64(1, 0)
	sm := cplx.New(bits).SubInt64(s, 1, 0)
	bin := cplx.New(bits)
	zt := cplx.New(bits)
	eps := cplx.Epsilon(2 * prec)
	sq := new(big.Float).SetPrec(bits)

	for n := uint64(0); ; n++ {
		e.binsC.Value(bin, sm, n, prec)
		if err := e.shift.Value(zt, s, n, prec); err != nil {
			return err
		}
		term.Mul(bin, zt)
		term.Mul(term, qn)
		acc.Add(acc, term)

		term.ModSq(sq)
		if sq.Cmp(eps) < 0 {
			break
		}
		qn.Mul(qn, x)
	}

	dst.Set(acc)
	return nil
}
