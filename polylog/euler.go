package polylog

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
)

// oneFloat anchors the pole tests; never written through.
var oneFloat = big.NewFloat(1)

// eulerMaclaurin sets dst = ζ(s, q) for complex q by Euler–Maclaurin
// summation: M leading terms summed directly, then the integral,
// half-sample and Bernoulli corrections taken at M+q, with M growing
// with the digit request. The correction series is asymptotic; a term
// that stops shrinking before it clears the target is a convergence
// failure, not grounds for summing further.
func (e *Engine) eulerMaclaurin(dst, s, q *cplx.Complex, prec int) error {
	if s.Im().Sign() == 0 && s.Re().Cmp(oneFloat) == 0 {
		return fmt.Errorf("polylog: Hurwitz zeta pole at s = 1: %w", ErrDomain)
	}
	em := prec + 12
	bits := cplx.Bits(prec)

	negS := cplx.New(bits).Neg(s)
	acc := cplx.New(bits)
	term := cplx.New(bits)
	for k := 0; k < em; k++ {
		e.opowC.Value(term, uint64(k), q, negS, prec)
		acc.Add(acc, term)
	}
	deriv := cplx.New(bits)
	e.opowC.Value(deriv, uint64(em), q, negS, prec)
	emq := cplx.New(bits).AddInt64(q, int64(em), 0)

	return e.eulerTail(dst, acc, s, deriv, emq, prec)
}

// eulerMaclaurinReal is eulerMaclaurin for real q. The real power
// ladder is markedly cheaper, and the boundary M can sit lower because
// there is no imaginary offset slowing the decay.
func (e *Engine) eulerMaclaurinReal(dst, s *cplx.Complex, q *big.Float, prec int) error {
	if s.Im().Sign() == 0 && s.Re().Cmp(oneFloat) == 0 {
		return fmt.Errorf("polylog: Hurwitz zeta pole at s = 1: %w", ErrDomain)
	}
	em := prec/2 + 5
	bits := cplx.Bits(prec)

	negS := cplx.New(bits).Neg(s)
	acc := cplx.New(bits)
	term := cplx.New(bits)
	for k := 0; k < em; k++ {
		if err := e.opowF.Value(term, uint64(k), q, negS, prec); err != nil {
			return err
		}
		acc.Add(acc, term)
	}
	deriv := cplx.New(bits)
	if err := e.opowF.Value(deriv, uint64(em), q, negS, prec); err != nil {
		return err
	}
	mq := new(big.Float).SetPrec(bits).SetInt64(int64(em))
	mq.Add(mq, q)
	emq := cplx.New(bits).SetFloat(mq)

	return e.eulerTail(dst, acc, s, deriv, emq, prec)
}

// eulerTail folds the boundary terms and the Bernoulli correction
// series into the partial sum acc and stores the result in dst. On
// entry deriv = (M+q)^{−s} and emq = M+q; both are consumed.
func (e *Engine) eulerTail(dst, acc, s, deriv, emq *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)

	// half weight on the boundary sample
	term := cplx.New(bits).QuoInt64(deriv, 2)
	acc.Add(acc, term)

	// −(M+q)^{1−s}/(1−s), the integral part of the remainder
	term.Mul(deriv, emq)
	om := cplx.New(bits).SetInt64(1, 0)
	om.Sub(om, s)
	term.Quo(term, om)
	acc.Sub(acc, term)

	// deriv = (M+q)^{−s−1}, rec = (M+q)^{−2}
	rec := cplx.New(bits).Recip(emq)
	deriv.Mul(deriv, rec)
	rec.Mul(rec, rec)

	fact := new(big.Float).SetPrec(bits).SetFloat64(0.5)
	spoch := cplx.New(bits).Set(s)
	sk := cplx.New(bits).Set(s)

	eps := cplx.Epsilon(2 * prec)
	var bq big.Rat
	bf := new(big.Float).SetPrec(bits)
	sq := new(big.Float).SetPrec(bits)
	last := new(big.Float).SetPrec(bits).SetInf(false)
	var div big.Float

	for k := 1; ; k++ {
		// term = B_2k/(2k)! · (s)_{2k−1} · (M+q)^{−s−2k+1}
		e.bern.Value(&bq, 2*k)
		bf.SetRat(&bq)
		bf.Mul(bf, fact)
		term.MulFloat(deriv, bf)
		term.Mul(term, spoch)
		acc.Add(acc, term)

		term.ModSq(sq)
		if sq.Cmp(eps) < 0 {
			break
		}
		if sq.Cmp(last) > 0 {
			e.log.Warn("Euler–Maclaurin tail bottomed out", zap.Int("order", 2*k))
			return fmt.Errorf("polylog: correction tail stalls at order %d: %w", 2*k, ErrNonConvergent)
		}
		last.Set(sq)

		next := int64(k + 1)
		div.SetInt64((2*next - 1) * 2 * next)
		fact.Quo(fact, &div)
		deriv.Mul(deriv, rec)
		sk.AddInt64(sk, 1, 0)
		spoch.Mul(spoch, sk)
		sk.AddInt64(sk, 1, 0)
		spoch.Mul(spoch, sk)
	}

	dst.Set(acc)
	return nil
}

// HurwitzEuler sets dst = ζ(s, q) for complex q by the Euler–Maclaurin
// evaluation. The second argument must keep every k+q off zero and the
// negative real axis' integers: q at a non-positive real integer sits
// on the pole ladder of the defining sum. On error dst is the zero
// sentinel.
func (e *Engine) HurwitzEuler(dst, s, q *cplx.Complex, prec int) error {
	if q.Im().Sign() == 0 && q.Re().Sign() <= 0 && q.Re().IsInt() {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: Hurwitz offset %v on pole ladder: %w", q.Re(), ErrBranchPoint)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.eulerMaclaurin(dst, s, q, prec); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}
