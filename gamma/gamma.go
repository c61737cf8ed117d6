package gamma

import (
	"math"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// Evaluator computes Γ on the real line and the complex plane. The
// zeta source is injected so evaluation rides whatever caching the
// caller's engine already carries; on top of that each entry point
// keeps a last-value slot, keyed by bit-bounded argument equality.
type Evaluator struct {
	log  *zap.Logger
	zeta ZetaIntFunc

	mu sync.Mutex

	realArg  big.Float
	realVal  big.Float
	realPrec int

	cplxArg  cplx.Complex
	cplxVal  cplx.Complex
	cplxPrec int
}

// New returns an Evaluator drawing integer zeta values from zf.
func New(zf ZetaIntFunc, opts ...Option) *Evaluator {
	g := &Evaluator{log: zap.NewNop(), zeta: zf}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GammaFloat sets dst = Γ(x) for real x. The argument is shifted into
// the band 1.5 < x ≤ 2.5 by rising factorials before the log-Gamma
// series runs. Non-positive integers are poles.
func (g *Evaluator) GammaFloat(dst, x *big.Float, prec int) error {
	if x.Sign() <= 0 && x.IsInt() {
		return ErrPole
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.realPrec >= prec && cplx.FloatEqBits(&g.realArg, x, cplx.DigitBits(prec)) {
		dst.Set(&g.realVal)
		return nil
	}

	bits := cplx.Bits(prec)
	w := new(big.Float).SetPrec(bits).Set(x)
	gam := new(big.Float).SetPrec(bits).SetInt64(1)

	flo, _ := x.Float64()
	switch {
	case flo > 2.5:
		shift := uint64(math.Floor(flo - 1))
		if flo-math.Floor(flo-1) < 1.5 {
			shift--
		}
		sf := new(big.Float).SetPrec(bits).SetUint64(shift)
		w.Sub(w, sf)
		combin.PochhammerFloat(gam, w, shift)
	case flo < 1.5:
		shift := uint64(math.Floor(2 - flo))
		if flo+math.Floor(2-flo) < 1.5 {
			shift++
		}
		combin.PochhammerFloat(gam, w, shift)
		gam.Quo(big.NewFloat(1), gam)
		sf := new(big.Float).SetPrec(bits).SetUint64(shift)
		w.Add(w, sf)
	}

	ln := new(big.Float).SetPrec(bits)
	if err := g.lnReduced(ln, w, prec); err != nil {
		return err
	}
	elemfn.Exp(ln, ln, prec)
	gam.Mul(gam, ln)

	g.realArg.SetPrec(x.Prec()).Set(x)
	g.realVal.SetPrec(bits).Set(gam)
	g.realPrec = prec
	dst.Set(gam)
	return nil
}

// Gamma sets dst = Γ(z). Arguments with |Im z| ≥ 1 go through the
// Gauss multiplication theorem so every reduced factor keeps its
// imaginary part below 1.
func (g *Evaluator) Gamma(dst *cplx.Complex, z *cplx.Complex, prec int) error {
	if z.Im().Sign() == 0 && z.Re().Sign() <= 0 && z.Re().IsInt() {
		return ErrPole
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cplxPrec >= prec && g.cplxArg.EqBits(z, cplx.DigitBits(prec)) {
		dst.Set(&g.cplxVal)
		return nil
	}

	bits := cplx.Bits(prec)
	_, zim := z.Float64s()
	m := int(math.Abs(zim)) + 1

	out := cplx.New(bits)
	if m == 1 {
		if err := g.gammaReduced(out, z, prec); err != nil {
			return err
		}
	} else {
		g.log.Debug("gamma multiplication theorem", zap.Int("m", m))
		acc := cplx.New(bits).SetInt64(1, 0)
		fac := cplx.New(bits)
		arg := cplx.New(bits)
		base := cplx.New(bits).QuoInt64(z, int64(m))
		step := new(big.Float).SetPrec(bits)
		mf := new(big.Float).SetPrec(bits).SetInt64(int64(m))
		for k := 0; k < m; k++ {
			step.SetInt64(int64(k))
			step.Quo(step, mf)
			arg.AddFloat(base, step)
			if err := g.gammaReduced(fac, arg, prec); err != nil {
				return err
			}
			acc.Mul(acc, fac)
		}

		root := elemfn.SqrtTwoPi(new(big.Float).SetPrec(bits), prec)
		elemfn.PowUint(root, root, uint64(m-1))
		acc.QuoFloat(acc, root)

		exp := cplx.New(bits).Set(z)
		exp.SubFloat(exp, new(big.Float).SetFloat64(0.5))
		elemfn.UintPow(fac, uint64(m), exp, prec)
		out.Mul(acc, fac)
	}

	g.cplxArg.SetPrec(z.Prec()).Set(z)
	g.cplxVal.SetPrec(bits).Set(out)
	g.cplxPrec = prec
	dst.Set(out)
	return nil
}

// gammaReduced sets dst = Γ(z) for |Im z| < 1 via the real-axis band
// shift and the reduced series.
func (g *Evaluator) gammaReduced(dst *cplx.Complex, z *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)
	w := cplx.New(bits).Set(z)
	gam := cplx.New(bits).SetInt64(1, 0)

	flo, _ := z.Re().Float64()
	switch {
	case flo > 2.5:
		shift := uint64(math.Floor(flo - 1))
		if flo-math.Floor(flo-1) < 1.5 {
			shift--
		}
		w.SubInt64(w, int64(shift), 0)
		combin.PochhammerComplex(gam, w, shift)
	case flo < 1.5:
		shift := uint64(math.Floor(2 - flo))
		if flo+math.Floor(2-flo) < 1.5 {
			shift++
		}
		combin.PochhammerComplex(gam, w, shift)
		gam.Recip(gam)
		w.AddInt64(w, int64(shift), 0)
	}

	ln := cplx.New(bits)
	if err := g.lnReducedC(ln, w, prec); err != nil {
		return err
	}
	elemfn.ExpC(ln, ln, prec)
	dst.Mul(gam, ln)
	return nil
}

// lnReduced sets dst = ln Γ(w) for real w in the band (1.5, 2.5],
// where the Taylor series around 2,
//
//	ln Γ(2+u) = (1−γ)·u + Σ_{n≥2} (−1)^n·(ζ(n)−1)·u^n/n,
//
// gains a steady two bits per term.
func (g *Evaluator) lnReduced(dst, w *big.Float, prec int) error {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)
	one := big.NewFloat(1)

	u := new(big.Float).SetPrec(bits).Sub(w, big.NewFloat(2))
	sum := new(big.Float).SetPrec(bits)
	un := new(big.Float).SetPrec(bits).Set(u)
	zn := new(big.Float).SetPrec(bits)
	term := new(big.Float).SetPrec(bits)
	nf := new(big.Float).SetPrec(bits)
	abs := new(big.Float)

	for n := 2; ; n++ {
		un.Mul(un, u)
		if err := g.zeta(zn, n, prec); err != nil {
			return err
		}
		zn.Sub(zn, one)
		term.Mul(un, zn)
		nf.SetInt64(int64(n))
		term.Quo(term, nf)
		if n%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		if abs.Abs(term).Cmp(eps) < 0 {
			break
		}
	}

	lin := elemfn.EulerGamma(new(big.Float).SetPrec(bits), prec)
	lin.Sub(one, lin)
	lin.Mul(lin, u)
	dst.Add(sum, lin)
	return nil
}

// lnReducedC is lnReduced for complex w; the band constraint applies
// to Re w and |Im w| must stay below 1 for convergence headroom.
func (g *Evaluator) lnReducedC(dst *cplx.Complex, w *cplx.Complex, prec int) error {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(2 * prec)
	one := big.NewFloat(1)

	u := cplx.New(bits).SubInt64(w, 2, 0)
	sum := cplx.New(bits)
	un := cplx.New(bits).Set(u)
	term := cplx.New(bits)
	zn := new(big.Float).SetPrec(bits)
	mod := new(big.Float).SetPrec(bits)

	for n := 2; ; n++ {
		un.Mul(un, u)
		if err := g.zeta(zn, n, prec); err != nil {
			return err
		}
		zn.Sub(zn, one)
		term.MulFloat(un, zn)
		term.QuoInt64(term, int64(n))
		if n%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		if term.ModSq(mod).Cmp(eps) < 0 {
			break
		}
	}

	lin := elemfn.EulerGamma(new(big.Float).SetPrec(bits), prec)
	lin.Sub(one, lin)
	term.MulFloat(u, lin)
	dst.Add(sum, term)
	return nil
}
