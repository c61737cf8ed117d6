package polylog

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// mode tags the evaluation strategy the dispatcher picked for one
// recursion step.
type mode int

const (
	// modeDirect - the argument is inside the convergence zone; run
	// the accelerated sum as is.
	modeDirect mode = iota
	// modeDuplicate - square the argument away from the branch point:
	// Li_s(z) = 2^{1−s}·Li_s(z²) − Li_s(−z).
	modeDuplicate
	// modeRetreat - the argument is inside the unit disk; rerun the
	// classification under the away rules, which are proven there.
	modeRetreat
	// modeInvert - reflect through the Hurwitz zeta at
	// q = log z/(2πi), for arguments moderately beyond the unit disk.
	modeInvert
	// modeSqrt - pull a distant argument inward:
	// Li_s(z) = 2^{s−1}·(Li_s(√z) + Li_s(−√z)).
	modeSqrt
	// modeClosed - order zero beyond the unit disk: the reflection
	// parameter lands on the Hurwitz pole at 1, but Li_0(z) = z/(1−z).
	modeClosed
)

func (m mode) String() string {
	switch m {
	case modeDirect:
		return "direct"
	case modeDuplicate:
		return "duplicate"
	case modeRetreat:
		return "retreat"
	case modeInvert:
		return "invert"
	case modeSqrt:
		return "sqrt"
	default:
		return "closed"
	}
}

// classify picks the strategy for one step. The away rules move the
// argument off the z = 1 branch point and never reach beyond the unit
// circle; the toward rules additionally reflect or pull in arguments
// outside it.
func (e *Engine) classify(away bool, mod, den float64, nterms int) mode {
	fits := nterms >= 1 && nterms <= e.tun.MaxTerms
	if away {
		if den > e.tun.DirectZone || !fits {
			return modeDuplicate
		}
		return modeDirect
	}
	if den < e.tun.DirectZone && fits {
		return modeDirect
	}
	if mod <= 1.0 {
		return modeRetreat
	}
	if math.Log(mod) < e.tun.InvertBound {
		return modeInvert
	}
	return modeSqrt
}

// recurse is the shared dispatcher behind Polylog and PolylogAway: it
// guards the depth, classifies the argument and either sums directly
// or reduces the argument and calls itself. The two entry flavors
// share the depth counter, so a retreat from the toward rules cannot
// restart the budget.
func (e *Engine) recurse(dst, s, z *cplx.Complex, prec, depth int, away bool) error {
	zre, zim := z.Float64s()
	mod := zre*zre + zim*zim

	limit := e.tun.TowardDepth
	if away {
		limit = e.tun.AwayDepth
		if mod > e.tun.MaxModulus*e.tun.MaxModulus {
			e.log.Warn("argument beyond escape radius",
				zap.Float64("re", zre), zap.Float64("im", zim))
			return fmt.Errorf("polylog: |z| = %.4g: %w", math.Sqrt(mod), ErrNonConvergent)
		}
	}
	if depth > limit {
		e.log.Warn("recursion depth exhausted",
			zap.Float64("re", zre), zap.Float64("im", zim),
			zap.Bool("away", away), zap.Int("depth", depth))
		return ErrDepthExceeded
	}
	depth++

	den := zoneMetric(zre, zim)
	nterms := termEstimate(s, z, prec)
	m := e.classify(away, mod, den, nterms)
	if m == modeInvert && s.IsZero() {
		// Order zero reflects through the Hurwitz pole at 1; take the
		// rational closed form instead.
		m = modeClosed
	}
	e.log.Debug("polylog dispatch",
		zap.Float64("re", zre), zap.Float64("im", zim),
		zap.Float64("zone", den), zap.Int("terms", nterms),
		zap.Int("depth", depth), zap.Stringer("mode", m))

	switch m {
	case modeDirect:
		// The subtraction against (z−1)^{-m} cancels about one bit per
		// order; widen the working precision to absorb that.
		wprec := prec + int(0.301029996*float64(nterms)) + 1
		e.borweinSum(dst, s, z, nterms, wprec)
		return nil
	case modeDuplicate:
		return e.duplicate(dst, s, z, prec, depth)
	case modeRetreat:
		return e.recurse(dst, s, z, prec, depth, true)
	case modeInvert:
		return e.reflect(dst, s, z, true, prec)
	case modeClosed:
		om := cplx.New(cplx.Bits(prec)).SetInt64(1, 0)
		om.Sub(om, z)
		om.Quo(z, om)
		dst.Set(om)
		return nil
	default:
		return e.sqrtSplit(dst, s, z, prec, depth)
	}
}

// duplicate applies Li_s(z) = 2^{1−s}·Li_s(z²) − Li_s(−z), recursing
// under the away rules on both halves.
func (e *Engine) duplicate(dst, s, z *cplx.Complex, prec, depth int) error {
	bits := cplx.Bits(prec)

	zsq := cplx.New(bits).Mul(z, z)
	pp := cplx.New(bits)
	if err := e.recurse(pp, s, zsq, prec, depth, true); err != nil {
		return err
	}

	zn := cplx.New(bits).Neg(z)
	pn := cplx.New(bits)
	if err := e.recurse(pn, s, zn, prec, depth, true); err != nil {
		return err
	}

	sm := cplx.New(bits).SetInt64(1, 0)
	sm.Sub(sm, s)
	ts := elemfn.UintPow(cplx.New(bits), 2, sm, prec)
	pp.Mul(pp, ts)
	pp.Sub(pp, pn)
	dst.Set(pp)
	return nil
}

// sqrtSplit applies Li_s(z) = 2^{s−1}·(Li_s(√z) + Li_s(−√z)),
// recursing under the toward rules; the roots sit closer to the unit
// circle than z.
func (e *Engine) sqrtSplit(dst, s, z *cplx.Complex, prec, depth int) error {
	bits := cplx.Bits(prec)

	zr := elemfn.SqrtC(cplx.New(bits), z, prec)
	pp := cplx.New(bits)
	if err := e.recurse(pp, s, zr, prec, depth, false); err != nil {
		return err
	}

	zr.Neg(zr)
	pn := cplx.New(bits)
	if err := e.recurse(pn, s, zr, prec, depth, false); err != nil {
		return err
	}

	sm := cplx.New(bits).SubInt64(s, 1, 0)
	ts := elemfn.UintPow(cplx.New(bits), 2, sm, prec)
	pp.Add(pp, pn)
	pp.Mul(pp, ts)
	dst.Set(pp)
	return nil
}

// Polylog sets dst = Li_s(z) to at least prec decimal digits. The
// argument may lie anywhere the analytic continuation reaches except
// the z ≥ 1 branch cut; arguments beyond the unit disk go through the
// Hurwitz reflection, which excludes positive integer s (Γ(1−s) is at
// a pole there). On error dst is the zero sentinel.
func (e *Engine) Polylog(dst *cplx.Complex, s, z *cplx.Complex, prec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.recurse(dst, s, z, prec, 0, false); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}

// PolylogAway sets dst = Li_s(z) under the away rules alone: the
// argument is repeatedly squared off the branch point and never
// reflected, so |z| must stay within MaxModulus. Polylog hands the
// whole unit disk to this entry; it is exported for callers that want
// the reflection-free evaluation on the disk boundary. On error dst is
// the zero sentinel.
func (e *Engine) PolylogAway(dst *cplx.Complex, s, z *cplx.Complex, prec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.recurse(dst, s, z, prec, 0, true); err != nil {
		dst.SetInt64(0, 0)
		return err
	}
	return nil
}
