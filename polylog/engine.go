package polylog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
	"github.com/katalvlaran/zetafn/gamma"
	"github.com/katalvlaran/zetafn/zeta"
)

// Engine evaluates the polylogarithm and the zeta functions built on
// it. Every memo the evaluations feed lives on the Engine, so repeat
// calls at a held s and wandering z (the common sweep) reuse the power
// ladders and reflection factors. All methods are safe for concurrent
// use; an engine runs one evaluation at a time, and concurrent callers
// queue on it.
type Engine struct {
	log  *zap.Logger
	tun  Tuning
	zeta *zeta.Engine     // Riemann zeta source, integer and complex
	gam  *gamma.Evaluator // Γ for the reflection scale factors

	mu sync.Mutex // held across an evaluation; guards the state below

	upow  *elemfn.UintPowCache     // k^{±s} ladders for the direct sums
	opowC *elemfn.OffsetPowCacheC  // (k+q)^{-s}, complex offsets
	opowF *elemfn.OffsetPowCache   // (k+q)^{-s}, real offsets
	bern  *combin.Bernoulli        // Euler–Maclaurin tail weights
	stir  *combin.Stirling         // negative-integer closed forms
	shift *zeta.Shifted            // ζ(s+n) ladder for the Taylor series
	binsC *combin.ShiftedBinomials // C(s−1+n, n) ladder for the Taylor series

	// Reflection factors e^{iπw/2} and Γ(w)·(2π)^{-w} for w = 1−s,
	// shared by the inversion formula and the Hurwitz assembly.
	reflKey   cplx.Complex
	reflPrec  int
	reflPhase cplx.Complex
	reflScale cplx.Complex

	// Periodic beta normalization 2·Γ(s+1)·(2π)^{-s}, keyed by s.
	betaKey   cplx.Complex
	betaPrec  int
	betaScale cplx.Complex
}

// New returns an Engine with empty caches, the default tuning, a nop
// logger and private zeta and Gamma sources; apply options to change
// any of these. New panics when an injected Tuning fails Validate.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:   zap.NewNop(),
		tun:   DefaultTuning(),
		upow:  elemfn.NewUintPowCache(),
		opowC: elemfn.NewOffsetPowCacheC(),
		opowF: elemfn.NewOffsetPowCache(),
		bern:  combin.NewBernoulli(),
		stir:  combin.NewStirling(),
		binsC: combin.NewShiftedBinomials(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.tun.Validate(); err != nil {
		panic(err)
	}
	if e.zeta == nil {
		e.zeta = zeta.New()
	}
	if e.gam == nil {
		e.gam = gamma.New(e.zeta.Zeta)
	}
	e.shift = zeta.NewShifted(e.zeta)
	return e
}
