package zeta

import (
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// Engine evaluates ζ at integer and complex arguments. Every memo the
// evaluations feed lives on the Engine, so one instance shared across
// goroutines accumulates a single warm cache; the internally locked
// caches plus mu make all methods safe for concurrent use.
type Engine struct {
	log   *zap.Logger
	store *Store

	ram  *cache.Linear[*big.Float] // finished ζ(s), keyed by s
	bern *combin.Bernoulli

	mu sync.Mutex // guards the keyed single-slot state below

	coeffs *cache.Linear[*big.Float] // Borwein cumulative row, keyed by k
	coeffN int                       // order the row belongs to

	bruteSum  big.Float // partial Σ 1/n^s
	bruteS    int
	brutePrec int
	bruteLast uint64 // largest n already folded into bruteSum

	powers *elemfn.OffsetPowCache // (k+1)^{-s} and 2^{s-1} ladders
}

// New returns an Engine with empty caches, a nop logger and no
// persistent store; apply options to change either.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:    zap.NewNop(),
		ram:    cache.NewLinear(func() *big.Float { return new(big.Float) }),
		bern:   combin.NewBernoulli(),
		coeffs: cache.NewLinear(func() *big.Float { return new(big.Float) }),
		powers: elemfn.NewOffsetPowCache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvenInt sets dst = ζ(n) for even n ≥ 2 through the Bernoulli closed
// form ζ(2m) = ±B(2m)·(2π)^2m / (2·(2m)!), rounded to prec digits.
func (e *Engine) EvenInt(dst *big.Float, n, prec int) error {
	if n < 2 || n%2 != 0 {
		return ErrNonEven
	}
	bits := cplx.Bits(prec)

	var br big.Rat
	e.bern.Value(&br, n)
	val := new(big.Float).SetPrec(bits).SetRat(&br)

	var fac big.Int
	combin.Factorial(&fac, uint64(n))
	den := new(big.Float).SetPrec(bits).SetInt(&fac)
	den.Add(den, den)
	val.Quo(val, den)
	if n%4 == 0 {
		val.Neg(val)
	}

	tp := elemfn.TwoPi(new(big.Float).SetPrec(bits), prec)
	elemfn.PowUint(tp, tp, uint64(n))
	dst.Set(val.Mul(val, tp))
	return nil
}

// Zeta sets dst = ζ(s) for integer s ≥ 2. Lookup order: the RAM memo,
// then the persistent store, then the cheapest evaluation for the
// requested digits — brute force when the series is short, the
// Bernoulli form for even s, Borwein otherwise. Finished values are
// written back to both cache layers.
func (e *Engine) Zeta(dst *big.Float, s, prec int) error {
	if s < 2 {
		return ErrBelowTwo
	}
	if prec <= e.ram.CheckPrecision(s) {
		e.ram.Fetch(dst, s)
		return nil
	}
	if e.store != nil {
		if val, p, ok := e.store.Load(s); ok && p >= prec {
			// The store keeps ζ−1; restore the leading digit.
			dst.Add(val, big.NewFloat(1))
			e.ram.Store(dst, s, p)
			e.log.Debug("zeta served from store", zap.Int("s", s), zap.Int("prec", p))
			return nil
		}
	}

	marge := float64(prec) / float64(s-1)
	var (
		path string
		err  error
	)
	switch {
	case s > 20 && ((s%2 == 1 && marge < 3.3) || (s%2 == 0 && marge < 1.8)):
		path = "brute"
		err = e.Brute(dst, s, prec)
	case s%2 == 0:
		path = "even"
		err = e.EvenInt(dst, s, prec)
	default:
		path = "borwein"
		err = e.Borwein(dst, s, prec)
	}
	if err != nil {
		return err
	}
	e.log.Debug("zeta computed",
		zap.Int("s", s), zap.Int("prec", prec), zap.String("path", path))

	e.ram.Store(dst, s, prec)
	if e.store != nil {
		less := new(big.Float).SetPrec(cplx.Bits(prec)).Sub(dst, big.NewFloat(1))
		if serr := e.store.Save(s, less, prec); serr != nil {
			e.log.Warn("zeta store save failed", zap.Int("s", s), zap.Error(serr))
		}
	}
	return nil
}
