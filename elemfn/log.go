package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/cplx"
)

// Log sets dst = log(x) to at least prec decimal digits and returns
// dst. Panics when x ≤ 0, in the manner of big.Float.Sqrt on a
// negative operand.
//
// The binary exponent is split off against the cached log 2, leaving a
// mantissa in [1/2, 1) whose distance from 1 keeps the series ratio at
// or below one half.
func Log(dst, x *big.Float, prec int) *big.Float {
	if x.Sign() <= 0 {
		panic("elemfn: logarithm of a non-positive operand")
	}
	bits := cplx.Bits(prec)

	mant := new(big.Float).SetPrec(bits)
	exp := x.MantExp(mant)

	w := new(big.Float).SetPrec(bits).SetInt64(1)
	w.Sub(w, mant)
	res := logM1Series(new(big.Float).SetPrec(bits), w, prec)
	res.Neg(res)

	if exp != 0 {
		l2 := Log2(new(big.Float).SetPrec(bits), prec)
		e := new(big.Float).SetPrec(bits).SetInt64(int64(exp))
		l2.Mul(l2, e)
		res.Add(res, l2)
	}
	return dst.Set(res)
}

// LogM1 sets dst = -log(1-x) to at least prec decimal digits and
// returns dst. This is the series form the logarithm reductions bottom
// out in; |x| must stay below 1 for convergence, and the closer it
// sits to 0 the faster the sum closes.
func LogM1(dst, x *big.Float, prec int) *big.Float {
	return logM1Series(dst, x, prec)
}

// logUints memoizes log k for the k^s ladders, keyed by k. Never
// flushed; the tags only ratchet.
var logUints = cache.NewLinear(func() *big.Float { return new(big.Float) })

// LogUint sets dst = log(k) to at least prec decimal digits and
// returns dst. Panics when k is 0.
func LogUint(dst *big.Float, k uint64, prec int) *big.Float {
	if k == 0 {
		panic("elemfn: logarithm of a non-positive operand")
	}
	n := int(k)
	if prec <= logUints.CheckPrecision(n) {
		logUints.Fetch(dst, n)
		return dst
	}

	v := new(big.Float).SetPrec(cplx.Bits(prec)).SetUint64(k)
	Log(v, v, prec)
	logUints.Store(v, n, prec)
	return dst.Set(v)
}

// LogC sets dst = log(z) on the principal branch, Im dst ∈ (-π, π],
// and returns dst. Panics on z = 0.
func LogC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	msq := z.ModSq(new(big.Float).SetPrec(bits))
	re := Log(new(big.Float).SetPrec(bits), msq, prec)
	re.Mul(re, big.NewFloat(0.5))
	im := Atan2(new(big.Float).SetPrec(bits), z.Im(), z.Re(), prec)
	return dst.SetParts(re, im)
}

// LogM1C sets dst = -log(1-z) for complex z through the direct series
// and returns dst; |z| must stay below 1 for convergence.
func LogM1C(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)
	epsSq := cplx.Epsilon(2 * prec)

	pow := cplx.New(bits).Set(z)
	sum := cplx.New(bits).Set(z)
	term := cplx.New(bits)
	msq := new(big.Float).SetPrec(bits)

	for n := int64(2); ; n++ {
		pow.Mul(pow, z)
		term.QuoInt64(pow, n)
		sum.Add(sum, term)
		if term.ModSq(msq).Cmp(epsSq) < 0 {
			break
		}
	}
	return dst.Set(sum)
}

// logM1Series sums Σ x^n/n = -log(1-x).
func logM1Series(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)

	pow := new(big.Float).SetPrec(bits).Set(x)
	sum := new(big.Float).SetPrec(bits).Set(x)
	term := new(big.Float).SetPrec(bits)
	den := new(big.Float).SetPrec(bits)

	for n := int64(2); ; n++ {
		pow.Mul(pow, x)
		den.SetInt64(n)
		term.Quo(pow, den)
		sum.Add(sum, term)
		if term.Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return dst.Set(sum)
}
