package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// Atan sets dst = atan(x) to at least prec decimal digits and returns
// dst.
func Atan(dst, x *big.Float, prec int) *big.Float {
	one := new(big.Float).SetPrec(cplx.Bits(prec)).SetInt64(1)
	return Atan2(dst, x, one, prec)
}

// Atan2 sets dst to the angle of the point (x, y) in the plane, with
// the principal range (-π, π], and returns dst. The axes follow the
// math.Atan2 conventions: Atan2(0, x>0) = 0, Atan2(0, x<0) = π, and
// the origin maps to 0.
func Atan2(dst, y, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)
	ys, xs := y.Sign(), x.Sign()

	if xs == 0 {
		if ys == 0 {
			return dst.SetInt64(0)
		}
		PiHalf(dst, prec)
		if ys < 0 {
			dst.Neg(dst)
		}
		return dst
	}

	ay := new(big.Float).SetPrec(bits).Abs(y)
	ax := new(big.Float).SetPrec(bits).Abs(x)
	r := atan2Reduce(ay, ax, prec)
	if xs < 0 {
		pi := Pi(new(big.Float).SetPrec(bits), prec)
		r.Sub(pi, r)
	}
	if ys < 0 {
		r.Neg(r)
	}
	return dst.Set(r)
}

// atan2Reduce contracts the first-quadrant angle of (x, y), x > 0 and
// y ≥ 0, until the ratio y/x is small enough for the direct series.
// Ratios above 1 flip through the cofunction; ratios above 0.3 shrink
// through the half-angle identity atan(t) = 2·atan(t/(1+√(1+t²))).
func atan2Reduce(y, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)

	if y.Cmp(x) > 0 {
		r := atan2Reduce(x, y, prec)
		ph := PiHalf(new(big.Float).SetPrec(bits), prec)
		return ph.Sub(ph, r)
	}

	thr := new(big.Float).SetPrec(bits).SetFloat64(0.3)
	thr.Mul(thr, x)
	if y.Cmp(thr) > 0 {
		den := new(big.Float).SetPrec(bits).Mul(x, x)
		thr.Mul(y, y)
		den.Add(den, thr)
		den.Sqrt(den)
		den.Add(den, x)
		r := atan2Reduce(y, den, prec)
		return r.Add(r, r)
	}

	q := new(big.Float).SetPrec(bits).Quo(y, x)
	return atanSeries(q, q, prec)
}

// atanSeries sums atan(x) = x - x³/3 + x⁵/5 - …, the Gregory series,
// for a reduced argument.
func atanSeries(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)

	xsq := new(big.Float).SetPrec(bits).Mul(x, x)
	pow := new(big.Float).SetPrec(bits).Set(x)
	sum := new(big.Float).SetPrec(bits).Set(x)
	term := new(big.Float).SetPrec(bits)
	den := new(big.Float).SetPrec(bits)

	for k := int64(3); ; k += 2 {
		pow.Mul(pow, xsq)
		den.SetInt64(k)
		term.Quo(pow, den)
		if k%4 == 3 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return dst.Set(sum)
}
