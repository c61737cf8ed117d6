package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// Sin sets dst = sin(x) to at least prec decimal digits and returns
// dst. The argument is reduced by quarter periods of π/2, folded onto
// [0, π/2] through the cofunction, and the sign restored from the
// quadrant afterwards.
func Sin(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)

	z := new(big.Float).SetPrec(bits).Set(x)
	top := TwoOverPi(new(big.Float).SetPrec(bits), prec)
	top.Mul(top, z)
	quadF := Floor(new(big.Float), top)
	quad, _ := quadF.Int64()

	ph := PiHalf(new(big.Float).SetPrec(bits), prec)
	top.Mul(quadF, ph)
	z.Sub(z, top)

	iq := quad
	if iq < 0 {
		iq = -iq
	}
	if r := iq % 4; r == 1 || r == 3 {
		z.Sub(ph, z)
	}

	res := sinTaylor(new(big.Float).SetPrec(bits), z, prec+2)

	if quad < 0 {
		iq++
	}
	if (iq/2)%2 == 1 {
		res.Neg(res)
	}
	return dst.Set(res)
}

// Cos sets dst = cos(x) through the quarter-period shift
// cos x = sin(x + π/2).
func Cos(dst, x *big.Float, prec int) *big.Float {
	sh := PiHalf(new(big.Float).SetPrec(cplx.Bits(prec)), prec)
	sh.Add(sh, x)
	return Sin(dst, sh, prec)
}

// SinC sets dst = sin(z) for complex z from the exponential form
// (e^{iz} - e^{-iz})/2i and returns dst.
func SinC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	iz := cplx.New(bits).MulI(z)
	ep := ExpC(cplx.New(bits), iz, prec)
	en := cplx.New(bits).Neg(iz)
	ExpC(en, en, prec)

	ep.Sub(ep, en)
	ep.MulI(ep)
	ep.MulExp(ep, -1)
	return dst.Neg(ep)
}

// CosC sets dst = cos(z) for complex z from the exponential form
// (e^{iz} + e^{-iz})/2 and returns dst.
func CosC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	iz := cplx.New(bits).MulI(z)
	ep := ExpC(cplx.New(bits), iz, prec)
	en := cplx.New(bits).Neg(iz)
	ExpC(en, en, prec)

	ep.Add(ep, en)
	return dst.MulExp(ep, -1)
}

// TanC sets dst = tan(z) for complex z and returns dst. One pair of
// complex exponentials serves both the sine and the cosine.
func TanC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	iz := cplx.New(bits).MulI(z)
	ep := ExpC(cplx.New(bits), iz, prec)
	en := cplx.New(bits).Neg(iz)
	ExpC(en, en, prec)

	num := cplx.New(bits).Sub(ep, en)
	den := cplx.New(bits).Add(ep, en)
	dst.Quo(num, den)
	dst.MulI(dst)
	return dst.Neg(dst)
}

// sinTaylor sums the odd series Σ (-1)^k x^{2k+1}/(2k+1)! for a
// reduced argument.
func sinTaylor(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)

	xsq := new(big.Float).SetPrec(bits).Mul(x, x)
	pow := new(big.Float).SetPrec(bits).Set(x)
	sum := new(big.Float).SetPrec(bits).Set(x)
	inv := new(big.Float).SetPrec(bits)
	term := new(big.Float).SetPrec(bits)

	for k := uint64(3); ; k += 2 {
		pow.Mul(pow, xsq)
		invFacts.Value(inv, k, prec)
		term.Mul(pow, inv)
		if (k/2)%2 == 1 {
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
