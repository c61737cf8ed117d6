package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
)

// invFacts backs the circular series. Shared across the package
// because every request only ever ratchets the same 1/k! values
// upward.
var invFacts = combin.NewInvFactorials()

// expTerms is permanently disabled: the slot index k cannot capture
// the series argument, so a stored x^k/k! would go stale the moment x
// changes. The wiring stays so the running term can be captured again
// if the exponential ever gains a per-argument key.
var expTerms = cache.NewDisabledLinear[*big.Float]()

// Exp sets dst = e^x to at least prec decimal digits and returns dst.
// The integer part of x is split off and paid for with powers of the
// cached e, so the series only ever sees an argument in (-1/2, 1/2].
func Exp(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)

	z := new(big.Float).SetPrec(bits).Set(x)
	ip := Floor(new(big.Float), z)
	frac := new(big.Float).SetPrec(bits).Sub(z, ip)
	if frac.Cmp(big.NewFloat(0.5)) > 0 {
		frac.Sub(frac, big.NewFloat(1))
		ip.Add(ip, big.NewFloat(1))
	}

	res := expTaylor(new(big.Float).SetPrec(bits), frac, prec)
	if n, _ := ip.Int64(); n != 0 {
		k := n
		if k < 0 {
			k = -k
		}
		en := E(new(big.Float).SetPrec(bits), prec)
		PowUint(en, en, uint64(k))
		if n > 0 {
			res.Mul(res, en)
		} else {
			res.Quo(res, en)
		}
	}
	return dst.Set(res)
}

// ExpC sets dst = e^z for complex z and returns dst: the magnitude
// comes from the real exponential, the direction from the circular
// pair at Im z.
func ExpC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	mag := Exp(new(big.Float).SetPrec(bits), z.Re(), prec)
	re := Cos(new(big.Float).SetPrec(bits), z.Im(), prec)
	im := Sin(new(big.Float).SetPrec(bits), z.Im(), prec)
	re.Mul(re, mag)
	im.Mul(im, mag)
	return dst.SetParts(re, im)
}

// expTaylor sums Σ x^k/k! with a running term. Callers reduce |x| to
// at most one half first, except for the defining case of e itself at
// x = 1.
func expTaylor(dst, x *big.Float, prec int) *big.Float {
	bits := cplx.Bits(prec)
	eps := cplx.Epsilon(prec)

	term := new(big.Float).SetPrec(bits).Set(x)
	sum := new(big.Float).SetPrec(bits).SetInt64(1)
	sum.Add(sum, term)
	kf := new(big.Float).SetPrec(bits)
	abs := new(big.Float).SetPrec(bits)

	for k := int64(2); ; k++ {
		if !expTerms.Fetch(term, int(k)) {
			kf.SetInt64(k)
			term.Mul(term, x)
			term.Quo(term, kf)
			expTerms.Store(term, int(k), prec)
		}
		sum.Add(sum, term)
		if abs.Abs(term).Cmp(eps) < 0 {
			break
		}
	}
	return dst.Set(sum)
}
