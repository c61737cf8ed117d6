package elemfn

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// SqrtC sets dst to the principal square root of z, the branch with
// Re dst ≥ 0, and returns dst. Zero maps to zero.
//
// The input is split into modulus and direction; the direction's root
// comes from the half-angle pair cos(θ/2) = √((cos θ+1)/2) and
// sin(θ/2) = sin θ / (2·cos(θ/2)), which stays finite everywhere off
// the negative real axis. On the axis itself the root is exactly i.
func SqrtC(dst, z *cplx.Complex, prec int) *cplx.Complex {
	bits := cplx.Bits(prec)

	if z.IsZero() {
		return dst.SetInt64(0, 0)
	}
	mod := z.Abs(new(big.Float).SetPrec(bits))

	u := cplx.New(bits).Set(z)
	u.QuoFloat(u, mod)

	if u.Im().Sign() == 0 && u.Re().Sign() < 0 {
		u.SetInt64(0, 1)
	} else {
		c := new(big.Float).SetPrec(bits).Add(u.Re(), big.NewFloat(1))
		c.Mul(c, big.NewFloat(0.5))
		c.Sqrt(c)
		s := new(big.Float).SetPrec(bits).Mul(u.Im(), big.NewFloat(0.5))
		s.Quo(s, c)
		u.SetParts(c, s)
	}

	mod.Sqrt(mod)
	return dst.MulFloat(u, mod)
}
