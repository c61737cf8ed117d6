package polylog

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// PolylogInt sets dst = Li_{−n}(z), the polylogarithm of non-positive
// integer order, through its closed rational form
//
//	Li_{−n}(z) = (−1)^{n+1} Σ_{k=1}^{n+1} (k−1)!·S(n+1,k)/(z−1)^k
//
// with S the Stirling numbers of the second kind; Li_0(z) = z/(1−z).
// Exact up to the final divisions, for any z except the z = 1 pole.
// On error dst is the zero sentinel.
func (e *Engine) PolylogInt(dst *cplx.Complex, n uint, z *cplx.Complex, prec int) error {
	if z.Im().Sign() == 0 && z.Re().Cmp(oneFloat) == 0 {
		dst.SetInt64(0, 0)
		return fmt.Errorf("polylog: order −%d pole at z = 1: %w", n, ErrBranchPoint)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	bits := cplx.Bits(prec)
	zp := cplx.New(bits).SubInt64(z, 1, 0)
	zp.Recip(zp)

	if n == 0 {
		zp.Mul(zp, z)
		zp.Neg(zp)
		dst.Set(zp)
		return nil
	}

	acc := cplx.New(bits)
	term := cplx.New(bits)
	base := cplx.New(bits).Set(zp)
	var stir, fac big.Int
	fac.SetInt64(1)
	wf := new(big.Float).SetPrec(bits)

	for k := 1; k <= int(n)+1; k++ {
		e.stir.Second(&stir, int(n)+1, k)
		stir.Mul(&stir, &fac)
		wf.SetInt(&stir)
		term.MulFloat(zp, wf)
		acc.Add(acc, term)

		zp.Mul(zp, base)
		fac.Mul(&fac, big.NewInt(int64(k)))
	}
	if n%2 == 0 {
		acc.Neg(acc)
	}
	dst.Set(acc)
	return nil
}
