package combin

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cplx"
)

// PochhammerInt sets dst to the rising factorial k(k+1)…(k+n-1) and
// returns dst. n = 0 yields 1.
func PochhammerInt(dst *big.Int, k, n uint64) *big.Int {
	if n == 0 {
		return dst.SetInt64(1)
	}
	return dst.MulRange(int64(k), int64(k+n-1))
}

// PochhammerFloat sets dst = x(x+1)…(x+n-1) for real x and returns
// dst.
func PochhammerFloat(dst *big.Float, x *big.Float, n uint64) *big.Float {
	var term big.Float
	term.Set(x) // copy first, dst may alias x

	if dst.Prec() == 0 {
		dst.SetPrec(term.Prec())
	}
	dst.SetInt64(1)
	one := big.NewFloat(1)
	for i := uint64(0); i < n; i++ {
		dst.Mul(dst, &term)
		term.Add(&term, one)
	}
	return dst
}

// PochhammerComplex sets dst = s(s+1)…(s+n-1) for complex s and
// returns dst.
func PochhammerComplex(dst *cplx.Complex, s *cplx.Complex, n uint64) *cplx.Complex {
	if n == 0 {
		return dst.SetInt64(1, 0)
	}

	var term, acc cplx.Complex
	term.Set(s)
	acc.Set(s)
	for i := uint64(1); i < n; i++ {
		term.AddInt64(&term, 1, 0)
		acc.Mul(&acc, &term)
	}
	return dst.Set(&acc)
}
