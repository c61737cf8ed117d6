package elemfn

import "math/big"

// Floor sets dst to the largest integer not exceeding x and returns
// dst. The result is exact when dst carries no preset rounding
// precision.
func Floor(dst, x *big.Float) *big.Float {
	n, acc := x.Int(nil)
	if acc == big.Above {
		n.Sub(n, big.NewInt(1))
	}
	return dst.SetInt(n)
}
