// Package cplx - arbitrary-precision complex arithmetic over math/big.
//
// See doc.go for the package contract.
package cplx

import "math/big"

// Complex is an arbitrary-precision complex number. The zero value is
// 0+0i at precision 0 and is ready to use without initialization.
//
// Methods follow the math/big convention: the receiver is the
// destination, operands are never modified (unless aliased with the
// destination), and the receiver is returned to allow chaining.
type Complex struct {
	re, im big.Float
}

// New returns a zero Complex whose parts carry prec bits of precision.
func New(prec uint) *Complex {
	z := new(Complex)
	z.re.SetPrec(prec)
	z.im.SetPrec(prec)
	return z
}

// Re returns a reference to the real part of z.
// The reference is shared, in the manner of big.Rat.Num: writing
// through it changes z.
func (z *Complex) Re() *big.Float { return &z.re }

// Im returns a reference to the imaginary part of z.
// The reference is shared: writing through it changes z.
func (z *Complex) Im() *big.Float { return &z.im }

// Prec returns the larger of the two part precisions in bits.
func (z *Complex) Prec() uint {
	if p := z.re.Prec(); p >= z.im.Prec() {
		return p
	}
	return z.im.Prec()
}

// SetPrec sets both parts to prec bits, rounding the stored values if
// they no longer fit, and returns z.
func (z *Complex) SetPrec(prec uint) *Complex {
	z.re.SetPrec(prec)
	z.im.SetPrec(prec)
	return z
}

// Set sets z to x and returns z. If z has precision 0 both parts adopt
// the precision of x, so a freshly allocated destination preserves x
// exactly.
func (z *Complex) Set(x *Complex) *Complex {
	z.re.Set(&x.re)
	z.im.Set(&x.im)
	return z
}

// SetInt64 sets z to re+im·i and returns z.
func (z *Complex) SetInt64(re, im int64) *Complex {
	z.re.SetInt64(re)
	z.im.SetInt64(im)
	return z
}

// SetUint64 sets z to re+im·i and returns z.
func (z *Complex) SetUint64(re, im uint64) *Complex {
	z.re.SetUint64(re)
	z.im.SetUint64(im)
	return z
}

// SetFloat64 sets z to re+im·i and returns z.
func (z *Complex) SetFloat64(re, im float64) *Complex {
	z.re.SetFloat64(re)
	z.im.SetFloat64(im)
	return z
}

// SetFloat sets z to the real value x (imaginary part zero) and
// returns z.
func (z *Complex) SetFloat(x *big.Float) *Complex {
	z.re.Set(x)
	z.im.SetInt64(0)
	if p := z.re.Prec(); z.im.Prec() < p {
		z.im.SetPrec(p)
	}
	return z
}

// SetParts sets z to re+im·i and returns z.
func (z *Complex) SetParts(re, im *big.Float) *Complex {
	z.re.Set(re)
	z.im.Set(im)
	return z
}

// Float64s returns both parts rounded to float64. The zone classifiers
// only need machine precision, so this is their entry point.
func (z *Complex) Float64s() (re, im float64) {
	re, _ = z.re.Float64()
	im, _ = z.im.Float64()
	return re, im
}

// IsZero reports whether both parts are exactly zero.
func (z *Complex) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// maxPrec returns the working precision for an operation over the
// given operands, following big.Float: the larger operand precision,
// with 64 as a floor so untyped zero-value operands still compute.
func maxPrec(x, y *Complex) uint {
	p := x.Prec()
	if q := y.Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = 64
	}
	return p
}
