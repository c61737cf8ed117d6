package cplx

import "math/big"

// Add sets z = x + y and returns z.
func (z *Complex) Add(x, y *Complex) *Complex {
	z.re.Add(&x.re, &y.re)
	z.im.Add(&x.im, &y.im)
	return z
}

// Sub sets z = x - y and returns z.
func (z *Complex) Sub(x, y *Complex) *Complex {
	z.re.Sub(&x.re, &y.re)
	z.im.Sub(&x.im, &y.im)
	return z
}

// Neg sets z = -x and returns z.
func (z *Complex) Neg(x *Complex) *Complex {
	z.re.Neg(&x.re)
	z.im.Neg(&x.im)
	return z
}

// Conj sets z to the complex conjugate of x and returns z.
func (z *Complex) Conj(x *Complex) *Complex {
	z.re.Set(&x.re)
	z.im.Neg(&x.im)
	return z
}

// MulI sets z = x·i and returns z.
func (z *Complex) MulI(x *Complex) *Complex {
	var t big.Float
	t.Set(&x.re)
	z.re.Neg(&x.im)
	z.im.Set(&t)
	return z
}

// Mul sets z = x·y and returns z.
func (z *Complex) Mul(x, y *Complex) *Complex {
	p := maxPrec(x, y)
	var ac, bd, ad, bc big.Float
	ac.SetPrec(p).Mul(&x.re, &y.re)
	bd.SetPrec(p).Mul(&x.im, &y.im)
	ad.SetPrec(p).Mul(&x.re, &y.im)
	bc.SetPrec(p).Mul(&x.im, &y.re)
	z.re.Sub(&ac, &bd)
	z.im.Add(&ad, &bc)
	return z
}

// Recip sets z = 1/x and returns z. x must be nonzero.
func (z *Complex) Recip(x *Complex) *Complex {
	p := maxPrec(x, x)
	var aa, bb, msq big.Float
	aa.SetPrec(p).Mul(&x.re, &x.re)
	bb.SetPrec(p).Mul(&x.im, &x.im)
	msq.SetPrec(p).Add(&aa, &bb)
	aa.Quo(&x.re, &msq)
	bb.Quo(&x.im, &msq)
	z.re.Set(&aa)
	z.im.Neg(&bb)
	return z
}

// Quo sets z = x/y and returns z. y must be nonzero.
func (z *Complex) Quo(x, y *Complex) *Complex {
	var r Complex
	r.Recip(y)
	return z.Mul(x, &r)
}

// AddFloat sets z = x + f for a real f and returns z.
func (z *Complex) AddFloat(x *Complex, f *big.Float) *Complex {
	var t big.Float
	t.Set(f)
	z.re.Add(&x.re, &t)
	z.im.Set(&x.im)
	return z
}

// SubFloat sets z = x - f for a real f and returns z.
func (z *Complex) SubFloat(x *Complex, f *big.Float) *Complex {
	var t big.Float
	t.Set(f)
	z.re.Sub(&x.re, &t)
	z.im.Set(&x.im)
	return z
}

// MulFloat sets z = x·f for a real f and returns z.
func (z *Complex) MulFloat(x *Complex, f *big.Float) *Complex {
	var t big.Float
	t.Set(f)
	z.re.Mul(&x.re, &t)
	z.im.Mul(&x.im, &t)
	return z
}

// QuoFloat sets z = x/f for a real nonzero f and returns z.
func (z *Complex) QuoFloat(x *Complex, f *big.Float) *Complex {
	var t big.Float
	t.Set(f)
	z.re.Quo(&x.re, &t)
	z.im.Quo(&x.im, &t)
	return z
}

// AddInt64 sets z = x + (re+im·i) and returns z.
func (z *Complex) AddInt64(x *Complex, re, im int64) *Complex {
	var t big.Float
	t.SetInt64(re)
	z.re.Add(&x.re, &t)
	t.SetInt64(im)
	z.im.Add(&x.im, &t)
	return z
}

// SubInt64 sets z = x - (re+im·i) and returns z.
func (z *Complex) SubInt64(x *Complex, re, im int64) *Complex {
	var t big.Float
	t.SetInt64(re)
	z.re.Sub(&x.re, &t)
	t.SetInt64(im)
	z.im.Sub(&x.im, &t)
	return z
}

// MulInt64 sets z = x·v for a real integer v and returns z.
func (z *Complex) MulInt64(x *Complex, v int64) *Complex {
	var t big.Float
	t.SetInt64(v)
	z.re.Mul(&x.re, &t)
	z.im.Mul(&x.im, &t)
	return z
}

// QuoInt64 sets z = x/v for a real nonzero integer v and returns z.
func (z *Complex) QuoInt64(x *Complex, v int64) *Complex {
	var t big.Float
	t.SetInt64(v)
	z.re.Quo(&x.re, &t)
	z.im.Quo(&x.im, &t)
	return z
}

// MulExp sets z = x·2ᵏ and returns z. k may be negative; the shift is
// exact, in the manner of math.Ldexp.
func (z *Complex) MulExp(x *Complex, k int) *Complex {
	z.re.SetMantExp(&x.re, k)
	z.im.SetMantExp(&x.im, k)
	return z
}

// ModSq stores |x|² into dst and returns dst. A nil dst allocates a
// fresh big.Float. Here x is the source operand; the destination is
// real-valued, so it cannot be a Complex receiver.
func (x *Complex) ModSq(dst *big.Float) *big.Float {
	if dst == nil {
		dst = new(big.Float)
	}
	p := maxPrec(x, x)
	var aa, bb big.Float
	aa.SetPrec(p).Mul(&x.re, &x.re)
	bb.SetPrec(p).Mul(&x.im, &x.im)
	return dst.Add(&aa, &bb)
}

// Abs stores |x| into dst and returns dst. A nil dst allocates a fresh
// big.Float.
func (x *Complex) Abs(dst *big.Float) *big.Float {
	dst = x.ModSq(dst)
	return dst.Sqrt(dst)
}
