package cplx

import "math/big"

// bitsPerDigit is log₂(10) rounded up a hair, so a request for p
// decimal digits never maps to too few binary digits.
const bitsPerDigit = 3.322

// guardBits pads every working precision so rounding noise from long
// series stays below the requested digit count.
const guardBits = 50

// Bits converts a decimal-digit precision request into the binary
// working precision the evaluation engines run at.
func Bits(prec int) uint {
	if prec < 1 {
		prec = 1
	}
	return uint(bitsPerDigit*float64(prec)) + guardBits
}

// DigitBits returns the number of significant bits carried by prec
// decimal digits, with no working margin. The single-slot memo caches
// compare their keys at this width.
func DigitBits(prec int) uint {
	if prec < 1 {
		prec = 1
	}
	return uint(bitsPerDigit * float64(prec))
}

// Epsilon returns 10^-prec rounded down to an exact power of two.
// Series loops stop when their running term drops below this floor.
func Epsilon(prec int) *big.Float {
	if prec < 1 {
		prec = 1
	}
	shift := int(3.321928095*float64(prec)) + 1
	return new(big.Float).SetMantExp(big.NewFloat(1), -shift)
}

// FloatEqBits reports whether a and b agree in their leading bits
// significant bits. A zero matches only another zero, since there is
// no leading bit to anchor the comparison against.
func FloatEqBits(a, b *big.Float, bits uint) bool {
	as, bs := a.Sign(), b.Sign()
	if as == 0 || bs == 0 {
		return as == bs
	}
	p := a.Prec()
	if q := b.Prec(); q > p {
		p = q
	}
	var diff big.Float
	diff.SetPrec(p+32).Sub(a, b)
	if diff.Sign() == 0 {
		return true
	}
	return diff.MantExp(nil) <= a.MantExp(nil)-int(bits)
}

// EqBits reports whether x and y agree part by part in their leading
// bits significant bits.
func (x *Complex) EqBits(y *Complex, bits uint) bool {
	return FloatEqBits(&x.re, &y.re, bits) && FloatEqBits(&x.im, &y.im, bits)
}
