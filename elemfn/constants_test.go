package elemfn_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// fromDec parses a decimal literal at the working precision of prec
// digits. The literals below carry more digits than any comparison
// consumes.
func fromDec(t *testing.T, s string, prec int) *big.Float {
	t.Helper()
	f, _, err := big.ParseFloat(s, 10, cplx.Bits(prec), big.ToNearestEven)
	require.NoError(t, err)
	return f
}

// TestPi_KnownDigits checks π against its published expansion.
func TestPi_KnownDigits(t *testing.T) {
	var pi big.Float
	elemfn.Pi(&pi, 50)

	want := fromDec(t, "3.14159265358979323846264338327950288419716939937510", 50)
	assert.True(t, cplx.FloatEqBits(&pi, want, cplx.DigitBits(45)), "π to 45 digits")
}

// TestEulerGamma_KnownDigits checks γ against its published expansion.
func TestEulerGamma_KnownDigits(t *testing.T) {
	var g big.Float
	elemfn.EulerGamma(&g, 50)

	want := fromDec(t, "0.57721566490153286060651209008240243104215933593992", 50)
	assert.True(t, cplx.FloatEqBits(&g, want, cplx.DigitBits(45)), "γ to 45 digits")
}

// TestLog2_KnownDigits checks log 2 against its published expansion.
func TestLog2_KnownDigits(t *testing.T) {
	var l2 big.Float
	elemfn.Log2(&l2, 50)

	want := fromDec(t, "0.693147180559945309417232121458176568075500134360255254", 50)
	assert.True(t, cplx.FloatEqBits(&l2, want, cplx.DigitBits(45)), "log 2 to 45 digits")
}

// TestE_KnownDigits checks e against its published expansion.
func TestE_KnownDigits(t *testing.T) {
	var e big.Float
	elemfn.E(&e, 50)

	want := fromDec(t, "2.718281828459045235360287471352662497757247093699959574966967", 50)
	assert.True(t, cplx.FloatEqBits(&e, want, cplx.DigitBits(45)), "e to 45 digits")
}

// TestEPi_KnownDigits checks e^π against its published expansion.
func TestEPi_KnownDigits(t *testing.T) {
	var ep big.Float
	elemfn.EPi(&ep, 50)

	want := fromDec(t, "23.140692632779269005729086367948547380266106242600211993445", 50)
	assert.True(t, cplx.FloatEqBits(&ep, want, cplx.DigitBits(45)), "e^π to 45 digits")
}

// TestHalfSqrtThree_KnownDigits checks √3/2 against its published
// expansion.
func TestHalfSqrtThree_KnownDigits(t *testing.T) {
	var h big.Float
	elemfn.HalfSqrtThree(&h, 50)

	want := fromDec(t, "0.866025403784438646763723170752936183471402626905190314027", 50)
	assert.True(t, cplx.FloatEqBits(&h, want, cplx.DigitBits(45)), "√3/2 to 45 digits")
}

// TestDerivedConstants_Identities ties every derived constant back to
// π, so a drift in any one of them shows up as a broken relation.
func TestDerivedConstants_Identities(t *testing.T) {
	const prec = 40
	bits := cplx.Bits(prec)

	var pi, tp, ph, top, stp, ltp big.Float
	elemfn.Pi(&pi, prec)
	elemfn.TwoPi(&tp, prec)
	elemfn.PiHalf(&ph, prec)
	elemfn.TwoOverPi(&top, prec)
	elemfn.SqrtTwoPi(&stp, prec)
	elemfn.LogTwoPi(&ltp, prec)

	chk := new(big.Float).SetPrec(bits).Add(&pi, &pi)
	assert.True(t, cplx.FloatEqBits(chk, &tp, cplx.DigitBits(prec-1)), "2·π = 2π")

	chk.Add(&ph, &ph)
	assert.True(t, cplx.FloatEqBits(chk, &pi, cplx.DigitBits(prec-1)), "2·(π/2) = π")

	chk.Mul(&top, &ph)
	assert.True(t, cplx.FloatEqBits(chk, big.NewFloat(1), cplx.DigitBits(prec-1)), "(2/π)·(π/2) = 1")

	chk.Mul(&stp, &stp)
	assert.True(t, cplx.FloatEqBits(chk, &tp, cplx.DigitBits(prec-2)), "√(2π)² = 2π")

	elemfn.Log(chk, &tp, prec)
	assert.True(t, cplx.FloatEqBits(chk, &ltp, cplx.DigitBits(prec-1)), "log(2π)")
}

// TestConstants_PrecisionRatchet widens a constant and then asks
// narrow again; the memo must serve the widened value both times.
func TestConstants_PrecisionRatchet(t *testing.T) {
	var lo, hi, lo2 big.Float
	elemfn.EulerGamma(&lo, 15)
	elemfn.EulerGamma(&hi, 60)
	elemfn.EulerGamma(&lo2, 15)

	assert.True(t, cplx.FloatEqBits(&lo, &hi, cplx.DigitBits(14)), "narrow and wide copies share digits")
	assert.Zero(t, hi.Cmp(&lo2), "a narrow request after the ratchet serves the wide value")
}
