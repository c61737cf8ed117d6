package polylog_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
	"github.com/katalvlaran/zetafn/polylog"
	"github.com/katalvlaran/zetafn/zeta"
)

// TestEngine_HurwitzZeta_ReducesToZeta checks ζ(s, 1) = ζ(s) against
// the Riemann engine for several integer orders, and the continuation
// value ζ(0, 1) = −1/2.
func TestEngine_HurwitzZeta_ReducesToZeta(t *testing.T) {
	const prec = 35
	ze := zeta.New()
	eng := polylog.New(polylog.WithZeta(ze))
	bits := cplx.Bits(prec)

	one := big.NewFloat(1)
	s := cplx.New(bits)
	got := cplx.New(bits)
	want := new(big.Float).SetPrec(bits)
	for _, n := range []int{3, 5, 7} {
		require.NoError(t, eng.HurwitzZeta(got, s.SetInt64(int64(n), 0), one, prec))
		require.NoError(t, ze.Borwein(want, n, prec))
		assert.True(t, cplx.FloatEqBits(got.Re(), want, cplx.DigitBits(prec-3)), "ζ(%d)", n)
		im := new(big.Float).Abs(got.Im())
		assert.True(t, im.Cmp(cplx.Epsilon(prec-3)) < 0, "Im ζ(%d) vanishes", n)
	}

	require.NoError(t, eng.HurwitzZeta(got, s.SetInt64(0, 0), one, prec))
	assert.True(t, cplx.FloatEqBits(got.Re(), big.NewFloat(-0.5), cplx.DigitBits(prec-2)),
		"ζ(0) = −1/2")
}

// TestEngine_HurwitzZeta_Multiplication checks the duplication case of
// the multiplication theorem, ζ(s, q/2) + ζ(s, (q+1)/2) = 2^s·ζ(s, q),
// at a non-integer order that runs the periodic-zeta reflection.
func TestEngine_HurwitzZeta_Multiplication(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0)
	q := new(big.Float).SetPrec(bits).SetFloat64(0.6)
	two := big.NewFloat(2)
	qh := new(big.Float).SetPrec(bits).Quo(q, two)
	qh1 := new(big.Float).SetPrec(bits).Add(q, big.NewFloat(1))
	qh1.Quo(qh1, two)

	lhs := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(lhs, s, qh, prec))
	part := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(part, s, qh1, prec))
	lhs.Add(lhs, part)

	rhs := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(rhs, s, q, prec))
	ts := elemfn.UintPow(cplx.New(bits), 2, s, prec)
	rhs.Mul(rhs, ts)

	// Real order, real offsets: the imaginary parts are reflection
	// round-off on both sides, so only the real parts carry digits.
	assert.True(t, cplx.FloatEqBits(lhs.Re(), rhs.Re(), cplx.DigitBits(prec-3)),
		"multiplication theorem")
	im := new(big.Float).Abs(lhs.Im())
	assert.True(t, im.Cmp(cplx.Epsilon(prec-4)) < 0, "Im lhs vanishes")
	im.Abs(rhs.Im())
	assert.True(t, im.Cmp(cplx.Epsilon(prec-4)) < 0, "Im rhs vanishes")
}

// TestEngine_HurwitzZeta_ShiftLadder checks ζ(s, q) − ζ(s, q+1) =
// q^{−s}, the one-step ladder the offset reduction leans on.
func TestEngine_HurwitzZeta_ShiftLadder(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0)
	q := new(big.Float).SetPrec(bits).SetFloat64(0.6)
	qp := new(big.Float).SetPrec(bits).Add(q, big.NewFloat(1))

	a := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(a, s, q, prec))
	b := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(b, s, qp, prec))
	a.Sub(a, b)

	ns := cplx.New(bits).Neg(s)
	want := cplx.New(bits)
	require.NoError(t, elemfn.PowReal(want, q, ns, prec))
	assert.True(t, cplx.FloatEqBits(a.Re(), want.Re(), cplx.DigitBits(prec-3)),
		"ladder step q^{−s}")
	im := new(big.Float).Abs(a.Im())
	assert.True(t, im.Cmp(cplx.Epsilon(prec-4)) < 0, "Im difference vanishes")
}

// TestEngine_HurwitzZeta_IntegerOffset checks ζ(s, 2) = ζ(s) − 1,
// which the reduced endpoint routs through plain Euler–Maclaurin
// instead of the reflection.
func TestEngine_HurwitzZeta_IntegerOffset(t *testing.T) {
	const prec = 30
	ze := zeta.New()
	eng := polylog.New(polylog.WithZeta(ze))
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0)
	got := cplx.New(bits)
	require.NoError(t, eng.HurwitzZeta(got, s, big.NewFloat(2), prec))

	want := cplx.New(bits)
	require.NoError(t, ze.BorweinC(want, s, prec))
	want.SubInt64(want, 1, 0)
	assert.True(t, got.EqBits(want, cplx.DigitBits(prec-3)), "ζ(3/2, 2) = ζ(3/2) − 1")
}

// TestEngine_HurwitzZeta_Guards covers the offset domain and the s = 1
// pole.
func TestEngine_HurwitzZeta_Guards(t *testing.T) {
	const prec = 20
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0)
	got := cplx.New(bits).SetInt64(7, 7)
	assert.ErrorIs(t, eng.HurwitzZeta(got, s, big.NewFloat(0), prec), polylog.ErrDomain)
	assert.True(t, got.IsZero(), "zero sentinel on bad offset")
	assert.ErrorIs(t, eng.HurwitzZeta(got, s, big.NewFloat(-1.5), prec), polylog.ErrDomain)

	assert.ErrorIs(t, eng.HurwitzZeta(got, s.SetInt64(1, 0), big.NewFloat(0.7), prec),
		polylog.ErrDomain)
}

// TestEngine_HurwitzEuler_MatchesTaylor cross-checks the two complex
// offset evaluations, Euler–Maclaurin against the Taylor expansion
// about q = 1, on an offset away from the real axis.
func TestEngine_HurwitzEuler_MatchesTaylor(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0.5)
	q := cplx.New(bits).SetFloat64(0.3, 0.1)

	em := cplx.New(bits)
	require.NoError(t, eng.HurwitzEuler(em, s, q, prec))
	ty := cplx.New(bits)
	require.NoError(t, eng.HurwitzTaylor(ty, s, q, prec))
	assert.True(t, em.EqBits(ty, cplx.DigitBits(prec-4)), "Euler–Maclaurin vs Taylor")
}

// TestEngine_HurwitzEuler_PoleLadder covers the refusals where k+q
// crosses zero.
func TestEngine_HurwitzEuler_PoleLadder(t *testing.T) {
	const prec = 20
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.5, 0.5)
	q := cplx.New(bits)
	got := cplx.New(bits).SetInt64(7, 7)
	assert.ErrorIs(t, eng.HurwitzEuler(got, s, q, prec), polylog.ErrBranchPoint)
	assert.True(t, got.IsZero(), "zero sentinel on the ladder")
	assert.ErrorIs(t, eng.HurwitzEuler(got, s, q.SetInt64(-2, 0), prec), polylog.ErrBranchPoint)
	assert.ErrorIs(t, eng.HurwitzTaylor(got, s, q.SetInt64(0, 0), prec), polylog.ErrBranchPoint)
}

// TestEngine_HurwitzTaylor_OffsetReduction checks ζ(s, q) − ζ(s, q+2)
// = q^{−s} + (q+1)^{−s}: the two entries reduce to the same expansion
// point from opposite sides, so the series cancels and the peeled
// terms carry the identity.
func TestEngine_HurwitzTaylor_OffsetReduction(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(1.25, 0.5)
	qa := cplx.New(bits).SetFloat64(0.3, 0)
	qb := cplx.New(bits).AddInt64(qa, 2, 0)

	ga := cplx.New(bits)
	require.NoError(t, eng.HurwitzTaylor(ga, s, qa, prec))
	gb := cplx.New(bits)
	require.NoError(t, eng.HurwitzTaylor(gb, s, qb, prec))
	ga.Sub(ga, gb)

	ns := cplx.New(bits).Neg(s)
	want := cplx.New(bits)
	require.NoError(t, elemfn.PowReal(want, qa.Re(), ns, prec))
	base := new(big.Float).SetPrec(bits).Add(qa.Re(), big.NewFloat(1))
	part := cplx.New(bits)
	require.NoError(t, elemfn.PowReal(part, base, ns, prec))
	want.Add(want, part)

	assert.True(t, ga.EqBits(want, cplx.DigitBits(prec-3)), "peeled ladder terms")
}

// TestEngine_PeriodicZeta_HalfPoint pins F(s, 1/2) = (2^{1−s} − 1)·ζ(s)
// against the Riemann engine.
func TestEngine_PeriodicZeta_HalfPoint(t *testing.T) {
	const prec = 35
	ze := zeta.New()
	eng := polylog.New(polylog.WithZeta(ze))
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(2.5, 0)
	got := cplx.New(bits)
	require.NoError(t, eng.PeriodicZeta(got, s, big.NewFloat(0.5), prec))

	want := cplx.New(bits)
	require.NoError(t, ze.BorweinC(want, s, prec))
	sm := cplx.New(bits).SetInt64(1, 0)
	sm.Sub(sm, s)
	ts := elemfn.UintPow(cplx.New(bits), 2, sm, prec)
	ts.SubInt64(ts, 1, 0)
	want.Mul(want, ts)

	assert.True(t, cplx.FloatEqBits(got.Re(), want.Re(), cplx.DigitBits(prec-3)), "Re F(s, 1/2)")
	im := new(big.Float).Abs(got.Im())
	assert.True(t, im.Cmp(cplx.Epsilon(prec-3)) < 0, "Im F(s, 1/2) vanishes")
}

// TestEngine_PeriodicZeta_ConjugateBands checks F(s, 1−q) = conj F(s, q)
// for real s, driving the low- and high-band duplication reductions
// against each other.
func TestEngine_PeriodicZeta_ConjugateBands(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(2.5, 0)
	q := big.NewFloat(0.1)
	oq := new(big.Float).SetPrec(bits).Sub(big.NewFloat(1), q)

	low := cplx.New(bits)
	require.NoError(t, eng.PeriodicZeta(low, s, q, prec))
	high := cplx.New(bits)
	require.NoError(t, eng.PeriodicZeta(high, s, oq, prec))
	low.Conj(low)

	assert.True(t, low.EqBits(high, cplx.DigitBits(prec-3)), "conjugate symmetry")
}

// TestEngine_PeriodicZeta_EndpointGuard covers offsets that reduce
// onto the z = 1 branch point.
func TestEngine_PeriodicZeta_EndpointGuard(t *testing.T) {
	const prec = 20
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetFloat64(2.5, 0)
	got := cplx.New(bits).SetInt64(7, 7)
	assert.ErrorIs(t, eng.PeriodicZeta(got, s, big.NewFloat(1), prec), polylog.ErrBranchPoint)
	assert.True(t, got.IsZero(), "zero sentinel at the endpoint")
	assert.ErrorIs(t, eng.PeriodicZeta(got, s, big.NewFloat(1.0e-16), prec), polylog.ErrBranchPoint)
}

// TestEngine_PeriodicBeta_LogSineLine checks the s = 1 line, where
// β(1, q) = −log(2·sin(πq))/π + i·(1/2 − q) on the interior.
func TestEngine_PeriodicBeta_LogSineLine(t *testing.T) {
	const prec = 30
	eng := polylog.New()
	bits := cplx.Bits(prec)

	s := cplx.New(bits).SetInt64(1, 0)
	q := big.NewFloat(0.3)
	got := cplx.New(bits)
	require.NoError(t, eng.PeriodicBeta(got, s, q, prec))

	pi := elemfn.Pi(new(big.Float).SetPrec(bits), prec)
	ang := new(big.Float).SetPrec(bits).Mul(pi, q)
	sn := elemfn.Sin(new(big.Float).SetPrec(bits), ang, prec)
	sn.Mul(sn, big.NewFloat(2))
	wantRe := elemfn.Log(new(big.Float).SetPrec(bits), sn, prec)
	wantRe.Quo(wantRe, pi)
	wantRe.Neg(wantRe)
	wantIm := new(big.Float).SetPrec(bits).SetFloat64(0.5)
	wantIm.Sub(wantIm, q)

	assert.True(t, cplx.FloatEqBits(got.Re(), wantRe, cplx.DigitBits(prec-3)), "Re β(1, q)")
	assert.True(t, cplx.FloatEqBits(got.Im(), wantIm, cplx.DigitBits(prec-3)), "Im β(1, q)")
}
