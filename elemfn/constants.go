package elemfn

import (
	"math"
	"math/big"
	"sync"

	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
)

// realConst is the slot every classical constant sits behind: one
// cached value tagged with the decimal precision it was computed to.
// A request at or below the tag is served as a copy; a wider request
// recomputes under the lock and ratchets the tag. The tag only ever
// grows, so a narrow request after a wide one still gets the wide
// value.
type realConst struct {
	mu      sync.Mutex
	val     big.Float
	prec    int
	compute func(dst *big.Float, prec int)
}

// value copies the constant into dst at no fewer than prec decimal
// digits and returns dst.
func (c *realConst) value(dst *big.Float, prec int) *big.Float {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.prec < prec {
		c.val.SetPrec(cplx.Bits(prec))
		c.compute(&c.val, prec)
		c.prec = prec
	}
	return dst.Set(&c.val)
}

var (
	piConst            = &realConst{compute: computePi}
	twoPiConst         = &realConst{compute: computeTwoPi}
	piHalfConst        = &realConst{compute: computePiHalf}
	twoOverPiConst     = &realConst{compute: computeTwoOverPi}
	sqrtTwoPiConst     = &realConst{compute: computeSqrtTwoPi}
	logTwoPiConst      = &realConst{compute: computeLogTwoPi}
	log2Const          = &realConst{compute: computeLog2}
	eConst             = &realConst{compute: computeE}
	ePiConst           = &realConst{compute: computeEPi}
	eulerGammaConst    = &realConst{compute: computeEulerGamma}
	halfSqrtThreeConst = &realConst{compute: computeHalfSqrtThree}
)

// Pi sets dst = π to at least prec decimal digits and returns dst.
func Pi(dst *big.Float, prec int) *big.Float { return piConst.value(dst, prec) }

// TwoPi sets dst = 2π to at least prec decimal digits and returns dst.
func TwoPi(dst *big.Float, prec int) *big.Float { return twoPiConst.value(dst, prec) }

// PiHalf sets dst = π/2 to at least prec decimal digits and returns
// dst.
func PiHalf(dst *big.Float, prec int) *big.Float { return piHalfConst.value(dst, prec) }

// TwoOverPi sets dst = 2/π to at least prec decimal digits and returns
// dst.
func TwoOverPi(dst *big.Float, prec int) *big.Float { return twoOverPiConst.value(dst, prec) }

// SqrtTwoPi sets dst = √(2π) to at least prec decimal digits and
// returns dst.
func SqrtTwoPi(dst *big.Float, prec int) *big.Float { return sqrtTwoPiConst.value(dst, prec) }

// LogTwoPi sets dst = log(2π) to at least prec decimal digits and
// returns dst.
func LogTwoPi(dst *big.Float, prec int) *big.Float { return logTwoPiConst.value(dst, prec) }

// Log2 sets dst = log(2) to at least prec decimal digits and returns
// dst.
func Log2(dst *big.Float, prec int) *big.Float { return log2Const.value(dst, prec) }

// E sets dst = e to at least prec decimal digits and returns dst.
func E(dst *big.Float, prec int) *big.Float { return eConst.value(dst, prec) }

// EPi sets dst = e^π to at least prec decimal digits and returns dst.
func EPi(dst *big.Float, prec int) *big.Float { return ePiConst.value(dst, prec) }

// EulerGamma sets dst to the Euler-Mascheroni constant γ to at least
// prec decimal digits and returns dst.
func EulerGamma(dst *big.Float, prec int) *big.Float { return eulerGammaConst.value(dst, prec) }

// HalfSqrtThree sets dst = √3/2 to at least prec decimal digits and
// returns dst.
func HalfSqrtThree(dst *big.Float, prec int) *big.Float { return halfSqrtThreeConst.value(dst, prec) }

// computePi uses Machin's formula π = 4·(4·atan(1/5) - atan(1/239)).
// Both arctangents go straight to the series; the ratios are far below
// the half-angle threshold.
func computePi(dst *big.Float, prec int) {
	bits := cplx.Bits(prec)
	one := new(big.Float).SetPrec(bits).SetInt64(1)

	a := new(big.Float).SetPrec(bits).SetInt64(5)
	a.Quo(one, a)
	atanSeries(a, a, prec)

	b := new(big.Float).SetPrec(bits).SetInt64(239)
	b.Quo(one, b)
	atanSeries(b, b, prec)

	four := new(big.Float).SetPrec(bits).SetInt64(4)
	a.Mul(a, four)
	a.Sub(a, b)
	dst.Mul(a, four)
}

func computeTwoPi(dst *big.Float, prec int) {
	Pi(dst, prec)
	dst.Add(dst, dst)
}

func computePiHalf(dst *big.Float, prec int) {
	Pi(dst, prec)
	dst.Mul(dst, big.NewFloat(0.5))
}

func computeTwoOverPi(dst *big.Float, prec int) {
	Pi(dst, prec)
	dst.Quo(big.NewFloat(2), dst)
}

func computeSqrtTwoPi(dst *big.Float, prec int) {
	TwoPi(dst, prec)
	dst.Sqrt(dst)
}

func computeLogTwoPi(dst *big.Float, prec int) {
	TwoPi(dst, prec)
	Log(dst, dst, prec)
}

// computeLog2 sums the defining series directly: log 2 = -log(1-1/2).
// Going through Log here would recurse, since Log splits off powers of
// two against this very constant.
func computeLog2(dst *big.Float, prec int) {
	logM1Series(dst, big.NewFloat(0.5), prec)
}

func computeE(dst *big.Float, prec int) {
	expTaylor(dst, big.NewFloat(1), prec)
}

func computeEPi(dst *big.Float, prec int) {
	Pi(dst, prec)
	Exp(dst, dst, prec)
}

// computeEulerGamma runs the exponential limit
//
//	γ = lim e^{-x} Σ_{k≥1} x^k·H(k)/k! - log x,  x = 2^n,
//
// with 2^n sized so the e^{-x} tail sits below the requested digits.
// The partial sums swell to order e^x before the division collapses
// them, so the whole computation runs at a precision widened by the
// digits e^x occupies.
func computeEulerGamma(dst *big.Float, prec int) {
	n := int(math.Log2(3.322*float64(prec))) + 1
	limit := uint64(1) << uint(n)
	work := prec + int(0.4343*float64(limit)) + 4
	bits := cplx.Bits(work)

	xf := new(big.Float).SetPrec(bits).SetUint64(limit)
	zn := new(big.Float).SetPrec(bits).Mul(xf, xf)
	fact := new(big.Float).SetPrec(bits).SetFloat64(0.5)
	gam := new(big.Float).SetPrec(bits).Set(xf)
	hk := new(big.Float).SetPrec(bits)
	term := new(big.Float).SetPrec(bits)
	kf := new(big.Float).SetPrec(bits)
	one := big.NewFloat(1)

	harm := combin.NewHarmonics()
	for k := uint64(2); ; k++ {
		harm.Value(hk, k, work)
		term.Mul(zn, hk)
		term.Mul(term, fact)
		gam.Add(gam, term)
		// Terms below 1 are already dwarfed by the e^x division ahead.
		if term.Cmp(one) < 0 {
			break
		}
		zn.Mul(zn, xf)
		kf.SetUint64(k + 1)
		fact.Quo(fact, kf)
	}

	ex := new(big.Float).SetPrec(bits).SetUint64(limit)
	Exp(ex, ex, work)
	gam.Quo(gam, ex)

	l2 := Log2(new(big.Float).SetPrec(bits), work)
	kf.SetInt64(int64(n))
	l2.Mul(l2, kf)
	dst.Sub(gam, l2)
}

func computeHalfSqrtThree(dst *big.Float, prec int) {
	dst.SetInt64(3)
	dst.Sqrt(dst)
	dst.Mul(dst, big.NewFloat(0.5))
}
