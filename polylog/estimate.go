package polylog

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zetafn/cplx"
)

// zoneMetric returns |z²/(z−1)|², the convergence metric of the
// approximating polynomial. Machine precision is all the dispatch
// tests need, so the metric runs on float64; z = 1 yields +Inf, which
// the comparisons treat as any other out-of-zone value.
func zoneMetric(zre, zim float64) float64 {
	den := 1.0 / ((zre-1.0)*(zre-1.0) + zim*zim)
	sre := zre*zre - zim*zim
	sim := 2.0 * zre * zim
	fre := sre*(zre-1.0) + zim*sim
	fim := sim*(zre-1.0) - zim*sre
	return (fre*fre + fim*fim) * den * den
}

// modSq returns |z|² rounded to float64.
func modSq(z *cplx.Complex) float64 {
	re, im := z.Float64s()
	return re*re + im*im
}

// logAbsGamma returns log |Γ(x+iy)| in float64. On the real axis this
// is math.Lgamma, +Inf at the poles; off the axis the poles are
// avoided and a Stirling form after an upward shift stays finite.
func logAbsGamma(x, y float64) float64 {
	if math.Abs(y) < 1e-14 {
		lg, _ := math.Lgamma(x)
		return lg
	}

	// log Γ(z) = log Γ(z+n) − Σ log(z+k); |y| > 0 keeps every factor
	// off zero.
	z := complex(x, y)
	shift := 0.0
	for real(z) < 2 {
		shift -= 0.5 * math.Log(real(z)*real(z)+imag(z)*imag(z))
		z += 1
	}
	st := (z-0.5)*cmplx.Log(z) - z + complex(0.9189385332046727, 0) // ½·log 2π
	st += 1 / (12 * z)
	return real(st) + shift
}

// termEstimate returns the polynomial order that keeps the evaluation
// error below 10^-prec: the digit goal plus a correction for 1/|Γ(s)|
// and one for the distance to the branch point, divided by the digits
// each term buys in the current zone. A non-positive return means the
// sum cannot converge at this argument and the caller must subdivide.
func termEstimate(s, z *cplx.Complex, prec int) int {
	fterms := 2.302585 * float64(prec)

	sre, sim := s.Float64s()
	sim = math.Abs(sim)
	gamterms := math.Pi * sim
	if sre > 0 {
		gamterms = 0.5 * math.Pi * sim
	}
	gamterms -= logAbsGamma(sre, sim)
	if math.IsNaN(gamterms) || gamterms < -10123 || gamterms > 10123 {
		// Real-axis Γ pole: 1/Γ(s) kills the error term identically
		// and an order of −Re s + 3 is exact.
		return int(-sre + 3.0)
	}
	fterms += gamterms

	zre, zim := z.Float64s()
	if zre > 0 {
		mod := zre*zre + zim*zim
		if mod < 1.0 {
			d := (zre-1.0)*(zre-1.0) + zim*zim
			fterms += -0.5 * math.Log(d)
		} else {
			fterms += 0.5 * math.Log(mod)
			fterms -= math.Log(math.Abs(zim))
		}
	}

	den := zoneMetric(zre, zim)
	fterms /= -0.5*math.Log(den) + 1.386294361 // log 4

	// The correction terms go infinite on the z ≥ 1 branch cut; pin
	// the estimate so the conversion stays defined and the dispatcher
	// sees an unmistakably hopeless order.
	if math.IsNaN(fterms) || fterms > 1e9 {
		return math.MaxInt32
	}
	if fterms < -1e9 {
		return -math.MaxInt32
	}
	return int(fterms + 1.0)
}
