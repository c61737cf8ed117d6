package combin_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
)

// TestBinomial_KnownValues checks a handful of table values and the
// out-of-range convention.
func TestBinomial_KnownValues(t *testing.T) {
	var b big.Int

	assert.EqualValues(t, 120, combin.Binomial(&b, 10, 3).Int64(), "C(10,3)")
	assert.EqualValues(t, 1, combin.Binomial(&b, 7, 0).Int64(), "C(7,0)")
	assert.EqualValues(t, 1, combin.Binomial(&b, 7, 7).Int64(), "C(7,7)")
	assert.EqualValues(t, 0, combin.Binomial(&b, 5, 7).Int64(), "k>n must yield 0")
	assert.EqualValues(t, 0, combin.Binomial(&b, 5, -1).Int64(), "negative k must yield 0")

	var sym big.Int
	combin.Binomial(&b, 20, 9)
	combin.Binomial(&sym, 20, 11)
	assert.Zero(t, b.Cmp(&sym), "C(20,9) must equal C(20,11)")
}

// TestBinomialSequence_SequentialWalk sweeps Pascal's triangle in its
// natural order and compares every entry to a direct computation.
func TestBinomialSequence_SequentialWalk(t *testing.T) {
	seq := combin.NewBinomialSequence()

	var got, want big.Int
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n; k++ {
			seq.Next(&got, n, k)
			combin.Binomial(&want, int64(n), int64(k))
			require.Zero(t, got.Cmp(&want), "C(%d,%d) during sequential walk", n, k)
		}
	}
}

// TestBinomialSequence_GapReplay jumps several rows ahead; the walker
// must replay the skipped region and land on the right value.
func TestBinomialSequence_GapReplay(t *testing.T) {
	seq := combin.NewBinomialSequence()

	var got big.Int
	for n := 0; n <= 4; n++ {
		for k := 0; k <= n; k++ {
			seq.Next(&got, n, k)
		}
	}

	seq.Next(&got, 9, 4)
	assert.EqualValues(t, 126, got.Int64(), "C(9,4) after a multi-row gap")

	seq.Next(&got, 9, 5)
	assert.EqualValues(t, 126, got.Int64(), "C(9,5) resuming sequentially")
}

// TestBinomialSequence_RandomFallback asks for an entry behind the
// walker's position, which cannot be served from the row caches.
func TestBinomialSequence_RandomFallback(t *testing.T) {
	seq := combin.NewBinomialSequence()

	var got big.Int
	for n := 0; n <= 6; n++ {
		for k := 0; k <= n; k++ {
			seq.Next(&got, n, k)
		}
	}

	seq.Next(&got, 4, 2)
	assert.EqualValues(t, 6, got.Int64(), "C(4,2) via the random-access fallback")
}

// TestBinomialFloat covers real-argument binomials, including a
// negative upper argument.
func TestBinomialFloat(t *testing.T) {
	var b big.Float

	s := new(big.Float).SetPrec(128).SetInt64(5)
	f, _ := combin.BinomialFloat(&b, s, 2).Float64()
	assert.Equal(t, 10.0, f, "C(5,2)")

	s.SetInt64(-1)
	f, _ = combin.BinomialFloat(&b, s, 3).Float64()
	assert.Equal(t, -1.0, f, "C(-1,3) = (-1)(-2)(-3)/3!")

	f, _ = combin.BinomialFloat(&b, s, 0).Float64()
	assert.Equal(t, 1.0, f, "C(s,0) is always 1")
}

// TestBinomialComplex checks C(i,2) = i(i-1)/2 = -1/2 - i/2, exact in
// binary.
func TestBinomialComplex(t *testing.T) {
	s := cplx.New(128).SetInt64(0, 1)

	var b cplx.Complex
	re, im := combin.BinomialComplex(&b, s, 2).Float64s()
	assert.Equal(t, -0.5, re, "C(i,2) real part")
	assert.Equal(t, -0.5, im, "C(i,2) imaginary part")

	re, im = combin.BinomialComplex(&b, s, 0).Float64s()
	assert.Equal(t, 1.0, re, "C(s,0) real part")
	assert.Equal(t, 0.0, im, "C(s,0) imaginary part")
}

// TestShiftedBinomials_MemoAndFlush verifies the k-keyed memo and its
// flush when the fixed argument changes.
func TestShiftedBinomials_MemoAndFlush(t *testing.T) {
	sb := combin.NewShiftedBinomials()

	s := cplx.New(200).SetInt64(1, 0)
	var b cplx.Complex

	re, _ := sb.Value(&b, s, 2, 30).Float64s()
	require.Equal(t, 3.0, re, "C(1+2,2)")

	re, _ = sb.Value(&b, s, 2, 30).Float64s()
	assert.Equal(t, 3.0, re, "memoized value must not drift")

	s.SetInt64(2, 0)
	re, _ = sb.Value(&b, s, 2, 30).Float64s()
	assert.Equal(t, 6.0, re, "C(2+2,2) after the key flush")
}
