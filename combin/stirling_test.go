package combin_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/combin"
)

// TestStirling_First checks table values of the unsigned first kind.
func TestStirling_First(t *testing.T) {
	st := combin.NewStirling()
	var s big.Int

	assert.EqualValues(t, 1, st.First(&s, 0, 0).Int64(), "s(0,0)")
	assert.EqualValues(t, 0, st.First(&s, 3, 0).Int64(), "s(3,0)")
	assert.EqualValues(t, 0, st.First(&s, 2, 5).Int64(), "s(2,5) above the diagonal")
	assert.EqualValues(t, 1, st.First(&s, 6, 6).Int64(), "s(n,n)")
	assert.EqualValues(t, 11, st.First(&s, 4, 2).Int64(), "s(4,2)")
	assert.EqualValues(t, 35, st.First(&s, 5, 3).Int64(), "s(5,3)")
	assert.EqualValues(t, 274, st.First(&s, 6, 2).Int64(), "s(6,2)")
}

// TestStirling_Second checks table values of the second kind.
func TestStirling_Second(t *testing.T) {
	st := combin.NewStirling()
	var s big.Int

	assert.EqualValues(t, 1, st.Second(&s, 0, 0).Int64(), "S(0,0)")
	assert.EqualValues(t, 0, st.Second(&s, 4, 0).Int64(), "S(4,0)")
	assert.EqualValues(t, 7, st.Second(&s, 4, 2).Int64(), "S(4,2)")
	assert.EqualValues(t, 25, st.Second(&s, 5, 3).Int64(), "S(5,3)")
	assert.EqualValues(t, 90, st.Second(&s, 6, 3).Int64(), "S(6,3)")
	assert.EqualValues(t, 1, st.Second(&s, 9, 9).Int64(), "S(n,n)")
}

// TestStirling_RowSumIdentity uses Σ_k s(n,k) = n! as a cross-check
// over whole cached rows.
func TestStirling_RowSumIdentity(t *testing.T) {
	st := combin.NewStirling()

	var sum, term, fact big.Int
	for n := 1; n <= 10; n++ {
		sum.SetInt64(0)
		for k := 0; k <= n; k++ {
			sum.Add(&sum, st.First(&term, n, k))
		}
		combin.Factorial(&fact, uint64(n))
		require.Zero(t, sum.Cmp(&fact), "Σ_k s(%d,k) must equal %d!", n, n)
	}
}

// TestStirling_BinSum checks the alternating binomial sum against a
// hand-expanded small case.
func TestStirling_BinSum(t *testing.T) {
	st := combin.NewStirling()
	var s big.Int

	assert.EqualValues(t, 1, st.BinSum(&s, 0, 0).Int64(), "empty case")

	// n=3, m=1: -C(1,1)s(3,1) + C(2,1)s(3,2) - C(3,1)s(3,3)
	//         = -2 + 6 - 3 = 1
	assert.EqualValues(t, 1, st.BinSum(&s, 3, 1).Int64(), "n=3, m=1")

	got := st.BinSum(&s, 5, 2).Int64()
	st.BinSum(&s, 5, 2)
	assert.EqualValues(t, got, s.Int64(), "memoized value must not drift")
}

// TestBernoulli_Value checks the classic table of Bernoulli numbers.
func TestBernoulli_Value(t *testing.T) {
	bern := combin.NewBernoulli()
	var b big.Rat

	assert.Zero(t, bern.Value(&b, 0).Cmp(big.NewRat(1, 1)), "B(0)")
	assert.Zero(t, bern.Value(&b, 1).Cmp(big.NewRat(-1, 2)), "B(1)")
	assert.Zero(t, bern.Value(&b, 2).Cmp(big.NewRat(1, 6)), "B(2)")
	assert.Zero(t, bern.Value(&b, 3).Cmp(new(big.Rat)), "B(3) vanishes")
	assert.Zero(t, bern.Value(&b, 4).Cmp(big.NewRat(-1, 30)), "B(4)")
	assert.Zero(t, bern.Value(&b, 8).Cmp(big.NewRat(-1, 30)), "B(8)")
	assert.Zero(t, bern.Value(&b, 12).Cmp(big.NewRat(-691, 2730)), "B(12)")
	assert.Zero(t, bern.Value(&b, -4).Cmp(new(big.Rat)), "negative index yields 0")
}

// TestBernoulli_MemoConsistency recomputes a high index twice; the
// second call must serve the identical rational from the memo.
func TestBernoulli_MemoConsistency(t *testing.T) {
	bern := combin.NewBernoulli()

	var a, b big.Rat
	bern.Value(&a, 30)
	bern.Value(&b, 30)

	require.Zero(t, a.Cmp(&b), "memoized B(30) must be identical")
	assert.Equal(t, "8615841276005", a.Num().String(), "B(30) numerator")
	assert.Equal(t, "14322", a.Denom().String(), "B(30) denominator")
}
