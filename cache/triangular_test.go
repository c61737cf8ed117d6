package cache_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/cache"
)

func newIntTriangle() *cache.Triangular[*big.Int] {
	return cache.NewTriangular(func() *big.Int { return new(big.Int) })
}

// TestTriangular_StoreFetchRoundTrip verifies basic occupancy semantics
// on a filled Pascal-style triangle.
func TestTriangular_StoreFetchRoundTrip(t *testing.T) {
	c := newIntTriangle()

	for n := 0; n <= 6; n++ {
		for k := 0; k <= n; k++ {
			c.Store(new(big.Int).Binomial(int64(n), int64(k)), n, k, 1)
		}
	}

	for n := 0; n <= 6; n++ {
		for k := 0; k <= n; k++ {
			require.Positive(t, c.CheckPrecision(n, k), "(%d,%d) must be occupied", n, k)
			got := new(big.Int)
			require.True(t, c.Fetch(got, n, k))
			assert.Zero(t, got.Cmp(new(big.Int).Binomial(int64(n), int64(k))),
				"(%d,%d) must round-trip", n, k)
		}
	}
}

// TestTriangular_OffsetInjective verifies the packing n(n+1)/2+k is
// injective over 0≤k≤n: distinct pairs never collide in storage.
func TestTriangular_OffsetInjective(t *testing.T) {
	c := newIntTriangle()

	// Tag every slot with a unique value, then confirm none overwrote another.
	val := func(n, k int) *big.Int { return big.NewInt(int64(1000*n + k)) }
	const rows = 20
	for n := 0; n < rows; n++ {
		for k := 0; k <= n; k++ {
			c.Store(val(n, k), n, k, 1)
		}
	}
	for n := 0; n < rows; n++ {
		for k := 0; k <= n; k++ {
			got := new(big.Int)
			require.True(t, c.Fetch(got, n, k))
			assert.Zero(t, got.Cmp(val(n, k)), "(%d,%d) collided with another pair", n, k)
		}
	}
}

// TestTriangular_RowGrowthKeepsLowerRows verifies that growing to a far
// row carries every populated lower-row slot forward.
func TestTriangular_RowGrowthKeepsLowerRows(t *testing.T) {
	c := newIntTriangle()

	c.Store(big.NewInt(11), 2, 1, 1)
	c.Store(big.NewInt(42), 40, 13, 1)

	got := new(big.Int)
	require.True(t, c.Fetch(got, 2, 1), "low row must survive growth")
	assert.EqualValues(t, 11, got.Int64())
	require.True(t, c.Fetch(got, 40, 13))
	assert.EqualValues(t, 42, got.Int64())
}

// TestTriangular_InvalidPairsRejected verifies that k>n and negative
// indices are clean misses.
func TestTriangular_InvalidPairsRejected(t *testing.T) {
	c := newIntTriangle()

	c.Store(big.NewInt(1), 2, 3, 1) // k>n: dropped
	assert.Zero(t, c.CheckPrecision(2, 3))
	assert.Zero(t, c.CheckPrecision(-1, 0))
	assert.False(t, c.Fetch(new(big.Int), 3, 4))
}

// TestTriangular_PrecisionTagSemantics verifies precision-tagged hits on
// the float instantiation: a request above the stored precision misses.
func TestTriangular_PrecisionTagSemantics(t *testing.T) {
	c := cache.NewTriangular(func() *big.Float { return new(big.Float) })

	c.Store(big.NewFloat(0.5), 5, 2, 30)
	have := c.CheckPrecision(5, 2)
	assert.Equal(t, 30, have)
	assert.Less(t, have, 60, "a 60-digit request must treat a 30-digit entry as a miss")

	c.Store(big.NewFloat(0.5), 5, 2, 60)
	assert.Equal(t, 60, c.CheckPrecision(5, 2), "re-store must raise the tag")
}

// TestTriangular_ClearAndDisabled verifies Clear semantics and the
// disabled variant.
func TestTriangular_ClearAndDisabled(t *testing.T) {
	c := newIntTriangle()
	c.Store(big.NewInt(9), 4, 4, 1)
	c.Clear()
	assert.Zero(t, c.CheckPrecision(4, 4), "Clear must reset tags")

	d := cache.NewDisabledTriangular[*big.Int]()
	d.Store(big.NewInt(9), 1, 1, 1)
	assert.Zero(t, d.CheckPrecision(1, 1), "disabled triangle must always miss")
	assert.False(t, d.Fetch(new(big.Int), 1, 1))
}
