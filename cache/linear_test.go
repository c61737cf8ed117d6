package cache_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetafn/cache"
)

func newFloatCache() *cache.Linear[*big.Float] {
	return cache.NewLinear(func() *big.Float { return new(big.Float) })
}

// TestLinear_StoreThenCheckAndFetch verifies that CheckPrecision reports
// exactly the last-stored precision and Fetch returns exactly the
// last-stored value.
func TestLinear_StoreThenCheckAndFetch(t *testing.T) {
	c := newFloatCache()
	v := big.NewFloat(3.25)

	c.Store(v, 7, 40)
	assert.Equal(t, 40, c.CheckPrecision(7), "check must report the stored precision")

	got := new(big.Float)
	require.True(t, c.Fetch(got, 7), "fetch after positive check must succeed")
	assert.Zero(t, got.Cmp(v), "fetched value must equal the stored value")
}

// TestLinear_EmptySlotMisses verifies that untouched indices report
// precision 0 and refuse to fetch.
func TestLinear_EmptySlotMisses(t *testing.T) {
	c := newFloatCache()

	assert.Zero(t, c.CheckPrecision(12), "empty slot must report precision 0")
	assert.False(t, c.Fetch(new(big.Float), 12), "empty slot must not fetch")
	assert.False(t, c.Fetch(new(big.Float), 500), "index beyond storage must not fetch")
}

// TestLinear_RestoreOverwrites verifies that a second store at the same
// index replaces both value and precision, so a higher-precision request
// never sees the stale entry.
func TestLinear_RestoreOverwrites(t *testing.T) {
	c := newFloatCache()

	c.Store(big.NewFloat(1.5), 3, 20)
	c.Store(big.NewFloat(2.5), 3, 60)

	assert.Equal(t, 60, c.CheckPrecision(3), "precision tag must follow the last store")
	got := new(big.Float)
	require.True(t, c.Fetch(got, 3))
	assert.Zero(t, got.Cmp(big.NewFloat(2.5)), "value must follow the last store")
}

// TestLinear_StoredCopyIsPrivate verifies that mutating the caller's
// value after Store does not alter the cached copy.
func TestLinear_StoredCopyIsPrivate(t *testing.T) {
	c := newFloatCache()
	v := big.NewFloat(8)

	c.Store(v, 0, 10)
	v.SetFloat64(-1)

	got := new(big.Float)
	require.True(t, c.Fetch(got, 0))
	assert.Zero(t, got.Cmp(big.NewFloat(8)), "cached copy must be unaffected by caller mutation")
}

// TestLinear_StorePreservesFullPrecision verifies that a value computed
// at high working precision survives the store/fetch round trip bit for
// bit, even after the slot previously held a low-precision value.
func TestLinear_StorePreservesFullPrecision(t *testing.T) {
	c := newFloatCache()

	low := new(big.Float).SetPrec(24).SetFloat64(1.0 / 3.0)
	c.Store(low, 4, 5)

	high := new(big.Float).SetPrec(400)
	high.Quo(big.NewFloat(1).SetPrec(400), big.NewFloat(3).SetPrec(400))
	c.Store(high, 4, 100)

	got := new(big.Float)
	require.True(t, c.Fetch(got, 4))
	assert.Equal(t, uint(400), got.Prec(), "fetched copy must carry the full stored precision")
	assert.Zero(t, got.Cmp(high), "no digits may be lost through the slot")
}

// TestLinear_GrowthCarriesSlotsForward verifies monotone growth: a store
// far beyond current capacity must not disturb existing entries.
func TestLinear_GrowthCarriesSlotsForward(t *testing.T) {
	c := newFloatCache()

	for i := 0; i < 8; i++ {
		c.Store(big.NewFloat(float64(i)), i, 30)
	}
	c.Store(big.NewFloat(999), 1000, 30)

	for i := 0; i < 8; i++ {
		got := new(big.Float)
		require.True(t, c.Fetch(got, i), "slot %d must survive growth", i)
		assert.Zero(t, got.Cmp(big.NewFloat(float64(i))), "slot %d value must survive growth", i)
	}
}

// TestLinear_CheckGrowsCapacity verifies the documented side effect:
// after CheckPrecision(n), fetching any index ≤ n is at worst a clean
// miss, never an out-of-range condition.
func TestLinear_CheckGrowsCapacity(t *testing.T) {
	c := newFloatCache()

	assert.Zero(t, c.CheckPrecision(64))
	c.Store(big.NewFloat(1), 64, 10)
	assert.Equal(t, 10, c.CheckPrecision(64))
}

// TestLinear_ClearResetsTagsOnly verifies that Clear empties every slot
// logically while allowing immediate re-population.
func TestLinear_ClearResetsTagsOnly(t *testing.T) {
	c := newFloatCache()

	for i := 0; i < 5; i++ {
		c.Store(big.NewFloat(float64(i)), i, 25)
	}
	c.Clear()

	for i := 0; i < 5; i++ {
		assert.Zero(t, c.CheckPrecision(i), "slot %d must miss after Clear", i)
		assert.False(t, c.Fetch(new(big.Float), i), "slot %d must not fetch after Clear", i)
	}

	c.Store(big.NewFloat(7), 2, 15)
	assert.Equal(t, 15, c.CheckPrecision(2), "store after Clear must work as usual")
}

// TestDisabledLinear verifies the permanently disabled variant: checks
// miss, stores are dropped, fetches fail.
func TestDisabledLinear(t *testing.T) {
	c := cache.NewDisabledLinear[*big.Float]()

	c.Store(big.NewFloat(3), 1, 50)
	assert.Zero(t, c.CheckPrecision(1), "disabled cache must always miss")
	assert.False(t, c.Fetch(new(big.Float), 1), "disabled cache must never fetch")
	c.Clear()
}

// TestLinear_ConcurrentAccess hammers one cache from several goroutines
// to exercise the per-instance lock under growth.
func TestLinear_ConcurrentAccess(t *testing.T) {
	c := newFloatCache()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx := (g*37 + i) % 256
				if c.CheckPrecision(idx) < 10 {
					c.Store(big.NewFloat(float64(idx)), idx, 10)
				}
				got := new(big.Float)
				if c.Fetch(got, idx) {
					if got.Cmp(big.NewFloat(float64(idx))) != 0 {
						t.Errorf("slot %d corrupted", idx)
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
}
