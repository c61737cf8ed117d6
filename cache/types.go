package cache

// Settable is the contract a cached value type must satisfy: an in-place
// copy in the manner of math/big, where dst.Set(src) overwrites dst with
// src and returns dst. *big.Int, *big.Float, *big.Rat and cplx.Complex
// all qualify.
type Settable[T any] interface {
	Set(T) T
}

// slot pairs a stored value with the decimal precision it was computed
// at. A slot is occupied iff prec > 0; exact (integer/rational) callers
// conventionally store prec 1.
type slot[T any] struct {
	val  T
	prec int
}

// Growth policy for the one-index store: a capacity miss on index n
// reallocates to 3n/2+2 slots, so repeated sequential misses cost
// amortized O(1). The triangular store instead grows to the exact row
// boundary (n+1)(n+2)/2, since its consumers fill whole rows at a time.
const (
	linearGrowthNum = 3
	linearGrowthDen = 2
	linearGrowthPad = 2
)

// triOffset packs the triangular index pair (n,k), 0 ≤ k ≤ n, into its
// linear offset. The mapping is injective and, for fixed k, strictly
// increasing in n.
func triOffset(n, k int) int {
	return n*(n+1)/2 + k
}
