package combin

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
)

// Stirling computes Stirling numbers of both kinds together with the
// alternating binomial sum over the first kind. Each family keeps its
// own triangular memo; a cache miss fills the whole row n at once,
// since the recurrences consume row n-1 in full anyway.
type Stirling struct {
	first  *cache.Triangular[*big.Int]
	second *cache.Triangular[*big.Int]
	binsum *cache.Triangular[*big.Int]
}

// NewStirling returns an empty Stirling-number table.
func NewStirling() *Stirling {
	fresh := func() *big.Int { return new(big.Int) }
	return &Stirling{
		first:  cache.NewTriangular(fresh),
		second: cache.NewTriangular(fresh),
		binsum: cache.NewTriangular(fresh),
	}
}

// First sets dst = |s(n,k)|, the unsigned Stirling number of the
// first kind, and returns dst.
func (st *Stirling) First(dst *big.Int, n, k int) *big.Int {
	switch {
	case k <= 0:
		if n == 0 && k == 0 {
			return dst.SetInt64(1)
		}
		return dst.SetInt64(0)
	case n < k:
		return dst.SetInt64(0)
	case n == k:
		return dst.SetInt64(1)
	}

	if st.first.CheckPrecision(n, k) > 0 {
		st.first.Fetch(dst, n, k)
		return dst
	}

	// s(n,i) = s(n-1,i-1) + (n-1)·s(n-1,i), filled across the row.
	var prev, cur big.Int
	en := big.NewInt(int64(n - 1))
	for i := 1; i <= n; i++ {
		st.First(&cur, n-1, i)
		dst.Mul(en, &cur)
		dst.Add(dst, &prev)
		st.first.Store(dst, n, i, 1)
		prev.Set(&cur)
	}

	st.first.Fetch(dst, n, k)
	return dst
}

// Second sets dst = S(n,k), the Stirling number of the second kind,
// and returns dst.
func (st *Stirling) Second(dst *big.Int, n, k int) *big.Int {
	switch {
	case k <= 0:
		if n == 0 && k == 0 {
			return dst.SetInt64(1)
		}
		return dst.SetInt64(0)
	case n < k:
		return dst.SetInt64(0)
	case n == k:
		return dst.SetInt64(1)
	}

	if st.second.CheckPrecision(n, k) > 0 {
		st.second.Fetch(dst, n, k)
		return dst
	}

	// S(n,i) = S(n-1,i-1) + i·S(n-1,i), filled across the row.
	var prev, cur, eye big.Int
	for i := 1; i <= n; i++ {
		st.Second(&cur, n-1, i)
		eye.SetInt64(int64(i))
		dst.Mul(&eye, &cur)
		dst.Add(dst, &prev)
		st.second.Store(dst, n, i, 1)
		prev.Set(&cur)
	}

	st.second.Fetch(dst, n, k)
	return dst
}

// BinSum sets dst = Σ_{k=m..n} (-1)^k C(k,m) |s(n,k)| and returns
// dst. n ≤ 0 yields 1.
func (st *Stirling) BinSum(dst *big.Int, n, m int) *big.Int {
	if n <= 0 {
		return dst.SetInt64(1)
	}
	if st.binsum.CheckPrecision(n, m) > 0 {
		st.binsum.Fetch(dst, n, m)
		return dst
	}

	var stir, bin, term big.Int
	dst.SetInt64(0)
	for k := m; k <= n; k++ {
		st.First(&stir, n, k)
		Binomial(&bin, int64(k), int64(m))
		term.Mul(&bin, &stir)
		if k%2 == 1 {
			dst.Sub(dst, &term)
		} else {
			dst.Add(dst, &term)
		}
	}

	st.binsum.Store(dst, n, m, 1)
	return dst
}
