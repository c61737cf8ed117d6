package combin

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
)

// Bernoulli produces Bernoulli numbers as exact rationals, with the
// convention B(1) = -1/2. The nontrivial even-index values are
// memoized; odd indices above 1 are zero.
type Bernoulli struct {
	memo *cache.Linear[*big.Rat]
}

// NewBernoulli returns an empty Bernoulli-number memo.
func NewBernoulli() *Bernoulli {
	return &Bernoulli{
		memo: cache.NewLinear(func() *big.Rat { return new(big.Rat) }),
	}
}

// Value sets dst = B(n) and returns dst. Negative n yields 0.
func (b *Bernoulli) Value(dst *big.Rat, n int) *big.Rat {
	switch {
	case n < 0:
		return dst.SetInt64(0)
	case n == 0:
		return dst.SetInt64(1)
	case n == 1:
		return dst.SetFrac64(-1, 2)
	case n%2 == 1:
		return dst.SetInt64(0)
	}

	hn := n / 2
	if b.memo.CheckPrecision(hn) > 0 {
		b.memo.Fetch(dst, hn)
		return dst
	}

	// Σ_{k=0..n} C(n+1,k)·B(k) = 0, solved for B(n). The k=0 and k=1
	// terms collapse to the (1-n)/2 seed.
	var binom big.Int
	var term, tmp big.Rat
	dst.SetFrac64(int64(1-n), 2)
	for i := 1; i < hn; i++ {
		k := 2 * i
		Binomial(&binom, int64(n+1), int64(k))
		tmp.SetInt(&binom)
		b.Value(&term, k)
		term.Mul(&term, &tmp)
		dst.Add(dst, &term)
	}
	tmp.SetFrac64(-1, int64(n+1))
	dst.Mul(dst, &tmp)

	b.memo.Store(dst, hn, 1)
	return dst
}
