package polylog

import (
	"math/big"

	"github.com/katalvlaran/zetafn/cache"
	"github.com/katalvlaran/zetafn/combin"
	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/elemfn"
)

// borweinSum sets dst = Li_s(z) by the order-2m convergence
// acceleration
//
//	Li_s(z) ≈ Σ_{k=1..m} z^k/k^s ± (z−1)^{-m} Σ_{k=m+1..2m} z^k/k^s · S_{2m−k},
//
// where S_j = Σ_{i=0..j} (−1)^i·C(m,i)·z^i and the sign is + for even
// m. The partial sums S_j are built forward and consumed in reverse,
// so they ride a call-local store; the k^{-s} ladder rides the
// engine's, surviving into the sibling calls of a subdivision.
func (e *Engine) borweinSum(dst, s, z *cplx.Complex, m, prec int) {
	bits := cplx.Bits(prec)
	negS := cplx.New(bits).Neg(s)

	partials := cache.NewLinear(func() *cplx.Complex { return new(cplx.Complex) })
	run := cplx.New(bits).SetInt64(1, 0)
	partials.Store(run, 0, prec)

	// ska = (z−1)^{-m}
	ska := cplx.New(bits).SubInt64(z, 1, 0)
	ska.Recip(ska)
	elemfn.PowInt(ska, ska, int64(m), prec)

	pz := cplx.New(bits).SetInt64(1, 0)
	acc := cplx.New(bits)
	term := cplx.New(bits)
	var bin big.Int
	bf := new(big.Float).SetPrec(bits)

	for k := 1; k <= m; k++ {
		pz.Mul(pz, z)
		e.upow.Value(term, uint64(k), negS, prec)
		term.Mul(term, pz)
		acc.Add(acc, term)

		combin.Binomial(&bin, int64(m), int64(k))
		bf.SetInt(&bin)
		term.MulFloat(pz, bf)
		if k%2 == 1 {
			run.Sub(run, term)
		} else {
			run.Add(run, term)
		}
		partials.Store(run, k, prec)
	}

	tail := cplx.New(bits)
	for k := m + 1; k <= 2*m; k++ {
		pz.Mul(pz, z)
		e.upow.Value(term, uint64(k), negS, prec)
		term.Mul(term, pz)
		partials.Fetch(run, 2*m-k)
		term.Mul(term, run)
		tail.Add(tail, term)
	}

	tail.Mul(tail, ska)
	if m%2 == 1 {
		dst.Sub(acc, tail)
	} else {
		dst.Add(acc, tail)
	}
}
