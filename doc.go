// Package zetafn evaluates the polylogarithm Li_s(z) and the zeta
// functions built on it — Riemann, Hurwitz and periodic — to any
// caller-requested number of correct decimal digits, for complex
// arguments anywhere in the plane away from the branch points.
//
// 🚀 What is zetafn?
//
//	An arbitrary-precision special-function library that brings together:
//		• Precision-tagged memo caches: a hit only counts when the cached
//		  digits cover the request (cache)
//		• A big.Float complex kernel with explicit working precision (cplx)
//		• Exact combinatorics: binomials, Stirling & Bernoulli numbers (combin)
//		• Elementary functions by brute-force series: exp, log, trig,
//		  arctan, the full power family, cached classical constants (elemfn)
//		• Riemann zeta: exact even-integer form, resumable brute summation,
//		  the Borwein polynomial approximation, a SQLite-backed store (zeta)
//		• The Gamma function by reduced log-Gamma series (gamma)
//		• The region-dispatching polylogarithm engine: direct Borwein sums,
//		  duplication toward the convergence zone, Hurwitz reflection past
//		  the unit circle, all under hard depth guards (polylog)
//
// ✨ Why choose zetafn?
//
//   - Digits you asked for — working precision always carries a guard
//     margin, and every cache records the precision it was filled at
//   - Failure is explicit — depth caps and convergence checks return
//     sentinel errors with a zero result, never a plausible wrong number
//   - Concurrency-safe — engines own their caches behind mutexes; share
//     one engine and its memos warm up for every goroutine
//   - Tunable — the empirical region boundaries load from TOML, so
//     dispatch experiments need no recompile
//
// Package map, leaf first:
//
//	cache/   — generic Linear/Triangular precision-tagged memo stores
//	cplx/    — arbitrary-precision complex arithmetic on math/big
//	combin/  — factorials, binomials, Pochhammer, Stirling, Bernoulli
//	elemfn/  — constants and elementary functions, real and complex
//	zeta/    — Riemann zeta engine and the persistent value store
//	gamma/   — Gamma evaluator (series + multiplication theorem)
//	polylog/ — the polylogarithm dispatcher, Hurwitz & periodic zeta
//
// Quick taste — fifty digits of ζ(3):
//
//	eng := zeta.New()
//	var v big.Float
//	if err := eng.Zeta(&v, 3, 50); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(v.Text('f', 50))
//
// See examples/ for walkthroughs and cmd/zetafn for the command line.
//
//	go get github.com/katalvlaran/zetafn
package zetafn
