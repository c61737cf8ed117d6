// Package gamma evaluates the Gamma function over the real line and
// the complex plane to arbitrary decimal precision.
//
// What:
//
//   - Evaluator — construct with New around an integer-zeta source;
//     Gamma handles complex arguments, GammaFloat the real line. Both
//     memoize their last finished value, which is what the
//     polylogarithm inversion wants: many asks at one argument while a
//     precision hunt is underway.
//   - ZetaIntFunc — the only dependency. Γ is built from the Taylor
//     series of ln Γ around 2, whose coefficients are (ζ(n)−1)/n, so
//     the evaluator consumes ζ at every integer from 2 up to roughly
//     1.7·prec. Hand it a source that caches.
//
// How:
//
// The argument is first shifted into the band 1.5 < Re z ≤ 2.5 by
// rising factorials, where the series
//
//	ln Γ(2+u) = (1−γ)·u + Σ_{n≥2} (−1)^n·(ζ(n)−1)·u^n/n
//
// gains a steady two bits per term. Arguments with |Im z| ≥ 1 are cut
// down by the Gauss multiplication theorem,
//
//	Γ(z) = (2π)^{(1−m)/2} · m^{z−1/2} · Π_{k<m} Γ((z+k)/m),
//
// with m chosen so each factor's imaginary part lands below 1. Poles
// (zero and the negative integers) return a domain error.
package gamma
