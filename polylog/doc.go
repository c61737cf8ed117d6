// Package polylog evaluates the polylogarithm Li_s(z) across the
// complex plane to arbitrary decimal precision, together with the
// Hurwitz zeta ζ(s,q) and the periodic zeta F(s,q) it is built from.
//
// What:
//
//   - Engine — owns the dispatcher tuning, the power and reflection
//     memos, and the zeta and Gamma collaborators the evaluations
//     lean on. Construct with New; methods are safe for concurrent
//     use, with one evaluation in flight per engine.
//   - Polylog / PolylogAway — Li_s(z) through the region dispatcher:
//     a direct accelerated sum where the argument allows it, the
//     square-the-argument duplication identity to move off the z = 1
//     branch point, the Hurwitz reflection to continue past the unit
//     circle, and a square-root split for far-out arguments. Polylog
//     takes any reachable argument; PolylogAway stays inside the
//     unit disk and never reflects.
//   - PolylogInt — exact rational closed forms at non-positive
//     integer order.
//   - Sum — the defining series, for arguments well inside the disk.
//   - SumSeries — Σ f(n)·z^n for a caller-supplied PointFunc, the
//     ordinary generating function of f.
//   - HurwitzZeta — ζ(s,q) for real q > 0, reflected through two
//     periodic zeta sums, with Euler–Maclaurin summation standing in
//     where the reflection degenerates.
//   - HurwitzEuler / HurwitzTaylor — Euler–Maclaurin and Taylor
//     evaluations of ζ(s,q) for complex q.
//   - PeriodicZeta / PeriodicBeta — F(s,q) = Σ e^{2πinq}/n^s and its
//     Bernoulli-normalized companion.
//
// Why:
//
// No single series for Li_s(z) converges everywhere the function
// exists. Near z = 0 the defining sum is fine; near z = 1 it crawls;
// beyond |z| = 1 it diverges outright, though the function continues
// analytically. The engine therefore carries one strategy per region
// and a dispatcher that classifies the argument, transforms it with
// exact functional identities until it lands in a summable region,
// and tracks a recursion depth so pathological arguments fail
// explicitly instead of wandering. Failures are sentinel errors with
// the destination zeroed, never a silently wrong number.
//
// The caches make sweep workloads cheap: holding s and moving z (the
// common way to plot or integrate these functions) reuses the k^s
// power ladders, the Γ(1−s) reflection factors and the shifted-zeta
// rows across calls.
//
// Precision follows the package convention: prec counts requested
// decimal digits, internals run at cplx.Bits(prec) binary digits, and
// the direct sum widens its own working precision to absorb the
// cancellation its binomial tail introduces.
package polylog
