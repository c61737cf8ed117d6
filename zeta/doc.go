// Package zeta evaluates the Riemann zeta function at integer
// arguments s ≥ 2 to arbitrary decimal precision, and exposes the
// Borwein polynomial approximation for general complex s.
//
// What:
//
//   - Engine — owns every cache the evaluations feed: the RAM memo of
//     finished values, the resumable brute-force accumulator, the
//     Borwein coefficient row, and the (k+q)^s power ladder. Construct
//     with New and share freely; methods are safe for concurrent use.
//   - EvenInt — exact closed form ζ(2m) = ±B_2m·(2π)^2m / (2·(2m)!)
//     through the Bernoulli numbers.
//   - Brute — direct summation Σ 1/n^s, resumable: a repeat request at
//     the same s extends the previous partial sum instead of starting
//     over. Refuses series that would need more than a billion terms.
//   - Borwein / BorweinC — the alternating Chebyshev-weighted sum,
//     real-integer and complex variants; the workhorse for everything
//     the closed forms do not cover.
//   - Zeta — the integer dispatcher: RAM memo, then the persistent
//     store, then whichever of brute/even/Borwein is cheapest for the
//     requested digits.
//   - Store — an optional SQLite-backed cache of finished integer
//     values (stored as ζ−1 to preserve leading digits). Absence or
//     failure degrades to recomputation, never to an error.
//
// Why:
//
// ζ at integer points is the inner currency of the polylogarithm and
// log-Gamma series: one polylogarithm evaluation can ask for hundreds
// of ζ(n) values at the same precision, and n ranges into the
// thousands. Caching at three levels (RAM, disk, resumable partial
// sums) turns that from quadratic pain into a warm lookup.
//
// Complexity:
//
//   - EvenInt: O(m²) exact rational work for the first B_2m, then
//     cached.
//   - Brute: O(10^{prec/(s−1)}) terms; the dispatcher only picks it
//     when that bound is tiny.
//   - Borwein: O(prec) terms, each O(1) big-float operations once the
//     coefficient row is built; the row itself is O(prec²) exact
//     integer work, cached per order.
//
// Precision follows the package convention: prec counts requested
// decimal digits, internals run at cplx.Bits(prec) binary digits.
package zeta
