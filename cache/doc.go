// Package cache provides precision-tagged memoization stores for
// arbitrary-precision values, keyed by one integer index or by a
// triangular pair (n,k) with 0 ≤ k ≤ n.
//
// What:
//
//   - Linear[T]: a growable one-index store; each slot records the value
//     together with the decimal precision it was computed at.
//   - Triangular[T]: a two-index store packing (n,k) into the linear
//     offset n(n+1)/2+k, growing row-by-row.
//   - Disabled variants: permanently miss on lookup and ignore stores,
//     for call sites where memoization would be semantically wrong.
//
// Why:
//
//   - High-precision series evaluation recomputes the same factorials,
//     Bernoulli numbers, zeta values and weighted partial sums over and
//     over; a plain map would forget the one fact that matters: how many
//     digits of the stored value can be trusted.
//   - A lookup is a hit only when the precision recorded in the slot
//     meets the caller's current request. Raising the working precision
//     invalidates nothing explicitly; stale entries simply stop hitting
//     and are overwritten on the next store.
//
// Semantics:
//
//   - CheckPrecision(i) guarantees capacity for index i (growing the
//     backing store when needed) and reports the precision of the slot,
//     or 0 when the slot is empty.
//   - Fetch copies the value out; Store copies the value in and records
//     its precision; Clear resets every precision tag while keeping the
//     storage allocated.
//   - Growth is monotone: populated slots are always carried forward and
//     the backing store never shrinks.
//
// Complexity: amortized O(1) per access; growth is O(len) copy under the
// same lock that guards the access itself.
//
// Concurrency: every cache instance owns one mutex; check/fetch/store
// hold it for the duration of a slot copy only, so a single instance may
// back concurrent evaluations.
package cache
