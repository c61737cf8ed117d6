// Package combin supplies the exact combinatorial quantities the
// series engines are built from: factorials and their reciprocals,
// binomial coefficients (including a sequential Pascal-triangle walker
// and complex-argument binomials), rising Pochhammer symbols, Stirling
// numbers of both kinds, harmonic numbers, and Bernoulli numbers as
// exact rationals.
//
// Integer and rational results are exact and memoized with plain
// occupancy tags; floating-point results carry a decimal-precision tag
// and are recomputed when a caller asks for more digits than the memo
// holds. All memo state lives in explicit objects (Stirling,
// Bernoulli, Harmonics, ...) so independent evaluation engines never
// share hidden state.
package combin
