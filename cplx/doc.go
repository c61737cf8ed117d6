// Package cplx provides an arbitrary-precision complex number built on
// math/big, in the math/big calling style: operations write into a
// destination receiver and return it for chaining.
//
// What:
//
//   - Complex — a pair of big.Float (real and imaginary part). The zero
//     value is 0+0i with precision 0 and is ready to use.
//   - Field arithmetic (Add, Sub, Mul, Quo, Recip, Neg, Conj, MulI) plus
//     mixed-operand helpers for big.Float and small-integer operands.
//   - Precision plumbing shared by the whole module: Bits converts a
//     decimal-digit request into the binary working precision, Epsilon
//     builds the 10^-prec convergence floor as an exact power of two,
//     and EqBits compares values to a leading-bit count (the comparison
//     the single-slot memo caches key on).
//
// Conventions:
//
//   - All operations are aliasing-safe: the destination may be any of
//     the operands. Inputs are read in full before the destination is
//     written.
//   - Operations round to the destination's precision; a destination of
//     precision 0 adopts the larger operand precision first, exactly as
//     big.Float does.
//   - Re and Im expose the parts as shared references in the manner of
//     big.Rat.Num: mutations through them are visible in the Complex.
//
// The evaluation engines keep every intermediate at Bits(prec) binary
// digits, a generous margin over the requested decimal count; see the
// package documentation of polylog for why that margin is load-bearing.
package cplx
