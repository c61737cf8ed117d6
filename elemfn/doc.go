// Package elemfn implements the elementary functions and classical
// constants at arbitrary precision: exp, log, the circular functions
// and their complex counterparts, argument reduction, and the power
// family q^s in every real/complex/integer mix the series engines
// need.
//
// What:
//
//   - Constants: Pi, TwoPi, PiHalf, TwoOverPi, SqrtTwoPi, LogTwoPi,
//     Log2, E, EPi, EulerGamma, HalfSqrtThree. Each is memoized behind
//     its own mutex with a decimal-precision tag; a request at or below
//     the stored precision is a copy, a wider request recomputes and
//     ratchets the memo.
//   - Real functions: Exp, Sin, Cos, Log, LogM1, LogUint, Atan, Atan2,
//     Floor, plus the integer-power helpers IntPow, InvPow and PowUint.
//   - Complex functions: ExpC, SinC, CosC, TanC, LogC, LogM1C, SqrtC.
//   - Powers: PowReal (real base, complex exponent), Pow (both
//     complex), PowInt (integer exponent), UintPow (integer base), and
//     the memoizing variants UintPowCache, OffsetPowCache and
//     OffsetPowCacheC used by the inner loops of the zeta and
//     polylogarithm sums.
//
// How:
//
// Everything is built from Taylor series with explicit argument
// reduction: exp splits off the integer part and sums the series on a
// remainder below one half; sine reduces by quarter periods of π/2 and
// fixes the quadrant afterwards; log normalizes into [1/2, 1) through
// the binary exponent and sums -log(1-t); arctangent applies the
// half-angle contraction atan(z) = 2·atan(z/(1+√(1+z²))) until the
// ratio is small, then sums A&S 4.4.42. π itself comes from Machin's
// formula 4·(4·atan(1/5) - atan(1/239)), and the Euler-Mascheroni
// constant from an exponential limit over harmonic numbers.
//
// Conventions:
//
//   - prec counts requested decimal digits. Internals run at
//     cplx.Bits(prec) binary digits and series stop once the running
//     term falls below cplx.Epsilon(prec).
//   - Functions with a restricted domain follow math/big: Log and its
//     dependents panic on non-positive arguments the way
//     big.Float.Sqrt panics on negative ones. Only PowReal reports a
//     bad base as an error, since callers probe it with runtime data.
package elemfn
