package gamma

import (
	"errors"
	"math/big"

	"go.uber.org/zap"
)

// ZetaIntFunc supplies ζ(s) at integer s ≥ 2 to prec decimal digits.
// (*zeta.Engine).Zeta satisfies it; the evaluator needs nothing more
// from its zeta source.
type ZetaIntFunc func(dst *big.Float, s, prec int) error

// ErrPole reports Γ evaluated at zero or a negative integer.
var ErrPole = errors.New("gamma: pole at a non-positive integer")

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithLogger attaches a structured logger; the default is a nop
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Evaluator) { g.log = log }
}
