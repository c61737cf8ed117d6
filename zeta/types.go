package zeta

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrBelowTwo reports an integer argument s < 2. The series
	// diverges at s = 1 and the functional equation is out of scope
	// for the integer entry points.
	ErrBelowTwo = errors.New("zeta: integer argument below 2")

	// ErrNonEven reports an EvenInt argument that is odd or below 2;
	// the Bernoulli closed form only exists on the even integers.
	ErrNonEven = errors.New("zeta: argument is not an even integer at or above 2")

	// ErrPole reports evaluation at s = 1, the single pole of ζ.
	ErrPole = errors.New("zeta: pole at s = 1")

	// ErrTooManyTerms reports a brute-force request whose series would
	// need more than bruteTermCap terms to reach the asked digits.
	ErrTooManyTerms = errors.New("zeta: brute-force series needs too many terms")
)

// bruteTermCap is the hard ceiling on brute-force series length.
const bruteTermCap = 1e9

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger. Dispatch decisions surface
// at Debug level, degradations (store failures, refused series) at
// Warn. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithStore attaches a persistent value store, consulted after the RAM
// memo and before any recomputation. Finished values are written back
// best-effort.
func WithStore(st *Store) Option {
	return func(e *Engine) { e.store = st }
}
