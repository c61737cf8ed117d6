package polylog

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/zetafn/cplx"
	"github.com/katalvlaran/zetafn/gamma"
	"github.com/katalvlaran/zetafn/zeta"
)

// Sentinel errors returned by Engine methods. Match with errors.Is;
// evaluation errors leave the destination at the zero sentinel.
var (
	// ErrDepthExceeded - the recursive argument reduction hit its depth
	// cap without reaching a directly summable region.
	ErrDepthExceeded = errors.New("polylog: recursion depth exceeded")

	// ErrNonConvergent - no evaluation strategy converges for the
	// argument: the modulus is beyond the escape radius, the term
	// estimate came back unusable, or an asymptotic tail bottomed out
	// above the requested precision.
	ErrNonConvergent = errors.New("polylog: no convergent evaluation for argument")

	// ErrBranchPoint - the argument sits on the z = 1 branch point (or
	// an angle q that lands there), where the function is singular.
	ErrBranchPoint = errors.New("polylog: argument on branch point")

	// ErrDomain - the argument lies outside the domain of the chosen
	// method, such as |z| ≥ 1 for the direct sums or q ≤ 0 for the
	// Hurwitz zeta.
	ErrDomain = errors.New("polylog: argument outside method domain")

	// ErrTuning - a Tuning field is out of its admissible range.
	ErrTuning = errors.New("polylog: tuning out of range")
)

// PointFunc supplies the series coefficients for SumSeries: Evaluate
// sets dst to the coefficient at index n, computed to at least prec
// decimal digits. Implementations are free to call back into the
// Engine that drives the summation.
type PointFunc interface {
	Evaluate(dst *cplx.Complex, n uint64, prec int) error
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger routes dispatch decisions and convergence warnings to
// log. The default logger is a nop.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithZeta makes the engine draw Riemann zeta values from ze instead
// of a private instance, so several engines can share one warm cache
// and one persistent store.
func WithZeta(ze *zeta.Engine) Option {
	return func(e *Engine) { e.zeta = ze }
}

// WithGamma makes the engine draw Gamma values from g instead of a
// private evaluator.
func WithGamma(g *gamma.Evaluator) Option {
	return func(e *Engine) { e.gam = g }
}

// WithTuning replaces the default region boundaries and budgets. The
// tuning must pass Validate; New panics on one that does not, since a
// broken boundary set corrupts every dispatch after it.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tun = t }
}
