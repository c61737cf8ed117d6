package polylog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tuning collects the empirically chosen region boundaries and budgets
// that steer the dispatcher. The defaults reproduce the tested
// behavior; LoadTuning lets experiments move the boundaries without a
// recompile.
type Tuning struct {
	// DirectZone bounds the zone metric |z²/(z−1)|²: at or below it
	// the Borwein sum converges and the argument is taken directly.
	// The polynomial's theoretical zone reaches 9, but evaluation
	// degrades near z = 1 well before that.
	DirectZone float64 `toml:"direct_zone"`

	// InvertBound bounds log |z|² for the reflection path. Beyond it
	// the reflected series parameter leaves its convergent band.
	InvertBound float64 `toml:"invert_bound"`

	// MaxModulus is the largest |z| the duplication recursion accepts;
	// no evaluation strategy converges farther out.
	MaxModulus float64 `toml:"max_modulus"`

	// AwayDepth and TowardDepth cap the two recursions. The caps are
	// rarely hit; they stop runaway subdivision near the branch point.
	AwayDepth   int `toml:"away_depth"`
	TowardDepth int `toml:"toward_depth"`

	// MaxTerms caps the order of the approximating polynomial. An
	// estimate beyond it forces subdivision instead of a degenerate
	// high-order evaluation.
	MaxTerms int `toml:"max_terms"`
}

// DefaultTuning returns the boundaries the evaluations were tested
// with.
func DefaultTuning() Tuning {
	return Tuning{
		DirectZone:  1.5,
		InvertBound: 6.28,
		MaxModulus:  5.0,
		AwayDepth:   9,
		TowardDepth: 5,
		MaxTerms:    16384,
	}
}

// Validate reports the first field outside its admissible range.
func (t Tuning) Validate() error {
	switch {
	case t.DirectZone <= 0 || t.DirectZone >= 16:
		return fmt.Errorf("%w: direct_zone %g not in (0, 16)", ErrTuning, t.DirectZone)
	case t.InvertBound <= 0:
		return fmt.Errorf("%w: invert_bound %g not positive", ErrTuning, t.InvertBound)
	case t.MaxModulus <= 1:
		return fmt.Errorf("%w: max_modulus %g not above 1", ErrTuning, t.MaxModulus)
	case t.AwayDepth < 1:
		return fmt.Errorf("%w: away_depth %d below 1", ErrTuning, t.AwayDepth)
	case t.TowardDepth < 1:
		return fmt.Errorf("%w: toward_depth %d below 1", ErrTuning, t.TowardDepth)
	case t.MaxTerms < 8:
		return fmt.Errorf("%w: max_terms %d below 8", ErrTuning, t.MaxTerms)
	}
	return nil
}

// LoadTuning decodes a TOML tuning file over the defaults, so a file
// only needs the fields it moves, and validates the result.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("polylog: decode tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
