package elemfn

import "errors"

var (
	// ErrNonPositiveBase indicates a real-base power q^s with q ≤ 0,
	// where the real logarithm does not exist.
	ErrNonPositiveBase = errors.New("elemfn: power of a non-positive real base")
)
