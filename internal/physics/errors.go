package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain flags mathematically invalid input: a velocity at or beyond c, a
// non-positive quantity where positivity is required, or an argument outside
// the domain of sqrt or arcosh.
var ErrDomain = errors.New("domain error")

// ErrUnstable flags input that is formally valid but sits at the edge of
// double precision, such as a peak velocity within machine epsilon of c.
// Callers should treat it as a warning rather than a validation failure.
var ErrUnstable = errors.New("numerically unstable input")

// IsUnstable reports whether err is a numerical-stability warning rather
// than a hard domain violation.
func IsUnstable(err error) bool {
	return errors.Is(err, ErrUnstable)
}

func domainErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}

func unstableErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnstable, fmt.Sprintf(format, args...))
}

// checkSubluminal rejects velocities outside [0, c).
func checkSubluminal(v float64) error {
	if v < 0 {
		return domainErr("velocity must be non-negative, got %g m/s", v)
	}
	if v >= C {
		return domainErr("velocity %g m/s is not below the speed of light", v)
	}
	return nil
}

// finite guards a computed result against silent overflow. Inputs at the
// extreme edge of double precision surface ErrUnstable instead of
// propagating Inf or NaN to callers.
func finite(v float64, what string) (float64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, unstableErr("%s overflows double precision", what)
	}
	return v, nil
}
