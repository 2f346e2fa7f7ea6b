package physics

import "math"

// HeuristicDeltaVRef is the delta-v at which HeuristicAcceleration returns
// exactly the base acceleration, in m/s.
const HeuristicDeltaVRef = 1000.0

// HeuristicAcceleration maps a ship's total delta-v budget to the sustained
// acceleration its drive is assumed to manage:
//
//	a = base · (1 + scale·log10(Δv / HeuristicDeltaVRef))
//
// clamped below at base. This is a calibration curve fit carried over from
// the route planner, not a physical law; base and scale are configuration
// constants, and no invariant beyond monotonicity should be hung on it.
func HeuristicAcceleration(deltaV, base, scale float64) (float64, error) {
	if deltaV <= 0 {
		return 0, domainErr("delta-v must be positive, got %g m/s", deltaV)
	}
	if base <= 0 {
		return 0, domainErr("base acceleration must be positive, got %g m/s²", base)
	}
	if scale < 0 {
		return 0, domainErr("log scale must be non-negative, got %g", scale)
	}
	factor := 1 + scale*math.Log10(deltaV/HeuristicDeltaVRef)
	if factor < 1 {
		factor = 1
	}
	return base * factor, nil
}
