// Package physics implements the closed-form kinematics shared by every
// calculator: classical and relativistic brachistochrone trajectories,
// constant-proper-acceleration rocket equations, time dilation, length
// contraction, and the torch-drive fuel model.
//
// All functions are pure and operate in SI base units (meters, seconds,
// kilograms, joules, watts). Inputs outside a formula's mathematical domain
// produce an error wrapping ErrDomain; inputs that are formally valid but
// numerically hopeless in double precision produce an error wrapping
// ErrUnstable. No function returns NaN or Inf.
package physics

// Physical constants. AU and LightYear keep the rounding the route tables
// were built with rather than the IAU values.
const (
	// C is the speed of light in m/s.
	C = 299792458.0

	// StandardGravity is 1 g in m/s².
	StandardGravity = 9.80665

	// AU is one astronomical unit in meters.
	AU = 1.496e11

	// LightYear is one light year in meters.
	LightYear = 9.461e15

	// DHe3Yield is the deuterium–helium-3 fusion energy yield in J/kg.
	DHe3Yield = 3.52e14

	SecondsPerHour = 3600.0
	SecondsPerDay  = 86400.0
	SecondsPerYear = 365.25 * SecondsPerDay
)
