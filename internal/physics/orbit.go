package physics

import "math"

// Orbit is a body's radial span around its star, in AU. Orbits are treated
// as concentric rings; inclination and phase are ignored.
type Orbit struct {
	Perihelion float64
	Aphelion   float64
}

// OrbitalDistances returns the minimum and maximum separation in AU between
// two orbits. The minimum is zero when the rings overlap; the maximum is
// opposition at both aphelia.
func OrbitalDistances(a, b Orbit) (min, max float64) {
	min = math.Max(a.Perihelion, b.Perihelion) - math.Min(a.Aphelion, b.Aphelion)
	if min < 0 {
		min = 0
	}
	return min, a.Aphelion + b.Aphelion
}

// MedianDistance estimates a typical separation in AU between two orbits.
// When the origin orbit sits near 1 AU it uses the right-angle chord
// sqrt(1+r²); otherwise it differences the two chords. Asymmetric in its
// arguments. A heuristic inherited from the route tables, preserved as-is;
// not an ephemeris.
func MedianDistance(origin, dest Orbit) float64 {
	r1 := (origin.Perihelion + origin.Aphelion) / 2
	r2 := (dest.Perihelion + dest.Aphelion) / 2
	if math.Abs(r1-1) < 0.1 {
		return math.Sqrt(1 + r2*r2)
	}
	return math.Abs(math.Sqrt(1+r2*r2) - math.Sqrt(1+r1*r1))
}
