package physics

import "math"

// Trips in this file follow a symmetric profile: constant proper acceleration
// to the midpoint, flip, constant deceleration to rest. Observer quantities
// are measured in the launch frame, traveler quantities in the ship frame.

// Velocity returns the classical velocity a·t. Only trustworthy well below
// 0.1c; the relativistic calculators use VelocityAtObserverTime instead.
func Velocity(accel, t float64) float64 {
	return accel * t
}

// VelocityAtObserverTime returns the coordinate velocity at elapsed observer
// time t of a trip with total observer time total and constant proper
// acceleration accel. Elapsed times past the midpoint mirror back onto the
// acceleration leg, so velocity peaks at t = total/2 and returns to zero at
// t = total. The result is always strictly below c.
func VelocityAtObserverTime(accel, t, total float64) (float64, error) {
	if accel <= 0 {
		return 0, domainErr("acceleration must be positive, got %g m/s²", accel)
	}
	if total <= 0 {
		return 0, domainErr("total observer time must be positive, got %g s", total)
	}
	if t < 0 || t > total {
		return 0, domainErr("elapsed time %g s outside trip duration %g s", t, total)
	}
	if t > total/2 {
		t = total - t
	}
	at := accel * t
	return at / math.Sqrt(1+(at/C)*(at/C)), nil
}

// Distance returns the coordinate distance covered by a trip of total
// observer time t whose midpoint velocity is v:
//
//	d = c·v·t / (c + sqrt(c²−v²))
//
// The radicand is factored as (c−v)(c+v) so no precision is lost as v
// approaches c.
func Distance(v, t float64) (float64, error) {
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	if t < 0 {
		return 0, domainErr("observer time must be non-negative, got %g s", t)
	}
	return C * v * t / (C + math.Sqrt((C-v)*(C+v))), nil
}

// ObserverTime returns the total coordinate time of a trip covering distance
// d at constant proper acceleration accel. It inverts Distance through the
// factored radicand ε·(2+ε) with ε = a·d/(2c²), which keeps full precision
// where the textbook form (1+ε)²−1 cancels to zero for small a·d/c².
func ObserverTime(accel, d float64) (float64, error) {
	if accel <= 0 {
		return 0, domainErr("acceleration must be positive, got %g m/s²", accel)
	}
	if d < 0 {
		return 0, domainErr("distance must be non-negative, got %g m", d)
	}
	eps := accel * d / (2 * C * C)
	return finite((2*C/accel)*math.Sqrt(eps*(2+eps)), "observer time")
}

// TravelerTime returns the total proper (ship) time of a trip covering
// distance d at constant proper acceleration accel:
//
//	τ = (2c/a)·arcosh(a·d/(2c²) + 1)
func TravelerTime(accel, d float64) (float64, error) {
	if accel <= 0 {
		return 0, domainErr("acceleration must be positive, got %g m/s²", accel)
	}
	if d < 0 {
		return 0, domainErr("distance must be non-negative, got %g m", d)
	}
	ac, err := arcosh1p(accel * d / (2 * C * C))
	if err != nil {
		return 0, err
	}
	return (2 * C / accel) * ac, nil
}

// TravelerTimeAt converts an elapsed observer time to ship time at
// instantaneous velocity v: τ = t·sqrt(1−v²/c²).
func TravelerTimeAt(t, v float64) (float64, error) {
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	if t < 0 {
		return 0, domainErr("observer time must be non-negative, got %g s", t)
	}
	return t * math.Sqrt((C-v)*(C+v)) / C, nil
}

// arcosh1p returns arcosh(1+eps) for eps ≥ 0 without cancellation near 1 and
// without overflow for enormous arguments, where arcosh(x) → ln(2x).
func arcosh1p(eps float64) (float64, error) {
	if eps < 0 {
		return 0, domainErr("arcosh argument %g below 1", 1+eps)
	}
	if eps > 1e150 {
		return math.Ln2 + math.Log1p(eps), nil
	}
	return math.Log1p(eps + math.Sqrt(eps*(2+eps))), nil
}

// AccelFromDistanceTime returns the constant acceleration that covers d in
// total time t with a symmetric profile: half the distance in half the time,
// so a = 2·(d/2)/(t/2)² = 4d/t². Classical approximation.
func AccelFromDistanceTime(d, t float64) (float64, error) {
	if d <= 0 {
		return 0, domainErr("distance must be positive, got %g m", d)
	}
	if t <= 0 {
		return 0, domainErr("time must be positive, got %g s", t)
	}
	return 4 * d / (t * t), nil
}

// AccelFromVelocityDistance returns the constant acceleration that reaches
// peak velocity v over half of distance d: a = v²/d. Classical approximation.
func AccelFromVelocityDistance(v, d float64) (float64, error) {
	if v <= 0 {
		return 0, domainErr("velocity must be positive, got %g m/s", v)
	}
	if d <= 0 {
		return 0, domainErr("distance must be positive, got %g m", d)
	}
	return v * v / d, nil
}

// AccelFromVelocityTime returns the constant acceleration that reaches peak
// velocity v at the midpoint of total time t: a = 2v/t. Classical
// approximation.
func AccelFromVelocityTime(v, t float64) (float64, error) {
	if v <= 0 {
		return 0, domainErr("velocity must be positive, got %g m/s", v)
	}
	if t <= 0 {
		return 0, domainErr("time must be positive, got %g s", t)
	}
	return 2 * v / t, nil
}

// Gamma returns the Lorentz factor 1/sqrt(1−(v/c)²).
func Gamma(v float64) (float64, error) {
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	return finite(C/math.Sqrt((C-v)*(C+v)), "lorentz factor")
}

// Energy returns the kinetic energy budget to reach velocity v and shed it
// again: E = 2·m·c²·(γ−1). The factor 2 covers the deceleration leg; this is
// a full-trip budget, not a one-way figure. γ−1 is computed as
// (v/c)²·γ²/(γ+1) to avoid cancellation at low velocities.
func Energy(mass, v float64) (float64, error) {
	if mass <= 0 {
		return 0, domainErr("mass must be positive, got %g kg", mass)
	}
	g, err := Gamma(v)
	if err != nil {
		return 0, err
	}
	gm1 := (v / C) * (v / C) * g * g / (g + 1)
	return finite(2*mass*C*C*gm1, "kinetic energy")
}

// FuelMass returns the propellant needed to accelerate a ship of the given
// dry mass to v and back to rest, for a drive converting fuel mass to kinetic
// energy at the given rate in (0, 1]:
//
//	fuel = (2·(v/c)/(1−v/c)) · m/rate = 2v/(c−v) · m/rate
func FuelMass(v, mass, rate float64) (float64, error) {
	if mass <= 0 {
		return 0, domainErr("mass must be positive, got %g kg", mass)
	}
	if rate <= 0 || rate > 1 {
		return 0, domainErr("conversion rate %g outside (0, 1]", rate)
	}
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	return finite(2*v/(C-v)*mass/rate, "fuel mass")
}

// FuelConversionRate inverts FuelMass: the conversion rate a drive must
// achieve to push a ship of the given dry mass to v and back on the given
// propellant mass. Results above 1 are physically impossible and left to the
// caller's bounds check.
func FuelConversionRate(v, mass, fuel float64) (float64, error) {
	if mass <= 0 {
		return 0, domainErr("mass must be positive, got %g kg", mass)
	}
	if fuel <= 0 {
		return 0, domainErr("fuel mass must be positive, got %g kg", fuel)
	}
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	return finite(2*v/(C-v)*mass/fuel, "conversion rate")
}

// LengthContraction returns the length an observer measures for an object of
// proper length l moving at velocity v: l·sqrt(1−v²/c²).
func LengthContraction(l, v float64) (float64, error) {
	if l < 0 {
		return 0, domainErr("length must be non-negative, got %g m", l)
	}
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	return l * math.Sqrt((C-v)*(C+v)) / C, nil
}

// LengthExpansion recovers the proper length from an observed, contracted
// length at velocity v. Inverse of LengthContraction.
func LengthExpansion(l, v float64) (float64, error) {
	if l < 0 {
		return 0, domainErr("length must be non-negative, got %g m", l)
	}
	if err := checkSubluminal(v); err != nil {
		return 0, err
	}
	return finite(l*C/math.Sqrt((C-v)*(C+v)), "proper length")
}
