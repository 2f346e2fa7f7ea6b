package physics

import "math"

// BrachistochroneTime returns the classical flip-and-burn travel time for
// distance d at constant acceleration a: T = 2·sqrt(d/a).
func BrachistochroneTime(d, a float64) (float64, error) {
	if d <= 0 {
		return 0, domainErr("distance must be positive, got %g m", d)
	}
	if a <= 0 {
		return 0, domainErr("acceleration must be positive, got %g m/s²", a)
	}
	return 2 * math.Sqrt(d/a), nil
}

// PeakVelocity returns the midpoint velocity of a classical flip-and-burn
// trip of total time t at acceleration a: v = a·t/2.
func PeakVelocity(a, t float64) float64 {
	return a * t / 2
}

// TotalDeltaV returns the full mission delta-v budget for a trip peaking at
// v: accelerate to v, then shed all of it again.
func TotalDeltaV(peak float64) float64 {
	return 2 * peak
}

// BrachProfile describes a continuous-burn relativistic brachistochrone:
// constant proper acceleration to the midpoint, flip, and decelerate.
type BrachProfile struct {
	CoordTime    float64 // total observer time, s
	ProperTime   float64 // total ship time, s
	PeakVelocity float64 // midpoint coordinate velocity, m/s
	Gamma        float64 // Lorentz factor at the midpoint
}

// RelativisticBrachistochrone plans a continuous-burn trip of distance d at
// constant proper acceleration a. Half-trip quantities with ε = a·d/(2c²):
//
//	t½ = (c/a)·sqrt(ε·(2+ε))      observer time
//	τ½ = (c/a)·arsinh(a·t½/c)     ship time
//	v  = c·tanh(a·τ½/c)           midpoint velocity
//
// Full-trip times double the halves. Trips long enough that the midpoint
// velocity rounds to c in double precision return ErrUnstable.
func RelativisticBrachistochrone(a, d float64) (BrachProfile, error) {
	if a <= 0 {
		return BrachProfile{}, domainErr("acceleration must be positive, got %g m/s²", a)
	}
	if d <= 0 {
		return BrachProfile{}, domainErr("distance must be positive, got %g m", d)
	}
	eps := a * d / (2 * C * C)
	tHalf, err := finite((C/a)*math.Sqrt(eps*(2+eps)), "observer time")
	if err != nil {
		return BrachProfile{}, err
	}
	tauHalf := (C / a) * math.Asinh(a*tHalf/C)
	peak := C * math.Tanh(a*tauHalf/C)
	if peak >= C {
		return BrachProfile{}, unstableErr("peak velocity within machine epsilon of c")
	}
	g, err := Gamma(peak)
	if err != nil {
		return BrachProfile{}, err
	}
	return BrachProfile{
		CoordTime:    2 * tHalf,
		ProperTime:   2 * tauHalf,
		PeakVelocity: peak,
		Gamma:        g,
	}, nil
}

// CoastProfile describes a cruise-limited trip: burn up to cruise velocity,
// coast, flip, burn back down. Burn legs use classical kinematics; time
// dilation is applied per phase at the cruise Lorentz factor.
type CoastProfile struct {
	BurnTime       float64 // one burn leg, observer frame, s
	BurnDistance   float64 // distance covered by one burn leg, m
	CoastTime      float64 // cruise leg, observer frame, s
	CoastDistance  float64 // m
	CruiseVelocity float64 // m/s
	Gamma          float64 // Lorentz factor at cruise
	CoordTime      float64 // total observer time, s
	ProperTime     float64 // total ship time, s
	Coasting       bool    // false when the trip degenerates to flip-and-burn
}

// PlanCoast models a trip of distance d that accelerates at a up to vCruise,
// coasts, then decelerates. When the two burn legs cannot fit inside d the
// trip degenerates to a classical flip-and-burn peaking below vCruise, and
// Coasting is false.
func PlanCoast(a, d, vCruise float64) (CoastProfile, error) {
	if a <= 0 {
		return CoastProfile{}, domainErr("acceleration must be positive, got %g m/s²", a)
	}
	if d <= 0 {
		return CoastProfile{}, domainErr("distance must be positive, got %g m", d)
	}
	if vCruise <= 0 {
		return CoastProfile{}, domainErr("cruise velocity must be positive, got %g m/s", vCruise)
	}
	if err := checkSubluminal(vCruise); err != nil {
		return CoastProfile{}, err
	}

	burnTime := vCruise / a
	burnDist := a * burnTime * burnTime / 2
	if 2*burnDist >= d {
		// vCruise is out of reach inside d. Peak velocity sqrt(a·d) is
		// bounded by vCruise here, so it stays subluminal.
		total, err := BrachistochroneTime(d, a)
		if err != nil {
			return CoastProfile{}, err
		}
		peak := PeakVelocity(a, total)
		g, err := Gamma(peak)
		if err != nil {
			return CoastProfile{}, err
		}
		return CoastProfile{
			BurnTime:       total / 2,
			BurnDistance:   d / 2,
			CruiseVelocity: peak,
			Gamma:          g,
			CoordTime:      total,
			ProperTime:     total / g,
			Coasting:       false,
		}, nil
	}

	g, err := Gamma(vCruise)
	if err != nil {
		return CoastProfile{}, err
	}
	coastDist := d - 2*burnDist
	coastTime := coastDist / vCruise
	return CoastProfile{
		BurnTime:       burnTime,
		BurnDistance:   burnDist,
		CoastTime:      coastTime,
		CoastDistance:  coastDist,
		CruiseVelocity: vCruise,
		Gamma:          g,
		CoordTime:      coastTime + 2*burnTime,
		ProperTime:     coastTime/g + 2*burnTime/g,
		Coasting:       true,
	}, nil
}
