package calc

import (
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// Brachistochrone builds the classical flip-and-burn calculator used for
// interplanetary hops: accelerate to the midpoint, flip, decelerate. The
// Newtonian forms hold up to a few thousand km/s; the peak velocity bound
// steers anything faster to the relativistic variant.
func Brachistochrone(opts Options) *Calculator {
	return &Calculator{
		Name:  "brach",
		Title: "Brachistochrone",
		Blurb: "classical flip-and-burn times for interplanetary hops",
		Registry: mustRegistry(
			solver.Definition{
				Name:        "distance",
				Primary:     true,
				Min:         solver.Ptr(1),
				MinErr:      "distance must be at least 1 meter",
				Units:       DistanceUnits(),
				DefaultUnit: "AU",
			},
			solver.Definition{
				Name:        "acceleration",
				Primary:     true,
				Default:     solver.Ptr(opts.DefaultAccel),
				Min:         solver.Ptr(1e-9),
				MinErr:      "acceleration must be positive",
				Units:       AccelUnits(),
				DefaultUnit: "g",
			},
			solver.Definition{
				Name:        "travel_time",
				Deps:        []string{"distance", "acceleration"},
				Compute:     computeBrachTime,
				Units:       TimeUnits(),
				DefaultUnit: "d",
			},
			solver.Definition{
				Name:        "max_velocity",
				Deps:        []string{"acceleration", "travel_time"},
				Compute:     computeBrachPeak,
				Max:         solver.Ptr(maxSubluminal),
				MaxErr:      "classical model breaks down near light speed; use the relativistic calculator",
				Units:       VelocityUnits(),
				DefaultUnit: "km/s",
			},
			solver.Definition{
				Name:        "delta_v",
				Deps:        []string{"max_velocity"},
				Compute:     computeBrachDeltaV,
				Units:       VelocityUnits(),
				DefaultUnit: "km/s",
			},
		),
	}
}

// RelativisticBrachistochrone builds the interstellar variant: the same
// flip-and-burn profile integrated with proper acceleration, reporting both
// frames and the peak Lorentz factor.
func RelativisticBrachistochrone(opts Options) *Calculator {
	return &Calculator{
		Name:  "relbrach",
		Title: "Relativistic Brachistochrone",
		Blurb: "flip-and-burn in both frames for interstellar runs",
		Registry: mustRegistry(
			solver.Definition{
				Name:        "distance",
				Primary:     true,
				Min:         solver.Ptr(1),
				MinErr:      "distance must be at least 1 meter",
				Units:       DistanceUnits(),
				DefaultUnit: "ly",
			},
			solver.Definition{
				Name:        "acceleration",
				Primary:     true,
				Default:     solver.Ptr(opts.DefaultAccel),
				Min:         solver.Ptr(1e-9),
				MinErr:      "acceleration must be positive",
				Units:       AccelUnits(),
				DefaultUnit: "g",
			},
			solver.Definition{
				Name:        "observer_time",
				Deps:        []string{"acceleration", "distance"},
				Compute:     computeRelBrachObserverTime,
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "ship_time",
				Deps:        []string{"acceleration", "distance"},
				Compute:     computeRelBrachShipTime,
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "peak_velocity",
				Deps:        []string{"acceleration", "distance"},
				Compute:     computeRelBrachPeak,
				Units:       VelocityUnits(),
				DefaultUnit: "c",
			},
			solver.Definition{
				Name:    "gamma",
				Deps:    []string{"peak_velocity"},
				Compute: computeGamma,
			},
		),
	}
}

func computeBrachTime(args map[string]float64) (float64, error) {
	return physics.BrachistochroneTime(args["distance"], args["acceleration"])
}

func computeBrachPeak(args map[string]float64) (float64, error) {
	return physics.PeakVelocity(args["acceleration"], args["travel_time"]), nil
}

func computeBrachDeltaV(args map[string]float64) (float64, error) {
	return physics.TotalDeltaV(args["max_velocity"]), nil
}

func computeRelBrachObserverTime(args map[string]float64) (float64, error) {
	p, err := physics.RelativisticBrachistochrone(args["acceleration"], args["distance"])
	if err != nil {
		return 0, err
	}
	return p.CoordTime, nil
}

func computeRelBrachShipTime(args map[string]float64) (float64, error) {
	p, err := physics.RelativisticBrachistochrone(args["acceleration"], args["distance"])
	if err != nil {
		return 0, err
	}
	return p.ProperTime, nil
}

func computeRelBrachPeak(args map[string]float64) (float64, error) {
	p, err := physics.RelativisticBrachistochrone(args["acceleration"], args["distance"])
	if err != nil {
		return 0, err
	}
	return p.PeakVelocity, nil
}
