package calc

import (
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// DeltaV builds the delta-v budget calculator: given a total budget and a
// distance, it splits the budget evenly between the burns, estimates a
// sustainable acceleration from the calibration curve, and plans a
// burn-coast-burn trip. The acceleration is an empirical fit, not a
// physical law.
func DeltaV(opts Options) *Calculator {
	base, scale := opts.DeltaVBaseAccel, opts.DeltaVLogScale
	computeAccel := func(args map[string]float64) (float64, error) {
		return physics.HeuristicAcceleration(args["delta_v"], base, scale)
	}
	return &Calculator{
		Name:  "deltav",
		Title: "Delta-V Budget",
		Blurb: "trip times from a delta-v budget and a distance",
		Registry: mustRegistry(
			solver.Definition{
				Name:        "delta_v",
				Primary:     true,
				Min:         solver.Ptr(1e-9),
				MinErr:      "delta-v must be positive",
				Units:       VelocityUnits(),
				DefaultUnit: "km/s",
			},
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
				Deps:        []string{"delta_v"},
				Compute:     computeAccel,
				Units:       AccelUnits(),
				DefaultUnit: "g",
			},
			solver.Definition{
				Name:        "cruise_velocity",
				Deps:        []string{"delta_v"},
				Compute:     computeCruiseVelocity,
				Max:         solver.Ptr(maxSubluminal),
				MaxErr:      "cruise velocity must be below the speed of light",
				Units:       VelocityUnits(),
				DefaultUnit: "km/s",
			},
			solver.Definition{
				Name:        "travel_time",
				Deps:        []string{"acceleration", "distance", "cruise_velocity"},
				Compute:     computeCoastCoordTime,
				Units:       TimeUnits(),
				DefaultUnit: "d",
			},
			solver.Definition{
				Name:        "ship_time",
				Deps:        []string{"acceleration", "distance", "cruise_velocity"},
				Compute:     computeCoastProperTime,
				Units:       TimeUnits(),
				DefaultUnit: "d",
			},
		),
	}
}

// computeCruiseVelocity splits the budget across the acceleration and
// deceleration burns.
func computeCruiseVelocity(args map[string]float64) (float64, error) {
	return args["delta_v"] / 2, nil
}

func computeCoastCoordTime(args map[string]float64) (float64, error) {
	p, err := planCoastFromArgs(args)
	if err != nil {
		return 0, err
	}
	return p.CoordTime, nil
}

func computeCoastProperTime(args map[string]float64) (float64, error) {
	p, err := planCoastFromArgs(args)
	if err != nil {
		return 0, err
	}
	return p.ProperTime, nil
}

func planCoastFromArgs(args map[string]float64) (physics.CoastProfile, error) {
	return physics.PlanCoast(args["acceleration"], args["distance"], args["cruise_velocity"])
}
