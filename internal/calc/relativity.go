package calc

import (
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// Relativity builds the time dilation and length contraction calculator.
// Each effect is a mutually dependent pair: enter either frame's value and
// the solver fills in the other, so the registry is deliberately cyclic.
func Relativity() *Calculator {
	return &Calculator{
		Name:  "relativity",
		Title: "Time Dilation & Length Contraction",
		Blurb: "convert times and lengths between frames at a given velocity",
		Registry: mustRegistry(
			solver.Definition{
				Name:        "velocity",
				Primary:     true,
				Min:         solver.Ptr(0),
				MinErr:      "velocity cannot be negative",
				Max:         solver.Ptr(maxSubluminal),
				MaxErr:      "velocity must be below the speed of light",
				Units:       VelocityUnits(),
				DefaultUnit: "c",
			},
			solver.Definition{
				Name:    "gamma",
				Deps:    []string{"velocity"},
				Compute: computeGamma,
			},
			solver.Definition{
				Name:        "earth_time",
				Deps:        []string{"velocity", "ship_time"},
				Compute:     computeEarthTime,
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "ship_time",
				Deps:        []string{"velocity", "earth_time"},
				Compute:     computeShipTime,
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "proper_length",
				Deps:        []string{"velocity", "observed_length"},
				Compute:     computeProperLength,
				Units:       LengthUnits(),
				DefaultUnit: "m",
			},
			solver.Definition{
				Name:        "observed_length",
				Deps:        []string{"velocity", "proper_length"},
				Compute:     computeObservedLength,
				Units:       LengthUnits(),
				DefaultUnit: "m",
			},
		),
	}
}

func computeShipTime(args map[string]float64) (float64, error) {
	return physics.TravelerTimeAt(args["earth_time"], args["velocity"])
}

func computeEarthTime(args map[string]float64) (float64, error) {
	g, err := physics.Gamma(args["velocity"])
	if err != nil {
		return 0, err
	}
	return args["ship_time"] * g, nil
}

func computeObservedLength(args map[string]float64) (float64, error) {
	return physics.LengthContraction(args["proper_length"], args["velocity"])
}

func computeProperLength(args map[string]float64) (float64, error) {
	return physics.LengthExpansion(args["observed_length"], args["velocity"])
}
