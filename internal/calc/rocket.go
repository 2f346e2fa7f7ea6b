package calc

import (
	"errors"

	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

var errNeedTwoOfThree = errors.New("need at least two of distance, observer time, and max velocity")

// Rocket builds the relativistic rocket calculator: a flip-and-burn trip at
// constant proper acceleration, described by distance, observer time,
// acceleration, and peak velocity, with energy and propellant sizing for a
// given ship mass. Any sufficient pair of trip fields determines the rest,
// so every trip field is computable.
func Rocket(opts Options) *Calculator {
	return &Calculator{
		Name:  "rocket",
		Title: "Relativistic Rocket",
		Blurb: "constant-acceleration trips with energy and fuel budgets",
		Presets: []Preset{
			{Field: "fuel_conversion_rate", Raw: formatPreset(opts.FuelConversionRate)},
		},
		Registry: mustRegistry(
			solver.Definition{
				Name:        "distance",
				Deps:        []string{"max_velocity", "observer_time"},
				Compute:     computeRocketDistance,
				Primary:     true,
				Min:         solver.Ptr(1),
				MinErr:      "distance must be at least 1 meter",
				Units:       DistanceUnits(),
				DefaultUnit: "ly",
			},
			solver.Definition{
				Name:        "observer_time",
				Deps:        []string{"acceleration", "distance"},
				Compute:     computeRocketObserverTime,
				Primary:     true,
				Min:         solver.Ptr(1),
				MinErr:      "observer time must be at least 1 second",
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "acceleration",
				Deps:        []string{"distance", "observer_time", "max_velocity"},
				Compute:     computeRocketAcceleration,
				MaxMissing:  1,
				Min:         solver.Ptr(1e-9),
				MinErr:      "acceleration must be positive",
				Units:       AccelUnits(),
				DefaultUnit: "m/s²",
			},
			solver.Definition{
				Name:        "max_velocity",
				Deps:        []string{"acceleration", "observer_time"},
				Compute:     computeRocketMaxVelocity,
				Min:         solver.Ptr(0),
				Max:         solver.Ptr(maxSubluminal),
				MaxErr:      "max velocity must be below the speed of light",
				Units:       VelocityUnits(),
				DefaultUnit: "c",
			},
			solver.Definition{
				Name:        "traveler_time",
				Deps:        []string{"observer_time", "max_velocity"},
				Compute:     computeRocketTravelerTime,
				Units:       TimeUnits(),
				DefaultUnit: "yr",
			},
			solver.Definition{
				Name:        "spacecraft_mass",
				Primary:     true,
				Min:         solver.Ptr(1e-3),
				MinErr:      "spacecraft mass must be positive",
				Units:       MassUnits(),
				DefaultUnit: "kg",
			},
			solver.Definition{
				Name:    "fuel_conversion_rate",
				Deps:    []string{"max_velocity", "spacecraft_mass", "fuel_mass"},
				Compute: computeRocketConversionRate,
				Primary: true,
				Min:     solver.Ptr(1e-9),
				MinErr:  "conversion rate must be positive",
				Max:     solver.Ptr(1),
				MaxErr:  "conversion rate cannot exceed 1",
			},
			solver.Definition{
				Name:        "fuel_mass",
				Deps:        []string{"max_velocity", "spacecraft_mass", "fuel_conversion_rate"},
				Compute:     computeRocketFuelMass,
				Units:       MassUnits(),
				DefaultUnit: "kg",
			},
			solver.Definition{
				Name:        "energy",
				Deps:        []string{"spacecraft_mass", "max_velocity"},
				Compute:     computeRocketEnergy,
				Units:       EnergyUnits(),
				DefaultUnit: "J",
			},
		),
	}
}

func computeRocketDistance(args map[string]float64) (float64, error) {
	return physics.Distance(args["max_velocity"], args["observer_time"])
}

func computeRocketObserverTime(args map[string]float64) (float64, error) {
	return physics.ObserverTime(args["acceleration"], args["distance"])
}

// computeRocketAcceleration picks among the reduced forms by which
// dependency pair survived the solve; distance and time win when all three
// are present.
func computeRocketAcceleration(args map[string]float64) (float64, error) {
	d, haveD := args["distance"]
	t, haveT := args["observer_time"]
	v, haveV := args["max_velocity"]
	switch {
	case haveD && haveT:
		return physics.AccelFromDistanceTime(d, t)
	case haveV && haveD:
		return physics.AccelFromVelocityDistance(v, d)
	case haveV && haveT:
		return physics.AccelFromVelocityTime(v, t)
	default:
		return 0, errNeedTwoOfThree
	}
}

func computeRocketMaxVelocity(args map[string]float64) (float64, error) {
	t := args["observer_time"]
	return physics.VelocityAtObserverTime(args["acceleration"], t/2, t)
}

func computeRocketTravelerTime(args map[string]float64) (float64, error) {
	return physics.TravelerTimeAt(args["observer_time"], args["max_velocity"])
}

func computeRocketConversionRate(args map[string]float64) (float64, error) {
	return physics.FuelConversionRate(args["max_velocity"], args["spacecraft_mass"], args["fuel_mass"])
}

func computeRocketFuelMass(args map[string]float64) (float64, error) {
	return physics.FuelMass(args["max_velocity"], args["spacecraft_mass"], args["fuel_conversion_rate"])
}

func computeRocketEnergy(args map[string]float64) (float64, error) {
	return physics.Energy(args["spacecraft_mass"], args["max_velocity"])
}
