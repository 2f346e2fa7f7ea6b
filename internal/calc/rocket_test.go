package calc

import (
	"errors"
	"testing"

	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

func TestRocket_DistanceAndTimeDeriveTheRest(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"distance":      {Raw: "4.3", Unit: "ly"},
		"observer_time": {Raw: "5.9", Unit: "yr"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	d := 4.3 * physics.LightYear
	tt := 5.9 * physics.SecondsPerYear
	wantA, err := physics.AccelFromDistanceTime(d, tt)
	if err != nil {
		t.Fatal(err)
	}
	wantV, err := physics.VelocityAtObserverTime(wantA, tt/2, tt)
	if err != nil {
		t.Fatal(err)
	}
	wantTau, err := physics.TravelerTimeAt(tt, wantV)
	if err != nil {
		t.Fatal(err)
	}

	for name, want := range map[string]float64{
		"acceleration":  wantA,
		"max_velocity":  wantV,
		"traveler_time": wantTau,
	} {
		v := mustValue(t, res, name)
		if !approxEqual(v.Base, want) {
			t.Errorf("%s = %g, want %g", name, v.Base, want)
		}
	}

	// No mass was given, so the fuel chain stays unset without an error.
	if res.Resolved("fuel_mass") || res.Resolved("energy") {
		t.Error("fuel fields resolved without a spacecraft mass")
	}
	if tau := res.Value("traveler_time"); tau.Base >= tt {
		t.Errorf("traveler time %g not dilated below observer time %g", tau.Base, tt)
	}
}

func TestRocket_AccelerationAndTimeDeriveDistance(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"acceleration":  {Raw: "9.8"},
		"observer_time": {Raw: "2", Unit: "yr"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	tt := 2 * physics.SecondsPerYear
	wantV, err := physics.VelocityAtObserverTime(9.8, tt/2, tt)
	if err != nil {
		t.Fatal(err)
	}
	wantD, err := physics.Distance(wantV, tt)
	if err != nil {
		t.Fatal(err)
	}
	if v := mustValue(t, res, "max_velocity"); !approxEqual(v.Base, wantV) {
		t.Errorf("max_velocity = %g, want %g", v.Base, wantV)
	}
	if d := mustValue(t, res, "distance"); !approxEqual(d.Base, wantD) {
		t.Errorf("distance = %g, want %g", d.Base, wantD)
	}
}

func TestRocket_AccelerationAndDistanceDeriveTime(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"acceleration": {Raw: "9.8"},
		"distance":     {Raw: "1", Unit: "ly"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	wantT, err := physics.ObserverTime(9.8, physics.LightYear)
	if err != nil {
		t.Fatal(err)
	}
	if v := mustValue(t, res, "observer_time"); !approxEqual(v.Base, wantT) {
		t.Errorf("observer_time = %g, want %g", v.Base, wantT)
	}
	if !res.Resolved("max_velocity") || !res.Resolved("traveler_time") {
		t.Error("velocity chain did not resolve from derived observer time")
	}
}

func TestRocket_VelocityAndDistanceDeriveAcceleration(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"max_velocity": {Raw: "0.5", Unit: "c"},
		"distance":     {Raw: "2", Unit: "ly"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	v := 0.5 * physics.C
	wantA, err := physics.AccelFromVelocityDistance(v, 2*physics.LightYear)
	if err != nil {
		t.Fatal(err)
	}
	if a := mustValue(t, res, "acceleration"); !approxEqual(a.Base, wantA) {
		t.Errorf("acceleration = %g, want %g", a.Base, wantA)
	}
	// The user's velocity entry is authoritative and never recomputed.
	if got := mustValue(t, res, "max_velocity"); !approxEqual(got.Base, v) {
		t.Errorf("max_velocity = %g, want the entered %g", got.Base, v)
	}
}

func TestRocket_FuelSizingWithPresetRate(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"distance":        {Raw: "4.3", Unit: "ly"},
		"observer_time":   {Raw: "5.9", Unit: "yr"},
		"spacecraft_mass": {Raw: "78", Unit: "t"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	v := mustValue(t, res, "max_velocity")
	wantFuel, err := physics.FuelMass(v.Base, 78000, 0.008)
	if err != nil {
		t.Fatal(err)
	}
	wantEnergy, err := physics.Energy(78000, v.Base)
	if err != nil {
		t.Fatal(err)
	}
	if fuel := mustValue(t, res, "fuel_mass"); !approxEqual(fuel.Base, wantFuel) {
		t.Errorf("fuel_mass = %g, want %g", fuel.Base, wantFuel)
	}
	if e := mustValue(t, res, "energy"); !approxEqual(e.Base, wantEnergy) {
		t.Errorf("energy = %g, want %g", e.Base, wantEnergy)
	}
}

func TestRocket_ConversionRateFromKnownFuel(t *testing.T) {
	t.Parallel()

	v := 0.1 * physics.C
	fuel, err := physics.FuelMass(v, 1000, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"max_velocity":         {Raw: "0.1", Unit: "c"},
		"spacecraft_mass":      {Raw: "1000", Unit: "kg"},
		"fuel_mass":            {Raw: formatPreset(fuel), Unit: "kg"},
		"fuel_conversion_rate": {},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if rate := mustValue(t, res, "fuel_conversion_rate"); !approxEqual(rate.Base, 0.25) {
		t.Errorf("fuel_conversion_rate = %g, want 0.25", rate.Base)
	}

	// Velocity alone cannot pin down the trip fields.
	for _, name := range []string{"distance", "observer_time", "acceleration"} {
		if res.Resolved(name) {
			t.Errorf("%s resolved from velocity alone", name)
		}
	}
}

func TestRocket_BelowMinimumDistanceIsTerminal(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"distance":      {Raw: "0.5", Unit: "m"},
		"observer_time": {Raw: "1", Unit: "yr"},
	})
	if res.Err == nil {
		t.Fatal("expected a validation error")
	}
	if res.Err.Field != "distance" {
		t.Errorf("error field %q, want distance", res.Err.Field)
	}
	if res.Err.Message != "distance must be at least 1 meter" {
		t.Errorf("error message %q", res.Err.Message)
	}
	if !errors.Is(res.Err, solver.ErrValidation) {
		t.Errorf("error %v does not wrap ErrValidation", res.Err)
	}
	for _, name := range []string{"acceleration", "max_velocity", "traveler_time"} {
		if res.Resolved(name) {
			t.Errorf("%s resolved despite terminal validation error", name)
		}
	}
}

func TestRocket_SuperluminalVelocityRejected(t *testing.T) {
	t.Parallel()

	c := Rocket(DefaultOptions())
	res := resolve(t, c, map[string]solver.Input{
		"max_velocity": {Raw: "1.5", Unit: "c"},
	})
	if res.Err == nil {
		t.Fatal("expected a validation error")
	}
	if res.Err.Message != "max velocity must be below the speed of light" {
		t.Errorf("error message %q", res.Err.Message)
	}
}
