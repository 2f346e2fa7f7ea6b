package physics

import (
	"errors"
	"math"
	"testing"
)

const floatTol = 1e-9

// approxEqual compares with relative tolerance, falling back to absolute
// tolerance near zero.
func approxEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= floatTol {
		return true
	}
	return diff <= floatTol*math.Max(math.Abs(a), math.Abs(b))
}

// approxWithin compares with an explicit relative tolerance.
func approxWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

// --- Velocity tests ---

func TestVelocity_Classical(t *testing.T) {
	t.Parallel()
	if got := Velocity(9.8, 10); got != 98 {
		t.Errorf("Velocity(9.8, 10) = %f, want 98", got)
	}
}

func TestVelocityAtObserverTime_Symmetry(t *testing.T) {
	t.Parallel()
	const a, total = 9.8, 1e7

	start, err := VelocityAtObserverTime(a, 0, total)
	if err != nil {
		t.Fatal(err)
	}
	if start != 0 {
		t.Errorf("velocity at t=0 = %f, want 0", start)
	}
	end, err := VelocityAtObserverTime(a, total, total)
	if err != nil {
		t.Fatal(err)
	}
	if end != 0 {
		t.Errorf("velocity at t=total = %f, want 0", end)
	}

	// The deceleration leg mirrors the acceleration leg.
	for _, frac := range []float64{0.1, 0.25, 0.4} {
		up, err := VelocityAtObserverTime(a, frac*total, total)
		if err != nil {
			t.Fatal(err)
		}
		down, err := VelocityAtObserverTime(a, (1-frac)*total, total)
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(up, down) {
			t.Errorf("frac %f: v=%f on the way up, %f on the way down", frac, up, down)
		}
	}

	// Velocity peaks at the midpoint.
	peak, err := VelocityAtObserverTime(a, total/2, total)
	if err != nil {
		t.Fatal(err)
	}
	quarter, err := VelocityAtObserverTime(a, total/4, total)
	if err != nil {
		t.Fatal(err)
	}
	if peak <= quarter {
		t.Errorf("midpoint velocity %f not above quarter-point velocity %f", peak, quarter)
	}
	if peak >= C {
		t.Errorf("midpoint velocity %f not below c", peak)
	}
}

func TestVelocityAtObserverTime_Domain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		a, elapsed, total float64
	}{
		{"zero acceleration", 0, 1, 10},
		{"negative acceleration", -9.8, 1, 10},
		{"zero total", 9.8, 0, 0},
		{"negative elapsed", 9.8, -1, 10},
		{"elapsed past total", 9.8, 11, 10},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := VelocityAtObserverTime(tc.a, tc.elapsed, tc.total)
			if !errors.Is(err, ErrDomain) {
				t.Errorf("got err=%v, want ErrDomain", err)
			}
		})
	}
}

// --- Distance / time inversion tests ---

func TestObserverTime_RoundTrip(t *testing.T) {
	t.Parallel()

	// a = 9.8 m/s², T = 10 years: midpoint velocity must be subluminal, and
	// distance followed by the observer-time inversion must return T within
	// 1e-6 relative error.
	const a = 9.8
	total := 10 * SecondsPerYear

	v, err := VelocityAtObserverTime(a, total/2, total)
	if err != nil {
		t.Fatal(err)
	}
	if v <= 0 || v >= C {
		t.Fatalf("midpoint velocity %f outside (0, c)", v)
	}

	d, err := Distance(v, total)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ObserverTime(a, d)
	if err != nil {
		t.Fatal(err)
	}
	if !approxWithin(back, total, 1e-6) {
		t.Errorf("ObserverTime round trip = %f, want %f", back, total)
	}
}

func TestObserverTime_MatchesClassicalForSmallTrips(t *testing.T) {
	t.Parallel()

	// For a·d/c² far below machine precision the relativistic inversion must
	// reproduce the classical 2·sqrt(d/a) instead of cancelling to garbage.
	tests := []struct {
		name string
		a, d float64
	}{
		{"one meter", 9.8, 1},
		{"commute", 9.8, 1e4},
		{"continental", 9.8, 1e6},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ObserverTime(tc.a, tc.d)
			if err != nil {
				t.Fatal(err)
			}
			want := 2 * math.Sqrt(tc.d/tc.a)
			if !approxEqual(got, want) {
				t.Errorf("ObserverTime(%g, %g) = %g, want classical %g", tc.a, tc.d, got, want)
			}
		})
	}
}

func TestDistance_Domain(t *testing.T) {
	t.Parallel()

	if _, err := Distance(C, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("v=c: got err=%v, want ErrDomain", err)
	}
	if _, err := Distance(-1, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("v<0: got err=%v, want ErrDomain", err)
	}
	if _, err := Distance(1e6, -1); !errors.Is(err, ErrDomain) {
		t.Errorf("t<0: got err=%v, want ErrDomain", err)
	}
	d, err := Distance(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Distance(0, 100) = %f, want 0", d)
	}
}

func TestTravelerTime_BelowObserverTime(t *testing.T) {
	t.Parallel()

	// One light year at 1g is deeply relativistic: the ship clock must lag.
	const a = StandardGravity
	obs, err := ObserverTime(a, LightYear)
	if err != nil {
		t.Fatal(err)
	}
	ship, err := TravelerTime(a, LightYear)
	if err != nil {
		t.Fatal(err)
	}
	if ship >= obs {
		t.Errorf("traveler time %f not below observer time %f", ship, obs)
	}

	// A one-kilometer hop is Newtonian: the clocks agree to double precision.
	obs, err = ObserverTime(a, 1000)
	if err != nil {
		t.Fatal(err)
	}
	ship, err = TravelerTime(a, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(ship, obs) {
		t.Errorf("short trip: traveler %g, observer %g, want equal", ship, obs)
	}
}

func TestTravelerTimeAt(t *testing.T) {
	t.Parallel()

	got, err := TravelerTimeAt(100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 100 {
		t.Errorf("at rest: traveler time %f, want 100", got)
	}

	// At 0.6c the dilation factor is exactly 0.8.
	got, err = TravelerTimeAt(100, 0.6*C)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got, 80) {
		t.Errorf("at 0.6c: traveler time %f, want 80", got)
	}

	if _, err := TravelerTimeAt(100, C); !errors.Is(err, ErrDomain) {
		t.Errorf("v=c: got err=%v, want ErrDomain", err)
	}
}

// --- Reduced acceleration forms ---

func TestAccelReducedForms_Consistent(t *testing.T) {
	t.Parallel()

	// A classical flip-and-burn trip determines (a, d, T, v) together; each
	// reduced form must recover the same acceleration from its pair.
	const a, d = 9.8, 1.496e11
	total, err := BrachistochroneTime(d, a)
	if err != nil {
		t.Fatal(err)
	}
	peak := PeakVelocity(a, total)

	fromDT, err := AccelFromDistanceTime(d, total)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(fromDT, a) {
		t.Errorf("AccelFromDistanceTime = %f, want %f", fromDT, a)
	}

	fromVD, err := AccelFromVelocityDistance(peak, d)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(fromVD, a) {
		t.Errorf("AccelFromVelocityDistance = %f, want %f", fromVD, a)
	}

	fromVT, err := AccelFromVelocityTime(peak, total)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(fromVT, a) {
		t.Errorf("AccelFromVelocityTime = %f, want %f", fromVT, a)
	}
}

func TestAccelReducedForms_Domain(t *testing.T) {
	t.Parallel()

	if _, err := AccelFromDistanceTime(0, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("zero distance: got err=%v, want ErrDomain", err)
	}
	if _, err := AccelFromDistanceTime(10, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("zero time: got err=%v, want ErrDomain", err)
	}
	if _, err := AccelFromVelocityDistance(0, 10); !errors.Is(err, ErrDomain) {
		t.Errorf("zero velocity: got err=%v, want ErrDomain", err)
	}
	if _, err := AccelFromVelocityTime(10, -1); !errors.Is(err, ErrDomain) {
		t.Errorf("negative time: got err=%v, want ErrDomain", err)
	}
}

// --- Lorentz factor tests ---

func TestGamma_Properties(t *testing.T) {
	t.Parallel()

	g, err := Gamma(0)
	if err != nil {
		t.Fatal(err)
	}
	if g != 1 {
		t.Errorf("Gamma(0) = %f, want 1", g)
	}

	// Monotonically increasing in v, always at least 1.
	prev := 0.0
	for _, beta := range []float64{0, 0.1, 0.5, 0.9, 0.99, 0.9999} {
		g, err := Gamma(beta * C)
		if err != nil {
			t.Fatalf("beta %f: %v", beta, err)
		}
		if g < 1 {
			t.Errorf("Gamma(%fc) = %f, below 1", beta, g)
		}
		if g <= prev {
			t.Errorf("Gamma(%fc) = %f, not above previous %f", beta, g, prev)
		}
		prev = g
	}

	// 0.6c is the 3-4-5 triangle: gamma exactly 1.25.
	g, err = Gamma(0.6 * C)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(g, 1.25) {
		t.Errorf("Gamma(0.6c) = %f, want 1.25", g)
	}

	if _, err := Gamma(C); !errors.Is(err, ErrDomain) {
		t.Errorf("v=c: got err=%v, want ErrDomain", err)
	}
	if _, err := Gamma(-1); !errors.Is(err, ErrDomain) {
		t.Errorf("v<0: got err=%v, want ErrDomain", err)
	}
}

// --- Energy and fuel tests ---

func TestEnergy_RoundTripBudget(t *testing.T) {
	t.Parallel()

	// At 0.6c, gamma is 1.25, so the full budget is 2·m·c²·0.25.
	const m = 1000.0
	got, err := Energy(m, 0.6*C)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * m * C * C * 0.25
	if !approxEqual(got, want) {
		t.Errorf("Energy(%f, 0.6c) = %g, want %g", m, got, want)
	}

	got, err = Energy(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Energy at rest = %g, want 0", got)
	}

	if _, err := Energy(0, 1e6); !errors.Is(err, ErrDomain) {
		t.Errorf("zero mass: got err=%v, want ErrDomain", err)
	}
}

func TestFuelMass_ConversionRateInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		beta float64
		mass float64
		rate float64
	}{
		{"slow freighter", 0.001, 2.5e7, 0.008},
		{"fast courier", 0.119, 1.35e7, 0.0065},
		{"torch ship", 0.3, 1e6, 0.2},
		{"ideal drive", 0.9, 5e4, 1.0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fuel, err := FuelMass(tc.beta*C, tc.mass, tc.rate)
			if err != nil {
				t.Fatal(err)
			}
			if fuel <= 0 {
				t.Fatalf("fuel mass %g, want positive", fuel)
			}
			back, err := FuelConversionRate(tc.beta*C, tc.mass, fuel)
			if err != nil {
				t.Fatal(err)
			}
			if !approxEqual(back, tc.rate) {
				t.Errorf("conversion rate round trip = %g, want %g", back, tc.rate)
			}
		})
	}
}

func TestFuelMass_Domain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		v, mass, rate float64
	}{
		{"rate zero", 1e6, 1e5, 0},
		{"rate above one", 1e6, 1e5, 1.5},
		{"zero mass", 1e6, 0, 0.5},
		{"superluminal", C, 1e5, 0.5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := FuelMass(tc.v, tc.mass, tc.rate); !errors.Is(err, ErrDomain) {
				t.Errorf("got err=%v, want ErrDomain", err)
			}
		})
	}
}

// --- Length contraction tests ---

func TestLengthContraction_RoundTrip(t *testing.T) {
	t.Parallel()

	const proper = 482.0
	for _, beta := range []float64{0, 0.1, 0.5, 0.9, 0.999} {
		v := beta * C
		observed, err := LengthContraction(proper, v)
		if err != nil {
			t.Fatalf("beta %f: %v", beta, err)
		}
		if observed > proper {
			t.Errorf("beta %f: observed length %f above proper %f", beta, observed, proper)
		}
		back, err := LengthExpansion(observed, v)
		if err != nil {
			t.Fatalf("beta %f: %v", beta, err)
		}
		if !approxEqual(back, proper) {
			t.Errorf("beta %f: round trip %f, want %f", beta, back, proper)
		}
	}

	if _, err := LengthContraction(-1, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("negative length: got err=%v, want ErrDomain", err)
	}
	if _, err := LengthExpansion(100, C); !errors.Is(err, ErrDomain) {
		t.Errorf("v=c: got err=%v, want ErrDomain", err)
	}
}
