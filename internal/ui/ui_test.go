package ui

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/export"
	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	out, _ := io.ReadAll(r)
	r.Close()
	return string(out)
}

func TestResult_FieldsInOrder(t *testing.T) {
	p := NewPlain()
	res := solver.Result{
		Order: []string{"distance", "travel_time", "max_velocity"},
		Fields: map[string]solver.Value{
			"distance":    {Set: true, Base: physics.AU, Display: "1", Unit: "AU"},
			"travel_time": {Set: true, Base: 247022, Display: "2.8590514432528343", Unit: "d"},
		},
		Sweeps: 1,
	}
	output := captureStderr(func() {
		p.Result("Brachistochrone", res)
	})

	checks := []struct {
		name   string
		substr string
	}{
		{"title", "Brachistochrone"},
		{"input field", "distance"},
		{"input value", "1 AU"},
		{"derived label spaces", "travel time"},
		{"derived value rounded", "2.8591 d"},
		{"sweep count", "solved in 1 sweep(s)"},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}

	// Unresolved fields render as a dash, in order, after the resolved ones.
	if !strings.Contains(output, "max velocity") {
		t.Errorf("expected unresolved field label, got:\n%s", output)
	}
	if ti := strings.Index(output, "travel time"); ti > strings.Index(output, "max velocity") {
		t.Errorf("fields out of registry order:\n%s", output)
	}
}

func TestResult_WarningsAndError(t *testing.T) {
	p := NewPlain()
	res := solver.Result{
		Order:  []string{"velocity"},
		Fields: map[string]solver.Value{"velocity": {}},
		Warnings: []solver.FieldError{
			{Field: "gamma", Message: "value is numerically unstable here", Err: physics.ErrUnstable},
		},
		Err: &solver.FieldError{
			Field:   "velocity",
			Message: "velocity must be below the speed of light",
			Err:     solver.ErrValidation,
		},
		Sweeps: 1,
	}
	output := captureStderr(func() {
		p.Result("Relativity", res)
	})

	if !strings.Contains(output, "⚠ gamma: value is numerically unstable here") {
		t.Errorf("expected warning line, got:\n%s", output)
	}
	if !strings.Contains(output, "✗ velocity: velocity must be below the speed of light") {
		t.Errorf("expected error line, got:\n%s", output)
	}
}

func TestResult_UnitlessField(t *testing.T) {
	p := NewPlain()
	res := solver.Result{
		Order: []string{"gamma"},
		Fields: map[string]solver.Value{
			"gamma": {Set: true, Base: 1.25, Display: "1.25"},
		},
		Sweeps: 1,
	}
	output := captureStderr(func() {
		p.Result("Relativity", res)
	})
	if !strings.Contains(output, "1.25") {
		t.Errorf("expected unitless value, got:\n%s", output)
	}
}

func TestRoutes_LinePerRoute(t *testing.T) {
	planets := catalog.Builtin().Planets[:3]
	routes, err := export.BuildRoutes(planets, physics.StandardGravity, physics.StandardGravity/3)
	if err != nil {
		t.Fatalf("BuildRoutes: %v", err)
	}

	p := NewPlain()
	output := captureStderr(func() {
		p.Routes(routes)
	})

	for _, substr := range []string{"Mercury -> Venus", "Mercury -> Earth", "Venus -> Earth", "AU", "burn at 1g"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
	if lines := strings.Count(output, "->"); lines != 3 {
		t.Errorf("expected 3 route lines, got %d:\n%s", lines, output)
	}
}

func TestRoutes_Empty(t *testing.T) {
	p := NewPlain()
	output := captureStderr(func() {
		p.Routes(nil)
	})
	if !strings.Contains(output, "(no routes)") {
		t.Errorf("expected empty notice, got:\n%s", output)
	}
}

func TestJourney_Coasting(t *testing.T) {
	cat := catalog.Builtin()
	ship, ok := cat.LookupShip("nauvoo")
	if !ok {
		t.Fatal("no builtin nauvoo")
	}
	j, err := physics.PlanJourney(ship.Drive(), 11.9*physics.LightYear, ship.CruiseVelocity())
	if err != nil {
		t.Fatalf("PlanJourney: %v", err)
	}
	if !j.Coasting {
		t.Fatal("expected a coasting journey")
	}

	p := NewPlain()
	output := captureStderr(func() {
		p.Journey(ship.Name, 11.9, j)
	})

	for _, substr := range []string{"nauvoo", "11.9 ly", "cruise velocity", "coast", "observer time", "ship time", "mass ratio"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
}

func TestJourney_NeverReachesCruise(t *testing.T) {
	cat := catalog.Builtin()
	ship, ok := cat.LookupShip("nauvoo")
	if !ok {
		t.Fatal("no builtin nauvoo")
	}
	// Over a short hop the ship must flip before hitting interstellar cruise.
	j, err := physics.PlanJourney(ship.Drive(), 0.5*physics.AU, ship.CruiseVelocity())
	if err != nil {
		t.Fatalf("PlanJourney: %v", err)
	}
	if j.Coasting {
		t.Fatal("expected a continuous-burn journey")
	}

	p := NewPlain()
	output := captureStderr(func() {
		p.Journey(ship.Name, 0.5*physics.AU/physics.LightYear, j)
	})
	if !strings.Contains(output, "never reaches cruise velocity") {
		t.Errorf("expected continuous-burn notice, got:\n%s", output)
	}
}

func TestEfficiency_RowPerEfficiency(t *testing.T) {
	cat := catalog.Builtin()
	ship, ok := cat.LookupShip("nauvoo")
	if !ok {
		t.Fatal("no builtin nauvoo")
	}
	analysis, err := export.BuildEfficiencyAnalysis(ship, 11.9, []float64{0.0065, 0.2})
	if err != nil {
		t.Fatalf("BuildEfficiencyAnalysis: %v", err)
	}

	p := NewPlain()
	output := captureStderr(func() {
		p.Efficiency(analysis)
	})
	for _, substr := range []string{"efficiency analysis: nauvoo", "0.65%", "20%", "reactor", "waste"} {
		if !strings.Contains(output, substr) {
			t.Errorf("expected output to contain %q, got:\n%s", substr, output)
		}
	}
}

func TestCatalogListings(t *testing.T) {
	cat := catalog.Builtin()
	p := NewPlain()

	output := captureStderr(func() {
		p.Planets(cat.Planets)
	})
	if !strings.Contains(output, "Mercury") || !strings.Contains(output, "Neptune") {
		t.Errorf("expected all planets listed, got:\n%s", output)
	}

	output = captureStderr(func() {
		p.Stars(cat.Stars)
	})
	if !strings.Contains(output, "Tau Ceti") || !strings.Contains(output, "11.9") {
		t.Errorf("expected star listing, got:\n%s", output)
	}

	output = captureStderr(func() {
		p.Ships(cat.Ships)
	})
	if !strings.Contains(output, "nauvoo") || !strings.Contains(output, "144.0 MN") {
		t.Errorf("expected ship listing, got:\n%s", output)
	}
}

func TestCatalogIssues_Valid(t *testing.T) {
	p := NewPlain()
	output := captureStderr(func() {
		p.CatalogIssues(".brachi/catalog.toml", nil)
	})
	if !strings.Contains(output, "is valid") {
		t.Errorf("expected valid notice, got:\n%s", output)
	}
}

func TestCatalogIssues_Defects(t *testing.T) {
	p := NewPlain()
	errs := []error{
		errors.New("planet/vesta: perihelion must be positive"),
		errors.New("ship/pella: efficiency 0 outside (0, 1]"),
	}
	output := captureStderr(func() {
		p.CatalogIssues("catalog.toml", errs)
	})
	if !strings.Contains(output, "2 issue(s)") {
		t.Errorf("expected issue count, got:\n%s", output)
	}
	for _, e := range errs {
		if !strings.Contains(output, e.Error()) {
			t.Errorf("expected output to contain %q, got:\n%s", e.Error(), output)
		}
	}
}

func TestPrinterColorToggle(t *testing.T) {
	plain := captureStderr(func() {
		NewPlain().Saved("exports/routes.csv")
	})
	if strings.Contains(plain, "\033[") {
		t.Errorf("plain printer emitted escape codes: %q", plain)
	}
	if !strings.Contains(plain, "✓ wrote exports/routes.csv") {
		t.Errorf("plain printer lost content: %q", plain)
	}

	colored := captureStderr(func() {
		New().Saved("exports/routes.csv")
	})
	if !strings.Contains(colored, "\033[") {
		t.Errorf("default printer emitted no escape codes: %q", colored)
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"0.119", "0.119"},
		{"2.8590514432528343", "2.8591"},
		{"1211.2345678", "1,211.2346"},
		{"247022.1", "247,022.1"},
		{"1e-09", "1e-09"},
		{"9.461e+15", "9.461e+15"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got := formatMagnitude(solver.Value{Set: true, Display: tt.display})
		if got != tt.want {
			t.Errorf("formatMagnitude(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}
