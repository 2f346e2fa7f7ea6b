// Package calc assembles the field registries behind each calculator. A
// Calculator pairs display metadata with a solver.Registry whose compute
// functions delegate to the physics package; the CLI and TUI stay thin,
// feeding raw input into a session and rendering whatever resolves.
package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jveigel/brachistochrone-calculators/internal/physics"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// maxSubluminal is the largest representable velocity below c, used as the
// inclusive upper bound on velocity fields.
var maxSubluminal = math.Nextafter(physics.C, 0)

// Calculator is one calculator variant: a named field registry plus the
// metadata the command index and home screen display.
type Calculator struct {
	// Name is the stable slug used by subcommands and lookups.
	Name string
	// Title is the human-readable name.
	Title string
	// Blurb is a one-line description for lists.
	Blurb string
	// Registry holds the field definitions, in display order.
	Registry *solver.Registry
	// Presets seed form fields with editable starting values.
	Presets []Preset
}

// Preset seeds a field with ordinary user input rather than a registry
// default: it is trusted as a dependency like any typed value, and clearing
// it lets the solver derive the field instead (a conversion rate from a
// known fuel mass, say).
type Preset struct {
	Field string
	Raw   string
}

// Session starts a fresh solver session over the calculator's registry with
// presets applied. Preset fields are fixed at compile time, so a bad one is
// a programming mistake and panics like a bad registry.
func (c *Calculator) Session(opts solver.Options) *solver.Session {
	sess := solver.NewSession(c.Registry, opts)
	for _, p := range c.Presets {
		if err := sess.SetInput(p.Field, p.Raw, ""); err != nil {
			panic(fmt.Sprintf("calc: bad preset %s: %v", p.Field, err))
		}
	}
	return sess
}

// Resolve runs a one-shot pass with presets filling any field the caller
// left out of inputs. An explicit zero-value Input suppresses a preset, for
// callers that want the solver to derive the field instead.
func (c *Calculator) Resolve(inputs map[string]solver.Input, opts solver.Options) (solver.Result, error) {
	if len(c.Presets) == 0 {
		return solver.Resolve(c.Registry, inputs, opts)
	}
	merged := make(map[string]solver.Input, len(inputs)+len(c.Presets))
	for k, v := range inputs {
		merged[k] = v
	}
	for _, p := range c.Presets {
		if _, ok := merged[p.Field]; !ok {
			merged[p.Field] = solver.Input{Raw: p.Raw}
		}
	}
	return solver.Resolve(c.Registry, merged, opts)
}

// Options carries the tunable constants the registries bake into their
// compute functions and presets. Values normally come from configuration.
type Options struct {
	// FuelConversionRate is the preset mass-to-energy conversion rate for
	// the rocket calculator's propellant sizing.
	FuelConversionRate float64

	// DefaultAccel is the default acceleration of the brachistochrone
	// calculators in m/s².
	DefaultAccel float64

	// DeltaVBaseAccel and DeltaVLogScale parameterize the delta-v
	// calculator's acceleration curve: the acceleration at the reference
	// budget and its growth per decade above it.
	DeltaVBaseAccel float64
	DeltaVLogScale  float64
}

// DefaultOptions returns the constants used when configuration does not
// override them.
func DefaultOptions() Options {
	return Options{
		FuelConversionRate: 0.008,
		DefaultAccel:       physics.StandardGravity,
		DeltaVBaseAccel:    physics.StandardGravity / 3,
		DeltaVLogScale:     0.5,
	}
}

// All returns every calculator in display order.
func All(opts Options) []*Calculator {
	return []*Calculator{
		Rocket(opts),
		Brachistochrone(opts),
		RelativisticBrachistochrone(opts),
		Relativity(),
		DeltaV(opts),
	}
}

// Lookup finds a calculator by slug.
func Lookup(name string, opts Options) (*Calculator, bool) {
	for _, c := range All(opts) {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// mustRegistry builds a registry whose definitions are fixed at compile
// time. Construction errors are programming mistakes, not runtime input.
func mustRegistry(defs ...solver.Definition) *solver.Registry {
	reg, err := solver.NewRegistry(defs...)
	if err != nil {
		panic(fmt.Sprintf("calc: bad registry: %v", err))
	}
	return reg
}

func formatPreset(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// computeGamma derives the Lorentz factor from a field named velocity or
// peak_velocity, whichever the registry wired in.
func computeGamma(args map[string]float64) (float64, error) {
	for _, key := range []string{"velocity", "peak_velocity"} {
		if v, ok := args[key]; ok {
			return physics.Gamma(v)
		}
	}
	return 0, fmt.Errorf("gamma: no velocity dependency")
}

// Unit tables shared by the calculator registries and the CLI flag parsers.
// Factors convert one display unit to the base unit.

func DistanceUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "m", Factor: 1},
		{Name: "km", Factor: 1e3},
		{Name: "AU", Factor: physics.AU},
		{Name: "ly", Factor: physics.LightYear},
	}
}

func LengthUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "m", Factor: 1},
		{Name: "km", Factor: 1e3},
	}
}

func TimeUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "s", Factor: 1},
		{Name: "h", Factor: physics.SecondsPerHour},
		{Name: "d", Factor: physics.SecondsPerDay},
		{Name: "yr", Factor: physics.SecondsPerYear},
	}
}

func VelocityUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "m/s", Factor: 1},
		{Name: "km/s", Factor: 1e3},
		{Name: "c", Factor: physics.C},
	}
}

func AccelUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "m/s²", Factor: 1},
		{Name: "g", Factor: physics.StandardGravity},
	}
}

func MassUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "kg", Factor: 1},
		{Name: "t", Factor: 1e3},
	}
}

func EnergyUnits() []solver.Unit {
	return []solver.Unit{
		{Name: "J", Factor: 1},
		{Name: "PJ", Factor: 1e15},
	}
}
