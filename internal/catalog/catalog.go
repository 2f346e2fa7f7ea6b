// Package catalog holds the bodies and ships the route and drive commands
// work from: planetary orbits, nearby stars, and torch-drive presets. The
// builtin set ships with the binary; a TOML file can override entries by
// name or add new ones.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jveigel/brachistochrone-calculators/internal/physics"
)

// DefaultPath is the conventional location for the catalog override file.
const DefaultPath = ".brachi/catalog.toml"

// Planet is a body with an elliptical heliocentric orbit.
type Planet struct {
	Name         string  `toml:"name"`
	PerihelionAU float64 `toml:"perihelion_au"`
	AphelionAU   float64 `toml:"aphelion_au"`
}

// Orbit returns the orbital span in the AU units the orbit math works in.
func (p Planet) Orbit() physics.Orbit {
	return physics.Orbit{Perihelion: p.PerihelionAU, Aphelion: p.AphelionAU}
}

// Star is an interstellar destination.
type Star struct {
	Name       string  `toml:"name"`
	DistanceLY float64 `toml:"distance_ly"`
}

// Distance returns the separation in meters.
func (s Star) Distance() float64 {
	return s.DistanceLY * physics.LightYear
}

// Ship is a torch-drive preset.
type Ship struct {
	Name             string  `toml:"name"`
	ThrustPerEngineN float64 `toml:"thrust_per_engine_n"`
	Engines          int     `toml:"engines"`
	ExhaustVelocityC float64 `toml:"exhaust_velocity_c"`
	DryMassKg        float64 `toml:"dry_mass_kg"`
	Efficiency       float64 `toml:"efficiency"`
	CruiseVelocityC  float64 `toml:"cruise_velocity_c"`
}

// Drive converts the preset to drive parameters in base units.
func (s Ship) Drive() physics.Drive {
	return physics.Drive{
		ThrustPerEngine: s.ThrustPerEngineN,
		Engines:         s.Engines,
		ExhaustVelocity: s.ExhaustVelocityC * physics.C,
		DryMass:         s.DryMassKg,
		Efficiency:      s.Efficiency,
	}
}

// CruiseVelocity returns the preset cruise velocity in m/s.
func (s Ship) CruiseVelocity() float64 {
	return s.CruiseVelocityC * physics.C
}

// Catalog is the full data set. Slice order is display order; the planet
// order doubles as the route matrix order, so it stays sorted by distance
// from the sun.
type Catalog struct {
	Planets []Planet `toml:"planet"`
	Stars   []Star   `toml:"star"`
	Ships   []Ship   `toml:"ship"`
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return &Catalog{
		Planets: []Planet{
			{Name: "Mercury", PerihelionAU: 0.307, AphelionAU: 0.467},
			{Name: "Venus", PerihelionAU: 0.718, AphelionAU: 0.728},
			{Name: "Earth", PerihelionAU: 0.983, AphelionAU: 1.017},
			{Name: "Mars", PerihelionAU: 1.381, AphelionAU: 1.666},
			{Name: "Ceres", PerihelionAU: 2.5518, AphelionAU: 2.9775},
			{Name: "Jupiter", PerihelionAU: 4.950, AphelionAU: 5.457},
			{Name: "Saturn", PerihelionAU: 9.041, AphelionAU: 10.124},
			{Name: "Uranus", PerihelionAU: 18.375, AphelionAU: 20.063},
			{Name: "Neptune", PerihelionAU: 29.767, AphelionAU: 30.441},
		},
		Stars: []Star{
			{Name: "Proxima Centauri", DistanceLY: 4.2465},
			{Name: "Alpha Centauri", DistanceLY: 4.367},
			{Name: "Barnard's Star", DistanceLY: 5.958},
			{Name: "Sirius", DistanceLY: 8.611},
			{Name: "Epsilon Eridani", DistanceLY: 10.475},
			{Name: "Tau Ceti", DistanceLY: 11.9},
		},
		Ships: []Ship{
			{
				Name:             "nauvoo",
				ThrustPerEngineN: 18e6,
				Engines:          8,
				ExhaustVelocityC: 0.08,
				DryMassKg:        13.5e6,
				Efficiency:       0.0065,
				CruiseVelocityC:  0.119,
			},
			{
				Name:             "rocinante",
				ThrustPerEngineN: 3e6,
				Engines:          1,
				ExhaustVelocityC: 0.08,
				DryMassKg:        2.5e5,
				Efficiency:       0.0065,
				CruiseVelocityC:  0.02,
			},
			{
				Name:             "canterbury",
				ThrustPerEngineN: 20e6,
				Engines:          2,
				ExhaustVelocityC: 0.08,
				DryMassKg:        2.7e7,
				Efficiency:       0.0065,
				CruiseVelocityC:  0.005,
			},
		},
	}
}

// Load reads the catalog at path and merges it over the builtin set. A
// missing file is not an error; the builtins are returned unchanged.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Builtin(), nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var overlay Catalog
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Merge(Builtin(), &overlay), nil
}

// Save writes the catalog to path, creating parent directories as needed.
func Save(path string, cat *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Merge lays overlay entries over base. Names match case-insensitively; a
// matching overlay entry replaces the base entry in place, keeping the base
// ordering, and unmatched overlay entries append in their own order.
func Merge(base, overlay *Catalog) *Catalog {
	return &Catalog{
		Planets: overlayByName(base.Planets, overlay.Planets, func(p Planet) string { return p.Name }),
		Stars:   overlayByName(base.Stars, overlay.Stars, func(s Star) string { return s.Name }),
		Ships:   overlayByName(base.Ships, overlay.Ships, func(s Ship) string { return s.Name }),
	}
}

func overlayByName[T any](base, overlay []T, name func(T) string) []T {
	merged := make([]T, len(base), len(base)+len(overlay))
	copy(merged, base)
	for _, item := range overlay {
		replaced := false
		for i := range merged {
			if strings.EqualFold(name(merged[i]), name(item)) {
				merged[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, item)
		}
	}
	return merged
}

// LookupPlanet finds a planet by name, case-insensitively.
func (c *Catalog) LookupPlanet(name string) (Planet, bool) {
	for _, p := range c.Planets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Planet{}, false
}

// LookupStar finds a star by name, case-insensitively.
func (c *Catalog) LookupStar(name string) (Star, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// LookupShip finds a ship preset by name, case-insensitively.
func (c *Catalog) LookupShip(name string) (Ship, bool) {
	for _, s := range c.Ships {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Ship{}, false
}

// Validate reports every defect in the catalog rather than stopping at the
// first, so a hand-edited file can be fixed in one pass.
func (c *Catalog) Validate() []error {
	var errs []error
	seen := make(map[string]bool)
	for _, p := range c.Planets {
		key := "planet/" + strings.ToLower(p.Name)
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("planet with empty name"))
		case seen[key]:
			errs = append(errs, fmt.Errorf("planet %s: duplicate name", p.Name))
		default:
			seen[key] = true
		}
		if p.PerihelionAU <= 0 {
			errs = append(errs, fmt.Errorf("planet %s: perihelion must be positive, got %g AU", p.Name, p.PerihelionAU))
		}
		if p.AphelionAU < p.PerihelionAU {
			errs = append(errs, fmt.Errorf("planet %s: aphelion %g AU inside perihelion %g AU", p.Name, p.AphelionAU, p.PerihelionAU))
		}
	}
	for _, s := range c.Stars {
		key := "star/" + strings.ToLower(s.Name)
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("star with empty name"))
		case seen[key]:
			errs = append(errs, fmt.Errorf("star %s: duplicate name", s.Name))
		default:
			seen[key] = true
		}
		if s.DistanceLY <= 0 {
			errs = append(errs, fmt.Errorf("star %s: distance must be positive, got %g ly", s.Name, s.DistanceLY))
		}
	}
	for _, s := range c.Ships {
		key := "ship/" + strings.ToLower(s.Name)
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("ship with empty name"))
		case seen[key]:
			errs = append(errs, fmt.Errorf("ship %s: duplicate name", s.Name))
		default:
			seen[key] = true
		}
		if err := s.Drive().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("ship %s: %w", s.Name, err))
		}
		if s.CruiseVelocityC <= 0 || s.CruiseVelocityC >= 1 {
			errs = append(errs, fmt.Errorf("ship %s: cruise velocity %g c outside (0, 1)", s.Name, s.CruiseVelocityC))
		}
	}
	return errs
}
