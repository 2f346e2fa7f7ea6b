// Package solver implements a declarative, dependency-driven field resolver.
//
// A Registry declares named fields: primary fields hold authoritative
// user-supplied quantities, secondary fields carry a compute function over
// the values of their declared dependencies. A Session accepts sparse raw
// input, converts it to base units through each field's unit table, and
// sweeps the registry to a fixed point, deriving every field whose
// dependencies are sufficiently satisfied. Bounds violations surface the
// field's own user-facing message; formula domain errors skip the field and
// let the rest of the form resolve.
//
// The package is calculator-agnostic and never imports the formulas it
// evaluates. Computation enters exclusively through Definition.Compute.
package solver

import "fmt"

// ComputeFunc derives a field's base-unit value from the base-unit values of
// its satisfied dependencies. Dependencies missing under the field's
// MaxMissing allowance are omitted from args, so implementations with a
// positive allowance must branch on which keys are present.
type ComputeFunc func(args map[string]float64) (float64, error)

// Unit names a display unit and the multiplier converting a magnitude in
// that unit to the field's base unit.
type Unit struct {
	Name   string
	Factor float64
}

// Definition declares one field. Definitions are immutable once handed to
// NewRegistry; all per-session mutation lives in Session state.
type Definition struct {
	// Name identifies the field in dependencies, inputs, and results.
	Name string

	// Deps lists the fields Compute consumes.
	Deps []string

	// Compute derives the field. Nil for fields that are always
	// user-supplied.
	Compute ComputeFunc

	// MaxMissing is how many dependencies may be unsatisfied while still
	// allowing Compute to run. Zero demands every dependency.
	MaxMissing int

	// Primary marks authoritative user input: computed only when empty,
	// trusted as a dependency whenever it holds a value.
	Primary bool

	// Min and Max are optional inclusive bounds in base units.
	Min, Max *float64

	// MinErr and MaxErr are the user-facing messages for bound violations.
	// Empty falls back to a generated message.
	MinErr, MaxErr string

	// Units is the display unit table. Empty means base units only.
	Units []Unit

	// DefaultUnit selects the initial display unit; empty picks Units[0].
	DefaultUnit string

	// Default, when set, seeds the field's base-unit value on session
	// start and reset.
	Default *float64
}

// Ptr returns a pointer to v, for optional Definition bounds and defaults.
func Ptr(v float64) *float64 { return &v }

// Registry is an immutable, insertion-ordered set of field definitions
// shared by every session of one calculator.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry validates definitions and fixes their iteration order. Sweep
// order within a resolve pass is the order given here; final values are
// order-independent for acyclic dependency sets, but which error surfaces on
// a partial failure is not, so callers should treat the order as part of the
// calculator's contract.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrBadDefinition)
		}
		if _, ok := r.index[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, def.Name)
		}
		if def.Compute == nil && len(def.Deps) > 0 {
			return nil, fmt.Errorf("%w: %s declares dependencies without a compute function", ErrBadDefinition, def.Name)
		}
		if def.MaxMissing < 0 {
			return nil, fmt.Errorf("%w: %s has negative MaxMissing", ErrBadDefinition, def.Name)
		}
		if def.Min != nil && def.Max != nil && *def.Min > *def.Max {
			return nil, fmt.Errorf("%w: %s bounds inverted", ErrBadDefinition, def.Name)
		}
		if err := checkUnits(def); err != nil {
			return nil, err
		}
		r.index[def.Name] = len(r.defs)
		r.defs = append(r.defs, def)
	}
	// Dependencies may point at later definitions, so check them only after
	// every name is indexed.
	for _, def := range r.defs {
		for _, dep := range def.Deps {
			if dep == def.Name {
				return nil, fmt.Errorf("%w: %s depends on itself", ErrBadDefinition, def.Name)
			}
			if _, ok := r.index[dep]; !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, def.Name, dep)
			}
		}
	}
	return r, nil
}

func checkUnits(def Definition) error {
	if len(def.Units) == 0 {
		if def.DefaultUnit != "" {
			return fmt.Errorf("%w: %s names default unit %q but has no unit table", ErrBadDefinition, def.Name, def.DefaultUnit)
		}
		return nil
	}
	seen := make(map[string]bool, len(def.Units))
	for _, u := range def.Units {
		if u.Factor <= 0 {
			return fmt.Errorf("%w: %s unit %q has non-positive factor", ErrBadDefinition, def.Name, u.Name)
		}
		if seen[u.Name] {
			return fmt.Errorf("%w: %s unit %q declared twice", ErrBadDefinition, def.Name, u.Name)
		}
		seen[u.Name] = true
	}
	if def.DefaultUnit != "" && !seen[def.DefaultUnit] {
		return fmt.Errorf("%w: %s default unit %q not in unit table", ErrBadDefinition, def.Name, def.DefaultUnit)
	}
	return nil
}

// Len returns the number of fields.
func (r *Registry) Len() int { return len(r.defs) }

// Names returns field names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, def := range r.defs {
		names[i] = def.Name
	}
	return names
}

// Def returns the definition for name.
func (r *Registry) Def(name string) (Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// defaultUnit returns the field's initial display unit: DefaultUnit, else
// the first table entry, else the base unit itself.
func defaultUnit(def Definition) Unit {
	if len(def.Units) == 0 {
		return Unit{Factor: 1}
	}
	if def.DefaultUnit != "" {
		for _, u := range def.Units {
			if u.Name == def.DefaultUnit {
				return u
			}
		}
	}
	return def.Units[0]
}

// lookupUnit resolves a unit name against the field's table; the empty name
// selects the default unit.
func lookupUnit(def Definition, name string) (Unit, error) {
	if name == "" {
		return defaultUnit(def), nil
	}
	for _, u := range def.Units {
		if u.Name == name {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q for field %s", ErrUnknownUnit, name, def.Name)
}
