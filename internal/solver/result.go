package solver

import "strconv"

// Input is one user entry: a raw magnitude string and the unit it was typed
// in. An empty Raw means unset; an empty Unit means the field's current
// display unit.
type Input struct {
	Raw  string
	Unit string
}

// Value is one field's slot in a Result.
type Value struct {
	// Set reports whether the field holds a value. Unset after a resolve
	// means insufficient input, not failure.
	Set bool
	// Base is the value in the field's base unit.
	Base float64
	// Display is the magnitude converted to Unit, formatted canonically.
	Display string
	// Unit is the field's current display unit name.
	Unit string
}

// Result is the outcome of one resolve pass.
type Result struct {
	// Fields maps every field name to its current value slot, resolved or
	// not. Values resolved before a terminal validation error are kept.
	Fields map[string]Value
	// Order is the registry insertion order, for deterministic display.
	Order []string
	// Err is the pass's error: a terminal validation error from ingest, or
	// the most recently recorded derivation failure. Nil on clean passes.
	Err *FieldError
	// Warnings holds numerical-instability reports for fields left
	// unresolved; they do not abort the pass.
	Warnings []FieldError
	// Sweeps is the number of derivation sweeps executed.
	Sweeps int
}

// Value returns the slot for name.
func (r Result) Value(name string) Value {
	return r.Fields[name]
}

// Resolved reports whether name holds a value in this result.
func (r Result) Resolved(name string) bool {
	return r.Fields[name].Set
}

// formatDisplay renders a display magnitude with shortest round-trip
// precision.
func formatDisplay(magnitude float64) string {
	return strconv.FormatFloat(magnitude, 'g', -1, 64)
}
