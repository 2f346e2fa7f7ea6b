package solver

import "errors"

// Sentinel errors for registry construction and resolve runs.
var (
	// ErrDuplicateField indicates two definitions share a name.
	ErrDuplicateField = errors.New("duplicate field name")
	// ErrUnknownDependency indicates a definition depends on a field that does not exist.
	ErrUnknownDependency = errors.New("dependency on unknown field")
	// ErrBadDefinition indicates an internally inconsistent definition
	// (inverted bounds, negative missing-dependency allowance, dependencies
	// without a compute function, bad unit table).
	ErrBadDefinition = errors.New("invalid field definition")
	// ErrUnknownField indicates input addressed to a field the registry does not define.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownUnit indicates a unit name missing from the field's unit table.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrValidation indicates a value violating its field's declared bounds.
	ErrValidation = errors.New("value out of range")
	// ErrNotANumber indicates raw input that does not parse as a finite number.
	ErrNotANumber = errors.New("not a number")
	// ErrNoProgress indicates the sweep cap was hit before a fixed point.
	// This is a registry consistency problem, never bad user input.
	ErrNoProgress = errors.New("no progress toward fixed point")
)

// FieldError ties a resolve failure to the field that raised it. Message is
// user-facing; for bounds violations it is the field's configured MinErr or
// MaxErr text verbatim.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// Error returns the field name with its message.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *FieldError) Unwrap() error {
	return e.Err
}
