package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Options tune a resolve run.
type Options struct {
	// MaxSweeps caps the fixed-point loop. Zero or negative selects the
	// structural bound len(fields)+1, which no converging registry can
	// exceed: every sweep resolves at least one new field or the loop
	// halts.
	MaxSweeps int

	// IsWarning classifies compute errors that should surface as warnings
	// (field left unresolved, pass not failed) instead of becoming the
	// resolve error. Nil classifies nothing.
	IsWarning func(error) bool
}

// DefaultOptions returns the options Resolve uses when callers have none.
func DefaultOptions() Options {
	return Options{}
}

// state is one field's mutable per-session record.
type state struct {
	def        Definition
	value      float64
	hasValue   bool
	raw        string
	unit       Unit
	userEdited bool
	resolved   bool // computed or accepted during the current pass
}

// Session owns the mutable field state for one calculator form. A Session is
// single-threaded by contract: each Solve or Reset runs to completion and no
// state is shared across sessions, so no locking is involved.
type Session struct {
	reg      *Registry
	opts     Options
	states   []*state
	index    map[string]*state
	lastErr  *FieldError
	warnings []FieldError
	warned   map[string]bool
}

// NewSession creates a fresh session over reg with every field at its
// declared default.
func NewSession(reg *Registry, opts Options) *Session {
	if opts.MaxSweeps <= 0 {
		opts.MaxSweeps = reg.Len() + 1
	}
	s := &Session{
		reg:   reg,
		opts:  opts,
		index: make(map[string]*state, reg.Len()),
	}
	for _, def := range reg.defs {
		st := &state{def: def}
		s.states = append(s.states, st)
		s.index[def.Name] = st
	}
	s.Reset()
	return s
}

// Reset restores every field to its declared default, clears edit and
// resolution flags, and clears any recorded error.
func (s *Session) Reset() {
	for _, st := range s.states {
		st.value, st.hasValue = 0, false
		st.raw = ""
		st.unit = defaultUnit(st.def)
		st.userEdited = false
		st.resolved = false
		if st.def.Default != nil {
			st.value, st.hasValue = *st.def.Default, true
		}
	}
	s.lastErr = nil
	s.warnings = nil
	s.warned = nil
}

// SetInput records raw user input for a field. An empty raw clears the entry
// and un-edits the field so the solver may derive it again (or reseed its
// default). A non-empty unit must name an entry in the field's unit table;
// empty keeps the current display unit.
func (s *Session) SetInput(field, raw, unit string) error {
	st, ok := s.index[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if unit != "" {
		u, err := lookupUnit(st.def, unit)
		if err != nil {
			return err
		}
		st.unit = u
	}
	st.raw = strings.TrimSpace(raw)
	if st.raw == "" {
		st.userEdited = false
		st.hasValue = false
		if st.def.Default != nil {
			st.value, st.hasValue = *st.def.Default, true
		}
		return nil
	}
	st.userEdited = true
	return nil
}

// SetUnit switches a field's display unit without touching its value.
// Pending raw input keeps its magnitude and is reinterpreted in the new
// unit, matching form behavior where the unit selector applies to the text
// already typed.
func (s *Session) SetUnit(field, unit string) error {
	st, ok := s.index[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	u, err := lookupUnit(st.def, unit)
	if err != nil {
		return err
	}
	st.unit = u
	return nil
}

// Solve runs one calculate pass: ingest raw input, then sweep the registry
// to a fixed point. User-facing failures travel in Result.Err; the returned
// error is non-nil only for ErrNoProgress, when the sweep cap cut off a loop
// that was still resolving fields.
func (s *Session) Solve() (Result, error) {
	s.lastErr = nil
	s.warnings = nil
	s.warned = nil
	for _, st := range s.states {
		st.resolved = false
	}

	// Direct entries convert and validate first; a bounds violation here is
	// terminal for the pass, keeping values ingested before it.
	if fe := s.ingest(); fe != nil {
		s.lastErr = fe
		return s.result(0), nil
	}

	sweeps := 0
	for {
		sweeps++
		if sweeps > s.opts.MaxSweeps {
			return s.result(sweeps - 1), fmt.Errorf("%w: %d sweeps over %d fields",
				ErrNoProgress, s.opts.MaxSweeps, len(s.states))
		}
		if !s.sweep() {
			break
		}
	}
	return s.result(sweeps), nil
}

// ingest converts raw entries to base-unit values in registry order,
// stopping at the first violation.
func (s *Session) ingest() *FieldError {
	for _, st := range s.states {
		if st.raw == "" {
			continue
		}
		mag, err := strconv.ParseFloat(st.raw, 64)
		if err != nil || math.IsNaN(mag) || math.IsInf(mag, 0) {
			return &FieldError{
				Field:   st.def.Name,
				Message: fmt.Sprintf("%q is not a number", st.raw),
				Err:     ErrNotANumber,
			}
		}
		v := mag * st.unit.Factor
		if fe := checkBounds(st.def, v); fe != nil {
			return fe
		}
		st.value, st.hasValue = v, true
		st.resolved = true
	}
	return nil
}

// sweep attempts every eligible field once, reporting whether anything new
// resolved. Compute failures skip the field so independently derivable
// fields still resolve; the last recorded failure becomes the pass error
// unless the field recovers in a later sweep.
func (s *Session) sweep() bool {
	changed := false
	for _, st := range s.states {
		if !s.eligible(st) {
			continue
		}
		args, missing := s.gather(st.def.Deps)
		if missing > st.def.MaxMissing {
			continue
		}
		v, err := st.def.Compute(args)
		if err != nil {
			s.recordComputeError(st.def.Name, err)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.lastErr = &FieldError{
				Field:   st.def.Name,
				Message: "computed a non-finite value",
				Err:     ErrValidation,
			}
			continue
		}
		if fe := checkBounds(st.def, v); fe != nil {
			s.lastErr = fe
			continue
		}
		st.value, st.hasValue = v, true
		st.resolved = true
		changed = true
		if s.lastErr != nil && s.lastErr.Field == st.def.Name {
			// A later sweep made the field computable after all.
			s.lastErr = nil
		}
	}
	return changed
}

// eligible reports whether a field may be computed this pass: it has a
// compute function, has not resolved yet, and is either empty or a secondary
// field the user has not edited.
func (s *Session) eligible(st *state) bool {
	if st.def.Compute == nil || st.resolved {
		return false
	}
	if !st.hasValue {
		return true
	}
	return !st.def.Primary && !st.userEdited
}

// gather collects trustworthy dependency values. A dependency is satisfied
// only when it holds a value that is user-edited, primary, or resolved
// during the current pass; anything else counts missing and is omitted from
// the argument map.
func (s *Session) gather(deps []string) (map[string]float64, int) {
	args := make(map[string]float64, len(deps))
	missing := 0
	for _, dep := range deps {
		d := s.index[dep]
		if d.hasValue && (d.userEdited || d.def.Primary || d.resolved) {
			args[dep] = d.value
		} else {
			missing++
		}
	}
	return args, missing
}

func (s *Session) recordComputeError(field string, err error) {
	if s.opts.IsWarning != nil && s.opts.IsWarning(err) {
		if s.warned == nil {
			s.warned = make(map[string]bool)
		}
		if !s.warned[field] {
			s.warned[field] = true
			s.warnings = append(s.warnings, FieldError{Field: field, Message: err.Error(), Err: err})
		}
		return
	}
	s.lastErr = &FieldError{Field: field, Message: err.Error(), Err: err}
}

// checkBounds enforces declared inclusive bounds, preferring the field's
// configured violation messages.
func checkBounds(def Definition, v float64) *FieldError {
	if def.Min != nil && v < *def.Min {
		msg := def.MinErr
		if msg == "" {
			msg = fmt.Sprintf("must be at least %g", *def.Min)
		}
		return &FieldError{Field: def.Name, Message: msg, Err: ErrValidation}
	}
	if def.Max != nil && v > *def.Max {
		msg := def.MaxErr
		if msg == "" {
			msg = fmt.Sprintf("must be at most %g", *def.Max)
		}
		return &FieldError{Field: def.Name, Message: msg, Err: ErrValidation}
	}
	return nil
}

// result snapshots the session into a Result. Warnings for fields that
// recovered later in the pass are dropped.
func (s *Session) result(sweeps int) Result {
	res := Result{
		Fields: make(map[string]Value, len(s.states)),
		Order:  make([]string, 0, len(s.states)),
		Err:    s.lastErr,
		Sweeps: sweeps,
	}
	for _, st := range s.states {
		res.Order = append(res.Order, st.def.Name)
		v := Value{Unit: st.unit.Name}
		if st.hasValue {
			v.Set = true
			v.Base = st.value
			v.Display = formatDisplay(st.value / st.unit.Factor)
		}
		res.Fields[st.def.Name] = v
	}
	for _, w := range s.warnings {
		if st := s.index[w.Field]; st != nil && st.resolved {
			continue
		}
		res.Warnings = append(res.Warnings, w)
	}
	return res
}

// Resolve runs a single pass over fresh session state: inputs in, result
// out. It is the boundary for non-interactive callers; interactive callers
// keep a Session and feed it edits.
func Resolve(reg *Registry, inputs map[string]Input, opts Options) (Result, error) {
	for name := range inputs {
		if _, ok := reg.index[name]; !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	s := NewSession(reg, opts)
	// Apply in registry order so behavior never depends on map iteration.
	for _, def := range reg.defs {
		in, ok := inputs[def.Name]
		if !ok {
			continue
		}
		if err := s.SetInput(def.Name, in.Raw, in.Unit); err != nil {
			return Result{}, err
		}
	}
	return s.Solve()
}
