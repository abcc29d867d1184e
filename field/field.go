// Package field implements the commit semantics of numeric input fields
// backed by expression evaluation: per-keystroke validity preview, commit
// with range clamping, unit preservation for bare numbers and revert on
// invalid input. It carries no UI - the visual layer is a separate concern.
package field

import (
	"fmt"

	"cssv/css"
)

// Settings describes a single numeric field.
type Settings struct {
	Name    string
	Min     float64
	Max     float64
	Default css.Value
	// AllowedUnits limits what a committed value may carry. Empty means
	// any unit from the supported set is accepted.
	AllowedUnits []css.Unit
}

// Field owns one numeric input. The committed value only changes on a
// successful Commit, Set or Reset; failed input leaves it untouched.
type Field struct {
	name      string
	min, max  float64
	allowed   map[css.Unit]struct{}
	def       css.Value
	committed css.Value
}

// New validates settings and creates a field committed to its default.
func New(s Settings) (*Field, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("field must have a name")
	}
	if s.Min > s.Max {
		return nil, fmt.Errorf("field %s: min %v exceeds max %v", s.Name, s.Min, s.Max)
	}
	f := &Field{
		name: s.Name,
		min:  s.Min,
		max:  s.Max,
	}
	if len(s.AllowedUnits) > 0 {
		f.allowed = make(map[css.Unit]struct{}, len(s.AllowedUnits))
		for _, u := range s.AllowedUnits {
			f.allowed[u] = struct{}{}
		}
	}
	if err := f.Set(s.Default); err != nil {
		return nil, fmt.Errorf("bad default: %w", err)
	}
	f.def = f.committed
	return f, nil
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Value returns the last committed value.
func (f *Field) Value() css.Value {
	return f.committed
}

// Reset commits the default value.
func (f *Field) Reset() {
	f.committed = f.def
}

// Preview checks input validity without committing - this is what drives
// per-keystroke feedback, so failures must stay cheap.
func (f *Field) Preview(input string) error {
	_, err := f.eval(input)
	return err
}

// Commit evaluates input and stores the result: a bare number keeps the
// field's current unit, the numeric part is clamped to [min, max]. On
// failure the previously committed value is returned unchanged.
func (f *Field) Commit(input string) (css.Value, error) {
	v, err := f.eval(input)
	if err != nil {
		return f.committed, err
	}
	f.committed = v
	return v, nil
}

// Set commits an already-parsed value, subject to the same unit check and
// clamping as Commit.
func (f *Field) Set(v css.Value) error {
	if !f.unitAllowed(v.Unit) {
		return fmt.Errorf("field %s: unit %q is not allowed", f.name, v.Unit)
	}
	f.committed = v.Clamp(f.min, f.max)
	return nil
}

func (f *Field) eval(input string) (css.Value, error) {
	num, suffix, err := css.EvaluateAny(input)
	if err != nil {
		return css.Value{}, fmt.Errorf("field %s: %w", f.name, err)
	}
	unit, ok := css.ParseUnit(suffix)
	if !ok {
		return css.Value{}, fmt.Errorf("field %s: %w: unsupported unit %q", f.name, css.ErrInvalidExpression, suffix)
	}
	if unit == css.UnitNone {
		// bare number preserves the active unit
		unit = f.committed.Unit
	}
	if !f.unitAllowed(unit) {
		return css.Value{}, fmt.Errorf("field %s: unit %q is not allowed", f.name, unit)
	}
	return css.Value{Value: num, Unit: unit}.Clamp(f.min, f.max), nil
}

func (f *Field) unitAllowed(u css.Unit) bool {
	if f.allowed == nil {
		return true
	}
	_, ok := f.allowed[u]
	return ok
}
