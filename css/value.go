// Package css implements the numeric value model behind styled-text input
// fields: a floating point number paired with a closed set of CSS units, an
// arithmetic expression evaluator producing such values, and a parser for
// inline declaration lists.
package css

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a CSS length or percentage suffix carried with a numeric value.
// Units are carried opaquely - there is no conversion between them.
type Unit int

const (
	UnitNone Unit = iota // unitless value
	UnitPx
	UnitEm
	UnitRem
	UnitPercent
	UnitVw
	UnitVh
	UnitCh
	UnitPt
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitPx:      "px",
	UnitEm:      "em",
	UnitRem:     "rem",
	UnitPercent: "%",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitCh:      "ch",
	UnitPt:      "pt",
}

// String returns the CSS suffix for the unit, empty for UnitNone.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		// this should never happen
		panic("unsupported unit requested")
	}
	return unitNames[u]
}

// ParseUnit matches a unit suffix case-insensitively. Both the empty string
// and "none" mean unitless.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return UnitNone, true
	case "px":
		return UnitPx, true
	case "em":
		return UnitEm, true
	case "rem":
		return UnitRem, true
	case "%":
		return UnitPercent, true
	case "vw":
		return UnitVw, true
	case "vh":
		return UnitVh, true
	case "ch":
		return UnitCh, true
	case "pt":
		return UnitPt, true
	}
	return UnitNone, false
}

// UnitNames returns spellable names for all supported units, suitable for
// help text and configuration validation. Unitless is spelled "none".
func UnitNames() []string {
	names := make([]string, 0, len(unitNames))
	for u, n := range unitNames {
		if Unit(u) == UnitNone {
			n = "none"
		}
		names = append(names, n)
	}
	return names
}

// Value is a parsed CSS numeric value: finite number plus unit.
type Value struct {
	Value float64
	Unit  Unit
}

// String renders the value back to CSS text using the shortest decimal form
// that survives a round trip through Evaluate.
func (v Value) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64) + v.Unit.String()
}

// Format renders the value rounded to the given number of decimals.
// Negative decimals means shortest round-trip form.
func (v Value) Format(decimals int) string {
	if decimals < 0 {
		return v.String()
	}
	s := strconv.FormatFloat(Round(v.Value, decimals), 'f', -1, 64)
	return s + v.Unit.String()
}

// Clamp limits the numeric part to [min, max] keeping the unit.
func (v Value) Clamp(min, max float64) Value {
	return Value{Value: math.Min(math.Max(v.Value, min), max), Unit: v.Unit}
}

// Round rounds half-up to the requested number of decimal places.
func Round(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	if value < 0 {
		return -math.Floor(-value*p+0.5) / p
	}
	return math.Floor(value*p+0.5) / p
}
