package units

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Unit is a binary size unit; each step is 1024 times the previous one.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
)

var allUnits = []Unit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte}

var unitSymbols = map[Unit]string{
	Byte:     "B",
	Kilobyte: "KB",
	Megabyte: "MB",
	Gigabyte: "GB",
	Terabyte: "TB",
	Petabyte: "PB",
}

var unitNames = map[string]Unit{
	"b": Byte, "byte": Byte, "bytes": Byte,
	"kb": Kilobyte, "kilobyte": Kilobyte, "kilobytes": Kilobyte,
	"mb": Megabyte, "megabyte": Megabyte, "megabytes": Megabyte,
	"gb": Gigabyte, "gigabyte": Gigabyte, "gigabytes": Gigabyte,
	"tb": Terabyte, "terabyte": Terabyte, "terabytes": Terabyte,
	"pb": Petabyte, "petabyte": Petabyte, "petabytes": Petabyte,
}

// ParseUnit maps a name or symbol ("kb", "megabyte") onto a Unit.
func ParseUnit(value string) (Unit, error) {
	if unit, ok := unitNames[strings.ToLower(strings.TrimSpace(value))]; ok {
		return unit, nil
	}
	return Byte, fmt.Errorf("unsupported size unit %q", value)
}

// Scale returns the number of bytes in one u.
func (u Unit) Scale() float64 {
	return math.Pow(1024, float64(u))
}

// Symbol returns the display symbol, e.g. "MB".
func (u Unit) Symbol() string {
	if symbol, ok := unitSymbols[u]; ok {
		return symbol
	}
	return "?"
}

func (u Unit) String() string {
	return u.Symbol()
}

// FileSize is an immutable size expressed in a unit.
type FileSize struct {
	Value float64
	Unit  Unit
}

// NewFileSize returns value expressed in unit.
func NewFileSize(value int64, unit Unit) FileSize {
	return FileSize{Value: float64(value), Unit: unit}
}

// Bytes returns the size in bytes.
func (s FileSize) Bytes() float64 {
	return s.Value * s.Unit.Scale()
}

// Optimal re-expresses s in the largest unit whose scaled value is at least
// one, then applies rule to the scaled value. Sizes below one byte,
// including zero, stay in bytes.
func (s FileSize) Optimal(rule Rounding) FileSize {
	bytes := s.Bytes()
	chosen := Byte
	for i := len(allUnits) - 1; i >= 0; i-- {
		if math.Abs(bytes)/allUnits[i].Scale() >= 1 {
			chosen = allUnits[i]
			break
		}
	}
	return FileSize{Value: rule.Apply(bytes / chosen.Scale()), Unit: chosen}
}

// Format renders s as "<number> <symbol>" using the number conventions of tag.
func (s FileSize) Format(tag language.Tag) string {
	return formatNumber(tag, s.Value) + " " + s.Unit.Symbol()
}

func (s FileSize) String() string {
	return s.Format(language.AmericanEnglish)
}

// FormatFileSize renders an optional size given in unit at its optimal unit.
// It reports false when the size is unknown.
func FormatFileSize(value *int64, unit Unit, rule Rounding, tag language.Tag) (string, bool) {
	if value == nil {
		return "", false
	}
	return NewFileSize(*value, unit).Optimal(rule).Format(tag), true
}
