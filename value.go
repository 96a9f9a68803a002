package trove

import (
	"github.com/tsatke/trove/internal/engine"
	"github.com/tsatke/trove/internal/engine/value"
)

type (
	// Value is any value a program can produce.
	Value = value.Value
	// Number is an exact or rough number. Rough numbers render with a
	// leading '~'.
	Number = value.Number
	String = value.String
	Kind   = value.Kind
)

const (
	KindExact = value.KindExact
	KindRough = value.KindRough
)

// Exact creates a number that is treated as free of rounding error.
func Exact(magnitude float64) Number {
	return value.NewExact(magnitude)
}

// Rough creates a number that is treated as an approximation.
func Rough(magnitude float64) Number {
	return value.NewRough(magnitude)
}

// Add sums two numbers. The result is rough if any operand is rough.
func Add(a, b Number) Number {
	return value.Add(a, b)
}

// Stringify returns the text that print writes for v.
func Stringify(v Value) string {
	return engine.Stringify(v)
}

// Repr returns the text that display writes for v, which quotes strings.
func Repr(v Value) string {
	return engine.Repr(v)
}
