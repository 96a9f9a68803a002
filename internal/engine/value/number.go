package value

import "github.com/tsatke/trove/internal/plain"

// Kind tells whether a Number is exact or rough.
type Kind uint8

const (
	// KindExact marks a number that is free of rounding error.
	KindExact Kind = iota
	// KindRough marks an approximation. Rough values contaminate every
	// result they take part in.
	KindRough
)

// Join returns the kind of a result computed from operands of kinds k and
// other. Rough wins.
func (k Kind) Join(other Kind) Kind {
	if k == KindRough || other == KindRough {
		return KindRough
	}
	return KindExact
}

func (k Kind) String() string {
	if k == KindRough {
		return "Rough"
	}
	return "Exact"
}

// Number is an immutable numeric value. Exactness is a label on the
// magnitude, not a different storage format.
type Number struct {
	magnitude float64
	kind      Kind
}

func NewExact(magnitude float64) Number {
	return Number{magnitude: magnitude, kind: KindExact}
}

func NewRough(magnitude float64) Number {
	return Number{magnitude: magnitude, kind: KindRough}
}

func (Number) Type() Type { return TypeNumber }

func (n Number) Magnitude() float64 { return n.magnitude }
func (n Number) Kind() Kind         { return n.kind }
func (n Number) IsRough() bool      { return n.kind == KindRough }

// Add returns a new Number holding the sum of both magnitudes. Overflow
// follows IEEE 754, so the sum may be infinite.
func (n Number) Add(other Number) Number {
	return Add(n, other)
}

func Add(left, right Number) Number {
	return Number{
		magnitude: left.Magnitude() + right.Magnitude(),
		kind:      left.Kind().Join(right.Kind()),
	}
}

// String renders the magnitude as a plain decimal and prefixes rough
// values with '~'.
func (n Number) String() string {
	return Render(n)
}

func Render(n Number) string {
	s := plain.Format(n.magnitude)
	if n.kind == KindRough {
		return "~" + s
	}
	return s
}
