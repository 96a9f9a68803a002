package value

// Type is the runtime type tag of a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeNothing
	TypeBoolean
	TypeNumber
	TypeString
	TypeFunction
)

func (t Type) String() string {
	switch t {
	case TypeNothing:
		return "Nothing"
	case TypeBoolean:
		return "Boolean"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeFunction:
		return "Function"
	}
	return "<invalid>"
}

// Value is any value the runtime can pass around. String returns the
// native textual form of the value.
type Value interface {
	Type() Type
	String() string
}
