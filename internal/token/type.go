package token

import "strconv"

// Type is a token type.
type Type uint8

// Known types.
const (
	TypeUnknown Type = iota

	// Error is the type of a token that carries a scan error as its value.
	Error

	// Number is the token type for a numeric literal, such as '1.5e21'.
	Number
	// Rough marks a numeric literal that starts with '~'. Rough tokens
	// are also of type Number.
	Rough
	// String is the token type for a double-quoted string literal.
	String
	// Name is the token type for an identifier.
	Name

	// True is the token type for the keyword 'true'.
	True
	// False is the token type for the keyword 'false'.
	False
	// Nothing is the token type for the keyword 'nothing'.
	Nothing

	// Plus is the token type for '+'.
	Plus
	// Comma is the token type for ','.
	Comma
	// ParLeft is the token type for '('.
	ParLeft
	// ParRight is the token type for ')'.
	ParRight
	// EOL is the token type for a line break. Every line holds at most
	// one expression.
	EOL
)

var typeNames = [...]string{
	TypeUnknown: "TypeUnknown",
	Error:       "Error",
	Number:      "Number",
	Rough:       "Rough",
	String:      "String",
	Name:        "Name",
	True:        "True",
	False:       "False",
	Nothing:     "Nothing",
	Plus:        "Plus",
	Comma:       "Comma",
	ParLeft:     "ParLeft",
	ParRight:    "ParRight",
	EOL:         "EOL",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}
