package token

import (
	"fmt"
	"strings"
)

// Token describes a source token.
// A token may have multiple types, e.g. '~3' is a
// Number and Rough.
type Token interface {
	Value() string
	Pos() Position
	Is(Type) bool
	Types() []Type
}

// Position describes the position of something in a source.
// Line and Col are 1-based, Offset is 0-based and counts runes.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// New creates a new token from the given arguments.
func New(value string, pos Position, types ...Type) Token {
	return tok{
		value: value,
		pos:   pos,
		types: types,
	}
}

type tok struct {
	value string
	pos   Position
	types []Type
}

// Is determines whether this token has the given type.
func (t tok) Is(typ Type) bool {
	for _, gotTyp := range t.types {
		if gotTyp == typ {
			return true
		}
	}
	return false
}

// Value returns the source text of the token. For Error tokens, this is
// the error message.
func (t tok) Value() string { return t.value }
func (t tok) Pos() Position  { return t.pos }
func (t tok) Types() []Type  { return t.types }

func (t tok) String() string {
	return fmt.Sprintf("(%s) %q (types=%v)", t.pos, t.value, t.types)
}

func (t tok) GoString() string {
	types := make([]string, len(t.types))
	for i, typ := range t.types {
		types[i] = "token." + typ.String()
	}
	return fmt.Sprintf(`token.New(%q, token.Position{%d, %d, %d}, %s)`, t.value, t.pos.Line, t.pos.Col, t.pos.Offset, strings.Join(types, ", "))
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
