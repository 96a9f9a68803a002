package parser

import (
	"fmt"

	"github.com/tsatke/trove/internal/token"
)

type MismatchError struct {
	Expected interface{}
	Got      interface{}
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("expected %v, but got %v", e.Expected, e.Got)
}

func ErrUnexpectedEof(expected interface{}) error {
	return ErrUnexpectedThing(expected, "EOF")
}

func ErrUnexpectedThing(expected, got interface{}) error {
	return MismatchError{
		Expected: expected,
		Got:      got,
	}
}

func describe(tk token.Token) string {
	if tk.Is(token.EOL) {
		return "end of line"
	}
	return fmt.Sprintf("'%s'", tk.Value())
}
