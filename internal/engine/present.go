package engine

import (
	"github.com/tsatke/trove/internal/engine/value"
	"github.com/tsatke/trove/internal/parser"
)

// Stringify returns the text print writes for v. Functions are shown as
// "<function>", numbers in their plain decimal form and strings as they are.
func Stringify(v value.Value) string {
	switch v := v.(type) {
	case nil:
		return value.Nothing.String()
	case *value.Function:
		return "<function>"
	case value.Number:
		return value.Render(v)
	case value.String:
		return string(v)
	}
	return v.String()
}

// Repr is like Stringify, but quotes and escapes strings.
func Repr(v value.Value) string {
	switch v := v.(type) {
	case *value.Function:
		return "<function>"
	case value.String:
		return parser.Quote(string(v))
	}
	return Stringify(v)
}

// Print writes Stringify(v) and a line break to stdout, and returns v.
func (e *Engine) Print(v value.Value) value.Value {
	e.writeLine(Stringify(v))
	return v
}

// Display writes Repr(v) and a line break to stdout, and returns v.
// Functions are shown with their name.
func (e *Engine) Display(v value.Value) value.Value {
	if fn, ok := v.(*value.Function); ok {
		e.writeLine("<function:" + fn.Name + ">")
	} else {
		e.writeLine(Repr(v))
	}
	return v
}
