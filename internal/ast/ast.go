package ast

import "github.com/tsatke/trove/internal/token"

type (
	// Program is a parsed source. Every non-empty line of the source holds
	// exactly one expression.
	Program struct {
		Name  string
		Lines []Line
	}

	// Line is a single top-level expression together with the line it
	// was found on.
	Line struct {
		Number int
		Exp    Exp
	}
)

// Pos returns the position of the first token of exp.
func Pos(exp Exp) token.Position {
	switch e := exp.(type) {
	case SimpleExp:
		if tk := e.Token(); tk != nil {
			return tk.Pos()
		}
	case NameExp:
		return e.Name.Pos()
	case CallExp:
		return e.Name.Pos()
	case BinopExp:
		return Pos(e.Left)
	}
	return token.Position{}
}
