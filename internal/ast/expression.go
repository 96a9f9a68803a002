package ast

import "github.com/tsatke/trove/internal/token"

type (
	// Exp is an expression. This is either a SimpleExp or a ComplexExp.
	Exp interface {
		_exp()
	}

	// SimpleExp is a constant expression. Exactly one of its tokens is set.
	SimpleExp struct {
		Nothing token.Token
		False   token.Token
		True    token.Token
		Number  token.Token
		String  token.Token
	}

	// NameExp refers to a global by name.
	NameExp struct {
		Name token.Token
	}

	// CallExp calls the function that Name refers to with the
	// evaluated Args.
	CallExp struct {
		Name token.Token
		Args []Exp
	}

	// BinopExp is a binary expression.
	BinopExp struct {
		Left  Exp
		Binop token.Token
		Right Exp
	}
)

func (SimpleExp) _exp() {}
func (NameExp) _exp()   {}
func (CallExp) _exp()   {}
func (BinopExp) _exp()  {}

// Token returns the one token that is set in this expression.
func (e SimpleExp) Token() token.Token {
	for _, tk := range []token.Token{e.Nothing, e.False, e.True, e.Number, e.String} {
		if tk != nil {
			return tk
		}
	}
	return nil
}
