package parser

import (
	"github.com/tsatke/trove/internal/ast"
	"github.com/tsatke/trove/internal/token"
)

func (suite *ParserSuite) TestEmpty() {
	suite.assertProgramString("\n\n# only a comment\n", ast.Program{
		Name: "<unknown input>",
	})
}

func (suite *ParserSuite) TestLiterals() {
	suite.assertProgramString("1.5e21\n~3\n\"a\"\ntrue\nfalse\nnothing", ast.Program{
		Name: "<unknown input>",
		Lines: []ast.Line{
			{Number: 1, Exp: ast.SimpleExp{Number: token.New("1.5e21", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number)}},
			{Number: 2, Exp: ast.SimpleExp{Number: token.New("~3", token.Position{Line: 2, Col: 1, Offset: 7}, token.Number, token.Rough)}},
			{Number: 3, Exp: ast.SimpleExp{String: token.New(`"a"`, token.Position{Line: 3, Col: 1, Offset: 10}, token.String)}},
			{Number: 4, Exp: ast.SimpleExp{True: token.New("true", token.Position{Line: 4, Col: 1, Offset: 14}, token.True)}},
			{Number: 5, Exp: ast.SimpleExp{False: token.New("false", token.Position{Line: 5, Col: 1, Offset: 19}, token.False)}},
			{Number: 6, Exp: ast.SimpleExp{Nothing: token.New("nothing", token.Position{Line: 6, Col: 1, Offset: 25}, token.Nothing)}},
		},
	})
}

func (suite *ParserSuite) TestAdditionIsLeftAssociative() {
	suite.assertProgramString("1 + 2 + ~3", ast.Program{
		Name: "<unknown input>",
		Lines: []ast.Line{
			{
				Number: 1,
				Exp: ast.BinopExp{
					Left: ast.BinopExp{
						Left:  ast.SimpleExp{Number: token.New("1", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number)},
						Binop: token.New("+", token.Position{Line: 1, Col: 3, Offset: 2}, token.Plus),
						Right: ast.SimpleExp{Number: token.New("2", token.Position{Line: 1, Col: 5, Offset: 4}, token.Number)},
					},
					Binop: token.New("+", token.Position{Line: 1, Col: 7, Offset: 6}, token.Plus),
					Right: ast.SimpleExp{Number: token.New("~3", token.Position{Line: 1, Col: 9, Offset: 8}, token.Number, token.Rough)},
				},
			},
		},
	})
}

func (suite *ParserSuite) TestCalls() {
	suite.assertProgramString("print(1 + (2), tostring)\nf()", ast.Program{
		Name: "<unknown input>",
		Lines: []ast.Line{
			{
				Number: 1,
				Exp: ast.CallExp{
					Name: token.New("print", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
					Args: []ast.Exp{
						ast.BinopExp{
							Left:  ast.SimpleExp{Number: token.New("1", token.Position{Line: 1, Col: 7, Offset: 6}, token.Number)},
							Binop: token.New("+", token.Position{Line: 1, Col: 9, Offset: 8}, token.Plus),
							Right: ast.SimpleExp{Number: token.New("2", token.Position{Line: 1, Col: 12, Offset: 11}, token.Number)},
						},
						ast.NameExp{Name: token.New("tostring", token.Position{Line: 1, Col: 16, Offset: 15}, token.Name)},
					},
				},
			},
			{
				Number: 2,
				Exp: ast.CallExp{
					Name: token.New("f", token.Position{Line: 2, Col: 1, Offset: 25}, token.Name),
				},
			},
		},
	})
}

func (suite *ParserSuite) TestErrors() {
	suite.assertErrorsString("print(1", "expected ')', but got EOF")
	suite.assertErrorsString("1 2\n3", "1:3: expected end of line, but got '2'")
	suite.assertErrorsString("1 +\n2", "1:4: expected an expression, but got end of line")
	suite.assertErrorsString("(1\n", "1:3: expected ')', but got end of line")
	suite.assertErrorsString("f(1 2)", "1:5: expected ',' or ')', but got '2'")
	suite.assertErrorsString("1/3", "error at 1:1: malformed number", "error at 1:2: unexpected character '/'")
}
