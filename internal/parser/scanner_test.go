package parser

import (
	"github.com/tsatke/trove/internal/token"
)

func (suite *ScannerSuite) TestEmptyInput() {
	suite.assertTokensString(``, []token.Token{})
}

func (suite *ScannerSuite) TestSmallInput() {
	suite.assertTokensString(`a`, []token.Token{
		token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
	})
	suite.assertTokensString(`to-repr`, []token.Token{
		token.New("to-repr", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
	})
}

func (suite *ScannerSuite) TestKeywords() {
	suite.assertTokensString("true false nothing nothingness", []token.Token{
		token.New("true", token.Position{Line: 1, Col: 1, Offset: 0}, token.True),
		token.New("false", token.Position{Line: 1, Col: 6, Offset: 5}, token.False),
		token.New("nothing", token.Position{Line: 1, Col: 12, Offset: 11}, token.Nothing),
		token.New("nothingness", token.Position{Line: 1, Col: 20, Offset: 19}, token.Name),
	})
}

func (suite *ScannerSuite) TestNumbers() {
	suite.assertTokensString("3 -2500 1.5e21 1.5E-7 .5 ~3 ~-0.25 1e+06", []token.Token{
		token.New("3", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number),
		token.New("-2500", token.Position{Line: 1, Col: 3, Offset: 2}, token.Number),
		token.New("1.5e21", token.Position{Line: 1, Col: 9, Offset: 8}, token.Number),
		token.New("1.5E-7", token.Position{Line: 1, Col: 16, Offset: 15}, token.Number),
		token.New(".5", token.Position{Line: 1, Col: 23, Offset: 22}, token.Number),
		token.New("~3", token.Position{Line: 1, Col: 26, Offset: 25}, token.Number, token.Rough),
		token.New("~-0.25", token.Position{Line: 1, Col: 29, Offset: 28}, token.Number, token.Rough),
		token.New("1e+06", token.Position{Line: 1, Col: 36, Offset: 35}, token.Number),
	})
}

func (suite *ScannerSuite) TestMalformedNumbers() {
	suite.assertTokensString("1/3", []token.Token{
		token.New("malformed number", token.Position{Line: 1, Col: 1, Offset: 0}, token.Error),
		token.New(`unexpected character '/'`, token.Position{Line: 1, Col: 2, Offset: 1}, token.Error),
		token.New("3", token.Position{Line: 1, Col: 3, Offset: 2}, token.Number),
	})
	suite.assertTokensString("١٢", []token.Token{
		token.New("malformed number", token.Position{Line: 1, Col: 1, Offset: 0}, token.Error),
		token.New("malformed number", token.Position{Line: 1, Col: 2, Offset: 1}, token.Error),
	})
	suite.assertTokensString("~x", []token.Token{
		token.New("expected a number after '~'", token.Position{Line: 1, Col: 1, Offset: 0}, token.Error),
		token.New("x", token.Position{Line: 1, Col: 2, Offset: 1}, token.Name),
	})
}

func (suite *ScannerSuite) TestStrings() {
	suite.assertTokensString(`"a\"b\\c" "x"`, []token.Token{
		token.New(`"a\"b\\c"`, token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
		token.New(`"x"`, token.Position{Line: 1, Col: 11, Offset: 10}, token.String),
	})
	suite.assertTokensString(`"abc`, []token.Token{
		token.New("unterminated string literal", token.Position{Line: 1, Col: 1, Offset: 0}, token.Error),
	})
}

func (suite *ScannerSuite) TestPunctuation() {
	suite.assertTokensString("print(1 + ~2, x)", []token.Token{
		token.New("print", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
		token.New("(", token.Position{Line: 1, Col: 6, Offset: 5}, token.ParLeft),
		token.New("1", token.Position{Line: 1, Col: 7, Offset: 6}, token.Number),
		token.New("+", token.Position{Line: 1, Col: 9, Offset: 8}, token.Plus),
		token.New("~2", token.Position{Line: 1, Col: 11, Offset: 10}, token.Number, token.Rough),
		token.New(",", token.Position{Line: 1, Col: 13, Offset: 12}, token.Comma),
		token.New("x", token.Position{Line: 1, Col: 15, Offset: 14}, token.Name),
		token.New(")", token.Position{Line: 1, Col: 16, Offset: 15}, token.ParRight),
	})
}

func (suite *ScannerSuite) TestLinesAndComments() {
	suite.assertTokensString("#!/usr/bin/env trove\n1 # one\n\n  2", []token.Token{
		token.New("\n", token.Position{Line: 1, Col: 21, Offset: 20}, token.EOL),
		token.New("1", token.Position{Line: 2, Col: 1, Offset: 21}, token.Number),
		token.New("\n", token.Position{Line: 2, Col: 8, Offset: 28}, token.EOL),
		token.New("\n", token.Position{Line: 3, Col: 1, Offset: 29}, token.EOL),
		token.New("2", token.Position{Line: 4, Col: 3, Offset: 32}, token.Number),
	})
}

func (suite *ScannerSuite) TestUnexpectedCharacter() {
	suite.assertTokensString("1 $", []token.Token{
		token.New("1", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number),
		token.New(`unexpected character '$'`, token.Position{Line: 1, Col: 3, Offset: 2}, token.Error),
	})
}
