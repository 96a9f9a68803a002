package engine

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/tsatke/trove/internal/engine/value"
)

func (suite *EngineSuite) TestTrivial() {
	result, err := suite.engine.Eval(strings.NewReader(`
print("Hello, World!")
`))
	suite.NoError(err)
	suite.Equal(value.NewString("Hello, World!"), result)
	suite.Equal("Hello, World!\n", suite.stdout.String())
}

func (suite *EngineSuite) TestEmptyProgram() {
	result, err := suite.engine.Eval(strings.NewReader("# nothing to see\n"))
	suite.NoError(err)
	suite.Equal(value.Nothing, result)
	suite.Empty(suite.stdout.String())
}

func (suite *EngineSuite) TestPrintNumbers() {
	suite.assertOutput(`
print(1.5e21)
print(1.5e-7)
print(-2500)
print(~3)
print(2 + ~1)
print(0.1 + 0.2)
print(1e300 + 1e300)
print(0)
`, strings.Join([]string{
		"1500000000000000000000",
		"0.00000015",
		"-2500",
		"~3",
		"~3",
		"0.30000000000000004",
		"2" + strings.Repeat("0", 300),
		"0",
	}, "\n")+"\n")
}

func (suite *EngineSuite) TestDisplay() {
	suite.assertOutput(`
display("a\"b\\c")
display("tab\there")
display(~0.5)
display(true)
display(nothing)
display(print)
`, strings.Join([]string{
		`"a\"b\\c"`,
		`"tab\there"`,
		"~0.5",
		"true",
		"nothing",
		"<function:print>",
	}, "\n")+"\n")
}

func (suite *EngineSuite) TestPrintIsPassThrough() {
	suite.assertOutput(`print(print(1) + 2)`, "1\n3\n")
}

func (suite *EngineSuite) TestToStringAndToRepr() {
	suite.assertOutput(`
print(tostring("a\nb"))
print(torepr("a\nb"))
print(torepr(tostring))
print(tostring(1e21 + ~0))
display(torepr(1))
`, strings.Join([]string{
		"a",
		"b",
		`"a\nb"`,
		"<function>",
		"~1000000000000000000000",
		`"1"`,
	}, "\n")+"\n")
}

func (suite *EngineSuite) TestAddIsNotNumber() {
	_, err := suite.engine.Eval(strings.NewReader("\n1 + \"a\""))
	suite.Equal(Error{
		Message: "_plus: right is not a number, but String",
		Line:    2,
		Stack: []StackFrame{
			{Name: "_plus", Line: 2},
			{Name: "<unknown input>"},
		},
	}, err)
	suite.EqualError(err, "line 2: _plus: right is not a number, but String")
}

func (suite *EngineSuite) TestErrors() {
	tests := []struct {
		source string
		err    string
	}{
		{"foo", "line 1: 1:1: unbound identifier 'foo'"},
		{"x(1)", "line 1: 1:1: unbound identifier 'x'"},
		{"print(1, 2)", "line 1: print: 'print' expects 1 argument(s), but got 2"},
		{"_plus(1)", "line 1: _plus: '_plus' expects 2 argument(s), but got 1"},
		{"print(nothing + 1)", "line 1: _plus: left is not a number, but Nothing"},
		{"1e999", "line 1: 1:1: number literal 1e999 out of range"},
		{`"\q"`, "line 1: 1:1: unknown escape sequence '\\q'"},
	}
	for _, tt := range tests {
		_, err := suite.engine.Eval(strings.NewReader(tt.source))
		suite.EqualError(err, tt.err, tt.source)
	}
}

func (suite *EngineSuite) TestParseError() {
	_, err := suite.engine.Eval(strings.NewReader("print(1\nprint(2)"))
	suite.EqualError(err, "errors occurred while parsing\n\t1:8: expected ',' or ')', but got end of line")
	suite.Empty(suite.stdout.String(), "no line must be evaluated")
}

func (suite *EngineSuite) TestEvalFile() {
	suite.NoError(afero.WriteFile(suite.fs, "/work/numbers.arr", []byte("print(1.5e21)\ndisplay(~2 + 1)\n"), 0644))

	result, err := suite.engine.EvalFile("numbers.arr")
	suite.NoError(err)
	suite.Equal(value.NewRough(3), result)
	suite.Equal("1500000000000000000000\n~3\n", suite.stdout.String())

	_, err = suite.engine.EvalFile("/missing.arr")
	suite.Error(err)
}

func (suite *EngineSuite) TestLogging() {
	suite.assertOutput("print(1)\nprint(2)", "1\n2\n")

	var lines []interface{}
	for _, entry := range suite.logHook.AllEntries() {
		if entry.Message == "evaluate line" {
			suite.Equal(logrus.DebugLevel, entry.Level)
			lines = append(lines, entry.Data["line"])
		}
	}
	suite.Equal([]interface{}{1, 2}, lines)
}

func (suite *EngineSuite) TestGlobals() {
	for _, name := range []string{"print", "display", "tostring", "torepr", "_plus"} {
		val, ok := suite.engine.Global(name)
		suite.True(ok, name)
		suite.Equal(value.TypeFunction, val.Type())
	}
}
