package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tsatke/trove/internal/ast"
	"github.com/tsatke/trove/internal/engine/value"
	"github.com/tsatke/trove/internal/parser"
	"github.com/tsatke/trove/internal/token"
)

func (e *Engine) evaluateProgram(program ast.Program) (value.Value, error) {
	e.stack.Push(StackFrame{
		Name: program.Name,
	})
	defer e.stack.Pop()

	var result value.Value = value.Nothing
	for _, line := range program.Lines {
		e.log.WithFields(logrus.Fields{
			"program": program.Name,
			"line":    line.Number,
		}).Debug("evaluate line")

		val, err := e.evaluateExpression(line.Exp)
		if err != nil {
			return nil, e.wrapError(line.Number, err)
		}
		result = val
	}
	return result, nil
}

// wrapError turns err into an Error carrying the current call stack. The
// stack is captured by the innermost failing call, so an Error that is
// already wrapped is only completed with the line number.
func (e *Engine) wrapError(line int, err error) error {
	var evalErr Error
	if errors.As(err, &evalErr) {
		evalErr.Line = line
		return evalErr
	}
	return Error{
		Message: err.Error(),
		Line:    line,
		Stack:   e.stack.Slice(),
	}
}

func (e *Engine) evaluateExpression(exp ast.Exp) (value.Value, error) {
	switch ex := exp.(type) {
	case ast.SimpleExp:
		return e.evaluateSimpleExpression(ex)
	case ast.NameExp:
		return e.evaluateName(ex.Name)
	case ast.CallExp:
		return e.evaluateCall(ex)
	case ast.BinopExp:
		return e.evaluateBinop(ex)
	}
	return nil, fmt.Errorf("%s: %T unsupported", ast.Pos(exp), exp)
}

func (e *Engine) evaluateSimpleExpression(exp ast.SimpleExp) (value.Value, error) {
	switch {
	case exp.Nothing != nil:
		return value.Nothing, nil
	case exp.True != nil:
		return value.True, nil
	case exp.False != nil:
		return value.False, nil
	case exp.Number != nil:
		return numberFromToken(exp.Number)
	case exp.String != nil:
		s, err := parser.Unquote(exp.String.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", exp.String.Pos(), err)
		}
		return value.NewString(s), nil
	}
	return nil, fmt.Errorf("empty expression")
}

// numberFromToken decodes a numeric literal. A '~' prefix makes the
// number rough, every other literal is exact.
func numberFromToken(tk token.Token) (value.Number, error) {
	text := strings.TrimPrefix(tk.Value(), "~")
	magnitude, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value.Number{}, fmt.Errorf("%s: number literal %s out of range", tk.Pos(), tk.Value())
		}
		return value.Number{}, fmt.Errorf("%s: parse number: %w", tk.Pos(), err)
	}
	if tk.Is(token.Rough) {
		return value.NewRough(magnitude), nil
	}
	return value.NewExact(magnitude), nil
}

func (e *Engine) evaluateName(name token.Token) (value.Value, error) {
	val, ok := e.Global(name.Value())
	if !ok {
		return nil, fmt.Errorf("%s: unbound identifier '%s'", name.Pos(), name.Value())
	}
	return val, nil
}

func (e *Engine) evaluateCall(call ast.CallExp) (value.Value, error) {
	callee, err := e.evaluateName(call.Name)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*value.Function)
	if !ok {
		return nil, fmt.Errorf("%s: '%s' is not a function, but %s", call.Name.Pos(), call.Name.Value(), callee.Type())
	}

	args := make([]value.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i], err = e.evaluateExpression(arg)
		if err != nil {
			return nil, err
		}
	}

	return e.call(fn, call.Name.Pos().Line, args...)
}

func (e *Engine) evaluateBinop(exp ast.BinopExp) (value.Value, error) {
	left, err := e.evaluateExpression(exp.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluateExpression(exp.Right)
	if err != nil {
		return nil, err
	}

	if !exp.Binop.Is(token.Plus) {
		return nil, fmt.Errorf("%s: unsupported operator '%s'", exp.Binop.Pos(), exp.Binop.Value())
	}
	plus, ok := e.Global("_plus")
	if !ok {
		return nil, fmt.Errorf("'_plus' is not defined")
	}
	return e.call(plus.(*value.Function), exp.Binop.Pos().Line, left, right)
}

func (e *Engine) call(fn *value.Function, line int, args ...value.Value) (value.Value, error) {
	e.stack.Push(StackFrame{
		Name: fn.Name,
		Line: line,
	})
	defer e.stack.Pop()

	result, err := fn.Callable(args...)
	if err != nil {
		return nil, Error{
			Message: fmt.Sprintf("%s: %s", fn.Name, err),
			Stack:   e.stack.Slice(),
		}
	}
	return result, nil
}
