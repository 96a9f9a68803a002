package engine

import (
	"fmt"

	. "github.com/tsatke/trove/internal/engine/value"
)

func (e *Engine) initStdlib() {
	register := func(fn *Function) {
		e.assign(fn.Name, fn)
		e.log.WithField("name", fn.Name).Debug("register builtin")
	}
	register(NewFunction("print", e.print))
	register(NewFunction("display", e.display))
	register(NewFunction("tostring", e.tostring))
	register(NewFunction("torepr", e.torepr))
	register(NewFunction("_plus", e.plus))
}

func (e *Engine) print(args ...Value) (Value, error) {
	if err := arity("print", 1, args); err != nil {
		return nil, err
	}
	return e.Print(args[0]), nil
}

func (e *Engine) display(args ...Value) (Value, error) {
	if err := arity("display", 1, args); err != nil {
		return nil, err
	}
	return e.Display(args[0]), nil
}

func (e *Engine) tostring(args ...Value) (Value, error) {
	if err := arity("tostring", 1, args); err != nil {
		return nil, err
	}
	return NewString(Stringify(args[0])), nil
}

func (e *Engine) torepr(args ...Value) (Value, error) {
	if err := arity("torepr", 1, args); err != nil {
		return nil, err
	}
	return NewString(Repr(args[0])), nil
}

func (e *Engine) plus(args ...Value) (Value, error) {
	if err := arity("_plus", 2, args); err != nil {
		return nil, err
	}
	return e.add(args[0], args[1])
}

func (e *Engine) add(left, right Value) (Value, error) {
	leftNum, ok := left.(Number)
	if !ok {
		return nil, fmt.Errorf("left is not a number, but %s", typeOf(left))
	}
	rightNum, ok := right.(Number)
	if !ok {
		return nil, fmt.Errorf("right is not a number, but %s", typeOf(right))
	}
	return Add(leftNum, rightNum), nil
}

func arity(name string, want int, args []Value) error {
	if len(args) != want {
		return fmt.Errorf("'%s' expects %d argument(s), but got %d", name, want, len(args))
	}
	return nil
}

func typeOf(v Value) Type {
	if v == nil {
		return TypeNothing
	}
	return v.Type()
}
