package trove

import (
	"github.com/tsatke/trove/internal/engine"
)

type Error struct {
	Message string
	Line    int
	Stack   []StackFrame
}

type StackFrame struct {
	Name string
	Line int
}

func errorFromInternal(err engine.Error) Error {
	e := Error{}
	e.Message = err.Message
	e.Line = err.Line
	e.Stack = make([]StackFrame, len(err.Stack))
	for i, frame := range err.Stack {
		e.Stack[i] = StackFrame{
			Name: frame.Name,
			Line: frame.Line,
		}
	}
	return e
}

func (e Error) Error() string {
	return engine.Error{Message: e.Message, Line: e.Line}.Error()
}
