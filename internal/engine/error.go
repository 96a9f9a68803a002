package engine

import "fmt"

// Error is returned by Eval when a line of a program could not be
// evaluated. Parse errors are reported as plain errors.
type Error struct {
	Message string
	Line    int
	Stack   []StackFrame
}

func (e Error) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
