package engine

type (
	callStack struct {
		size int
		head *node
	}

	node struct {
		frame StackFrame
		next  *node
	}

	// StackFrame is one entry of the call stack at the time an error
	// occurred. The program itself is the outermost frame.
	StackFrame struct {
		Name string
		Line int
	}
)

func newCallStack() *callStack {
	return &callStack{}
}

func (s *callStack) Push(frame StackFrame) {
	s.head = &node{
		frame: frame,
		next:  s.head,
	}
	s.size++
}

func (s *callStack) Pop() (StackFrame, bool) {
	if s.head == nil {
		return StackFrame{}, false
	}
	frame := s.head.frame
	s.head = s.head.next
	s.size--
	return frame, true
}

// Slice returns the frames from innermost to outermost.
func (s *callStack) Slice() []StackFrame {
	frames := make([]StackFrame, s.size)
	current := s.head
	i := 0
	for current != nil {
		frames[i] = current.frame
		current = current.next
		i++
	}
	return frames
}

func (f StackFrame) String() string {
	return f.Name
}
