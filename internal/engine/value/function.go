package value

// Builtin is the Go implementation behind a Function.
type Builtin func(...Value) (Value, error)

type Function struct {
	Name     string
	Callable Builtin
}

func NewFunction(name string, callable Builtin) *Function {
	return &Function{
		Name:     name,
		Callable: callable,
	}
}

func (*Function) Type() Type { return TypeFunction }

func (f *Function) String() string {
	return "<function:" + f.Name + ">"
}
