package value

const (
	// Nothing is the constant value nothing.
	Nothing = nothingValue(0)
)

var _ Value = (*nothingValue)(nil)

type nothingValue uint8

func (nothingValue) Type() Type     { return TypeNothing }
func (nothingValue) String() string { return "nothing" }
