package probe

// UndefinedValue is the type of Undefined.
type UndefinedValue struct{}

// Undefined stands for an absent value. It is distinct from nil, which classifies as null.
var Undefined UndefinedValue

func (UndefinedValue) String() string { return "undefined" }

// Symbol is a unique value carrying only a description.
// Two symbols are the same only when they are the same pointer.
type Symbol struct {
	description string
}

// NewSymbol returns a fresh symbol; every call yields a distinct one.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}

	return s.description
}

func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
