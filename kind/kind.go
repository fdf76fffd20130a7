package kind

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=RealEnum -linecomment -output=real_string.go
//go:generate go tool stringer -type=CoarseEnum -linecomment -output=coarse_string.go

// RealEnum is the refined type tag of a value.
type RealEnum int

const (
	_ RealEnum = iota // skip zero value, use it as a default (invalid) value for RealEnum

	RealBoolean   // boolean
	RealNumber    // number
	RealNaN       // NaN
	RealInfinity  // infinity
	RealString    // string
	RealSymbol    // symbol
	RealUndefined // undefined
	RealNull      // null
	RealFunction  // function
	RealArray     // array
	RealObject    // object
	RealDate      // date
	RealRegExp    // regexp
	RealSet       // set
	RealMap       // map
	RealError     // error
	RealOther     // other

	// RealTotal is a constant that represents the total number of real kinds defined
	RealTotal = int(iota)
)

// CoarseEnum is the primitive category of a value.
type CoarseEnum int

const (
	_ CoarseEnum = iota // skip zero value, use it as a default (invalid) value for CoarseEnum

	CoarseBoolean   // boolean
	CoarseNumber    // number
	CoarseString    // string
	CoarseObject    // object
	CoarseFunction  // function
	CoarseUndefined // undefined
	CoarseSymbol    // symbol
	CoarseOther     // other

	// CoarseTotal is a constant that represents the total number of coarse kinds defined
	CoarseTotal = int(iota)
)

func (k RealEnum) IsValid() bool {
	return k > 0 && int(k) < RealTotal
}

func (k RealEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case RealNumber, RealNaN, RealInfinity:
		return true
	}
}

// IsContainer reports whether values of the kind hold other values.
func (k RealEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case RealArray, RealObject, RealSet, RealMap:
		return true
	}
}

// IsComparable reports whether two values of the kind can be compared structurally.
// Callables and unrecognized kinds can't.
func (k RealEnum) IsComparable() bool {
	switch k {
	default:
		return k.IsValid()
	case RealFunction, RealOther:
		return false
	}
}

// Coarse folds the refined kind onto its primitive category.
func (k RealEnum) Coarse() CoarseEnum {
	switch k {
	default:
		panic("coarse kind is not defined for: " + k.String())
	case RealBoolean:
		return CoarseBoolean
	case RealNumber, RealNaN, RealInfinity:
		return CoarseNumber
	case RealString:
		return CoarseString
	case RealSymbol:
		return CoarseSymbol
	case RealUndefined:
		return CoarseUndefined
	case RealFunction:
		return CoarseFunction
	case RealNull, RealArray, RealObject, RealDate, RealRegExp, RealSet, RealMap, RealError:
		return CoarseObject
	case RealOther:
		return CoarseOther
	}
}

func (k CoarseEnum) IsValid() bool {
	return k > 0 && int(k) < CoarseTotal
}

// ParseReal looks a refined kind up by its tag text. Matching is exact, so "nan" is not "NaN".
func ParseReal(s string) (RealEnum, error) {
	for k := RealEnum(1); int(k) < RealTotal; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown real kind %q", s)
}

// ParseCoarse looks a coarse kind up by its tag text.
func ParseCoarse(s string) (CoarseEnum, error) {
	for k := CoarseEnum(1); int(k) < CoarseTotal; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown coarse kind %q", s)
}

func (k RealEnum) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid real kind %d", int(k))
	}

	return []byte(k.String()), nil
}

func (k *RealEnum) UnmarshalText(text []byte) error {
	parsed, err := ParseReal(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

func (k CoarseEnum) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid coarse kind %d", int(k))
	}

	return []byte(k.String()), nil
}

func (k *CoarseEnum) UnmarshalText(text []byte) error {
	parsed, err := ParseCoarse(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
