package probe

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"slices"
	"time"
	"unsafe"

	"typeprobe/kind"
)

var (
	undefinedType = reflect.TypeFor[UndefinedValue]()
	symbolType    = reflect.TypeFor[Symbol]()
	timeType      = reflect.TypeFor[time.Time]()
	regexpType    = reflect.TypeFor[regexp.Regexp]()
	numberType    = reflect.TypeFor[json.Number]()
	errorType     = reflect.TypeFor[error]()
	emptyType     = reflect.TypeFor[struct{}]()
)

// Coarse returns the primitive category of v. It always equals Real(v).Coarse().
func Coarse(v any) kind.CoarseEnum {
	return Real(v).Coarse()
}

// Real returns the refined kind of v. Never returns the zero kind.
func Real(v any) kind.RealEnum {
	return RealValue(reflect.ValueOf(v))
}

// RealValue is Real for values already taken apart by reflection.
// The invalid reflect.Value classifies as null, a reference cycle as other.
func RealValue(rv reflect.Value) kind.RealEnum {
	rv, ok := Indirect(rv)
	if !ok {
		return kind.RealOther
	}

	if !rv.IsValid() {
		return kind.RealNull
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func:
		if rv.IsNil() {
			return kind.RealNull
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); math.IsNaN(f) {
			return kind.RealNaN
		} else if math.IsInf(f, 0) {
			return kind.RealInfinity
		}
	}

	return FromReflectType(rv.Type())
}

// Indirect strips interfaces and pointers down to the value that decides the kind.
// It stops at a nil, at a pointer implementing error and at a pointer to a
// symbol, date or regexp. The second result is false when a pointer chain
// leads back to itself.
func Indirect(rv reflect.Value) (reflect.Value, bool) {
	var visited []unsafe.Pointer

	for rv.IsValid() {
		switch rv.Kind() {
		default:
			return rv, true
		case reflect.Interface:
			if rv.IsNil() {
				return rv, true
			}
		case reflect.Pointer:
			if rv.IsNil() || isTerminal(rv.Type()) {
				return rv, true
			}

			p := rv.UnsafePointer()
			if slices.Contains(visited, p) {
				return rv, false
			}

			visited = append(visited, p)
		}

		rv = rv.Elem()
	}

	return rv, true
}

// isTerminal reports whether a pointer type carries its kind itself.
func isTerminal(ptr reflect.Type) bool {
	switch ptr.Elem() {
	case symbolType, timeType, regexpType:
		return true
	}

	return ptr.Implements(errorType)
}

// FromReflectType classifies by static type alone. Value-dependent results
// (null, NaN, infinity) are out of its reach: float types report number.
// Pointer types take the kind of their final element type.
func FromReflectType(rtype reflect.Type) kind.RealEnum {
	var visited []reflect.Type

	for rtype != nil {
		if tag, ok := typeKind(rtype); ok {
			return tag
		}

		// type P *P
		if slices.Contains(visited, rtype) {
			return kind.RealOther
		}

		visited = append(visited, rtype)
		rtype = rtype.Elem()
	}

	return kind.RealNull
}

// typeKind classifies a non-pointer type. It reports false for pointers
// that have to be followed.
func typeKind(rtype reflect.Type) (kind.RealEnum, bool) {
	// check well-known types first, they may hide behind any kind
	switch rtype {
	case undefinedType:
		return kind.RealUndefined, true
	case symbolType:
		return kind.RealSymbol, true
	case timeType:
		return kind.RealDate, true
	case regexpType:
		return kind.RealRegExp, true
	case numberType:
		return kind.RealNumber, true
	}

	if rtype.Implements(errorType) {
		return kind.RealError, true
	}

	switch rtype.Kind() {
	default:
		return kind.RealOther, true
	case reflect.Pointer:
		return 0, false
	case reflect.Bool:
		return kind.RealBoolean, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kind.RealNumber, true
	case reflect.String:
		return kind.RealString, true
	case reflect.Slice, reflect.Array:
		return kind.RealArray, true
	case reflect.Map:
		return mapKind(rtype), true
	case reflect.Struct:
		return kind.RealObject, true
	case reflect.Func:
		return kind.RealFunction, true
	case reflect.Interface:
		// an interface type says nothing about the dynamic value
		return kind.RealOther, true
	}
}

// mapKind tells sets, keyed objects and general maps apart.
func mapKind(rtype reflect.Type) kind.RealEnum {
	switch {
	case rtype.Elem() == emptyType:
		return kind.RealSet
	case rtype.Key().Kind() == reflect.String:
		return kind.RealObject
	default:
		return kind.RealMap
	}
}
