// Package deep compares values structurally, walking both sides by their
// refined kinds.
//
// Two values are the same when they carry the same refined kind and their
// contents match recursively. Callables and unrecognized kinds cannot be
// compared at all; meeting one anywhere makes the whole comparison
// Incomparable. A cycle is treated as equal by reference: a pair of pointers,
// maps or slices still under comparison is assumed to match.
//
// A struct and a string-keyed map with the same visible fields are both
// objects and compare the same. This is accepted for assertion use.
package deep

import (
	"math"
	"reflect"
	"regexp"
	"slices"
	"time"
	"unsafe"

	"typeprobe/kind"
	"typeprobe/probe"
)

//go:generate go tool stringer -type=Verdict -linecomment -output=verdict_string.go

// Verdict is the outcome of a comparison.
type Verdict int

const (
	_ Verdict = iota // skip zero value, use it as a default (invalid) value for Verdict

	Same         // same
	Different    // different
	Incomparable // incomparable
)

// Equal reports whether a and b are structurally the same.
func Equal(a, b any) bool {
	return Compare(a, b) == Same
}

// Compare walks a and b together and reports how they relate.
func Compare(a, b any) Verdict {
	c := comparer{visited: make(map[visit]struct{})}
	return c.compare(reflect.ValueOf(a), reflect.ValueOf(b))
}

type visit struct {
	a, b       unsafe.Pointer
	typ        reflect.Type
	lenA, lenB int
}

type comparer struct {
	visited map[visit]struct{}
}

func (c *comparer) compare(a, b reflect.Value) Verdict {
	a, b = elem(a), elem(b)

	leave, cycle := c.enter(a, b, reflect.Pointer)
	if cycle {
		return Same
	}
	defer leave()

	a, okA := probe.Indirect(a)
	b, okB := probe.Indirect(b)

	if !okA || !okB {
		return Incomparable
	}

	ka, kb := probe.RealValue(a), probe.RealValue(b)
	if !ka.IsComparable() || !kb.IsComparable() {
		return Incomparable
	}

	if ka != kb {
		return Different
	}

	if ka.IsContainer() {
		unmark, revisited := c.enter(a, b, reflect.Map, reflect.Slice)
		if revisited {
			return Same
		}
		defer unmark()
	}

	switch ka {
	default:
		// null, undefined and NaN carry nothing beyond their kind
		return Same
	case kind.RealBoolean:
		return verdict(a.Bool() == b.Bool())
	case kind.RealNumber:
		return verdict(sameNumber(a, b))
	case kind.RealInfinity:
		return verdict(math.Signbit(a.Float()) == math.Signbit(b.Float()))
	case kind.RealString:
		return verdict(a.String() == b.String())
	case kind.RealSymbol:
		return verdict(sameSymbol(a, b))
	case kind.RealDate:
		return verdict(timeOf(a).Equal(timeOf(b)))
	case kind.RealRegExp:
		return verdict(regexpOf(a).String() == regexpOf(b).String())
	case kind.RealError:
		return verdict(a.Interface().(error).Error() == b.Interface().(error).Error())
	case kind.RealArray:
		return c.compareArrays(a, b)
	case kind.RealObject:
		return c.compareObjects(a, b)
	case kind.RealMap, kind.RealSet:
		return c.compareMaps(a, b, ka == kind.RealSet)
	}
}

// enter marks a pair of references of one of the given kinds as under
// comparison. It reports a cycle when the pair is already marked; otherwise
// the returned func unmarks it.
func (c *comparer) enter(a, b reflect.Value, kinds ...reflect.Kind) (func(), bool) {
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() || !slices.Contains(kinds, a.Kind()) {
		return func() {}, false
	}

	if a.IsNil() || b.IsNil() {
		return func() {}, false
	}

	v := visit{a: a.UnsafePointer(), b: b.UnsafePointer(), typ: a.Type()}
	if a.Kind() == reflect.Slice {
		v.lenA, v.lenB = a.Len(), b.Len()
	}

	if _, ok := c.visited[v]; ok {
		return func() {}, true
	}

	c.visited[v] = struct{}{}

	return func() { delete(c.visited, v) }, false
}

func (c *comparer) compareArrays(a, b reflect.Value) Verdict {
	if a.Len() != b.Len() {
		return Different
	}

	result := Same
	for i := range a.Len() {
		result = combine(result, c.compare(a.Index(i), b.Index(i)))
		if result == Incomparable {
			return result
		}
	}

	return result
}

func (c *comparer) compareObjects(a, b reflect.Value) Verdict {
	fa, fb := fieldsOf(a), fieldsOf(b)
	if len(fa) != len(fb) {
		return Different
	}

	result := Same
	for name, va := range fa {
		vb, ok := fb[name]
		if !ok {
			return combine(result, Different)
		}

		result = combine(result, c.compare(va, vb))
		if result == Incomparable {
			return result
		}
	}

	return result
}

// compareMaps matches every key of a with a structurally equal key of b.
// Set members are keys without values.
func (c *comparer) compareMaps(a, b reflect.Value, set bool) Verdict {
	if a.Len() != b.Len() {
		return Different
	}

	keysB := b.MapKeys()
	used := make([]bool, len(keysB))
	result := Same

	iter := a.MapRange()
	for iter.Next() {
		match, v := matchKey(iter.Key(), keysB, used)
		if v == Incomparable {
			return Incomparable
		}

		if match < 0 {
			result = combine(result, Different)
			continue
		}

		used[match] = true

		if !set {
			result = combine(result, c.compare(iter.Value(), b.MapIndex(keysB[match])))
			if result == Incomparable {
				return result
			}
		}
	}

	return result
}

// matchKey finds the first unused key equal to key. Keys are compared on
// their own, outside the pairs under comparison.
func matchKey(key reflect.Value, keys []reflect.Value, used []bool) (int, Verdict) {
	for i, candidate := range keys {
		if used[i] {
			continue
		}

		fresh := comparer{visited: make(map[visit]struct{})}
		switch fresh.compare(key, candidate) {
		case Incomparable:
			return -1, Incomparable
		case Same:
			return i, Same
		}
	}

	return -1, Different
}

// elem strips interfaces.
func elem(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

// fieldsOf lists the visible keys of an object: string map keys or exported struct fields.
func fieldsOf(v reflect.Value) map[string]reflect.Value {
	fields := make(map[string]reflect.Value)

	if v.Kind() == reflect.Map {
		iter := v.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value()
		}

		return fields
	}

	typ := v.Type()
	for i := range typ.NumField() {
		if f := typ.Field(i); f.IsExported() {
			fields[f.Name] = v.Field(i)
		}
	}

	return fields
}

func sameNumber(a, b reflect.Value) bool {
	ia, aInt := integerOf(a)
	ib, bInt := integerOf(b)

	if aInt && bInt {
		return ia.sign == ib.sign && ia.abs == ib.abs
	}

	return floatOf(a) == floatOf(b)
}

type integer struct {
	sign bool // negative
	abs  uint64
}

func integerOf(v reflect.Value) (integer, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return integer{sign: true, abs: uint64(-(n + 1)) + 1}, true
		}

		return integer{abs: uint64(n)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return integer{abs: v.Uint()}, true
	default:
		return integer{}, false
	}
}

func floatOf(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		// json.Number
		f, _ := v.Interface().(interface{ Float64() (float64, error) }).Float64()
		return f
	default:
		return math.NaN()
	}
}

// sameSymbol compares symbol pointers by identity. Symbols held by value have
// no identity left, those fall back to their descriptions.
func sameSymbol(a, b reflect.Value) bool {
	if a.Kind() == reflect.Pointer && b.Kind() == reflect.Pointer {
		return a.Pointer() == b.Pointer()
	}

	return symbolText(a) == symbolText(b)
}

func symbolText(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		return v.Interface().(*probe.Symbol).Description()
	}

	sym := v.Interface().(probe.Symbol)

	return sym.Description()
}

func timeOf(v reflect.Value) time.Time {
	if v.Kind() == reflect.Pointer {
		return *v.Interface().(*time.Time)
	}

	return v.Interface().(time.Time)
}

func regexpOf(v reflect.Value) *regexp.Regexp {
	if v.Kind() == reflect.Pointer {
		return v.Interface().(*regexp.Regexp)
	}

	re := v.Interface().(regexp.Regexp)

	return &re
}

func verdict(same bool) Verdict {
	if same {
		return Same
	}

	return Different
}

// combine folds two verdicts: Incomparable wins over Different, which wins over Same.
func combine(a, b Verdict) Verdict {
	return max(a, b)
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
