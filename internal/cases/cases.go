// Package cases holds the built-in example suite exercising the classifier,
// the collection analyzer and the comparator.
package cases

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"

	"typeprobe/check"
	"typeprobe/deep"
	"typeprobe/internal/common"
	"typeprobe/kind"
	"typeprobe/probe"
	"typeprobe/tally"
)

// boxed wraps a string in an object, the way a string wrapper object would.
type boxed struct {
	Value string
}

// KnownValues returns one value of every recognized kind except other, in a fixed order.
func KnownValues() []any {
	return []any{
		false,
		291,
		"how are you",
		[]int{0, 1, 2, 3},
		map[string]any{"id": 1, "name": "Ivan"},
		func() {},
		probe.Undefined,
		nil,
		math.NaN(),
		math.Inf(-1),
		time.Now(),
		regexp.MustCompile(`[A-Za-z]+`),
		map[int]struct{}{1: {}, 3: {}, 2: {}},
		map[int]string{1: "one", 2: "two"},
		errors.New(""),
		probe.NewSymbol("id"),
	}
}

// Mixed returns the fourteen-value sample with repeated kinds.
func Mixed() []any {
	return []any{
		5,
		nil,
		map[string]any{"name": "Max"},
		[]int{1, 2, 3},
		regexp.MustCompile(`[1-9]`),
		time.Now(),
		false,
		probe.Undefined,
		map[string]any{},
		probe.NewSymbol("ui"),
		regexp.MustCompile(`A+`),
		"hi",
		math.NaN(),
		2-1 == 1,
	}
}

// Suite builds the example suite. Every case in it is expected to pass.
func Suite() *check.Suite {
	s := &check.Suite{}

	s.Block("Arrays are equal").
		Case("nested arrays",
			deep.Equal([]any{1, []any{2, 3}, []any{4, []any{5, 6}}}, []any{1, []any{2, 3}, []any{4, []any{5, 6}}}), true).
		Case("nested arrays of strings, objects and numbers",
			deep.Equal([]any{1, []any{"abc", map[string]any{}}, []any{4, []any{}}}, []any{1, []any{"abc", map[string]any{}}, []any{4, []any{}}}), true)

	s.Block("Arrays are not equal").
		Case("strings differ from numbers", deep.Equal([]any{[]any{"1", "2"}}, []any{[]any{1, 2}}), false).
		Case("number differs from string", deep.Equal(1, "1"), false)

	s.Block("Coarse").
		Case("boolean", probe.Coarse(true).String(), "boolean").
		Case("number", probe.Coarse(123).String(), "number").
		Case("string", probe.Coarse("whoo").String(), "string").
		Case("array", probe.Coarse([]any{}).String(), "object").
		Case("object", probe.Coarse(map[string]any{}).String(), "object").
		Case("function", probe.Coarse(func() {}).String(), "function").
		Case("undefined", probe.Coarse(probe.Undefined).String(), "undefined").
		Case("null", probe.Coarse(nil).String(), "object")

	s.Block("SameCoarseType").
		Case("numbers", tally.SameCoarseType([]any{11, 12, 13}), true).
		Case("strings", tally.SameCoarseType([]any{"11", "12", "13"}), true).
		Case("number, NaN and infinity", tally.SameCoarseType([]any{123, math.NaN(), math.Inf(1)}), true).
		Case("single object", tally.SameCoarseType([]any{map[string]any{}}), true).
		Case("empty", tally.SameCoarseType([]any{}), true).
		Case("array and object", tally.SameCoarseType([]any{[]any{}, map[string]any{}}), true)

	s.Block("Not SameCoarseType").
		Case("strings and a boxed string", tally.SameCoarseType([]any{"11", boxed{"12"}, "13"}), false).
		Case("NaN and null", tally.SameCoarseType([]any{math.NaN(), nil}), false).
		Case("NaN and undefined", tally.SameCoarseType([]any{math.NaN(), probe.Undefined}), false).
		Case("null and undefined", tally.SameCoarseType([]any{nil, probe.Undefined}), false).
		Case("number and string", tally.SameCoarseType([]any{1, "2", 3}), false)

	known := KnownValues()

	s.Block("CoarseTypes versus RealTypes").
		Case("coarse kinds", names(tally.CoarseTypes(known)), []string{
			"boolean", "number", "string", "object", "object", "function", "undefined", "object",
			"number", "number", "object", "object", "object", "object", "object", "symbol",
		}).
		Case("real kinds", names(tally.RealTypes(known)), []string{
			"boolean", "number", "string", "array", "object", "function", "undefined", "null",
			"NaN", "infinity", "date", "regexp", "set", "map", "error", "symbol",
		})

	s.Block("UniqueRealTypes").
		Case("boolean, number and string", tally.UniqueRealTypes([]any{true, 123, "123"}), true).
		Case("two booleans", tally.UniqueRealTypes([]any{true, 123, strconv.Itoa(123) == "123"}), false).
		Case("known values", tally.UniqueRealTypes(known), true).
		Case("object, regexp, null and date",
			tally.UniqueRealTypes([]any{map[string]any{}, regexp.MustCompile(`[A-Z]+`), nil, time.Now()}), true).
		Case("empty", tally.UniqueRealTypes([]any{}), true)

	s.Block("CountRealTypes").
		Case("counts", tally.CountRealTypes([]any{true, nil, !false, !true, map[string]any{}}), []tally.Entry{
			{Tag: kind.RealBoolean, Count: 3},
			{Tag: kind.RealNull, Count: 1},
			{Tag: kind.RealObject, Count: 1},
		}).
		Case("counts are sorted", tally.CountRealTypes([]any{map[string]any{}, nil, true, !false, !true}), []tally.Entry{
			{Tag: kind.RealBoolean, Count: 3},
			{Tag: kind.RealNull, Count: 1},
			{Tag: kind.RealObject, Count: 1},
		}).
		Case("a single kind", tally.CountRealTypes([]any{1, 4, 6}), []tally.Entry{
			{Tag: kind.RealNumber, Count: 3},
		}).
		Case("repeated kinds", tally.CountRealTypes(Mixed()), []tally.Entry{
			{Tag: kind.RealArray, Count: 1},
			{Tag: kind.RealBoolean, Count: 2},
			{Tag: kind.RealDate, Count: 1},
			{Tag: kind.RealNaN, Count: 1},
			{Tag: kind.RealNull, Count: 1},
			{Tag: kind.RealNumber, Count: 1},
			{Tag: kind.RealObject, Count: 2},
			{Tag: kind.RealRegExp, Count: 2},
			{Tag: kind.RealString, Count: 1},
			{Tag: kind.RealSymbol, Count: 1},
			{Tag: kind.RealUndefined, Count: 1},
		})

	return s
}

func names[S ~[]E, E interface{ String() string }](tags S) []string {
	return common.Map(tags, func(tag E) string { return tag.String() })
}
