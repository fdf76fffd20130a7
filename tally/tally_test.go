package tally_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeprobe/kind"
	"typeprobe/probe"
	"typeprobe/tally"
)

func ExampleCountRealTypes() {
	fmt.Println(tally.CountRealTypes([]any{true, nil, false, !true, map[string]any{}}))
	// Output:
	// [boolean:3 null:1 object:1]
}

func TestTypesKeepOrder(t *testing.T) {
	t.Parallel()

	items := []any{false, 291, "how are you", []int{0, 1}, nil, math.Inf(-1)}

	assert.Equal(t, []kind.CoarseEnum{
		kind.CoarseBoolean, kind.CoarseNumber, kind.CoarseString,
		kind.CoarseObject, kind.CoarseObject, kind.CoarseNumber,
	}, tally.CoarseTypes(items))

	assert.Equal(t, []kind.RealEnum{
		kind.RealBoolean, kind.RealNumber, kind.RealString,
		kind.RealArray, kind.RealNull, kind.RealInfinity,
	}, tally.RealTypes(items))

	assert.Empty(t, tally.RealTypes([]any{}))
	assert.Len(t, tally.CoarseTypes([]int{1, 2, 3}), 3)
}

func TestSameCoarseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []any
		expected bool
	}{
		{"empty", []any{}, true},
		{"nil slice", nil, true},
		{"numbers", []any{1, 2, 3}, true},
		{"strings", []any{"11", "12", "13"}, true},
		{"number and string", []any{1, "2", 3}, false},
		{"number, NaN and infinity", []any{123, math.NaN(), math.Inf(1)}, true},
		{"single object", []any{map[string]any{}}, true},
		{"array and object share a coarse kind", []any{[]any{}, map[string]any{}}, true},
		{"NaN and null", []any{math.NaN(), nil}, false},
		{"NaN and undefined", []any{math.NaN(), probe.Undefined}, false},
		{"null and undefined", []any{nil, probe.Undefined}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tally.SameCoarseType(tt.items))
		})
	}
}

func TestUniqueRealTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []any
		expected bool
	}{
		{"empty", []any{}, true},
		{"boolean, number, string", []any{true, 123, "123"}, true},
		{"two booleans", []any{true, false}, false},
		{"object, regexp, null, date", []any{map[string]any{}, regexp.MustCompile(`[A-Z]+`), nil, time.Now()}, true},
		{"NaN differs from number", []any{1, math.NaN(), math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tally.UniqueRealTypes(tt.items))
		})
	}
}

func TestFirstRepeatedRealType(t *testing.T) {
	t.Parallel()

	index, tag, ok := tally.FirstRepeatedRealType([]any{"a", 1, nil, 2, "b"})
	require.True(t, ok)
	assert.Equal(t, 3, index)
	assert.Equal(t, kind.RealNumber, tag)

	index, _, ok = tally.FirstRepeatedRealType([]any{"a"})
	assert.False(t, ok)
	assert.Equal(t, -1, index)
}

func TestCountRealTypes(t *testing.T) {
	t.Parallel()

	t.Run("counts and sorts", func(t *testing.T) {
		t.Parallel()

		got := tally.CountRealTypes([]any{map[string]any{}, nil, true, !false, !true})
		assert.Equal(t, []tally.Entry{
			{kind.RealBoolean, 3},
			{kind.RealNull, 1},
			{kind.RealObject, 1},
		}, got)
	})

	t.Run("single kind", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []tally.Entry{{kind.RealNumber, 3}}, tally.CountRealTypes([]int{1, 4, 6}))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tally.CountRealTypes([]any{}))
	})

	t.Run("mixed with repetitions", func(t *testing.T) {
		t.Parallel()

		items := []any{
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

		expected := []tally.Entry{
			{kind.RealArray, 1},
			{kind.RealBoolean, 2},
			{kind.RealDate, 1},
			{kind.RealNaN, 1},
			{kind.RealNull, 1},
			{kind.RealNumber, 1},
			{kind.RealObject, 2},
			{kind.RealRegExp, 2},
			{kind.RealString, 1},
			{kind.RealSymbol, 1},
			{kind.RealUndefined, 1},
		}

		got := tally.CountRealTypes(items)
		assert.Equal(t, expected, got)
		assert.Equal(t, len(items), tally.Total(got))

		rng := rand.New(rand.NewPCG(1, 2))
		for range 20 {
			shuffled := slices.Clone(items)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, expected, tally.CountRealTypes(shuffled), "order of input must not matter")
		}
	})
}

func TestSortEntries(t *testing.T) {
	t.Parallel()

	entries := []tally.Entry{
		{kind.RealUndefined, 1},
		{kind.RealNull, 1},
		{kind.RealNaN, 1},
		{kind.RealMap, 1},
		{kind.RealArray, 1},
	}
	tally.SortEntries(entries)

	tags := make([]string, len(entries))
	for i, e := range entries {
		tags[i] = e.Tag.String()
	}

	assert.Equal(t, []string{"array", "map", "NaN", "null", "undefined"}, tags)
}
