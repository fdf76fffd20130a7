// Package tally classifies whole collections: per-item tags, homogeneity,
// uniqueness and frequency counts of refined kinds.
package tally

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"typeprobe/internal/common"
	"typeprobe/kind"
	"typeprobe/probe"
)

// Entry is a refined kind with the number of items carrying it.
type Entry struct {
	Tag   kind.RealEnum `yaml:"tag"`
	Count int           `yaml:"count"`
}

func (e Entry) String() string {
	return e.Tag.String() + ":" + strconv.Itoa(e.Count)
}

// CoarseTypes returns the coarse kind of every item, in input order.
func CoarseTypes[S ~[]E, E any](items S) []kind.CoarseEnum {
	return common.Map(items, func(item E) kind.CoarseEnum { return probe.Coarse(item) })
}

// RealTypes returns the refined kind of every item, in input order.
func RealTypes[S ~[]E, E any](items S) []kind.RealEnum {
	return common.Map(items, func(item E) kind.RealEnum { return probe.Real(item) })
}

// SameCoarseType reports whether all items share the coarse kind of the first one.
// An empty collection is homogeneous.
//
// Only coarse kinds are compared, so an array and a keyed object (both "object")
// count as the same type. Callers relying on this must not be broken.
func SameCoarseType[S ~[]E, E any](items S) bool {
	first, ok := common.First(items)
	if !ok {
		return true
	}

	want := probe.Coarse(first)

	return common.Every(items, func(item E) bool { return probe.Coarse(item) == want })
}

// UniqueRealTypes reports whether no refined kind occurs twice.
func UniqueRealTypes[S ~[]E, E any](items S) bool {
	_, _, repeated := FirstRepeatedRealType(items)
	return !repeated
}

// FirstRepeatedRealType scans in input order and stops at the first item whose
// refined kind was already seen. It returns that item's index and kind.
func FirstRepeatedRealType[S ~[]E, E any](items S) (index int, tag kind.RealEnum, ok bool) {
	var seen [kind.RealTotal]bool

	for i, item := range items {
		tag := probe.Real(item)
		if seen[tag] {
			return i, tag, true
		}

		seen[tag] = true
	}

	return -1, 0, false
}

// CountRealTypes counts items per refined kind. Entries come sorted by tag text
// the way people read them: case is a tie-breaker only, so "NaN" sits between
// "date" and "null". Input order never affects the result.
func CountRealTypes[S ~[]E, E any](items S) []Entry {
	var counts [kind.RealTotal]int
	for _, item := range items {
		counts[probe.Real(item)]++
	}

	entries := make([]Entry, 0, len(counts))
	for tag, count := range counts {
		if count > 0 {
			entries = append(entries, Entry{Tag: kind.RealEnum(tag), Count: count})
		}
	}

	SortEntries(entries)

	return entries
}

// SortEntries orders entries ascending by tag text using root-locale collation,
// falling back to byte order for ties.
func SortEntries(entries []Entry) {
	// a collator keeps scratch buffers, one per call keeps this safe for concurrent use
	coll := collate.New(language.Und)

	slices.SortFunc(entries, func(a, b Entry) int {
		as, bs := a.Tag.String(), b.Tag.String()
		if c := coll.CompareString(as, bs); c != 0 {
			return c
		}

		return strings.Compare(as, bs)
	})
}

// Total sums the counts of all entries.
func Total(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}

	return total
}
