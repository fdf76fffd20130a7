// Package sample decodes YAML documents into sequences of Go values ready
// to be classified.
//
// Plain YAML decodes as yaml.v3 would decode into an interface: null, bool,
// int, float (including .nan and .inf), string, sequences as []any and
// mappings as map[string]any. Local tags cover the kinds YAML has no syntax
// for:
//
//	!undefined        the absent value
//	!symbol id        a fresh symbol described as "id"
//	!regexp '[0-9]+'  a compiled regular expression
//	!date 2024-05-01  a date, RFC 3339 or YYYY-MM-DD
//	!error boom       an error with message "boom"
//	!func name        an opaque function
//	!set [1, 2]       a set of scalar members
//	!map {1: one}     a map keyed by arbitrary scalars
package sample

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"typeprobe/probe"
)

const (
	TagUndefined = "!undefined"
	TagSymbol    = "!symbol"
	TagRegExp    = "!regexp"
	TagDate      = "!date"
	TagError     = "!error"
	TagFunc      = "!func"
	TagSet       = "!set"
	TagMap       = "!map"
)

// Func is the value produced for !func nodes.
type Func func()

// LoadFile reads a YAML file and decodes its sequence of values.
func LoadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample file %s: %w", path, err)
	}

	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return items, nil
}

// Parse decodes a YAML document whose root must be a sequence.
// An empty document decodes to an empty sequence.
func Parse(data []byte) ([]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sample YAML: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []any{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: sample document must be a sequence", root.Line)
	}

	items := make([]any, 0, len(root.Content))
	for _, n := range root.Content {
		v, err := decode(n)
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}

	return items, nil
}

func decode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return decode(n.Alias)
	case yaml.SequenceNode:
		return decodeSequence(n)
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case TagUndefined:
		return probe.Undefined, nil
	case TagSymbol:
		return probe.NewSymbol(n.Value), nil
	case TagRegExp:
		re, err := regexp.Compile(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid regexp: %w", n.Line, err)
		}

		return re, nil
	case TagDate:
		return parseDate(n)
	case TagError:
		return errors.New(n.Value), nil
	case TagFunc:
		return Func(func() {}), nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}

	return v, nil
}

func parseDate(n *yaml.Node) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, n.Value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("line %d: invalid date %q", n.Line, n.Value)
}

func decodeSequence(n *yaml.Node) (any, error) {
	if n.Tag == TagSet {
		return decodeSet(n)
	}

	items := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		v, err := decode(c)
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}

	return items, nil
}

func decodeSet(n *yaml.Node) (map[any]struct{}, error) {
	set := make(map[any]struct{}, len(n.Content))
	for _, c := range n.Content {
		member, err := decodeKey(c)
		if err != nil {
			return nil, err
		}

		set[member] = struct{}{}
	}

	return set, nil
}

func decodeMapping(n *yaml.Node) (any, error) {
	if n.Tag == TagMap {
		m := make(map[any]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := decodeKey(n.Content[i])
			if err != nil {
				return nil, err
			}

			v, err := decode(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m[k] = v
		}

		return m, nil
	}

	obj := make(map[string]any, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: object keys must be scalars, use %s for other keys", k.Line, TagMap)
		}

		v, err := decode(n.Content[i+1])
		if err != nil {
			return nil, err
		}

		obj[k.Value] = v
	}

	return obj, nil
}

// decodeKey decodes a set member or map key, which must be hashable.
func decodeKey(n *yaml.Node) (any, error) {
	k, err := decode(n)
	if err != nil {
		return nil, err
	}

	if k != nil && !reflect.TypeOf(k).Comparable() {
		return nil, fmt.Errorf("line %d: %T cannot be used as a key or set member", n.Line, k)
	}

	return k, nil
}
