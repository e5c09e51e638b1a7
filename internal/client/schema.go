package client

import (
	"fmt"
	"math"
	"sort"
)

// Args holds the keyword arguments for one endpoint call.
type Args map[string]any

// valueType enumerates the argument value types an endpoint schema can
// declare. Type checking is a plain variant check against this enumeration.
type valueType int

const (
	typeText valueType = iota
	typeInt
	typeBool
	typeList
	typeMap
)

func (t valueType) String() string {
	switch t {
	case typeText:
		return "text"
	case typeInt:
		return "integer"
	case typeBool:
		return "boolean"
	case typeList:
		return "list"
	case typeMap:
		return "mapping"
	}
	return "unknown"
}

// unbounded marks an open upper end of a constraint.
const unbounded = math.MaxInt

// constraint bounds an argument value: for integer arguments the value
// itself must lie in [Min,Max]; for text arguments the string length must.
type constraint struct {
	Min, Max int
}

func (c constraint) String() string {
	if c.Max == unbounded {
		return fmt.Sprintf(">= %d", c.Min)
	}
	return fmt.Sprintf("[%d,%d]", c.Min, c.Max)
}

func (c constraint) contains(n int) bool {
	return n >= c.Min && n <= c.Max
}

// schema declares the argument surface of one endpoint: recognized names
// with their types, names that must be present, and optional constraints.
type schema struct {
	types    map[string]valueType
	required []string
	ranges   map[string]constraint
}

// validate checks args against the schema. It returns the first violation
// found as an *ArgumentError; arguments are visited in sorted name order so
// failures are deterministic.
func (s schema) validate(endpoint string, args Args) error {
	for _, name := range s.required {
		if _, ok := args[name]; !ok {
			return &ArgumentError{
				Kind:     KindMissingArgument,
				Endpoint: endpoint,
				Argument: name,
			}
		}
	}

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := args[name]

		declared, ok := s.types[name]
		if !ok {
			return &ArgumentError{
				Kind:     KindUnknownArgument,
				Endpoint: endpoint,
				Argument: name,
				Value:    value,
			}
		}

		if !matchesType(value, declared) {
			return &ArgumentError{
				Kind:     KindMalformedArgument,
				Endpoint: endpoint,
				Argument: name,
				Value:    value,
				Expected: declared.String(),
			}
		}

		bound, ok := s.ranges[name]
		if !ok {
			continue
		}
		switch declared {
		case typeText:
			if text, ok := textValue(value); ok && !bound.contains(len(text)) {
				return &ArgumentError{
					Kind:     KindLengthOutOfRange,
					Endpoint: endpoint,
					Argument: name,
					Value:    value,
					Expected: "length " + bound.String(),
				}
			}
		case typeInt:
			if n, ok := intValue(value); ok && !bound.contains(n) {
				return &ArgumentError{
					Kind:     KindValueOutOfRange,
					Endpoint: endpoint,
					Argument: name,
					Value:    value,
					Expected: bound.String(),
				}
			}
		}
	}
	return nil
}

// matchesType reports whether value fits the declared type tag. Text is
// duck-typed: anything string-like passes, not just the string type.
func matchesType(value any, declared valueType) bool {
	switch declared {
	case typeText:
		_, ok := textValue(value)
		return ok
	case typeInt:
		_, ok := intValue(value)
		return ok
	case typeBool:
		_, ok := value.(bool)
		return ok
	case typeList:
		switch value.(type) {
		case []any, []string, []int, []Args, []map[string]any:
			return true
		}
		return false
	case typeMap:
		switch value.(type) {
		case Args, map[string]any:
			return true
		}
		return false
	}
	return false
}

func textValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		// JSON-decoded numbers; only integral values qualify.
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}
