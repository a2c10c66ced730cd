package util

import (
	"fmt"
	"strconv"
	"strings"
)

type TripleParsable interface {
	uint8 | uint16 | float64
}

func tripleSplitter(s string) []string {
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		v = append(v, strings.TrimSpace(p))
	}
	return v
}

// ParseTriple parses a comma separated triple such as "255, 0, 128" or
// "0.5,0.25,1". Integer triples must fit the target type.
func ParseTriple[T TripleParsable](s string) ([3]T, error) {
	var out [3]T

	s = strings.Trim(s, `"()`) // tolerate quoted or parenthesised tuples
	parts := tripleSplitter(s)
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 comma separated values, got %d in %q", len(parts), s)
	}

	var parser func(string) (T, error)
	switch any(out[0]).(type) {
	case uint8:
		parser = func(p string) (T, error) {
			v, err := strconv.ParseUint(p, 10, 8)
			return T(v), err
		}
	case uint16:
		parser = func(p string) (T, error) {
			v, err := strconv.ParseUint(p, 10, 16)
			return T(v), err
		}
	case float64:
		parser = func(p string) (T, error) {
			v, err := strconv.ParseFloat(p, 64)
			return T(v), err
		}
	}

	for i, p := range parts {
		v, err := parser(p)
		if err != nil {
			return out, fmt.Errorf("value %d of %q: %w", i+1, s, err)
		}
		out[i] = v
	}
	return out, nil
}
