package script

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Comparator decides whether the actual arguments of a call satisfy the
// expected ones.
type Comparator interface {
	Match(expected, actual []any) bool
	Name() string
}

var (
	_ Comparator = PositionalPrefix{}
	_ Comparator = FullSequence{}
)

// PositionalPrefix compares both sequences position by position, stopping at
// the shorter one. Trailing arguments on either side are never inspected.
type PositionalPrefix struct{}

func (PositionalPrefix) Name() string { return "positional-prefix" }

func (PositionalPrefix) Match(expected, actual []any) bool {
	n := len(expected)
	if len(actual) < n {
		n = len(actual)
	}

	for i := 0; i < n; i++ {
		if !Equal(expected[i], actual[i]) {
			return false
		}
	}

	return true
}

// FullSequence requires the same arity and equal values at every position.
type FullSequence struct{}

func (FullSequence) Name() string { return "full-sequence" }

func (FullSequence) Match(expected, actual []any) bool {
	if len(expected) != len(actual) {
		return false
	}

	for i := range expected {
		if !Equal(expected[i], actual[i]) {
			return false
		}
	}

	return true
}

var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether two argument values are structurally equal.
func Equal(x, y any) bool {
	return cmp.Equal(x, y, allowUnexported)
}

// Diff renders a human-readable difference between two argument lists,
// empty when they are equal.
func Diff(expected, actual []any) string {
	return cmp.Diff(expected, actual, allowUnexported)
}
