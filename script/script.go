package script

import (
	"fmt"
)

const (
	KindMismatch   = "mismatch"
	KindExhausted  = "exhausted"
	KindUnconsumed = "unconsumed"
)

// Error is returned by a Script when a call diverges from the declared
// records. It carries no method name; callers attach one.
type Error struct {
	// "mismatch" | "exhausted" | "unconsumed"
	Kind      string
	Call      int
	Expected  []any
	Actual    []any
	Declared  int
	Remaining int
	Diff      string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMismatch:
		return fmt.Sprintf("call #%d: expected arguments %v, got %v", e.Call, e.Expected, e.Actual)
	case KindExhausted:
		return fmt.Sprintf("call #%d with arguments %v: no more expected calls (declared %d)", e.Call, e.Actual, e.Declared)
	case KindUnconsumed:
		return fmt.Sprintf("%d of %d expected calls not made", e.Remaining, e.Declared)
	default:
		return "script: " + e.Kind
	}
}

// Record is a single expected call and the value it yields.
type Record struct {
	Args   []any
	Return any
}

// Script is an ordered queue of expected calls, consumed front to back.
type Script struct {
	comparator Comparator
	records    []Record
	next       int
	calls      int
}

func New(comparator Comparator) *Script {
	if comparator == nil {
		comparator = FullSequence{}
	}

	return &Script{comparator: comparator}
}

// Expect appends one expected call. The argument slice is copied.
func (s *Script) Expect(ret any, args []any) *Script {
	s.records = append(s.records, Record{Args: clone(args), Return: ret})
	return s
}

// Call matches args against the next unconsumed record. A mismatching call
// does not consume the record.
func (s *Script) Call(args ...any) (any, error) {
	s.calls++

	if s.next >= len(s.records) {
		return nil, &Error{
			Kind:     KindExhausted,
			Call:     s.calls,
			Actual:   clone(args),
			Declared: len(s.records),
		}
	}

	record := s.records[s.next]
	if !s.comparator.Match(record.Args, args) {
		return nil, &Error{
			Kind:     KindMismatch,
			Call:     s.calls,
			Expected: clone(record.Args),
			Actual:   clone(args),
			Declared: len(s.records),
			Diff:     Diff(record.Args, args),
		}
	}

	s.next++
	return record.Return, nil
}

// Verify fails when declared records remain unconsumed.
func (s *Script) Verify() error {
	if remaining := s.Remaining(); remaining > 0 {
		return &Error{
			Kind:      KindUnconsumed,
			Declared:  len(s.records),
			Remaining: remaining,
		}
	}
	return nil
}

func (s *Script) Len() int { return len(s.records) }

func (s *Script) Consumed() int { return s.next }

func (s *Script) Remaining() int { return len(s.records) - s.next }

func (s *Script) Comparator() Comparator { return s.comparator }

func clone(args []any) []any {
	if args == nil {
		return []any{}
	}
	result := make([]any, len(args))
	copy(result, args)
	return result
}
