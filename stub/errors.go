package stub

import (
	"errors"
	"fmt"

	"github.com/kardolus/stubexpect/script"
)

type Kind string

const (
	KindAlreadySubstituted   Kind = "already_substituted"
	KindConfigConflict       Kind = "config_conflict"
	KindMalformedExpectation Kind = "malformed_expectation"
	KindArgumentMismatch     Kind = "argument_mismatch"
	KindScriptMismatch       Kind = "script_mismatch"
	KindOverCall             Kind = "over_call"
	KindUnderCall            Kind = "under_call"
)

var Kinds = []Kind{
	KindAlreadySubstituted,
	KindConfigConflict,
	KindMalformedExpectation,
	KindArgumentMismatch,
	KindScriptMismatch,
	KindOverCall,
	KindUnderCall,
}

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrAlreadySubstituted   = &Error{Kind: KindAlreadySubstituted}
	ErrConfigConflict       = &Error{Kind: KindConfigConflict}
	ErrMalformedExpectation = &Error{Kind: KindMalformedExpectation}
	ErrArgumentMismatch     = &Error{Kind: KindArgumentMismatch}
	ErrScriptMismatch       = &Error{Kind: KindScriptMismatch}
	ErrOverCall             = &Error{Kind: KindOverCall}
	ErrUnderCall            = &Error{Kind: KindUnderCall}
)

// Error is a typed error so test code can branch on why a substitution failed.
// Method always names the substituted method, never a placeholder.
type Error struct {
	Kind   Kind
	Method string
	Target any

	// MalformedExpectation
	Key   string
	Entry int

	// ArgumentMismatch, ScriptMismatch, OverCall
	Call     int
	Expected []any
	Actual   []any
	Diff     string

	// OverCall, UnderCall
	Declared int
	Missing  int

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAlreadySubstituted:
		return fmt.Sprintf("method :%s already substituted on %v", e.Method, e.Target)
	case KindConfigConflict:
		return fmt.Sprintf("method :%s: `return`, `args` and `times` cannot be passed along with `expectations`", e.Method)
	case KindMalformedExpectation:
		if e.Entry < 0 {
			return fmt.Sprintf("method :%s: invalid %s", e.Method, e.Key)
		}
		return fmt.Sprintf("method :%s: missing or invalid key %s in expectation definition #%d", e.Method, e.Key, e.Entry)
	case KindArgumentMismatch:
		return fmt.Sprintf("substituted method :%s called on %v with unexpected arguments %v", e.Method, e.Target, e.Actual)
	case KindScriptMismatch:
		return fmt.Sprintf("mocked method :%s called with unexpected arguments %v, expected %v (call #%d)", e.Method, e.Actual, e.Expected, e.Call)
	case KindOverCall:
		return fmt.Sprintf("no more expects available for :%s: %v (call #%d, %d declared)", e.Method, e.Actual, e.Call, e.Declared)
	case KindUnderCall:
		return fmt.Sprintf("expected :%s to be called %d more time(s) (%d declared)", e.Method, e.Missing, e.Declared)
	default:
		return fmt.Sprintf("method :%s: %s", e.Method, e.Kind)
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return ""
}

// translate attaches the method name to a script failure.
func translate(method string, target any, err error) error {
	var se *script.Error
	if !errors.As(err, &se) {
		return err
	}

	result := &Error{
		Method:   method,
		Target:   target,
		Call:     se.Call,
		Expected: se.Expected,
		Actual:   se.Actual,
		Diff:     se.Diff,
		Declared: se.Declared,
		Missing:  se.Remaining,
		Err:      se,
	}

	switch se.Kind {
	case script.KindMismatch:
		result.Kind = KindScriptMismatch
	case script.KindExhausted:
		result.Kind = KindOverCall
	case script.KindUnconsumed:
		result.Kind = KindUnderCall
	default:
		return err
	}

	return result
}
