package stub

import (
	"github.com/kardolus/stubexpect/script"
)

const (
	KeyExpectedArgs = "expected_args"
	KeyReturnValue  = "return_value"
	KeyTimes        = "times"
)

// Expectation is one entry of a scripted configuration: the arguments a call
// must carry, the value it yields and how many consecutive calls it covers.
// Build it with Call; a zero Expectation declares neither arguments nor a
// return value and is rejected as malformed.
type Expectation struct {
	args  []any
	ret   any
	times int

	hasArgs   bool
	hasReturn bool
	hasTimes  bool
}

// Call starts an expectation for a call with exactly these arguments.
func Call(args ...any) Expectation {
	return Expectation{args: copyArgs(args), hasArgs: true}
}

// Returns sets the value yielded by the expected call. A nil value counts as
// declared.
func (e Expectation) Returns(v any) Expectation {
	e.ret = v
	e.hasReturn = true
	return e
}

// Times repeats the expectation n consecutive times. n must be positive.
func (e Expectation) Times(n int) Expectation {
	e.times = n
	e.hasTimes = true
	return e
}

func (e Expectation) Args() ([]any, bool) { return copyArgs(e.args), e.hasArgs }

func (e Expectation) Return() (any, bool) { return e.ret, e.hasReturn }

// Repeat returns the repeat count, defaulting to 1.
func (e Expectation) Repeat() int {
	if !e.hasTimes {
		return 1
	}
	return e.times
}

// Config selects one of two mutually exclusive modes. Simple mode uses Return,
// Args and Times; scripted mode uses a non-empty Expectations list.
type Config struct {
	Return any
	Args   []any
	// Times defaults to 1 when zero.
	Times int

	Expectations []Expectation
}

func (c Config) Scripted() bool { return len(c.Expectations) > 0 }

// Validate reports the configuration error, if any, that ExpectAndRun would
// raise before installing a substitute.
func (c Config) Validate(method string) error {
	_, err := c.build(method, nil)
	return err
}

func (c Config) build(method string, target any) (*script.Script, error) {
	if c.Scripted() && (c.Return != nil || len(c.Args) > 0 || c.Times != 0) {
		return nil, &Error{Kind: KindConfigConflict, Method: method, Target: target}
	}

	s := script.New(script.FullSequence{})

	if !c.Scripted() {
		if c.Times < 0 {
			return nil, malformed(method, target, KeyTimes, -1)
		}
		times := c.Times
		if times == 0 {
			times = 1
		}
		for i := 0; i < times; i++ {
			s.Expect(c.Return, c.Args)
		}
		return s, nil
	}

	for i, e := range c.Expectations {
		switch {
		case !e.hasArgs:
			return nil, malformed(method, target, KeyExpectedArgs, i)
		case !e.hasReturn:
			return nil, malformed(method, target, KeyReturnValue, i)
		case e.Repeat() < 1:
			return nil, malformed(method, target, KeyTimes, i)
		}
	}

	for _, e := range c.Expectations {
		for i := 0; i < e.Repeat(); i++ {
			s.Expect(e.ret, e.args)
		}
	}

	return s, nil
}

func malformed(method string, target any, key string, entry int) error {
	return &Error{
		Kind:   KindMalformedExpectation,
		Method: method,
		Target: target,
		Key:    key,
		Entry:  entry,
	}
}

func copyArgs(args []any) []any {
	if args == nil {
		return []any{}
	}
	result := make([]any, len(args))
	copy(result, args)
	return result
}
