// Package stub replaces a method with a substitute for the duration of a
// block and verifies how the substitute is called.
//
// CheckedStub asserts the arguments of every call and always returns the same
// value. ExpectAndRun drives an ordered call script, either one argument list
// repeated a number of times or an explicit list of expectations, and fails
// when the calls made inside the block diverge from it.
package stub

import (
	"github.com/kardolus/stubexpect/registry"
	"github.com/kardolus/stubexpect/script"
	"go.uber.org/zap"
)

type Stubber struct {
	registry registry.Substituter
	logger   *zap.SugaredLogger
}

type Option func(*Stubber)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Stubber) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(substituter registry.Substituter, opts ...Option) *Stubber {
	s := &Stubber{
		registry: substituter,
		logger:   zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CheckedStub substitutes target.method with a function that returns ret as
// long as its arguments agree with expected at every position both share.
// Calls are not counted. It returns what block returns.
func (s *Stubber) CheckedStub(target any, method string, ret any, expected []any, block func() error) error {
	if err := s.guard(target, method); err != nil {
		return err
	}

	expected = copyArgs(expected)
	comparator := script.PositionalPrefix{}

	substitute := func(args ...any) (any, error) {
		if !comparator.Match(expected, args) {
			return nil, &Error{
				Kind:     KindArgumentMismatch,
				Method:   method,
				Target:   target,
				Expected: expected,
				Actual:   copyArgs(args),
				Diff:     script.Diff(expected, args),
			}
		}
		return ret, nil
	}

	return s.run(target, method, substitute, block, nil)
}

// ExpectAndRun substitutes target.method with a function backed by the call
// script described by cfg, runs block and then checks that every declared
// call was made. Configuration errors are reported before anything is
// installed.
func (s *Stubber) ExpectAndRun(target any, method string, cfg Config, block func() error) error {
	if err := s.guard(target, method); err != nil {
		return err
	}

	calls, err := cfg.build(method, target)
	if err != nil {
		return err
	}

	s.logger.Debugw("call script built", "method", method, "records", calls.Len(), "scripted", cfg.Scripted())

	substitute := func(args ...any) (any, error) {
		ret, err := calls.Call(args...)
		if err != nil {
			return nil, translate(method, target, err)
		}
		return ret, nil
	}

	return s.run(target, method, substitute, block, func() error {
		return translate(method, target, calls.Verify())
	})
}

func (s *Stubber) guard(target any, method string) error {
	if s.registry.IsSubstituted(target, method) {
		return &Error{Kind: KindAlreadySubstituted, Method: method, Target: target}
	}
	return nil
}

// run installs substitute for the scope of block. The first call-time
// failure is kept so it surfaces even when the code under test drops it.
// Precedence: the block's own error, then that failure, then finalize.
func (s *Stubber) run(target any, method string, substitute registry.Func, block func() error, finalize func() error) error {
	var failure error

	recorded := func(args ...any) (any, error) {
		ret, err := substitute(args...)
		if err != nil {
			s.logger.Debugw("substitute rejected call", "method", method, "args", args, "error", err)
			if failure == nil {
				failure = err
			}
		}
		return ret, err
	}

	if err := s.registry.Substitute(target, method, recorded, block); err != nil {
		return err
	}
	if failure != nil {
		return failure
	}
	if finalize != nil {
		return finalize()
	}
	return nil
}
