package scenario

import (
	"errors"
	"fmt"

	"github.com/kardolus/stubexpect/registry"
	"github.com/kardolus/stubexpect/stub"
	"github.com/kardolus/stubexpect/types"
	"go.uber.org/zap"
)

var ErrUnknownMode = errors.New("unknown scenario mode")

type Result struct {
	Scenario string `yaml:"scenario"`
	Returns  []any  `yaml:"returns,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
	Error    string `yaml:"error,omitempty"`
	Passed   bool   `yaml:"passed"`

	Err error `yaml:"-"`
}

// Runner replays the recorded calls of a scenario against a substitute
// installed by the engine.
type Runner struct {
	registry *registry.Registry
	stubber  *stub.Stubber
	logger   *zap.SugaredLogger
}

type Option func(*Runner)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop().Sugar()}
	for _, o := range opts {
		o(r)
	}

	r.registry = registry.New(registry.WithLogger(r.logger))
	r.stubber = stub.New(r.registry, stub.WithLogger(r.logger))
	return r
}

// Lint reports declaration errors without making any call.
func (r *Runner) Lint(s types.Scenario) error {
	if s.Method == "" {
		return fmt.Errorf("scenario %q: method is required", s.Name)
	}
	if s.ExpectError != "" && !knownKind(s.ExpectError) {
		return fmt.Errorf("scenario %q: unknown error kind %q", s.Name, s.ExpectError)
	}

	switch s.Mode {
	case types.ModeChecked:
		if len(s.Expectations) > 0 || s.Times != 0 {
			return fmt.Errorf("scenario %q: checked mode takes only return and args", s.Name)
		}
		return nil
	case types.ModeExpect:
		cfg, err := ToConfig(s)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		return cfg.Validate(s.Method)
	default:
		return fmt.Errorf("scenario %q: %w: %s", s.Name, ErrUnknownMode, s.Mode)
	}
}

// Run substitutes the scenario's method and makes each recorded call in
// order, stopping at the first failing call.
func (r *Runner) Run(s types.Scenario) Result {
	result := Result{Scenario: s.Name}

	block := func() error {
		for _, args := range s.Calls {
			ret, err := r.registry.Call(s.Target, s.Method, args...)
			if err != nil {
				return err
			}
			result.Returns = append(result.Returns, ret)
		}
		return nil
	}

	var err error
	switch s.Mode {
	case types.ModeChecked:
		err = r.stubber.CheckedStub(s.Target, s.Method, s.Return, s.Args, block)
	case types.ModeExpect:
		var cfg stub.Config
		if cfg, err = ToConfig(s); err == nil {
			err = r.stubber.ExpectAndRun(s.Target, s.Method, cfg, block)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownMode, s.Mode)
	}

	result.Err = err
	if err != nil {
		result.Error = err.Error()
		result.Kind = string(stub.KindOf(err))
	}

	if s.ExpectError != "" {
		result.Passed = result.Kind == s.ExpectError
	} else {
		result.Passed = err == nil
	}

	r.logger.Debugw("scenario finished", "scenario", s.Name, "calls", len(result.Returns), "passed", result.Passed)
	return result
}

func knownKind(kind string) bool {
	for _, k := range stub.Kinds {
		if string(k) == kind {
			return true
		}
	}
	return false
}
