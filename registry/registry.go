package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAlreadySubstituted = errors.New("method already substituted")
	ErrInvalidTarget      = errors.New("target must be a non-nil comparable value")
	ErrUnknownMethod      = errors.New("method not defined on target")
)

// Func is the calling convention shared by real methods and substitutes.
type Func func(args ...any) (any, error)

//go:generate mockgen -destination=../stub/substitutermocks_test.go -package=stub_test github.com/kardolus/stubexpect/registry Substituter
type Substituter interface {
	// Substitute installs fn in place of target.method for the duration of
	// block and restores the previous state on every exit path.
	Substitute(target any, method string, fn Func, block func() error) error
	IsSubstituted(target any, method string) bool
}

// Ensure Registry implements the Substituter interface
var _ Substituter = &Registry{}

type State int

const (
	StateInstalled State = iota + 1
	StateRestored
)

func (s State) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateRestored:
		return "restored"
	default:
		return "uninstalled"
	}
}

// Handle is one active replacement of one method on one target.
type Handle struct {
	ID     uuid.UUID
	Target any
	Method string

	fn    Func
	calls int
	state State
}

func (h *Handle) Calls() int   { return h.calls }
func (h *Handle) State() State { return h.state }

type slot struct {
	target any
	method string
}

// Registry is a dispatch table keyed by target identity and method name.
// Code under test calls methods through it, so a substitute installed for a
// scope shadows the real method until the scope ends.
type Registry struct {
	mu      sync.Mutex
	methods map[slot]Func
	active  map[slot]*Handle
	logger  *zap.SugaredLogger
}

type Option func(*Registry)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		methods: make(map[slot]Func),
		active:  make(map[slot]*Handle),
		logger:  zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Define registers the real implementation of target.method.
func (r *Registry) Define(target any, method string, fn Func) error {
	key, err := keyFor(target, method)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.methods[key] = fn
	return nil
}

// Call invokes target.method, preferring an active substitute.
func (r *Registry) Call(target any, method string, args ...any) (any, error) {
	key, err := keyFor(target, method)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	handle, substituted := r.active[key]
	if substituted {
		handle.calls++
	}
	original, defined := r.methods[key]
	r.mu.Unlock()

	if substituted {
		r.logger.Debugw("dispatching to substitute", "handle", handle.ID, "method", method, "call", handle.calls)
		return handle.fn(args...)
	}
	if defined {
		return original(args...)
	}

	return nil, fmt.Errorf("%w: %v.%s", ErrUnknownMethod, target, method)
}

// Method returns a callable bound to target.method that always dispatches
// through the registry.
func (r *Registry) Method(target any, method string) Func {
	return func(args ...any) (any, error) {
		return r.Call(target, method, args...)
	}
}

func (r *Registry) IsSubstituted(target any, method string) bool {
	_, ok := r.Active(target, method)
	return ok
}

// Active returns the live handle for target.method, if any.
func (r *Registry) Active(target any, method string) (*Handle, bool) {
	key, err := keyFor(target, method)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.active[key]
	return h, ok
}

func (r *Registry) Substitute(target any, method string, fn Func, block func() error) error {
	handle, err := r.install(target, method, fn)
	if err != nil {
		return err
	}
	defer r.restore(handle)

	if block == nil {
		return nil
	}
	return block()
}

func (r *Registry) install(target any, method string, fn Func) (*Handle, error) {
	key, err := keyFor(target, method)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.active[key]; exists {
		return nil, fmt.Errorf("%w: %v.%s", ErrAlreadySubstituted, target, method)
	}

	handle := &Handle{
		ID:     uuid.New(),
		Target: target,
		Method: method,
		fn:     fn,
		state:  StateInstalled,
	}
	r.active[key] = handle

	r.logger.Debugw("substitute installed", "handle", handle.ID, "target", target, "method", method)
	return handle, nil
}

func (r *Registry) restore(handle *Handle) {
	key := slot{target: handle.Target, method: handle.Method}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active[key] == handle {
		delete(r.active, key)
	}
	handle.state = StateRestored

	r.logger.Debugw("substitute restored", "handle", handle.ID, "method", handle.Method, "calls", handle.calls)
}

func keyFor(target any, method string) (slot, error) {
	if target == nil || !reflect.TypeOf(target).Comparable() {
		return slot{}, ErrInvalidTarget
	}
	return slot{target: target, method: method}, nil
}
