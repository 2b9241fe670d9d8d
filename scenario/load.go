package scenario

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kardolus/stubexpect/internal/fsio"
	"github.com/kardolus/stubexpect/stub"
	"github.com/kardolus/stubexpect/types"
	"gopkg.in/yaml.v3"
)

const fileExtension = ".yaml"

type Loader struct {
	reader fsio.Reader
}

func NewLoader(reader fsio.Reader) *Loader {
	return &Loader{reader: reader}
}

// LoadFile reads every scenario declared in a file.
func (l *Loader) LoadFile(path string) ([]types.Scenario, error) {
	data, err := l.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// LoadDir reads every scenario file directly under dir, sorted by name.
func (l *Loader) LoadDir(dir string) ([]types.Scenario, error) {
	entries, err := l.reader.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var result []types.Scenario
	for _, name := range names {
		scenarios, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		result = append(result, scenarios...)
	}

	return result, nil
}

func Parse(data []byte) ([]types.Scenario, error) {
	var file types.ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		if s.Mode == "" {
			s.Mode = types.ModeExpect
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s.%s", s.Target, s.Method)
		}
	}

	return file.Scenarios, nil
}

// ToConfig converts a scenario into an engine configuration. Keys missing
// from an expectation stay missing, so the engine reports them.
func ToConfig(s types.Scenario) (stub.Config, error) {
	cfg := stub.Config{
		Return: s.Return,
		Args:   s.Args,
		Times:  s.Times,
	}

	for i, e := range s.Expectations {
		var expectation stub.Expectation

		if e.ExpectedArgs != nil {
			expectation = stub.Call(*e.ExpectedArgs...)
		}
		if !e.ReturnValue.IsZero() {
			var value any
			if err := e.ReturnValue.Decode(&value); err != nil {
				return stub.Config{}, fmt.Errorf("expectation #%d: %w", i, err)
			}
			expectation = expectation.Returns(value)
		}
		if e.Times != nil {
			expectation = expectation.Times(*e.Times)
		}

		cfg.Expectations = append(cfg.Expectations, expectation)
	}

	return cfg, nil
}
