package types

import "gopkg.in/yaml.v3"

const (
	ModeExpect  = "expect"
	ModeChecked = "checked"
)

type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Method string `yaml:"method"`
	Mode   string `yaml:"mode,omitempty"`

	Return any   `yaml:"return,omitempty"`
	Args   []any `yaml:"args,omitempty"`
	Times  int   `yaml:"times,omitempty"`

	Expectations []ScenarioExpectation `yaml:"expectations,omitempty"`

	Calls       [][]any `yaml:"calls,omitempty"`
	ExpectError string  `yaml:"expect_error,omitempty"`
}

// ScenarioExpectation keeps key presence so a missing key can be told apart
// from an explicit null.
type ScenarioExpectation struct {
	ExpectedArgs *[]any    `yaml:"expected_args"`
	ReturnValue  yaml.Node `yaml:"return_value"`
	Times        *int      `yaml:"times"`
}
