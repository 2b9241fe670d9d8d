package utils

import (
	"fmt"
	"github.com/kardolus/stubexpect/internal"
	"github.com/kardolus/stubexpect/scenario"
	"gopkg.in/yaml.v3"
	"strings"
)

const (
	passLabel = "PASS"
	failLabel = "FAIL"
)

// FormatResult renders one scenario outcome as text, painting failures in
// color.
func FormatResult(result scenario.Result, color string) string {
	var sb strings.Builder

	if result.Passed {
		sb.WriteString(fmt.Sprintf("%s %s\n", passLabel, result.Scenario))
	} else {
		start, reset := internal.ColorToAnsi(color)
		sb.WriteString(fmt.Sprintf("%s%s %s%s\n", start, failLabel, result.Scenario, reset))
	}

	for i, ret := range result.Returns {
		sb.WriteString(fmt.Sprintf("  call #%d => %v\n", i+1, ret))
	}

	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", result.Kind, result.Error))
	}

	return sb.String()
}

func FormatLint(name string, err error, color string) string {
	if err == nil {
		return fmt.Sprintf("%s %s\n", passLabel, name)
	}

	start, reset := internal.ColorToAnsi(color)
	return fmt.Sprintf("%s%s %s%s\n  %s\n", start, failLabel, name, reset, err)
}

func FormatYAML(results []scenario.Result) (string, error) {
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func Summary(results []scenario.Result) string {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return fmt.Sprintf("%d scenario(s), %d passed, %d failed\n", len(results), passed, len(results)-passed)
}
