package internal

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	ConfigHomeEnv    = "STUBCHECK_CONFIG_HOME"
	DataHomeEnv      = "STUBCHECK_DATA_HOME"
	DefaultConfigDir = ".stubcheck"
	DefaultDataDir   = "scenarios"
)

func GetConfigHome() (string, error) {
	var result string

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	result = filepath.Join(homeDir, DefaultConfigDir)

	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}

// GetDataHome is where scenario files are looked up when none are given.
func GetDataHome() (string, error) {
	var result string

	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	result = filepath.Join(configHome, DefaultDataDir)

	if tmp := os.Getenv(DataHomeEnv); tmp != "" {
		result = tmp
	}

	return result, nil
}

func ColorToAnsi(color string) (string, string) {
	if color == "" {
		return "", ""
	}

	color = strings.ToLower(strings.TrimSpace(color))

	reset := "\033[0m"

	switch color {
	case "red":
		return "\033[31m", reset
	case "green":
		return "\033[32m", reset
	case "yellow":
		return "\033[33m", reset
	case "blue":
		return "\033[34m", reset
	case "magenta":
		return "\033[35m", reset
	default:
		return "", ""
	}
}
