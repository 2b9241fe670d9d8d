package config

import (
	"github.com/kardolus/stubexpect/internal"
	"github.com/kardolus/stubexpect/types"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

const (
	configFileName  = "config.yaml"
	defaultFormat   = FormatText
	defaultColor    = "red"
	defaultFailFast = false
)

//go:generate mockgen -destination=configmocks_test.go -package=config_test github.com/kardolus/stubexpect/config ConfigStore
type ConfigStore interface {
	Read() (types.Config, error)
	ReadDefaults() types.Config
	Write(types.Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	configPath, _ := getPath()

	return &FileIO{
		configFilePath: configPath,
	}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (types.Config, error) {
	return parseFile(f.configFilePath)
}

func (f *FileIO) ReadDefaults() types.Config {
	dataDir, _ := internal.GetDataHome()

	return types.Config{
		Format:   defaultFormat,
		FailFast: defaultFailFast,
		Color:    defaultColor,
		DataDir:  dataDir,
	}
}

func (f *FileIO) Write(config types.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.configFilePath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0644)
}

func getPath() (string, error) {
	homeDir, err := internal.GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configFileName), nil
}

func parseFile(fileName string) (types.Config, error) {
	var result types.Config

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return types.Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return types.Config{}, err
	}

	return result, nil
}
