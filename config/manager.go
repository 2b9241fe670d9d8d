package config

import (
	"fmt"
	"github.com/kardolus/stubexpect/types"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"reflect"
)

const EnvPrefix = "STUBCHECK"

type Manager struct {
	configStore ConfigStore
	Config      types.Config
}

func NewManager(cs ConfigStore) *Manager {
	configuration := cs.ReadDefaults()

	userConfig, err := cs.Read()
	if err == nil {
		configuration = replaceByConfigFile(configuration, userConfig)
	}

	return &Manager{configStore: cs, Config: configuration}
}

// WithViper overlays every key v has a value for, from the environment
// (STUBCHECK_<KEY>) or from bound flags.
func (c *Manager) WithViper(v *viper.Viper) *Manager {
	c.Config = replaceByViper(c.Config, v)
	return c
}

// NewViper returns a viper instance reading STUBCHECK_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

func (c *Manager) Validate() error {
	switch c.Config.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported format %q, use %q or %q", c.Config.Format, FormatText, FormatYAML)
	}
}

func (c *Manager) Write() error {
	return c.configStore.Write(c.Config)
}

// ShowConfig serializes the current configuration to a YAML string.
func (c *Manager) ShowConfig() (string, error) {
	data, err := yaml.Marshal(c.Config)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func replaceByConfigFile(defaultConfig, userConfig types.Config) types.Config {
	t := reflect.TypeOf(defaultConfig)
	vDefault := reflect.ValueOf(&defaultConfig).Elem()
	vUser := reflect.ValueOf(userConfig)

	for i := 0; i < t.NumField(); i++ {
		defaultField := vDefault.Field(i)
		userField := vUser.Field(i)

		switch defaultField.Kind() {
		case reflect.String:
			if userStr := userField.String(); userStr != "" {
				defaultField.SetString(userStr)
			}
		case reflect.Bool:
			defaultField.SetBool(userField.Bool())
		}
	}

	return defaultConfig
}

func replaceByViper(configuration types.Config, v *viper.Viper) types.Config {
	t := reflect.TypeOf(configuration)
	value := reflect.ValueOf(&configuration).Elem()

	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		if !v.IsSet(key) {
			continue
		}

		field := value.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(v.GetString(key))
		case reflect.Bool:
			field.SetBool(v.GetBool(key))
		}
	}

	return configuration
}
