package types

type Config struct {
	Format   string `yaml:"format"`
	Debug    bool   `yaml:"debug"`
	FailFast bool   `yaml:"fail_fast"`
	Color    string `yaml:"color"`
	DataDir  string `yaml:"data_dir"`
}
