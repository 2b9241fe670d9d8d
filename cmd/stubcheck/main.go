package main

import (
	"errors"
	"fmt"
	"github.com/kardolus/stubexpect/cmd/stubcheck/utils"
	"github.com/kardolus/stubexpect/config"
	"github.com/kardolus/stubexpect/internal"
	"github.com/kardolus/stubexpect/internal/fsio"
	"github.com/kardolus/stubexpect/scenario"
	"github.com/kardolus/stubexpect/stub"
	"github.com/kardolus/stubexpect/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"os"
)

var (
	GitCommit  string
	GitVersion string
	configPath string
	v          *viper.Viper
)

var errScenariosFailed = errors.New("one or more scenarios failed")

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v = config.NewViper()

	rootCmd := &cobra.Command{
		Use:           "stubcheck",
		Short:         "Validate and replay call expectation scenarios",
		Long:          "stubcheck loads YAML scenarios declaring a substituted method, its expected calls and the calls actually made, and verifies them with the expectation engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to the config file")
	flags.String("format", "", "Output format: text or yaml")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("fail-fast", false, "Stop at the first failing scenario")
	flags.String("color", "", "Color used for failures")

	for key, flag := range map[string]string{
		"format":    "format",
		"debug":     "debug",
		"fail_fast": "fail-fast",
		"color":     "color",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run [FILE|DIR]...",
			Short: "Replay the calls of each scenario through the expectation engine",
			RunE:  runScenarios,
		},
		&cobra.Command{
			Use:   "lint [FILE|DIR]...",
			Short: "Check scenario declarations without making any call",
			RunE:  lintScenarios,
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			RunE:  showConfig,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "commit %s (version %s)\n", GitCommit, GitVersion)
			},
		},
	)

	return rootCmd
}

func loadConfig() (*config.Manager, error) {
	store := config.New()
	if configPath != "" {
		store = store.WithConfigPath(configPath)
	}

	cm := config.NewManager(store).WithViper(v)
	if err := cm.Validate(); err != nil {
		return nil, err
	}
	return cm, nil
}

func loadScenarios(cfg types.Config, args []string) ([]types.Scenario, error) {
	loader := scenario.NewLoader(fsio.NewRealReader())

	if len(args) == 0 {
		args = []string{cfg.DataDir}
	}

	var result []types.Scenario
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		var scenarios []types.Scenario
		if info.IsDir() {
			scenarios, err = loader.LoadDir(arg)
		} else {
			scenarios, err = loader.LoadFile(arg)
		}
		if err != nil {
			return nil, err
		}
		result = append(result, scenarios...)
	}

	return result, nil
}

func newRunner(cfg types.Config) (*scenario.Runner, *zap.Logger) {
	logger := internal.InitLogger(cfg.Debug)
	return scenario.NewRunner(scenario.WithLogger(logger.Sugar())), logger
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cm, err := loadConfig()
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(cm.Config, args)
	if err != nil {
		return err
	}

	runner, logger := newRunner(cm.Config)
	defer func() { _ = logger.Sync() }()

	writer := &fsio.RealWriter{}
	var results []scenario.Result
	for _, s := range scenarios {
		result := runner.Run(s)
		results = append(results, result)

		if cm.Config.Format == config.FormatText {
			if err := writer.Write(cmd.OutOrStdout(), []byte(utils.FormatResult(result, cm.Config.Color))); err != nil {
				return err
			}
		}
		if !result.Passed && cm.Config.FailFast {
			break
		}
	}

	if err := writeResults(cmd, writer, cm.Config, results); err != nil {
		return err
	}

	for _, r := range results {
		if !r.Passed {
			return errScenariosFailed
		}
	}
	return nil
}

func writeResults(cmd *cobra.Command, writer fsio.Writer, cfg types.Config, results []scenario.Result) error {
	if cfg.Format == config.FormatYAML {
		out, err := utils.FormatYAML(results)
		if err != nil {
			return err
		}
		return writer.Write(cmd.OutOrStdout(), []byte(out))
	}

	return writer.Write(cmd.OutOrStdout(), []byte(utils.Summary(results)))
}

func lintScenarios(cmd *cobra.Command, args []string) error {
	cm, err := loadConfig()
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(cm.Config, args)
	if err != nil {
		return err
	}

	runner, logger := newRunner(cm.Config)
	defer func() { _ = logger.Sync() }()

	failed := false
	for _, s := range scenarios {
		lintErr := runner.Lint(s)

		// a declaration error the scenario itself expects is not a lint failure
		if lintErr != nil && s.ExpectError != "" && string(stub.KindOf(lintErr)) == s.ExpectError {
			lintErr = nil
		}

		fmt.Fprint(cmd.OutOrStdout(), utils.FormatLint(s.Name, lintErr, cm.Config.Color))
		if lintErr != nil {
			failed = true
			if cm.Config.FailFast {
				break
			}
		}
	}

	if failed {
		return errScenariosFailed
	}
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cm, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := cm.ShowConfig()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
