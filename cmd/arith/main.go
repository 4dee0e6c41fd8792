// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arith CLI. Running arith with no
// subcommand evaluates all four operations on the configured operands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/arith/internal/demo"
	"github.com/pdiddy/arith/internal/logging"
	"github.com/pdiddy/arith/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// operandFlags holds --x and --y. The same flag set is attached to the root
// and demo commands so both resolve the operands through one viper binding.
var operandFlags = newOperandFlags()

// configErr records a config file that exists but could not be read. It is
// set by initConfig and reported once the command starts running.
var configErr error

// rootCmd is the base command for the arith CLI.
var rootCmd = &cobra.Command{
	Use:   "arith",
	Short: "Integer arithmetic: add, subtract, multiply, divide",
	Long: `arith applies the four integer operations to a pair of operands.

Without a subcommand it runs the demo: every operation is applied to the
configured operands (10 and 5 unless overridden) and one line is printed per
result. Division by zero prints "Cannot divide by zero" instead of a value.

Operands and output format can be set with flags, ARITH_* environment
variables, or an arith.yaml config file.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Setup(cmd.ErrOrStderr(), viper.GetBool("verbose"))
		if configErr != nil {
			return configErr
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.Info("config.loaded", "path", used)
		}
		return nil
	},
	RunE: runDemo,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().AddFlagSet(operandFlags)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arith.yaml or ~/.config/arith/arith.yaml)")
	rootCmd.PersistentFlags().String("format", string(types.DefaultDemoConfig().Format), "output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")

	bindConfig()
}

// bindConfig binds viper keys to their flags. Flags take precedence over
// ARITH_* environment variables, which take precedence over the config file.
func bindConfig() {
	mustBind("x", operandFlags.Lookup("x"))
	mustBind("y", operandFlags.Lookup("y"))
	mustBind("format", rootCmd.PersistentFlags().Lookup("format"))
	mustBind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func newOperandFlags() *pflag.FlagSet {
	defaults := types.DefaultDemoConfig()
	fs := pflag.NewFlagSet("operands", pflag.ContinueOnError)
	fs.Int("x", defaults.X, "first operand")
	fs.Int("y", defaults.Y, "second operand")
	return fs
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arith"))
		}
	}

	viper.SetEnvPrefix("ARITH")
	viper.AutomaticEnv()

	// A missing config file in the search paths is fine; defaults and flags
	// still apply. An explicit --config that is absent or malformed is not.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config file: %w", err)
		}
	}
}

// demoConfig resolves the demo settings from flags, environment, and config file.
func demoConfig() (types.DemoConfig, error) {
	x, err := configOperand("x")
	if err != nil {
		return types.DemoConfig{}, err
	}
	y, err := configOperand("y")
	if err != nil {
		return types.DemoConfig{}, err
	}
	return types.DemoConfig{
		Operands: types.Operands{X: x, Y: y},
		Format:   types.OutputFormat(viper.GetString("format")),
	}, nil
}

// configOperand reads an operand key. Flags and YAML integers arrive as int;
// environment variables and quoted YAML values arrive as strings and are
// parsed as decimal.
func configOperand(key string) (int, error) {
	switch v := viper.Get(key).(type) {
	case int:
		return v, nil
	case string:
		n, err := parseOperand(v)
		if err != nil {
			return 0, fmt.Errorf("resolving %s: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("resolving %s: invalid operand %v: not an integer", key, v)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := demoConfig()
	if err != nil {
		return err
	}
	logging.L().Debug("demo.run", "x", cfg.X, "y", cfg.Y, "format", cfg.Format)
	return demo.Run(cmd.OutOrStdout(), cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
