package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymer/internal/config"
	"github.com/katalvlaran/polymer/internal/logger"
	"github.com/katalvlaran/polymer/reduce"
	"github.com/katalvlaran/polymer/unit"
)

// app carries the persistent flags and the configuration they resolve to.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "polymer",
		Short:        "Reduce reactive polymers and find the best identity to remove",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newReduceCmd(a),
		newScanCmd(a),
		newRunCmd(a),
		newGenerateCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(a.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	return nil
}

// strategy resolves a --strategy flag value, falling back to the config.
func (a *app) strategy(flag string) (reduce.Strategy, error) {
	if flag == "" {
		return a.cfg.StrategyValue(), nil
	}
	return reduce.ParseStrategy(flag)
}

// readInput reads the polymer from args[0], or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func parseInput(cmd *cobra.Command, args []string) ([]unit.Unit, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return unit.Parse(data)
}
