package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/logging"
	"github.com/katalvlaran/aoc2022/internal/puzzle"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	registry *puzzle.Registry

	configPath  string
	inputDir    string
	verbose     bool
	parallelism int

	cfg          *config.Config
	logger       *zap.Logger
	restoreGlobs func()
}

// newRootCmd builds the command tree. The returned teardown flushes and
// uninstalls the logger; it is safe to call more than once and also runs
// after every successful command.
func newRootCmd(reg *puzzle.Registry) (*cobra.Command, func()) {
	a := &app{registry: reg}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solutions",
		Long: `aoc reads puzzle inputs from the input directory and prints the
answers of both parts of every requested day.

Inputs are looked up as <input_dir>/<input_pattern>, e.g. input/input12.txt.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "aoc.yaml", "path to the YAML configuration file")
	root.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "directory holding the inputs (overrides input_dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&a.parallelism, "parallelism", "p", 0, "days solved at once (overrides parallelism)")

	root.AddCommand(a.newRunCmd(), a.newListCmd())

	return root, a.teardown
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.inputDir != "" {
		cfg.InputDir = a.inputDir
	}
	if cmd.Flags().Changed("parallelism") {
		cfg.Parallelism = a.parallelism
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.restoreGlobs = zap.ReplaceGlobals(logger)
	logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("parallelism", cfg.Parallelism))

	return nil
}

func (a *app) teardown() {
	if a.logger != nil {
		_ = a.logger.Sync()
		a.logger = nil
	}
	if a.restoreGlobs != nil {
		a.restoreGlobs()
		a.restoreGlobs = nil
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range a.registry.Days() {
				fmt.Fprintln(cmd.OutOrStdout(), day)
			}

			return nil
		},
	}
}
