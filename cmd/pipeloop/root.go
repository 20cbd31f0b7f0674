package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/loopwalk"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

type rootFlags struct {
	configPath string
	input      string
	logLevel   string
	logFormat  string
	maxRounds  int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "pipeloop",
		Short:         "Find the farthest point of the pipe loop through the start tile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return solve(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Path to a TOML config file")
	f.StringVar(&flags.input, "input", config.DefaultInput, "Path to the pipe map")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	f.IntVar(&flags.maxRounds, "max-rounds", 0, "Round cap; 0 uses the tile count")
	return cmd
}

// resolveConfig loads the config file, if any, and lets explicitly set
// flags override it.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = flags.input
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if f.Changed("max-rounds") {
		cfg.MaxRounds = flags.maxRounds
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// solve reads the map, walks the loop and prints the result.
func solve(cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("%w: %v", pipegrid.ErrRead, err)
	}
	defer f.Close()

	g, err := pipegrid.ParseReader(f)
	if err != nil {
		return err
	}
	logger.Debug("map parsed", "path", cfg.Input, "rows", g.Rows(), "tiles", g.Len())

	res, err := loopwalk.FindLoop(g,
		loopwalk.WithContext(cmd.Context()),
		loopwalk.WithLogger(logger),
		loopwalk.WithMaxRounds(cfg.MaxRounds),
	)
	if err != nil {
		return err
	}
	if !res.Closed {
		logger.Warn("no loop closed through the start tile", "rounds", res.Rounds)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\n", res.Farthest)
	return nil
}
