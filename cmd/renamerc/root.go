package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	sourceDir  string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies. It runs
// at command time so flag values have been parsed; the log level must be
// applied here, before anything below it logs.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Override source directory if provided
	if sourceDir != "" {
		cfg.Source = sourceDir
	}

	return &opts.RootOpts{
		Config:     cfg,
		ConfigPath: configFile,
		Logger:     log.New(os.Stdout, level),
		UserLogger: status.NewUserLogger(ctx),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".renamerc.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", "", "override the configured source directory")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging wires the stderr context logger. The level is decided later
// in newRootOpts, once flags are parsed.
func setupLogging() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
