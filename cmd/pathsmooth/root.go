package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/pathsmooth/internal/config"
	"honnef.co/go/pathsmooth/internal/observability"
)

// Version is the application version.
// This value is intended to be set at build time using ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0"
var Version = "dev"

// app is the state shared by all subcommands. It is populated by the root
// command's PersistentPreRunE.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger

	// newLogger is replaced in tests.
	newLogger func(config.LoggerConfig) *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger:    zap.NewNop(),
		newLogger: observability.NewStderr,
	}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathsmooth",
		Short:         "Reduce and round waypoint paths",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync(a.logger)
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(a.smoothCmd(), a.lengthCmd())
	return root
}

// setup reads the configuration, binding the flags of cmd, and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("logger.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	for key, flag := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = a.newLogger(cfg.Logger)
	a.logger.Debug("configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Any("smoothing", cfg.Smoothing))
	return nil
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"smoothing.min_distance": "min-distance",
	"smoothing.pullback":     "pullback",
	"smoothing.arc_samples":  "arc-samples",
	"smoothing.skip_reduce":  "skip-reduce",
	"smoothing.skip_round":   "skip-round",
}
