package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/catenc/internal/config"
	"github.com/YuminosukeSato/catenc/pkg/errors"
	"github.com/YuminosukeSato/catenc/pkg/log"
)

type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "catenc",
		Short:         "Categorical feature encoder",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Job configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormatFlag, "log-format", "", "Log format: auto, json, console")

	rootCmd.AddCommand(newEncodeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// loadConfig reads the job file and applies the global logging flags.
func (c *commandContext) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	if c.logLevelFlag != "" {
		cfg.Logging.Level = c.logLevelFlag
	}
	if c.logFormatFlag != "" {
		cfg.Logging.Format = c.logFormatFlag
	}
	return cfg, nil
}

// setupLogging installs the process-wide zerolog provider writing to w and
// routes library warnings to it.
func setupLogging(cfg config.Logging, w io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "console":
		w = log.NewConsoleWriter(w)
	case "json":
	case "", "auto":
		if isTerminal(w) {
			w = log.NewConsoleWriter(w)
		}
	default:
		return errors.NewValidationError("log-format", "must be auto, json or console", cfg.Format)
	}

	log.SetProvider(log.NewZerologProvider(w, level))
	log.RouteWarnings()
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
