package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/declarative/pkg/config"
	"github.com/dmitrymomot/declarative/pkg/logger"
)

const envPrefix = "DECLARATIVE_"

// settings are read from DECLARATIVE_* environment variables.
type settings struct {
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
	Strict    bool          `env:"STRICT"`
}

type app struct {
	envFiles []string
	settings settings
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:          "declarative",
		Short:        "Validate declarative DAG documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "read settings from .env files before the environment")

	cmd.AddCommand(
		castCmd(),
		checkCmd(a),
		schemaCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.settings,
		config.WithPrefix(envPrefix),
		config.WithEnvFiles(a.envFiles...),
	); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	switch a.settings.LogFormat {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("invalid log format %q", a.settings.LogFormat)
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(a.settings.LogFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(slog.String("cmd", cmd.Name())),
	)
	return nil
}
