package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clforge/clforge/pkg/clientip"
	"github.com/clforge/clforge/pkg/config"
	"github.com/clforge/clforge/pkg/environment"
	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/requestid"
	"github.com/clforge/clforge/pkg/validator"
)

// app is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	output  string
	envFile string

	settings config.Settings
	log      *slog.Logger
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "clforge",
		Short: "Verify and generate Chilean plates (PPU) and RUTs",
		Long: `clforge converts vehicle plates to their numeric form and check character,
validates RUTs and generates random valid RUTs.

Configuration is read from CLFORGE_* environment variables and an optional .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading configuration")

	root.AddCommand(
		a.ppuCommand(),
		a.normalizeCommand(),
		a.numericCommand(),
		a.verifierCommand(),
		a.validateCommand(),
		a.generateCommand(),
		a.serveCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := validator.Apply(
		validator.OneOf("output", a.output, outputText, outputJSON, outputYAML),
	); err != nil {
		return err
	}

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = settings

	opts := []logger.Option{
		logger.WithEnvironment(settings.Env, "clforge"),
		logger.WithLevel(settings.LogLevel),
		logger.WithOutput(a.errOut),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if settings.LogFormat != "" {
		format, err := logger.ParseFormat(settings.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.log = logger.New(opts...)
	return nil
}
