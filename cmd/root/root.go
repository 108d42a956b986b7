// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/pdf-transcript/internal/config"
	"fjacquet/pdf-transcript/internal/container"
	"fjacquet/pdf-transcript/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// ConfigFile is the value of the --config flag.
	ConfigFile string

	// AppContainer holds the dependencies built for the running command.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pdf-transcript",
		Short: "Extract the text of a PDF file page by page.",
		Long: `pdf-transcript opens a PDF document, extracts the text of every page in
order and prints a page-delimited transcript:

  --- Page 1 ---
  <text of page 1>

The text is read with a built-in engine or with poppler's pdftotext.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Init registers the persistent flags of the root command.
func Init() {
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches config.yaml in $HOME/.pdf-transcript, ./.pdf-transcript and .)")
	Cmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
}

// initialize loads .env and the configuration, then builds the container used
// by the subcommands.
func initialize(cmd *cobra.Command, args []string) error {
	envFile, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfig(ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c

	log := c.GetLogger()
	if envFile != "" {
		log.Debug("Loaded environment file", logging.Field{Key: logging.FieldFile, Value: envFile})
	}
	if cfg.FileUsed != "" {
		log.Debug("Using config file", logging.Field{Key: logging.FieldConfigFile, Value: cfg.FileUsed})
	}
	return nil
}

// GetContainer returns the application container, nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// SetContainer replaces the application container. Subcommands executed on
// their own, as in tests, read their dependencies from it.
func SetContainer(c *container.Container) {
	AppContainer = c
}

// GetLogger returns the container's logger. Before the container is built it
// returns a logrus logger whose level comes from LOG_LEVEL.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewLogrusAdapter(config.GetEnv("LOG_LEVEL", "info"), "text")
}
