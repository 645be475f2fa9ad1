// Package commands implements the CLI commands for transkeys.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"transkeys/internal/config"
	"transkeys/internal/errors"
	"transkeys/internal/logging"
	"transkeys/internal/workspace"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfgFile holds the value of the --config flag.
var cfgFile string

// ws is the workspace config loaded during initialization.
var ws *workspace.Config

// wsLoadErr holds any error that occurred during workspace config loading.
var wsLoadErr error

func init() {
	cobra.OnInitialize(initWorkspace)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"workspace config file (default: ./transkeys.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("transkeys version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initWorkspace() {
	workspace.Init()
	// Capture load errors for later reporting
	ws, wsLoadErr = workspace.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "transkeys",
	Short: "Manage translation keys across a workspace",
	Long: `transkeys extracts translation keys from source trees and keeps
per-language translation files in sync.

Configuration is layered: inline flags override the shared workspace
config (transkeys.yaml), which overrides built-in defaults. Path values
may reference the active project's source root via ${sourceRoot}.`,
	Example: `  # Extract keys into translation files
  transkeys extract

  # Report missing and unused keys
  transkeys find

  # Extract for a specific workspace project
  transkeys extract --project my-lib

  # Show the fully resolved configuration
  transkeys config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if wsLoadErr != nil {
			return errors.NewConfigError(wsLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("TRANSKEYS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// newResolver builds a config resolver over the loaded workspace.
func newResolver() *config.Resolver {
	return &config.Resolver{
		Roots:     workspace.NewRoots(ws),
		Workspace: ws,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
