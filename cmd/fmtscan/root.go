package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/fmtscan/decode"
	"github.com/randalmurphal/fmtscan/definition"
	"github.com/randalmurphal/fmtscan/scan"
	"github.com/randalmurphal/fmtscan/template"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// globalFlags holds persistent flags. Empty values mean "not set", so the
// environment and defaults apply.
type globalFlags struct {
	Output      string
	LogLevel    string
	Definitions string
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	flags  globalFlags
	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fmtscan",
		Short: "Extract typed values from text with format templates",
		Long: `fmtscan compiles format templates such as "temp={%f}C id={%u}" and
scans text with them, decoding each placeholder into a typed value.

Settings come from flags, then FMTSCAN_* environment variables, then defaults.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVarP(&a.flags.Output, "output", "o", "", "Output format (text|json|yaml)")
	root.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&a.flags.Definitions, "definitions", "", "Definition file (default: $FMTSCAN_DEFINITIONS)")

	root.AddCommand(
		newCheckCmd(a),
		newScanCmd(a),
		newRunCmd(a),
		newSchemaCmd(a),
		newWatchCmd(a),
	)
	return root
}

// execute runs cmd with signal handling.
func execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

// setup resolves the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := FromEnv()
	if a.flags.Output != "" {
		cfg = cfg.WithOutput(OutputFormat(a.flags.Output))
	}
	if a.flags.LogLevel != "" {
		cfg.LogLevel = a.flags.LogLevel
	}
	if a.flags.Definitions != "" {
		cfg = cfg.WithDefinitions(a.flags.Definitions)
	}
	if err := cfg.Validate(); err != nil {
		return usageErr(err)
	}

	level, _ := cfg.Level()
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), format: a.cfg.Output}
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErr(err error) error {
	return &usageError{err: err}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, template.ErrSyntax),
		errors.Is(err, scan.ErrUsage),
		errors.Is(err, decode.ErrUnsupportedKind),
		errors.Is(err, definition.ErrNotFound),
		errors.Is(err, definition.ErrUnknownType),
		errors.Is(err, definition.ErrArity),
		errors.Is(err, definition.ErrDuplicate),
		errors.Is(err, definition.ErrEmptyName),
		errors.Is(err, definition.ErrUnknownFormat):
		return ExitUsage
	default:
		return ExitError
	}
}
