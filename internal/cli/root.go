package cli

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msnoigrs/dicsort"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Settings string

	// Logger is set up before any subcommand runs.
	Logger *slog.Logger
	// RunID tags every log record of one invocation.
	RunID string
}

// NewRootCommand creates the root command for the dicsort CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dicsort",
		Short: "dicsort - sort dictionary entries under a custom alphabet",
		Long: `Sort dictionary entries (headword, delimiter, definition; one per line)
by the rank of their characters in a configurable alphabet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})
			opts.RunID = uuid.NewString()
			opts.Logger = slog.New(handler).With("run", opts.RunID)
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Settings, "settings", "s", "", "settings file (JSON, or YAML with a .yaml/.yml extension)")

	// Add subcommands
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewMeasureCommand(opts))
	cmd.AddCommand(NewAlphabetCommand(opts))

	return cmd
}

// loadSettings returns the embedded defaults overridden by the settings
// file, when one is given.
func loadSettings(opts *RootOptions) (*dicsort.SettingsJSON, error) {
	settings, err := dicsort.DefaultSettings()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load default settings", err)
	}
	if opts.Settings != "" {
		err = settings.ParseSettingsFile(opts.Settings)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load settings", err)
		}
	}
	return settings, nil
}
