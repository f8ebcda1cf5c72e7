package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewAlphabetCommand creates the alphabet command.
func NewAlphabetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the configured alphabet with ranks",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlphabet(rootOpts, cmd)
		},
	}
}

func runAlphabet(opts *RootOptions, cmd *cobra.Command) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	a, err := settings.GetBaseConfig().NewAlphabet()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid alphabet", err)
	}

	p := message.NewPrinter(language.English)
	for rank, symbol := range a.Symbols() {
		p.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", rank, symbol)
	}
	return nil
}
