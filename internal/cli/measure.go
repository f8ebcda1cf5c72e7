package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/msnoigrs/dicsort/dictionary"
)

// MeasureOptions holds flags for the measure command.
type MeasureOptions struct {
	*RootOptions
	Mmap bool
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MeasureOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "measure [input]",
		Short: "Print the entry size and vocabulary size of input",
		Long: `Run the two sizing passes over input and print their results: the
longest line in bytes plus one (entry size) and the number of entries
(vocabulary size).`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := DefaultInput
			if len(args) > 0 {
				input = args[0]
			}
			return runMeasure(opts, input, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Mmap, "mmap", false, "memory map the input file")

	return cmd
}

func runMeasure(opts *MeasureOptions, input string, cmd *cobra.Command) error {
	logger := opts.Logger

	in, closeInput, err := openInput(input, cmd.InOrStdin(), opts.Mmap, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeInput(); closeErr != nil {
			logger.Error("error closing input", "error", closeErr)
		}
	}()

	entrySize, err := dictionary.MaxEntrySize(in)
	if err != nil {
		return WrapExitError(ExitStreamUnavailable, "failed to measure entry size", err)
	}
	vocabSize, err := dictionary.VocabSize(in)
	if err != nil {
		return WrapExitError(ExitStreamUnavailable, "failed to count entries", err)
	}
	logger.Debug("input measured", "input", input, "entrySize", entrySize, "vocabSize", vocabSize)

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "entry size: %d\n", entrySize)
	p.Fprintf(cmd.OutOrStdout(), "vocabulary size: %d\n", vocabSize)
	return nil
}
