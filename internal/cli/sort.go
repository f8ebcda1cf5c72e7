package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msnoigrs/dicsort"
	"github.com/msnoigrs/dicsort/dictionary"
)

// Default file names used when no input or output is given.
const (
	DefaultInput  = "unsorted_entries.txt"
	DefaultOutput = "sorted_entries.txt"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Output   string
	Order    string
	Strategy string
	Strict   bool
	Mmap     bool
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort [input]",
		Short: "Sort dictionary entries",
		Long: `Sort the entries of input under the configured alphabet and write them
to the output file.

The input defaults to ` + DefaultInput + ` and the output to ` + DefaultOutput + `.
Use - for stdin or stdout.

Example:
  dicsort sort
  dicsort sort --order descending -o - lexicon.txt
  cat lexicon.txt | dicsort sort --strategy tree -o sorted.txt -`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := DefaultInput
			if len(args) > 0 {
				input = args[0]
			}
			return runSort(opts, input, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", DefaultOutput, "output file (- for stdout)")
	cmd.Flags().StringVar(&opts.Order, "order", "", "ascending or descending (overrides settings)")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "inplace or tree (overrides settings)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on entries without a delimiter (overrides settings)")
	cmd.Flags().BoolVar(&opts.Mmap, "mmap", false, "memory map the input file")

	return cmd
}

func (opts *SortOptions) apply(cmd *cobra.Command, config *dicsort.BaseConfig) error {
	var err error
	if cmd.Flags().Changed("order") {
		config.Order, err = dictionary.ParseOrder(opts.Order)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --order", err)
		}
	}
	if cmd.Flags().Changed("strategy") {
		config.Strategy, err = dictionary.ParseStrategy(opts.Strategy)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --strategy", err)
		}
	}
	if cmd.Flags().Changed("strict") {
		config.Strict = opts.Strict
	}
	return nil
}

func newSorter(opts *RootOptions, edit func(*dicsort.BaseConfig) error) (*dicsort.DictionarySorter, error) {
	settings, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}
	config := settings.GetBaseConfig()
	if edit != nil {
		if err := edit(config); err != nil {
			return nil, err
		}
	}
	plugins, err := settings.GetHeadwordPluginArray(dicsort.DefMakeHeadwordPlugin)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid headword plugin", err)
	}
	sorter, err := dicsort.NewDictionarySorter(config, plugins, opts.Logger)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to set up the sorter", err)
	}
	return sorter, nil
}

func runSort(opts *SortOptions, input string, cmd *cobra.Command) error {
	logger := opts.Logger

	sorter, err := newSorter(opts.RootOptions, func(config *dicsort.BaseConfig) error {
		return opts.apply(cmd, config)
	})
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(input, cmd.InOrStdin(), opts.Mmap, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeInput(); closeErr != nil {
			logger.Error("error closing input", "error", closeErr)
		}
	}()

	var report *dicsort.Report
	var sortErr error
	sortTo := func(w io.Writer) error {
		report, sortErr = sorter.Sort(in, w)
		return sortErr
	}

	logger.Debug("sorting", "input", input, "output", opts.Output)
	if opts.Output == StdStream {
		err = sortTo(cmd.OutOrStdout())
	} else {
		err = writeFileAtomic(opts.Output, 0644, sortTo)
	}
	if sortErr != nil {
		return WrapExitError(ExitFailure, "failed to sort entries", sortErr)
	}
	if err != nil {
		return WrapExitError(ExitStreamUnavailable, "failed to write output", err)
	}

	logger.Info("entries sorted",
		"input", input,
		"output", opts.Output,
		"entries", report.VocabSize,
		"malformed", len(report.Malformed),
		"bytes", report.Bytes)
	return nil
}
