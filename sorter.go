package dicsort

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/msnoigrs/dicsort/alphabet"
	"github.com/msnoigrs/dicsort/dictionary"
)

// Report describes one sorting run.
type Report struct {
	EntrySize int
	VocabSize int
	// Malformed holds the 1-based line numbers of records without a
	// delimiter.
	Malformed []int
	Bytes     int64
}

type DictionarySorter struct {
	alphabet        *alphabet.Alphabet
	delimiter       rune
	order           dictionary.Order
	strategy        dictionary.Strategy
	strict          bool
	headwordPlugins []HeadwordPlugin
	logger          *slog.Logger
}

func NewDictionarySorter(config *BaseConfig, headwordPlugins []HeadwordPlugin, logger *slog.Logger) (*DictionarySorter, error) {
	a, err := config.NewAlphabet()
	if err != nil {
		return nil, fmt.Errorf("fail to build the alphabet: %w", err)
	}
	for _, plugin := range headwordPlugins {
		err := plugin.SetUp()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	delimiter := config.Delimiter
	if delimiter == 0 {
		delimiter = dictionary.DefaultDelimiter
	}
	return &DictionarySorter{
		alphabet:        a,
		delimiter:       delimiter,
		order:           config.Order,
		strategy:        config.Strategy,
		strict:          config.Strict,
		headwordPlugins: headwordPlugins,
		logger:          logger,
	}, nil
}

func (s *DictionarySorter) Alphabet() *alphabet.Alphabet {
	return s.alphabet
}

// Sort reads every record of input, sorts them under the alphabet and
// writes them to output.
func (s *DictionarySorter) Sort(input io.ReadSeeker, output io.Writer) (*Report, error) {
	t, err := dictionary.ReadTable(input, s.delimiter)
	if err != nil {
		return nil, fmt.Errorf("fail to read entries: %w", err)
	}
	report := &Report{
		EntrySize: t.Stride(),
		VocabSize: t.Len(),
		Malformed: t.Malformed(),
	}
	s.logger.Debug("entries loaded", "entrySize", report.EntrySize, "vocabSize", report.VocabSize)

	for _, line := range report.Malformed {
		if s.strict {
			return report, fmt.Errorf("%w at line %d", dictionary.ErrMalformedRecord, line)
		}
		s.logger.Warn("entry has no delimiter", "line", line, "delimiter", string(s.delimiter))
	}

	if len(s.headwordPlugins) > 0 {
		t.SetKeys(func(r dictionary.Record) []byte {
			// delimiter, definition and terminator are kept as is
			headword := r.Headword(s.delimiter)
			key := RewriteKey(s.headwordPlugins, append([]byte(nil), headword...))
			return append(key, r[len(headword):]...)
		})
	}

	c := dictionary.NewCollator(s.alphabet, t.KeyStride(),
		dictionary.WithDelimiter(s.delimiter),
		dictionary.WithOrder(s.order))
	dictionary.Sort(t, c, s.strategy)
	s.logger.Debug("entries sorted", "order", s.order.String(), "strategy", s.strategy.String())

	n, err := dictionary.WriteTable(output, t)
	report.Bytes = n
	if err != nil {
		return report, fmt.Errorf("fail to write entries: %w", err)
	}
	return report, nil
}
