package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/msnoigrs/dicsort/internal/lnreader"
)

// Sizes are the bounds a record table is allocated from.
type Sizes struct {
	// EntrySize is the byte length of the longest line, terminator
	// included, plus one reserved byte.
	EntrySize int
	// VocabSize is the number of records. A final line without a
	// terminator counts as a record.
	VocabSize int
}

// MaxEntrySize scans rs for the longest line and rewinds it.
func MaxEntrySize(rs io.ReadSeeker) (int, error) {
	br := bufio.NewReader(rs)
	run, longest := 0, 0
	for {
		line, err := br.ReadSlice('\n')
		run += len(line)
		if err == bufio.ErrBufferFull {
			continue
		}
		if run > longest {
			longest = run
		}
		run = 0
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return longest + 1, nil
}

// VocabSize counts the records in rs and rewinds it.
func VocabSize(rs io.ReadSeeker) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	var last byte
	var total int64
	for {
		n, err := rs.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			total += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if total > 0 && last != '\n' {
		count++
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return count, nil
}

// Measure computes both bounds in a single pass over r.
func Measure(r io.Reader) (Sizes, error) {
	br := bufio.NewReader(r)
	var sizes Sizes
	run, longest := 0, 0
	for {
		line, err := br.ReadSlice('\n')
		run += len(line)
		if err == bufio.ErrBufferFull {
			continue
		}
		if run > longest {
			longest = run
		}
		if err == nil || run > 0 {
			sizes.VocabSize++
		}
		run = 0
		if err == io.EOF {
			break
		}
		if err != nil {
			return Sizes{}, err
		}
	}
	sizes.EntrySize = longest + 1
	return sizes, nil
}

// MeasureSeeker is Measure followed by a rewind of rs.
func MeasureSeeker(rs io.ReadSeeker) (Sizes, error) {
	sizes, err := Measure(rs)
	if err != nil {
		return Sizes{}, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Sizes{}, err
	}
	return sizes, nil
}

// Import copies the lines of r into the slots of t in order, terminators
// included. Records without delim are remembered in t.Malformed.
func Import(r io.Reader, t *Table, delim rune) error {
	t.malformed = t.malformed[:0]
	lr := lnreader.NewLineNumberReader(r)
	for i := 0; i < t.Len(); i++ {
		line, err := lr.ReadRawLine()
		if err == io.EOF {
			return fmt.Errorf("%w: read %d of %d records", io.ErrUnexpectedEOF, i, t.Len())
		}
		if err != nil {
			return err
		}
		if err := t.Set(i, line); err != nil {
			return fmt.Errorf("%w at line %d", err, lr.NumLine)
		}
		if !Record(line).HasDelimiter(delim) {
			t.malformed = append(t.malformed, lr.NumLine)
		}
	}
	return nil
}

// ReadTable measures rs, allocates a table of the measured size and
// imports every record into it.
func ReadTable(rs io.ReadSeeker, delim rune) (*Table, error) {
	sizes, err := MeasureSeeker(rs)
	if err != nil {
		return nil, err
	}
	t, err := NewTable(sizes.EntrySize, sizes.VocabSize)
	if err != nil {
		return nil, err
	}
	if err := Import(rs, t, delim); err != nil {
		return nil, err
	}
	return t, nil
}
