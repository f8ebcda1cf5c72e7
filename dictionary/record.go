package dictionary

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/msnoigrs/dicsort/internal/lnreader"
)

// MaxTableBytes caps the size of the slab backing a Table.
var MaxTableBytes int64 = 1 << 34

// Record is one dictionary entry as read from the input: headword,
// delimiter, definition and the line terminator when the line had one.
type Record []byte

// Terminated reports whether the record ends with a line terminator.
func (r Record) Terminated() bool {
	return lnreader.HasTerminator(r)
}

// Headword returns the bytes before the first delim, or the whole record
// without its terminator when there is no delimiter.
func (r Record) Headword(delim rune) []byte {
	line := lnreader.TrimTerminator(r)
	if i := indexRune(line, delim); i >= 0 {
		return line[:i]
	}
	return line
}

// HasDelimiter reports whether delim occurs before the line terminator.
func (r Record) HasDelimiter(delim rune) bool {
	return indexRune(lnreader.TrimTerminator(r), delim) >= 0
}

func indexRune(b []byte, delim rune) int {
	if delim < utf8.RuneSelf {
		return bytes.IndexByte(b, byte(delim))
	}
	return bytes.IndexRune(b, delim)
}

// Table is a contiguous array of fixed-width record slots. Each slot keeps
// its logical length, so a record never depends on the padding that
// follows it.
type Table struct {
	stride    int
	data      []byte
	lens      []int
	keys      [][]byte
	keyStride int
	malformed []int
	scratch   []byte
}

// NewTable allocates vocabSize slots of entrySize bytes each.
func NewTable(entrySize, vocabSize int) (*Table, error) {
	if entrySize < 1 || vocabSize < 0 {
		return nil, fmt.Errorf("invalid table dimensions %d x %d", entrySize, vocabSize)
	}
	n := int64(entrySize) * int64(vocabSize)
	if vocabSize != 0 && n/int64(vocabSize) != int64(entrySize) || n > MaxTableBytes {
		return nil, fmt.Errorf("%w: %d records of %d bytes", ErrTableTooLarge, vocabSize, entrySize)
	}
	return &Table{
		stride:  entrySize,
		data:    make([]byte, n),
		lens:    make([]int, vocabSize),
		scratch: make([]byte, entrySize),
	}, nil
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.lens)
}

// Stride returns the slot width in bytes.
func (t *Table) Stride() int {
	return t.stride
}

func (t *Table) slot(i int) []byte {
	return t.data[i*t.stride : (i+1)*t.stride]
}

// At returns the record stored in slot i. The returned slice aliases the
// table and is only valid until the table is reordered.
func (t *Table) At(i int) Record {
	off := i * t.stride
	return Record(t.data[off : off+t.lens[i]])
}

// Set copies line into slot i and zero-pads the rest of the slot. One byte
// of every slot stays reserved, so line may hold at most Stride()-1 bytes.
func (t *Table) Set(i int, line []byte) error {
	if len(line) > t.stride-1 {
		return fmt.Errorf("%w: %d bytes into a slot of %d", ErrRecordTooLong, len(line), t.stride)
	}
	s := t.slot(i)
	n := copy(s, line)
	clear(s[n:])
	t.lens[i] = n
	return nil
}

// Swap exchanges slots i and j together with their keys.
func (t *Table) Swap(i, j int) {
	if i == j {
		return
	}
	si, sj := t.slot(i), t.slot(j)
	copy(t.scratch, si)
	copy(si, sj)
	copy(sj, t.scratch)
	t.lens[i], t.lens[j] = t.lens[j], t.lens[i]
	if t.keys != nil {
		t.keys[i], t.keys[j] = t.keys[j], t.keys[i]
	}
}

// SetKeys computes a collation key for every record. A nil keyer drops the
// keys, so records collate by their own bytes.
func (t *Table) SetKeys(keyer func(Record) []byte) {
	if keyer == nil {
		t.keys = nil
		t.keyStride = 0
		return
	}
	t.keys = make([][]byte, t.Len())
	t.keyStride = 0
	for i := range t.keys {
		k := keyer(t.At(i))
		t.keys[i] = k
		if len(k)+1 > t.keyStride {
			t.keyStride = len(k) + 1
		}
	}
}

// Key returns the collation key of slot i.
func (t *Table) Key(i int) []byte {
	if t.keys != nil {
		return t.keys[i]
	}
	return t.At(i)
}

// KeyStride bounds the length of every key plus one.
func (t *Table) KeyStride() int {
	if t.keyStride > t.stride {
		return t.keyStride
	}
	return t.stride
}

// Malformed returns the 1-based input line numbers of records that had no
// delimiter when they were imported.
func (t *Table) Malformed() []int {
	return t.malformed
}
