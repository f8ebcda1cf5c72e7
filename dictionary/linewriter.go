package dictionary

import (
	"bufio"
	"io"
)

// WriteTable writes every record of t to w in table order. Records keep
// their own terminator; one without a terminator gets "\n" unless it is the
// last record written. It returns the number of bytes written.
func WriteTable(w io.Writer, t *Table) (int64, error) {
	bwriter := bufio.NewWriter(w)
	var position int64
	for i := 0; i < t.Len(); i++ {
		rec := t.At(i)
		n, err := bwriter.Write(rec)
		position += int64(n)
		if err != nil {
			return position, err
		}
		if !rec.Terminated() && i < t.Len()-1 {
			if err := bwriter.WriteByte('\n'); err != nil {
				return position, err
			}
			position++
		}
	}
	if err := bwriter.Flush(); err != nil {
		return position, err
	}
	return position, nil
}
