package lnreader

import (
	"bufio"
	"io"
)

type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadRawLine returns the next line with its terminator, if it has one.
// Only the last line of the input may come back unterminated. The slice is
// valid until the next call.
func (r *LineNumberReader) ReadRawLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	}
	if err == nil {
		r.NumLine++
	}
	return line, err
}

// ReadLine is ReadRawLine without the "\n" or "\r\n" terminator.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.ReadRawLine()
	return TrimTerminator(line), err
}

func HasTerminator(l []byte) bool {
	return len(l) > 0 && l[len(l)-1] == '\n'
}

func TrimTerminator(l []byte) []byte {
	n := len(l)
	if n >= 2 && l[n-2] == '\r' && l[n-1] == '\n' {
		return l[:n-2]
	}
	if n >= 1 && l[n-1] == '\n' {
		return l[:n-1]
	}
	return l
}

func IsSkipLine(l []byte) bool {
	for i, c := range l {
		if i == 0 && c == '#' {
			return true
		} else {
			if c != ' ' && c != '\n' && c != '\t' && c != '\r' {
				return false
			}
		}
	}
	return true
}
