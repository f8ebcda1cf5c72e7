package dictionary

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteTable(t *testing.T) {
	tbl, err := NewTable(8, 3)
	if err != nil {
		t.Fatal(err)
	}
	tbl.Set(0, []byte("b two"))
	tbl.Set(1, []byte("a one\r\n"))
	tbl.Set(2, []byte("c"))

	var buf bytes.Buffer
	n, err := WriteTable(&buf, tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "b two\na one\r\nc"
	if got := buf.String(); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
	if n != int64(len(want)) {
		t.Errorf("got %d bytes, expected %d", n, len(want))
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTableError(t *testing.T) {
	tbl, err := NewTable(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	tbl.Set(0, []byte("ab\n"))
	if _, err := WriteTable(failingWriter{}, tbl); err == nil {
		t.Error("expected an error")
	}
}
