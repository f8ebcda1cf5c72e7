package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMap(t *testing.T) {
	name := filepath.Join(t.TempDir(), "entries.txt")
	want := "ba apple\naa apple\n"
	if err := os.WriteFile(name, []byte(want), 0644); err != nil {
		t.Fatal(err)
	}
	fd, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	b, err := Map(fd, int64(len(want)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
	if err := Sequential(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Unmap(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMapEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		t.Fatal(err)
	}
	fd, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	b, err := Map(fd, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("length is %d", len(b))
	}
	if err := Unmap(b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
