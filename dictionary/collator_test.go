package dictionary

import (
	"math/rand"
	"testing"

	"github.com/msnoigrs/dicsort/alphabet"
)

func mustAlphabet(t *testing.T, s string) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.FromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestCollatorCompare(t *testing.T) {
	c := NewCollator(mustAlphabet(t, "ab"), 64)
	tests := []struct {
		a, b string
		want int
	}{
		{"aa", "ab", -1},
		{"ba", "ab", 1},
		{"ab", "ab", 0},
		{"aa apple", "ab apple", -1},
		{"ab zebra", "ab apple", 0},
		// a shorter headword is a prefix and sorts first
		{"ab x", "abb x", -1},
		{"abb x", "ab x", 1},
		// unknown characters rank below every letter and equal each other
		{"1 x", "a x", -1},
		{"a1 x", "a2 y", 0},
		{"a. x", "a, x", 0},
		// a line terminator ends the headword like a delimiter
		{"ab\n", "ab apple\n", 0},
		{"ab\r\n", "ab apple\n", 0},
		{"a\n", "ab\n", -1},
		// records without any delimiter
		{"abab", "abab", 0},
		{"abab", "abaa", 1},
		{"", "", 0},
		{"", "a", -1},
	}
	for _, tt := range tests {
		if got := c.Compare([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
		if got := c.Compare([]byte(tt.b), []byte(tt.a)); got != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, expected %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestCollatorDescending(t *testing.T) {
	c := NewCollator(mustAlphabet(t, "ab"), 64, WithOrder(Descending))
	if got := c.Compare([]byte("aa apple"), []byte("ab apple")); got != 1 {
		t.Errorf("got %d, expected 1", got)
	}
	if got := c.Compare([]byte("ba apple"), []byte("ab apple")); got != -1 {
		t.Errorf("got %d, expected -1", got)
	}
	if got := c.Compare([]byte("a1"), []byte("a2")); got != 0 {
		t.Errorf("got %d, expected 0", got)
	}
	if !c.Less([]byte("b"), []byte("a")) {
		t.Error("b should come first")
	}
}

func TestCollatorDefaultAlphabet(t *testing.T) {
	c := NewCollator(mustAlphabet(t, alphabet.Default), 64)
	ordered := []string{
		"a first\n",
		"ābad second\n",
		"bē third\n",
		"gāt fourth\n",
		"θeos fifth\n",
		"ȳr sixth\n",
		"φos seventh\n",
		"xa eighth\n",
	}
	for i := 0; i+1 < len(ordered); i++ {
		if !c.Less([]byte(ordered[i]), []byte(ordered[i+1])) {
			t.Errorf("%q should sort before %q", ordered[i], ordered[i+1])
		}
	}
}

func TestCollatorMultigraph(t *testing.T) {
	a, err := alphabet.New([]string{"a", "c", "ch", "h"})
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollator(a, 64)
	tests := []struct {
		a, b string
		want int
	}{
		{"cha x", "ca x", 1},
		{"ha x", "cha x", 1},
		{"cha x", "cha y", 0},
		{"ch x", "cha x", -1},
	}
	for _, tt := range tests {
		if got := c.Compare([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCollatorDelimiter(t *testing.T) {
	c := NewCollator(mustAlphabet(t, "ab "), 64, WithDelimiter('\t'))
	// the space is a letter of this alphabet
	if got := c.Compare([]byte("a b\tz"), []byte("a\tz")); got != 1 {
		t.Errorf("got %d, expected 1", got)
	}
	if got := c.Compare([]byte("a b\tz"), []byte("a b\ty")); got != 0 {
		t.Errorf("got %d, expected 0", got)
	}
}

func TestCollatorBoundedWalk(t *testing.T) {
	c := NewCollator(mustAlphabet(t, "ab"), 2)
	// the difference lies beyond the walk bound
	if got := c.Compare([]byte("aab"), []byte("aaa")); got != 0 {
		t.Errorf("got %d, expected 0", got)
	}
	c = NewCollator(mustAlphabet(t, "ab"), 4)
	if got := c.Compare([]byte("aab"), []byte("aaa")); got != 1 {
		t.Errorf("got %d, expected 1", got)
	}
	if c.Stride() != 4 {
		t.Errorf("stride is %d", c.Stride())
	}
}

func randomRecord(r *rand.Rand) []byte {
	const letters = "ab"
	const text = "ab1. "
	n := 1 + r.Intn(4)
	b := make([]byte, 0, 12)
	for i := 0; i < n; i++ {
		b = append(b, letters[r.Intn(len(letters))])
	}
	b = append(b, ' ')
	for i := r.Intn(5); i > 0; i-- {
		b = append(b, text[r.Intn(len(text))])
	}
	return append(b, '\n')
}

func TestCollatorTransitivity(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	records := make([][]byte, 40)
	for i := range records {
		records[i] = randomRecord(rnd)
	}
	for _, order := range []Order{Ascending, Descending} {
		c := NewCollator(mustAlphabet(t, "ab"), 16, WithOrder(order))
		for _, a := range records {
			for _, b := range records {
				ab := c.Compare(a, b)
				if ba := c.Compare(b, a); ab != -ba {
					t.Fatalf("%s: Compare(%q, %q) = %d but reverse is %d", order, a, b, ab, ba)
				}
				if ab == 0 {
					continue
				}
				for _, cc := range records {
					if c.Compare(b, cc) == ab && c.Compare(a, cc) != ab {
						t.Fatalf("%s: %q, %q, %q are not transitive", order, a, b, cc)
					}
				}
			}
		}
	}
}
