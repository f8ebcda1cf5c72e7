// Package alphabet holds the ordered symbol table that defines collation
// rank for dictionary headwords.
package alphabet

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Unknown is the rank of any character that is not part of the alphabet.
// It sorts before rank 0.
const Unknown = -1

// Default is the alphabet used when no settings override it.
const Default = "aābgdeēzhθiījklmnoōprstuūwyȳφx"

// Alphabet is an ordered list of symbols. A symbol is usually a single
// character but may be a multigraph; the position of a symbol in the list is
// its rank. An Alphabet is never modified after New returns.
type Alphabet struct {
	symbols    []string
	ranks      map[string]int
	keyLengths map[rune]int
}

// New builds an Alphabet from symbols in collation order.
func New(symbols []string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, errors.New("alphabet is empty")
	}
	a := &Alphabet{
		symbols:    make([]string, 0, len(symbols)),
		ranks:      make(map[string]int, len(symbols)),
		keyLengths: map[rune]int{},
	}
	for i, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("empty symbol at position %d", i)
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("symbol at position %d is not valid UTF-8", i)
		}
		if r, ok := a.ranks[s]; ok {
			return nil, fmt.Errorf("%s is already defined at position %d", s, r)
		}
		a.ranks[s] = i
		a.symbols = append(a.symbols, s)

		first, _ := utf8.DecodeRuneInString(s)
		// store the longest symbol length per leading rune
		if a.keyLengths[first] < len(s) {
			a.keyLengths[first] = len(s)
		}
	}
	return a, nil
}

// FromString builds an Alphabet in which every rune of s is one symbol.
func FromString(s string) (*Alphabet, error) {
	symbols := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return New(symbols)
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol of the given rank, or "" when out of range.
func (a *Alphabet) Symbol(rank int) string {
	if rank < 0 || rank >= len(a.symbols) {
		return ""
	}
	return a.symbols[rank]
}

// Symbols returns a copy of the symbols in rank order.
func (a *Alphabet) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Rank returns the rank of symbol, or Unknown.
func (a *Alphabet) Rank(symbol string) int {
	r, ok := a.ranks[symbol]
	if !ok {
		return Unknown
	}
	return r
}

// RankRune returns the rank of the single-character symbol r, or Unknown.
func (a *Alphabet) RankRune(r rune) int {
	return a.Rank(string(r))
}

// Match returns the rank and byte length of the longest symbol that prefixes
// b. When no symbol matches, rank is Unknown and size is the width of the
// leading rune (1 for an invalid encoding). size is 0 only for empty b.
func (a *Alphabet) Match(b []byte) (rank int, size int) {
	if len(b) == 0 {
		return Unknown, 0
	}
	first, width := utf8.DecodeRune(b)
	for l := minInt(a.keyLengths[first], len(b)); l >= width; l-- {
		if r, ok := a.ranks[string(b[:l])]; ok {
			return r, l
		}
	}
	return Unknown, width
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
