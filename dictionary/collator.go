package dictionary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msnoigrs/dicsort/alphabet"
)

// Order is the direction in which ranks are compared.
type Order int

const (
	// Ascending puts the lower rank first.
	Ascending Order = iota
	// Descending puts the higher rank first.
	Descending
)

func (o Order) String() string {
	switch o {
	case Descending:
		return "descending"
	default:
		return "ascending"
	}
}

// ParseOrder parses "ascending" or "descending".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("%s is invalid order", s)
}

// DefaultDelimiter separates headword from definition.
const DefaultDelimiter = ' '

// Collator orders records by the rank of their characters in an alphabet.
//
// Both records are walked one alphabet unit at a time from offset zero. The
// walk stops at the first unit whose ranks differ, or when both records sit
// on a delimiter at the same step. A line terminator and the end of a record
// act as delimiters of rank alphabet.Unknown, and no walk takes more than
// stride steps.
type Collator struct {
	alphabet *alphabet.Alphabet
	stride   int
	delim    rune
	order    Order
}

// CollatorOption configures a Collator.
type CollatorOption func(c *Collator)

// WithDelimiter sets the headword delimiter.
func WithDelimiter(delim rune) CollatorOption {
	return func(c *Collator) {
		c.delim = delim
	}
}

// WithOrder sets the comparison direction.
func WithOrder(order Order) CollatorOption {
	return func(c *Collator) {
		c.order = order
	}
}

// NewCollator returns a Collator over a whose walks are bounded by stride.
func NewCollator(a *alphabet.Alphabet, stride int, opts ...CollatorOption) *Collator {
	c := &Collator{
		alphabet: a,
		stride:   stride,
		delim:    DefaultDelimiter,
		order:    Ascending,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stride returns the walk bound.
func (c *Collator) Stride() int {
	return c.stride
}

// Compare returns -1 when a sorts before b, 1 when it sorts after and 0
// when they are equal under the alphabet.
func (c *Collator) Compare(a, b []byte) int {
	ra, rb := alphabet.Unknown, alphabet.Unknown
	ia, ib := 0, 0
	for step := 0; step < c.stride; step++ {
		ua, na, da := c.unit(a, ia)
		ub, nb, db := c.unit(b, ib)
		if da && db {
			break
		}
		ra, rb = ua, ub
		if ra != rb {
			break
		}
		ia += na
		ib += nb
	}
	return c.decide(ra, rb)
}

// Less reports whether a sorts strictly before b.
func (c *Collator) Less(a, b []byte) bool {
	return c.Compare(a, b) < 0
}

// unit ranks the alphabet unit at offset i of b and reports its width and
// whether it is a delimiter. The end of b and a line terminator have width
// 0, so a finished record keeps presenting a delimiter.
func (c *Collator) unit(b []byte, i int) (rank int, size int, delim bool) {
	if i >= len(b) || b[i] == '\n' || b[i] == '\r' {
		return alphabet.Unknown, 0, true
	}
	if r, w := decodeRune(b[i:]); r == c.delim {
		return c.alphabet.RankRune(r), w, true
	}
	rank, size = c.alphabet.Match(b[i:])
	return rank, size, false
}

func decodeRune(b []byte) (rune, int) {
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	return utf8.DecodeRune(b)
}

func (c *Collator) decide(ra, rb int) int {
	var res int
	switch {
	case ra < rb:
		res = -1
	case ra > rb:
		res = 1
	}
	if c.order == Descending {
		return -res
	}
	return res
}
