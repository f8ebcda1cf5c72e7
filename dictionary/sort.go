package dictionary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Strategy selects how Sort reorders a table.
type Strategy int

const (
	// InPlace runs a stable merge sort that swaps slots directly.
	InPlace Strategy = iota
	// Tree collects records in a red-black tree keyed by the collator and
	// then moves every slot to its final position.
	Tree
)

func (s Strategy) String() string {
	switch s {
	case Tree:
		return "tree"
	default:
		return "inplace"
	}
}

// ParseStrategy parses "inplace" or "tree".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "inplace", "in-place":
		return InPlace, nil
	case "tree":
		return Tree, nil
	}
	return InPlace, fmt.Errorf("%s is invalid strategy", s)
}

type tableSorter struct {
	t *Table
	c *Collator
}

func (s tableSorter) Len() int           { return s.t.Len() }
func (s tableSorter) Less(i, j int) bool { return s.c.Less(s.t.Key(i), s.t.Key(j)) }
func (s tableSorter) Swap(i, j int)      { s.t.Swap(i, j) }

// Sort reorders t into non-decreasing order under c. Records that compare
// equal keep their relative order with either strategy.
func Sort(t *Table, c *Collator, s Strategy) {
	switch s {
	case Tree:
		treeSort(t, c)
	default:
		sort.Stable(tableSorter{t: t, c: c})
	}
}

func treeSort(t *Table, c *Collator) {
	keys := redblacktree.NewWith(func(a, b interface{}) int {
		l, _ := a.([]byte)
		r, _ := b.([]byte)
		return c.Compare(l, r)
	})
	for i := 0; i < t.Len(); i++ {
		k := t.Key(i)
		v, ok := keys.Get(k)
		if !ok {
			keys.Put(k, []int{i})
		} else {
			ids, _ := v.([]int)
			keys.Put(k, append(ids, i))
		}
	}

	order := make([]int, 0, t.Len())
	it := keys.Iterator()
	for it.Next() {
		ids, _ := it.Value().([]int)
		order = append(order, ids...)
	}
	t.permute(order)
}

// permute moves the record at order[k] to slot k for every k, following
// each cycle of the permutation with swaps.
func (t *Table) permute(order []int) {
	done := make([]bool, len(order))
	for k := range order {
		if done[k] {
			continue
		}
		j := k
		for {
			done[j] = true
			next := order[j]
			if next == k {
				break
			}
			t.Swap(j, next)
			j = next
		}
	}
}
