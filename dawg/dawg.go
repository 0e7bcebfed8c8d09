// Package dawg implements a minimized directed acyclic word graph over
// letter-table symbols. A symbol may be more than one character long
// (CH, LL, RR), so arcs are labelled with strings rather than runes.
package dawg

import (
	"slices"
	"strings"

	"github.com/domino14/wordboard/tilemapping"
)

// NodeIdx is an index into the node arena. The root is always 0.
type NodeIdx uint32

type node struct {
	firstArc uint32
	numArcs  uint32
	terminal bool
}

type arc struct {
	symbol string
	dest   NodeIdx
}

// Dawg is read-only once built and safe for concurrent use.
type Dawg struct {
	nodes    []node
	arcs     []arc
	numWords int
	lexName  string
}

// Root returns the index of the root node.
func (d *Dawg) Root() NodeIdx {
	return 0
}

func (d *Dawg) arcsOf(n NodeIdx) []arc {
	nd := d.nodes[n]
	return d.arcs[nd.firstArc : nd.firstArc+nd.numArcs]
}

// Next follows the arc labelled sym out of n.
func (d *Dawg) Next(n NodeIdx, sym string) (NodeIdx, bool) {
	arcs := d.arcsOf(n)
	i, found := slices.BinarySearchFunc(arcs, sym, func(a arc, s string) int {
		return strings.Compare(a.symbol, s)
	})
	if !found {
		return 0, false
	}
	return arcs[i].dest, true
}

// Accepts returns true if a word ends at n.
func (d *Dawg) Accepts(n NodeIdx) bool {
	return d.nodes[n].terminal
}

// Children returns the labels of the arcs out of n, in sorted order.
func (d *Dawg) Children(n NodeIdx) []string {
	arcs := d.arcsOf(n)
	syms := make([]string, len(arcs))
	for i, a := range arcs {
		syms[i] = a.symbol
	}
	return syms
}

// IterateChildren calls fn for each arc out of n, in sorted order.
func (d *Dawg) IterateChildren(n NodeIdx, fn func(sym string, next NodeIdx)) {
	for _, a := range d.arcsOf(n) {
		fn(a.symbol, a.dest)
	}
}

// NodeAt walks the graph from the root along prefix. It returns false if
// the prefix leaves the graph. Symbols are matched case-insensitively.
func (d *Dawg) NodeAt(prefix []string) (NodeIdx, bool) {
	n := d.Root()
	for _, sym := range prefix {
		var ok bool
		n, ok = d.Next(n, tilemapping.NormalizeSymbol(sym))
		if !ok {
			return 0, false
		}
	}
	return n, true
}

// Contains returns true if word, as a sequence of symbols, is in the
// graph. The empty word is never contained.
func (d *Dawg) Contains(word []string) bool {
	if len(word) == 0 {
		return false
	}
	n, ok := d.NodeAt(word)
	return ok && d.Accepts(n)
}

// ChildSymbols returns the symbols that can follow prefix. The second
// return value is false if prefix is not a path in the graph. A prefix
// that only ends words returns an empty, non-nil slice.
func (d *Dawg) ChildSymbols(prefix []string) ([]string, bool) {
	n, ok := d.NodeAt(prefix)
	if !ok {
		return nil, false
	}
	return d.Children(n), true
}

// IsTerminalAt returns true if prefix is a complete word.
func (d *Dawg) IsTerminalAt(prefix []string) bool {
	return d.Contains(prefix)
}

func (d *Dawg) NumNodes() int {
	return len(d.nodes)
}

func (d *Dawg) NumArcs() int {
	return len(d.arcs)
}

func (d *Dawg) NumWords() int {
	return d.numWords
}

func (d *Dawg) LexiconName() string {
	return d.lexName
}

// Words returns every word in the graph, in lexicographic symbol order.
func (d *Dawg) Words() [][]string {
	var words [][]string
	var walk func(n NodeIdx, prefix []string)
	walk = func(n NodeIdx, prefix []string) {
		if d.Accepts(n) && len(prefix) > 0 {
			words = append(words, slices.Clone(prefix))
		}
		d.IterateChildren(n, func(sym string, next NodeIdx) {
			walk(next, append(prefix, sym))
		})
	}
	walk(d.Root(), nil)
	return words
}
