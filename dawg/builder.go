package dawg

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordboard/tilemapping"
)

// buildNode is a temporary type used while inserting words. It is not
// used once the Dawg has been built.
type buildNode struct {
	children map[string]*buildNode
	terminal bool
	// canon is the index of the equivalent node in the minimized graph;
	// set during Build.
	canon uint32
}

// Builder accumulates words into a trie. Build turns the trie into a
// minimized, read-only Dawg; the builder itself can keep accepting words.
type Builder struct {
	root       *buildNode
	numWords   int
	allocNodes int
	name       string
}

func NewBuilder(lexiconName string) *Builder {
	return &Builder{root: &buildNode{}, allocNodes: 1, name: lexiconName}
}

// Insert adds a word, already split into symbols. Inserting the empty
// word, or a word twice, does nothing.
func (b *Builder) Insert(symbols []string) {
	symbols = lo.Compact(symbols)
	if len(symbols) == 0 {
		return
	}
	node := b.root
	for _, sym := range symbols {
		sym = tilemapping.NormalizeSymbol(sym)
		next, ok := node.children[sym]
		if !ok {
			if node.children == nil {
				node.children = make(map[string]*buildNode)
			}
			next = &buildNode{}
			node.children[sym] = next
			b.allocNodes++
		}
		node = next
	}
	if !node.terminal {
		node.terminal = true
		b.numWords++
	}
}

func (b *Builder) NumWords() int {
	return b.numWords
}

// canonNode is a node of the minimized graph before it is laid out in
// the arena. Arcs are sorted by symbol.
type canonNode struct {
	id       uint32
	terminal bool
	arcs     []canonArc
}

type canonArc struct {
	symbol string
	dest   uint32
}

func (n *canonNode) equals(o *canonNode) bool {
	if n.terminal != o.terminal || len(n.arcs) != len(o.arcs) {
		return false
	}
	for i := range n.arcs {
		if n.arcs[i] != o.arcs[i] {
			return false
		}
	}
	return true
}

func (n *canonNode) hash() uint64 {
	buf := make([]byte, 0, 1+len(n.arcs)*8)
	if n.terminal {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for _, a := range n.arcs {
		buf = append(buf, a.symbol...)
		buf = append(buf, 0)
		buf = binary.LittleEndian.AppendUint32(buf, a.dest)
	}
	return xxhash.Sum64(buf)
}

type minimizer struct {
	buckets map[uint64][]*canonNode
	nodes   []*canonNode
}

// register returns the canonical id for n, reusing an existing node with
// the same terminal flag and the same arcs if there is one.
func (m *minimizer) register(n *canonNode) uint32 {
	h := n.hash()
	for _, other := range m.buckets[h] {
		if other.equals(n) {
			return other.id
		}
	}
	n.id = uint32(len(m.nodes))
	m.nodes = append(m.nodes, n)
	m.buckets[h] = append(m.buckets[h], n)
	return n.id
}

func (m *minimizer) visit(node *buildNode) uint32 {
	cn := &canonNode{terminal: node.terminal, arcs: make([]canonArc, 0, len(node.children))}
	for sym, child := range node.children {
		cn.arcs = append(cn.arcs, canonArc{symbol: sym, dest: m.visit(child)})
	}
	slices.SortFunc(cn.arcs, func(a, b canonArc) int {
		return strings.Compare(a.symbol, b.symbol)
	})
	node.canon = m.register(cn)
	return node.canon
}

// Build minimizes the trie (two nodes are the same if they have the same
// terminal flag and the same arcs to the same nodes) and lays it out in a
// flat arena with the root at index 0.
func (b *Builder) Build() *Dawg {
	m := &minimizer{buckets: make(map[uint64][]*canonNode)}
	rootID := m.visit(b.root)
	n := uint32(len(m.nodes))
	// Children are registered before their parents, so the root is last.
	// Flip the numbering to put it first.
	remap := func(id uint32) NodeIdx { return NodeIdx(n - 1 - id) }
	if remap(rootID) != 0 {
		panic("root of the minimized graph is not the last registered node")
	}

	d := &Dawg{
		nodes:    make([]node, n),
		numWords: b.numWords,
		lexName:  b.name,
	}
	for i := int(n) - 1; i >= 0; i-- {
		cn := m.nodes[i]
		idx := remap(cn.id)
		d.nodes[idx] = node{
			firstArc: uint32(len(d.arcs)),
			numArcs:  uint32(len(cn.arcs)),
			terminal: cn.terminal,
		}
		for _, a := range cn.arcs {
			d.arcs = append(d.arcs, arc{symbol: a.symbol, dest: remap(a.dest)})
		}
	}
	log.Debug().Str("lexicon", b.name).Int("words", b.numWords).
		Int("trie-nodes", b.allocNodes).Int("dawg-nodes", len(d.nodes)).
		Int("arcs", len(d.arcs)).Msg("built-dawg")
	return d
}
