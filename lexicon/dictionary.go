package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordboard/dawg"
	"github.com/domino14/wordboard/tilemapping"
)

var ErrEmptyWordList = errors.New("word list has no words")

// Dictionary is a Lexicon backed by a word graph. It is read-only and can
// be shared by any number of games.
type Dictionary struct {
	name  string
	table *tilemapping.LetterTable
	graph *dawg.Dawg
	// words keeps the symbol sequences so that LoadWords can rebuild the
	// graph with additions.
	words [][]string
}

// Load reads a letter table and a word list (one word per line, only the
// first field of each line is used) and builds a dictionary from them.
func Load(name string, alphabet io.Reader, words io.Reader) (*Dictionary, error) {
	table, err := tilemapping.ScanLetterTable(alphabet)
	if err != nil {
		return nil, fmt.Errorf("loading letter table for %v: %w", name, err)
	}
	var list []string
	scanner := bufio.NewScanner(words)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		list = append(list, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list for %v: %w", name, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%v: %w", name, ErrEmptyWordList)
	}
	return New(name, table, list), nil
}

// New builds a dictionary over table from a list of words.
func New(name string, table *tilemapping.LetterTable, words []string) *Dictionary {
	d := &Dictionary{name: name, table: table}
	d.words = d.tokenizeAll(words)
	d.graph = d.build()
	return d
}

func (d *Dictionary) tokenizeAll(words []string) [][]string {
	out := make([][]string, 0, len(words))
	outside := 0
	for _, w := range words {
		if !d.table.ValidSpelling(w) {
			outside++
		}
		out = append(out, d.table.Tokenize(w))
	}
	if outside > 0 {
		log.Debug().Str("lexicon", d.name).Int("words", outside).
			Msg("words-with-characters-outside-alphabet")
	}
	return out
}

func (d *Dictionary) build() *dawg.Dawg {
	b := dawg.NewBuilder(d.name)
	for _, w := range d.words {
		b.Insert(w)
	}
	return b.Build()
}

// LoadWords returns a new dictionary that also contains words. The
// receiver is not modified; with no words the receiver itself is
// returned.
func (d *Dictionary) LoadWords(words []string) *Dictionary {
	if len(words) == 0 {
		return d
	}
	nd := &Dictionary{name: d.name, table: d.table}
	nd.words = append(append(make([][]string, 0, len(d.words)+len(words)), d.words...),
		nd.tokenizeAll(words)...)
	nd.graph = nd.build()
	return nd
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) Table() *tilemapping.LetterTable {
	return d.table
}

// Dawg returns the read-only word graph, for collaborators that need to
// walk it (e.g. a move generator).
func (d *Dictionary) Dawg() *dawg.Dawg {
	return d.graph
}

func (d *Dictionary) Tokenize(word string) []string {
	return d.table.Tokenize(word)
}

func (d *Dictionary) HasWord(word string) bool {
	return d.graph.Contains(d.table.Tokenize(word))
}

func (d *Dictionary) HasSymbols(symbols []string) bool {
	return d.graph.Contains(symbols)
}

func (d *Dictionary) NumWords() int {
	return d.graph.NumWords()
}
