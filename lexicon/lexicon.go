// Package lexicon ties a letter table to a word graph and answers "is
// this a word?" for the rest of the engine.
package lexicon

import (
	"github.com/domino14/wordboard/tilemapping"
)

type Lexicon interface {
	Name() string
	Table() *tilemapping.LetterTable
	// HasWord takes a word spelled with symbols, e.g. "CHARRO".
	HasWord(word string) bool
	// HasSymbols takes a word already split into symbols.
	HasSymbols(symbols []string) bool
}

// AcceptAll accepts every word. It is useful for tests and for analyzing
// games played with an unknown word list.
type AcceptAll struct {
	LetterTable *tilemapping.LetterTable
}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) Table() *tilemapping.LetterTable {
	return lex.LetterTable
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}

func (lex AcceptAll) HasSymbols(symbols []string) bool {
	return true
}
