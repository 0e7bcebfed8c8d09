// Package tilemapping maps the tile faces of a game ("symbols") to their
// point values and bag frequencies, and holds the rack and bag structures
// built on top of them.
package tilemapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WildcardToken is the symbol of a blank tile. A blank is identified by
// this symbol alone; other symbols worth zero points are regular letters.
const WildcardToken = "#"

// A LetterEntry describes one tile face: its symbol, how many copies are
// in a full bag and how many points it is worth.
type LetterEntry struct {
	Symbol    string
	Frequency uint
	Points    uint
}

// FormatError is returned when an alphabet description can't be parsed.
// Nothing from a failed load is retained.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "alphabet format error: " + e.Reason
	}
	return fmt.Sprintf("alphabet format error on line %d (%q): %s", e.Line, e.Text, e.Reason)
}

var ErrEmptyAlphabet = errors.New("alphabet has no entries")

// NormalizeSymbol upper-cases a symbol the way every table lookup does.
// A Caser keeps state, so a fresh one is made per call.
func NormalizeSymbol(s string) string {
	return cases.Upper(language.Und).String(s)
}

// LetterTable is built once at load time and never modified afterwards,
// so it can be shared freely.
type LetterTable struct {
	entries map[string]LetterEntry
	// order keeps symbols in order of first appearance.
	order []string
	chars map[rune]struct{}
	// maxSymbolLen is the length in runes of the longest symbol, used
	// by the tokenizer.
	maxSymbolLen int
	numTiles     uint
}

// NewLetterTable builds a table out of the given entries. A symbol that
// appears more than once takes the values of its last entry.
func NewLetterTable(entries []LetterEntry) (*LetterTable, error) {
	if len(entries) == 0 {
		return nil, &FormatError{Reason: ErrEmptyAlphabet.Error()}
	}
	lt := &LetterTable{
		entries: make(map[string]LetterEntry),
		chars:   make(map[rune]struct{}),
	}
	for idx, e := range entries {
		sym := NormalizeSymbol(strings.TrimSpace(e.Symbol))
		if sym == "" {
			return nil, &FormatError{Line: idx + 1, Reason: "empty symbol"}
		}
		if _, ok := lt.entries[sym]; !ok {
			lt.order = append(lt.order, sym)
		} else {
			log.Debug().Str("symbol", sym).Msg("duplicate alphabet entry; last one wins")
		}
		e.Symbol = sym
		if sym == WildcardToken {
			e.Points = 0
		}
		lt.entries[sym] = e
	}
	for _, sym := range lt.order {
		e := lt.entries[sym]
		lt.numTiles += e.Frequency
		lt.maxSymbolLen = max(lt.maxSymbolLen, utf8.RuneCountInString(sym))
		if sym == WildcardToken {
			continue
		}
		for _, r := range sym {
			lt.chars[r] = struct{}{}
		}
	}
	return lt, nil
}

// ScanLetterTable reads an alphabet description, one entry per line:
//
//	SYMBOL FREQUENCY POINTS
//
// Lines with only whitespace are skipped. Any malformed line fails the
// whole load.
func ScanLetterTable(r io.Reader) (*LetterTable, error) {
	scanner := bufio.NewScanner(r)
	entries := []LetterEntry{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, &FormatError{Line: lineNum, Text: line,
				Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
		}
		freq, err := parseCount(fields[1])
		if err != nil {
			return nil, &FormatError{Line: lineNum, Text: line, Reason: "frequency " + err.Error()}
		}
		pts, err := parseCount(fields[2])
		if err != nil {
			return nil, &FormatError{Line: lineNum, Text: line, Reason: "points " + err.Error()}
		}
		entries = append(entries, LetterEntry{Symbol: fields[0], Frequency: freq, Points: pts})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	lt, err := NewLetterTable(entries)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("symbols", len(lt.order)).Uint("tiles", lt.numTiles).Msg("loaded-letter-table")
	return lt, nil
}

func parseCount(s string) (uint, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return uint(n), nil
}

// PointsOf returns the point value of a symbol. Unknown and empty symbols
// are worth 0.
func (lt *LetterTable) PointsOf(symbol string) uint {
	if lt == nil || symbol == "" {
		return 0
	}
	return lt.entries[NormalizeSymbol(symbol)].Points
}

// FrequencyOf returns how many tiles of this symbol are in a full bag.
func (lt *LetterTable) FrequencyOf(symbol string) uint {
	if lt == nil {
		return 0
	}
	return lt.entries[NormalizeSymbol(symbol)].Frequency
}

func (lt *LetterTable) HasSymbol(symbol string) bool {
	_, ok := lt.entries[NormalizeSymbol(symbol)]
	return ok
}

// IsWildcard returns true only for the wildcard marker, independent of
// its point value.
func (lt *LetterTable) IsWildcard(symbol string) bool {
	return symbol == WildcardToken
}

// Symbols returns every symbol in load order.
func (lt *LetterTable) Symbols() []string {
	return append([]string(nil), lt.order...)
}

// Entries returns every entry in load order.
func (lt *LetterTable) Entries() []LetterEntry {
	return lo.Map(lt.order, func(sym string, _ int) LetterEntry {
		return lt.entries[sym]
	})
}

// NumTiles is the total number of tiles in a full bag.
func (lt *LetterTable) NumTiles() uint {
	return lt.numTiles
}

// AlphabetCharacters returns the individual characters that make up the
// symbols of this table; a digraph like CH contributes both C and H.
func (lt *LetterTable) AlphabetCharacters() map[rune]struct{} {
	chars := make(map[rune]struct{}, len(lt.chars))
	for r := range lt.chars {
		chars[r] = struct{}{}
	}
	return chars
}

// ValidSpelling returns true if every character of the word belongs to
// the alphabet.
func (lt *LetterTable) ValidSpelling(word string) bool {
	for _, r := range NormalizeSymbol(word) {
		if _, ok := lt.chars[r]; !ok {
			return false
		}
	}
	return true
}

// Tokenize splits a word into symbols, taking the longest symbol that
// matches at each position. A character that begins no known symbol
// becomes a one-character symbol of its own.
func (lt *LetterTable) Tokenize(word string) []string {
	runes := []rune(NormalizeSymbol(word))
	symbols := make([]string, 0, len(runes))
	for i := 0; i < len(runes); {
		matched := 1
		for l := min(lt.maxSymbolLen, len(runes)-i); l > 1; l-- {
			if _, ok := lt.entries[string(runes[i:i+l])]; ok {
				matched = l
				break
			}
		}
		symbols = append(symbols, string(runes[i:i+matched]))
		i += matched
	}
	return symbols
}

// WordScore is the sum of the point values of the symbols.
func (lt *LetterTable) WordScore(symbols []string) uint {
	return lo.SumBy(symbols, lt.PointsOf)
}
