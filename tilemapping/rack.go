package tilemapping

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// Rack is a player's set of tiles, as a count per symbol. A rack belongs
// to exactly one player.
type Rack struct {
	counts    map[string]int
	numTiles  int
	table     *LetterTable
	sortOrder map[string]int
}

// NewRack creates an empty rack for the given table.
func NewRack(lt *LetterTable) *Rack {
	r := &Rack{counts: make(map[string]int), table: lt, sortOrder: make(map[string]int)}
	for idx, sym := range lt.order {
		r.sortOrder[sym] = idx
	}
	return r
}

// RackFromSymbols creates a rack holding the given symbols.
func RackFromSymbols(symbols []string, lt *LetterTable) *Rack {
	r := NewRack(lt)
	r.Set(symbols)
	return r
}

// Set replaces the rack contents.
func (r *Rack) Set(symbols []string) {
	r.Clear()
	r.Add(symbols...)
}

func (r *Rack) Clear() {
	clear(r.counts)
	r.numTiles = 0
}

func (r *Rack) Add(symbols ...string) {
	for _, symbol := range symbols {
		symbol = NormalizeSymbol(symbol)
		if !r.table.HasSymbol(symbol) {
			log.Warn().Str("symbol", symbol).Msg("adding a symbol that is not in the alphabet")
		}
		r.counts[symbol]++
		r.numTiles++
	}
}

// Take removes one tile with this symbol. It fails if there is none.
func (r *Rack) Take(symbol string) error {
	symbol = NormalizeSymbol(symbol)
	if r.counts[symbol] == 0 {
		return fmt.Errorf("tile %v is not on the rack %v", symbol, r.String())
	}
	r.counts[symbol]--
	if r.counts[symbol] == 0 {
		delete(r.counts, symbol)
	}
	r.numTiles--
	return nil
}

// TakeAll removes all the given tiles or none of them.
func (r *Rack) TakeAll(symbols []string) error {
	if !r.HasAll(symbols) {
		return fmt.Errorf("tiles %v are not all on the rack %v", symbols, r.String())
	}
	for _, s := range symbols {
		// cannot fail after HasAll
		_ = r.Take(s)
	}
	return nil
}

func (r *Rack) Has(symbol string) bool {
	return r.counts[NormalizeSymbol(symbol)] > 0
}

// HasAll checks for the multiset of symbols, counting repeats.
func (r *Rack) HasAll(symbols []string) bool {
	need := make(map[string]int)
	for _, s := range symbols {
		need[NormalizeSymbol(s)]++
	}
	for s, n := range need {
		if r.counts[s] < n {
			return false
		}
	}
	return true
}

func (r *Rack) Count(symbol string) int {
	return r.counts[NormalizeSymbol(symbol)]
}

func (r *Rack) NumTiles() int {
	return r.numTiles
}

func (r *Rack) Empty() bool {
	return r.numTiles == 0
}

// Tiles returns the tiles on the rack in alphabet order, with unknown
// symbols last.
func (r *Rack) Tiles() []string {
	tiles := make([]string, 0, r.numTiles)
	for sym, ct := range r.counts {
		for i := 0; i < ct; i++ {
			tiles = append(tiles, sym)
		}
	}
	slices.SortFunc(tiles, func(a, b string) int {
		ia, oka := r.sortOrder[a]
		ib, okb := r.sortOrder[b]
		switch {
		case oka && okb:
			return ia - ib
		case oka:
			return -1
		case okb:
			return 1
		}
		return strings.Compare(a, b)
	})
	return tiles
}

// Score returns the total point value of the tiles on the rack.
func (r *Rack) Score() int {
	score := 0
	for sym, ct := range r.counts {
		score += int(r.table.PointsOf(sym)) * ct
	}
	return score
}

func (r *Rack) Copy() *Rack {
	n := &Rack{
		counts:    make(map[string]int, len(r.counts)),
		numTiles:  r.numTiles,
		table:     r.table,
		sortOrder: r.sortOrder,
	}
	for k, v := range r.counts {
		n.counts[k] = v
	}
	return n
}

func (r *Rack) Table() *LetterTable {
	return r.table
}

// String returns the tiles joined together, e.g. "ACH#".
func (r *Rack) String() string {
	return strings.Join(r.Tiles(), "")
}
