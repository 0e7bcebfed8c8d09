package tilemapping

import (
	"errors"
	"fmt"
	"maps"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

var ErrInsufficientBagSupply = errors.New("not enough tiles in the bag")

// A Bag is the bag o'tiles! It is shared by all players of a game.
type Bag struct {
	numTiles   int
	tileMap    map[string]int
	table      *LetterTable
	randSource *frand.RNG
}

// NewBag returns a full bag for the table. If randSource is nil a
// randomly seeded source is used.
func NewBag(lt *LetterTable, randSource *frand.RNG) *Bag {
	if randSource == nil {
		randSource = frand.New()
	}
	b := &Bag{tileMap: make(map[string]int), table: lt, randSource: randSource}
	b.Refill()
	return b
}

// SeededRand returns a deterministic random source, for tests and
// reproducible games.
func SeededRand(seed uint64) *frand.RNG {
	var key [32]byte
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}
	return frand.NewCustom(key[:], 1024, 12)
}

// Refill puts every tile of the distribution back in the bag.
func (b *Bag) Refill() {
	clear(b.tileMap)
	b.numTiles = 0
	for _, e := range b.table.Entries() {
		if e.Frequency == 0 {
			continue
		}
		b.tileMap[e.Symbol] = int(e.Frequency)
		b.numTiles += int(e.Frequency)
	}
}

func (b *Bag) TilesRemaining() int {
	return b.numTiles
}

func (b *Bag) Empty() bool {
	return b.numTiles == 0
}

// Counts returns a copy of the remaining count per symbol.
func (b *Bag) Counts() map[string]int {
	return maps.Clone(b.tileMap)
}

func (b *Bag) drawTileAt(idx int) string {
	// Walk symbols in table order so that a given seed always draws the
	// same tiles.
	counter := 0
	for _, sym := range b.table.order {
		counter += b.tileMap[sym]
		if counter > idx {
			b.tileMap[sym]--
			if b.tileMap[sym] == 0 {
				delete(b.tileMap, sym)
			}
			b.numTiles--
			return sym
		}
	}
	// Symbols returned to the bag that aren't in the table.
	for sym, ct := range b.tileMap {
		if _, ok := b.table.entries[sym]; ok {
			continue
		}
		counter += ct
		if counter > idx {
			b.tileMap[sym]--
			if b.tileMap[sym] == 0 {
				delete(b.tileMap, sym)
			}
			b.numTiles--
			return sym
		}
	}
	panic(fmt.Sprintf("tile index %d out of range (%d tiles)", idx, b.numTiles))
}

// Draw draws n tiles from the bag. It fails without drawing anything if
// there are fewer than n tiles.
func (b *Bag) Draw(n int) ([]string, error) {
	if n > b.numTiles {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v: %w",
			n, b.numTiles, ErrInsufficientBagSupply)
	}
	drawn := make([]string, n)
	for i := 0; i < n; i++ {
		drawn[i] = b.drawTileAt(b.randSource.Intn(b.numTiles))
	}
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []string {
	n = min(n, b.numTiles)
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack puts the tiles back in the bag.
func (b *Bag) PutBack(symbols []string) {
	for _, s := range symbols {
		b.tileMap[NormalizeSymbol(s)]++
	}
	b.numTiles += len(symbols)
}

// Exchange draws len(symbols) replacements and then returns the given
// symbols to the bag. If the bag holds fewer tiles than requested nothing
// changes.
func (b *Bag) Exchange(symbols []string) ([]string, error) {
	if len(symbols) > b.numTiles {
		return nil, fmt.Errorf("cannot exchange %d tiles with %d in the bag: %w",
			len(symbols), b.numTiles, ErrInsufficientBagSupply)
	}
	drawn, err := b.Draw(len(symbols))
	if err != nil {
		return nil, err
	}
	b.PutBack(symbols)
	return drawn, nil
}

// RemoveTiles removes specific tiles from the bag, for example tiles that
// are known to be on the board or on a rack. Either all of them are
// removed or none.
func (b *Bag) RemoveTiles(symbols []string) error {
	need := make(map[string]int)
	for _, s := range symbols {
		need[NormalizeSymbol(s)]++
	}
	for s, n := range need {
		if b.tileMap[s] < n {
			return fmt.Errorf("cannot remove %d %v from the bag, it only has %d",
				n, s, b.tileMap[s])
		}
	}
	for s, n := range need {
		b.tileMap[s] -= n
		if b.tileMap[s] == 0 {
			delete(b.tileMap, s)
		}
	}
	b.numTiles -= len(symbols)
	log.Debug().Int("removed", len(symbols)).Int("remaining", b.numTiles).Msg("bag-remove-tiles")
	return nil
}

// Copy copies to a new bag. The random source is shared unless another
// one is given.
func (b *Bag) Copy(randSource *frand.RNG) *Bag {
	if randSource == nil {
		randSource = b.randSource
	}
	return &Bag{
		numTiles:   b.numTiles,
		tileMap:    maps.Clone(b.tileMap),
		table:      b.table,
		randSource: randSource,
	}
}

func (b *Bag) Table() *LetterTable {
	return b.table
}
