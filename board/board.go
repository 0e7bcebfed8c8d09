package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidSize     = errors.New("board size must be at least 1")
	ErrOutOfBounds     = errors.New("position is off the board")
	ErrCellConfirmed   = errors.New("cell holds a confirmed tile")
	ErrEmptyCell       = errors.New("cell is empty")
	ErrInvalidArgument = errors.New("invalid argument")
)

type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	} else if d == Vertical {
		return "vertical"
	}
	return "none"
}

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// delta returns the row and column increments for one step along d.
func (d Direction) delta() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

type Position struct {
	Row int
	Col int
}

// Step returns the position n squares away along dir. n can be negative.
func (p Position) Step(dir Direction, n int) Position {
	ri, ci := dir.delta()
	return Position{Row: p.Row + ri*n, Col: p.Col + ci*n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// A LetterPlacement is a tile sitting on a square.
type LetterPlacement struct {
	Symbol string
	// Points is the face value of the tile; 0 for a wildcard.
	Points int
	// Confirmed tiles belong to a move that has been played. Unconfirmed
	// tiles are this turn's provisional placements.
	Confirmed bool
	Wildcard  bool
}

// Cell is a read-only view of a square.
type Cell struct {
	Row      int
	Col      int
	Bonus    Bonus
	Occupant *LetterPlacement
}

type square struct {
	bonus    Bonus
	occupied bool
	tile     LetterPlacement
}

// A Board is a square grid. The zero value is not usable; use NewBoard or
// MakeBoard.
type Board struct {
	squares     [][]square
	tilesPlayed int
}

// NewBoard returns an empty board of the given size. Size 15 uses the
// classic layout; any other size has no bonus squares except the center.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == len(CrosswordGameBoard) {
		return MakeBoard(CrosswordGameBoard)
	}
	b := &Board{squares: make([][]square, size)}
	for i := range b.squares {
		b.squares[i] = make([]square, size)
	}
	b.squares[size/2][size/2].bonus = Center
	return b, nil
}

// MakeBoard creates a board from a layout description, one string per
// row. See CrosswordGameBoard for the characters used.
func MakeBoard(desc []string) (*Board, error) {
	n := len(desc)
	if n < 1 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidSize)
	}
	b := &Board{squares: make([][]square, n)}
	for i, s := range desc {
		row := make([]square, 0, n)
		for _, c := range s {
			bonus, err := bonusFromLayout(c)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			row = append(row, square{bonus: bonus})
		}
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d squares, board is %dx%d",
				i+1, len(row), n, n)
		}
		b.squares[i] = row
	}
	return b, nil
}

// Dim is the dimension of the board.
func (b *Board) Dim() int {
	return len(b.squares)
}

func (b *Board) Center() Position {
	return Position{Row: b.Dim() / 2, Col: b.Dim() / 2}
}

func (b *Board) PosExists(p Position) bool {
	d := b.Dim()
	return p.Row >= 0 && p.Row < d && p.Col >= 0 && p.Col < d
}

func (b *Board) square(p Position) (*square, error) {
	if !b.PosExists(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return &b.squares[p.Row][p.Col], nil
}

// Place puts a provisional tile on an empty or provisionally filled
// square.
func (b *Board) Place(p Position, lp LetterPlacement) error {
	sq, err := b.square(p)
	if err != nil {
		return err
	}
	if lp.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidArgument)
	}
	if sq.occupied && sq.tile.Confirmed {
		return fmt.Errorf("%w: %v", ErrCellConfirmed, p)
	}
	lp.Confirmed = false
	sq.tile = lp
	sq.occupied = true
	return nil
}

// Retract removes a provisional tile. Retracting an empty square does
// nothing.
func (b *Board) Retract(p Position) error {
	sq, err := b.square(p)
	if err != nil {
		return err
	}
	if !sq.occupied {
		return nil
	}
	if sq.tile.Confirmed {
		return fmt.Errorf("%w: %v", ErrCellConfirmed, p)
	}
	*sq = square{bonus: sq.bonus}
	return nil
}

// RetractAll removes every provisional tile and returns how many there
// were.
func (b *Board) RetractAll() int {
	n := 0
	for i := range b.squares {
		for j := range b.squares[i] {
			sq := &b.squares[i][j]
			if sq.occupied && !sq.tile.Confirmed {
				*sq = square{bonus: sq.bonus}
				n++
			}
		}
	}
	return n
}

// Confirm marks the tile at p as played.
func (b *Board) Confirm(p Position) error {
	sq, err := b.square(p)
	if err != nil {
		return err
	}
	if !sq.occupied {
		return fmt.Errorf("%w: %v", ErrEmptyCell, p)
	}
	if !sq.tile.Confirmed {
		sq.tile.Confirmed = true
		b.tilesPlayed++
	}
	return nil
}

// ConfirmAll marks every provisional tile as played and returns how many
// there were.
func (b *Board) ConfirmAll() int {
	n := 0
	for i := range b.squares {
		for j := range b.squares[i] {
			sq := &b.squares[i][j]
			if sq.occupied && !sq.tile.Confirmed {
				sq.tile.Confirmed = true
				n++
			}
		}
	}
	b.tilesPlayed += n
	log.Debug().Int("confirmed", n).Int("tiles-played", b.tilesPlayed).Msg("confirm-all")
	return n
}

// Tentative returns the positions of provisional tiles in reading order.
func (b *Board) Tentative() []Position {
	var ps []Position
	for i := range b.squares {
		for j := range b.squares[i] {
			sq := &b.squares[i][j]
			if sq.occupied && !sq.tile.Confirmed {
				ps = append(ps, Position{Row: i, Col: j})
			}
		}
	}
	return ps
}

// Get returns the symbol at p, or "" if p is empty or off the board.
func (b *Board) Get(p Position) string {
	if !b.PosExists(p) {
		return ""
	}
	return b.squares[p.Row][p.Col].tile.Symbol
}

// Tile returns the tile at p.
func (b *Board) Tile(p Position) (LetterPlacement, bool) {
	if !b.PosExists(p) {
		return LetterPlacement{}, false
	}
	sq := &b.squares[p.Row][p.Col]
	return sq.tile, sq.occupied
}

// IsEmpty returns true if p is on the board and has no tile.
func (b *Board) IsEmpty(p Position) bool {
	return b.PosExists(p) && !b.squares[p.Row][p.Col].occupied
}

func (b *Board) IsOccupied(p Position) bool {
	return b.PosExists(p) && b.squares[p.Row][p.Col].occupied
}

func (b *Board) IsConfirmed(p Position) bool {
	return b.IsOccupied(p) && b.squares[p.Row][p.Col].tile.Confirmed
}

func (b *Board) BonusAt(p Position) (Bonus, bool) {
	if !b.PosExists(p) {
		return Normal, false
	}
	return b.squares[p.Row][p.Col].bonus, true
}

// CellAt returns a copy of the square at p.
func (b *Board) CellAt(p Position) (Cell, bool) {
	if !b.PosExists(p) {
		return Cell{}, false
	}
	sq := b.squares[p.Row][p.Col]
	c := Cell{Row: p.Row, Col: p.Col, Bonus: sq.bonus}
	if sq.occupied {
		tile := sq.tile
		c.Occupant = &tile
	}
	return c, true
}

// TilesPlayed is the number of confirmed tiles on the board.
func (b *Board) TilesPlayed() int {
	return b.tilesPlayed
}

func (b *Board) HasConfirmedTiles() bool {
	return b.tilesPlayed > 0
}

// Clear removes every tile.
func (b *Board) Clear() {
	for i := range b.squares {
		for j := range b.squares[i] {
			b.squares[i][j] = square{bonus: b.squares[i][j].bonus}
		}
	}
	b.tilesPlayed = 0
}

// Score scores the word of the given length that ends at anchor. Tiles
// placed this turn get their letter bonus and contribute their word
// bonus; confirmed tiles count their face value only.
func (b *Board) Score(anchor Position, length int, dir Direction) (int, error) {
	if !b.PosExists(anchor) {
		return 0, fmt.Errorf("%w: anchor %v", ErrOutOfBounds, anchor)
	}
	if length < 1 {
		return 0, fmt.Errorf("%w: word length %d", ErrInvalidArgument, length)
	}
	start := anchor.Step(dir, -(length - 1))
	if start.Row < 0 || start.Col < 0 {
		return 0, fmt.Errorf("%w: a word of length %d cannot end at %v",
			ErrInvalidArgument, length, anchor)
	}
	sum := 0
	wordMultiplier := 1
	for i := 0; i < length; i++ {
		p := start.Step(dir, i)
		sq := &b.squares[p.Row][p.Col]
		if !sq.occupied {
			return 0, fmt.Errorf("%w: empty square %v inside word", ErrInvalidArgument, p)
		}
		if sq.tile.Confirmed {
			sum += sq.tile.Points
			continue
		}
		sum += sq.tile.Points * sq.bonus.LetterMultiplier()
		wordMultiplier *= sq.bonus.WordMultiplier()
	}
	return sum * wordMultiplier, nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{squares: make([][]square, len(b.squares)), tilesPlayed: b.tilesPlayed}
	for i := range b.squares {
		nb.squares[i] = make([]square, len(b.squares[i]))
		copy(nb.squares[i], b.squares[i])
	}
	return nb
}

// CopyFrom copies the squares of other into b. The boards must be the
// same size.
func (b *Board) CopyFrom(other *Board) error {
	if b.Dim() != other.Dim() {
		return fmt.Errorf("%w: cannot copy a %dx%d board into a %dx%d board",
			ErrInvalidArgument, other.Dim(), other.Dim(), b.Dim(), b.Dim())
	}
	for i := range other.squares {
		copy(b.squares[i], other.squares[i])
	}
	b.tilesPlayed = other.tilesPlayed
	return nil
}
