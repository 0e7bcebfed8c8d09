package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/tilemapping"
)

// MoveType is a type of move; a play, an exchange or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlay:
		return "Play"
	case MoveTypeExchange:
		return "Exchange"
	case MoveTypePass:
		return "Pass"
	}
	return "UNHANDLED"
}

var ErrBadCoords = errors.New("bad board coordinates")

// A Placement is a tile put down this turn. A wildcard placement carries
// the letter it stands for in Symbol, or the wildcard token itself while
// the letter has not been chosen.
type Placement struct {
	Pos      board.Position
	Symbol   string
	Wildcard bool
}

// RackSymbol is the tile this placement takes off the rack.
func (p Placement) RackSymbol() string {
	if p.Wildcard {
		return tilemapping.WildcardToken
	}
	return p.Symbol
}

// A FormedWord is a word made by a play, either the main word or a cross
// word. Anchor is the square of its last symbol.
type FormedWord struct {
	Symbols   []string
	Start     board.Position
	Anchor    board.Position
	Direction board.Direction
	Score     int
}

func (w FormedWord) String() string {
	return strings.Join(w.Symbols, "")
}

// Move is a move. It doesn't have to be a scoring move.
type Move struct {
	action      MoveType
	score       int
	word        []string
	start       board.Position
	anchor      board.Position
	dir         board.Direction
	words       []FormedWord
	tiles       []Placement
	exchanged   []string
	tilesPlayed int
	coords      string
}

// NewScoringMove creates a play. words holds the main word first, then
// the cross words.
func NewScoringMove(score int, words []FormedWord, tiles []Placement) *Move {
	main := words[0]
	return &Move{
		action:      MoveTypePlay,
		score:       score,
		word:        main.Symbols,
		start:       main.Start,
		anchor:      main.Anchor,
		dir:         main.Direction,
		words:       words,
		tiles:       tiles,
		tilesPlayed: len(tiles),
		coords:      ToBoardGameCoords(main.Start.Row, main.Start.Col, main.Direction),
	}
}

// NewExchangeMove creates an exchange of the given rack tiles.
func NewExchangeMove(exchanged []string) *Move {
	return &Move{
		action:      MoveTypeExchange,
		exchanged:   exchanged,
		tilesPlayed: len(exchanged),
	}
}

func NewPassMove() *Move {
	return &Move{action: MoveTypePass}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Score() int {
	return m.score
}

// AddScore adjusts the score, e.g. for a bingo bonus.
func (m *Move) AddScore(n int) {
	m.score += n
}

// Word is the main word, as symbols.
func (m *Move) Word() []string {
	return m.word
}

func (m *Move) WordString() string {
	return strings.Join(m.word, "")
}

// Anchor is the square of the last symbol of the main word.
func (m *Move) Anchor() board.Position {
	return m.anchor
}

func (m *Move) Start() board.Position {
	return m.start
}

func (m *Move) Direction() board.Direction {
	return m.dir
}

// Words returns every word formed, main word first.
func (m *Move) Words() []FormedWord {
	return m.words
}

// Tiles are the placements of a play.
func (m *Move) Tiles() []Placement {
	return m.tiles
}

// RackTiles returns the tiles that leave the rack: the placed tiles of a
// play or the exchanged tiles of an exchange.
func (m *Move) RackTiles() []string {
	if m.action == MoveTypeExchange {
		return m.exchanged
	}
	return lo.Map(m.tiles, func(p Placement, _ int) string { return p.RackSymbol() })
}

// TilesPlayed returns the number of tiles played or exchanged.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

func (m *Move) BoardCoords() string {
	return m.coords
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("<action: play word: %v %v score: %v tp: %v words: %v>",
			m.coords, m.WordString(), m.score, m.tilesPlayed,
			lo.Map(m.words, func(w FormedWord, _ int) string { return w.String() }))
	case MoveTypePass:
		return "<action: pass>"
	case MoveTypeExchange:
		return fmt.Sprintf("<action: exchange %v>", strings.Join(m.exchanged, ""))
	}
	return "<Unhandled move>"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.coords, m.WordString())
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", strings.Join(m.exchanged, ""))
	}
	return "UNHANDLED"
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// ToBoardGameCoords converts the row, col, and direction of the play to
// a coordinate like 5F (horizontal) or G4 (vertical).
func ToBoardGameCoords(row int, col int, dir board.Direction) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if dir == board.Vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords.
func FromBoardGameCoords(c string) (int, int, board.Direction, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[2])
		if row < 1 {
			return 0, 0, board.Horizontal, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(m[1][0] - 'A'), board.Vertical, nil
	}
	if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[1])
		if row < 1 {
			return 0, 0, board.Horizontal, fmt.Errorf("%w: %v", ErrBadCoords, c)
		}
		return row - 1, int(m[2][0] - 'A'), board.Horizontal, nil
	}
	return 0, 0, board.Horizontal, fmt.Errorf("%w: %v", ErrBadCoords, c)
}
