// Package mechanics implements the rules of the crossword game: whether a
// set of tiles put down on the board makes a legal play, which words it
// forms, and what it scores.
package mechanics

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/lexicon"
	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/tilemapping"
)

// Validator checks the provisional tiles on a board.
type Validator struct {
	Lexicon        lexicon.Lexicon
	WildcardPolicy WildcardPolicy
}

func NewValidator(lex lexicon.Lexicon, policy WildcardPolicy) *Validator {
	return &Validator{Lexicon: lex, WildcardPolicy: policy}
}

// Validate checks the provisional tiles on b and returns the resulting
// play. firstMove requires the play to cover the center square instead of
// touching a tile already on the board. The board is not modified.
func (v *Validator) Validate(b *board.Board, firstMove bool) (*move.Move, error) {
	placed := b.Tentative()
	if len(placed) == 0 {
		return nil, ErrEmptyPlacement
	}

	dir, err := mainDirection(b, placed)
	if err != nil {
		return nil, err
	}
	main, err := mainWord(b, placed, dir)
	if err != nil {
		return nil, err
	}

	if firstMove {
		center := b.Center()
		if !lo.Contains(placed, center) {
			return nil, ErrCenterNotCovered
		}
	} else if !lo.SomeBy(placed, func(p board.Position) bool { return touchesConfirmed(b, p) }) {
		return nil, ErrNotAdjacentToBoard
	}

	words := []move.FormedWord{main}
	for _, p := range placed {
		if cw, ok := wordThrough(b, p, dir.Other()); ok {
			words = append(words, cw)
		}
	}

	if err := v.checkWords(words); err != nil {
		return nil, err
	}

	total := 0
	for i := range words {
		w := &words[i]
		w.Score, err = b.Score(w.Anchor, len(w.Symbols), w.Direction)
		if err != nil {
			return nil, err
		}
		total += w.Score
	}

	placements := lo.Map(placed, func(p board.Position, _ int) move.Placement {
		tile, _ := b.Tile(p)
		return move.Placement{Pos: p, Symbol: tile.Symbol, Wildcard: tile.Wildcard}
	})
	m := move.NewScoringMove(total, words, placements)
	log.Debug().Str("move", m.ShortDescription()).Int("score", total).
		Int("words", len(words)).Msg("validated-play")
	return m, nil
}

// ValidatePlacements puts placements on b as provisional tiles and
// validates them. On failure the tiles are taken back off, leaving b as it
// was; on success they stay on the board, unconfirmed.
func (v *Validator) ValidatePlacements(b *board.Board, placements []move.Placement,
	firstMove bool) (*move.Move, error) {

	if len(b.Tentative()) > 0 {
		return nil, ErrPlacementsPending
	}
	if len(placements) == 0 {
		return nil, ErrEmptyPlacement
	}
	if dupes := lo.FindDuplicatesBy(placements, func(p move.Placement) board.Position {
		return p.Pos
	}); len(dupes) > 0 {
		return nil, fmt.Errorf("%w: two tiles on %v", ErrInvalidPlacement, dupes[0].Pos)
	}
	var table *tilemapping.LetterTable
	if v.Lexicon != nil {
		table = v.Lexicon.Table()
	}
	for _, p := range placements {
		lp := board.LetterPlacement{
			Symbol:   tilemapping.NormalizeSymbol(p.Symbol),
			Wildcard: p.Wildcard || p.Symbol == tilemapping.WildcardToken,
		}
		if !lp.Wildcard {
			lp.Points = int(table.PointsOf(lp.Symbol))
		}
		if err := b.Place(p.Pos, lp); err != nil {
			b.RetractAll()
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlacement, err)
		}
	}
	m, err := v.Validate(b, firstMove)
	if err != nil {
		b.RetractAll()
		return nil, err
	}
	return m, nil
}

func (v *Validator) checkWords(words []move.FormedWord) error {
	var unknown []string
	for _, w := range words {
		if lo.Contains(w.Symbols, tilemapping.WildcardToken) {
			if v.WildcardPolicy == WildcardLenient {
				continue
			}
			return fmt.Errorf("%w: %v", ErrUnresolvedWildcard, w)
		}
		if v.Lexicon != nil && !v.Lexicon.HasSymbols(w.Symbols) {
			unknown = append(unknown, w.String())
		}
	}
	if len(unknown) > 0 {
		return &UnknownWordError{Words: unknown}
	}
	return nil
}

// mainDirection works out the direction of the main word from the
// positions of the placed tiles, which come in reading order.
func mainDirection(b *board.Board, placed []board.Position) (board.Direction, error) {
	if len(placed) == 1 {
		p := placed[0]
		if runLength(b, p, board.Horizontal) >= 2 {
			return board.Horizontal, nil
		}
		if runLength(b, p, board.Vertical) >= 2 {
			return board.Vertical, nil
		}
		return board.Horizontal, ErrIsolatedTile
	}
	first := placed[0]
	if lo.EveryBy(placed, func(p board.Position) bool { return p.Row == first.Row }) {
		return board.Horizontal, nil
	}
	if lo.EveryBy(placed, func(p board.Position) bool { return p.Col == first.Col }) {
		return board.Vertical, nil
	}
	return board.Horizontal, ErrMisalignedTiles
}

// runLength is the length of the run of occupied squares through p along
// dir.
func runLength(b *board.Board, p board.Position, dir board.Direction) int {
	start, end := edges(b, p, dir)
	if dir == board.Horizontal {
		return end.Col - start.Col + 1
	}
	return end.Row - start.Row + 1
}

// edges finds the first and last occupied squares of the run through p.
func edges(b *board.Board, p board.Position, dir board.Direction) (board.Position, board.Position) {
	start := p
	for b.IsOccupied(start.Step(dir, -1)) {
		start = start.Step(dir, -1)
	}
	end := p
	for b.IsOccupied(end.Step(dir, 1)) {
		end = end.Step(dir, 1)
	}
	return start, end
}

// mainWord reconstructs the word along dir that contains every placed
// tile. Gaps between placed tiles must be filled by tiles already on the
// board.
func mainWord(b *board.Board, placed []board.Position, dir board.Direction) (move.FormedWord, error) {
	first, last := placed[0], placed[len(placed)-1]
	start, end := edges(b, first, dir)
	if (dir == board.Horizontal && end.Col < last.Col) ||
		(dir == board.Vertical && end.Row < last.Row) {
		return move.FormedWord{}, fmt.Errorf("%w: gap after %v", ErrDisconnectedWord, end)
	}
	return collect(b, start, end, dir), nil
}

// wordThrough returns the word of two or more symbols through p along
// dir, if there is one.
func wordThrough(b *board.Board, p board.Position, dir board.Direction) (move.FormedWord, bool) {
	if runLength(b, p, dir) < 2 {
		return move.FormedWord{}, false
	}
	start, end := edges(b, p, dir)
	return collect(b, start, end, dir), true
}

func collect(b *board.Board, start, end board.Position, dir board.Direction) move.FormedWord {
	w := move.FormedWord{Start: start, Anchor: end, Direction: dir}
	for p := start; ; p = p.Step(dir, 1) {
		w.Symbols = append(w.Symbols, b.Get(p))
		if p == end {
			break
		}
	}
	return w
}

func touchesConfirmed(b *board.Board, p board.Position) bool {
	for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
		if b.IsConfirmed(p.Step(dir, -1)) || b.IsConfirmed(p.Step(dir, 1)) {
			return true
		}
	}
	return false
}
