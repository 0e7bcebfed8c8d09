package move

import (
	"errors"
	"fmt"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/tilemapping"
)

var ErrProposalMismatch = errors.New("proposed word does not fit the board")

// A Proposal is a play suggested by a move proposer: the word, the square
// of its last symbol and its direction. Wildcards lists the indexes in
// Word that are to be played with a wildcard tile.
type Proposal struct {
	Word      []string
	Anchor    board.Position
	Direction board.Direction
	Wildcards []int
}

// Placements works out which tiles the proposal puts down on b. Squares
// along the word that already hold the right symbol are played through.
func (p *Proposal) Placements(b *board.Board) ([]Placement, error) {
	if len(p.Word) == 0 {
		return nil, fmt.Errorf("%w: empty word", ErrProposalMismatch)
	}
	start := p.Anchor.Step(p.Direction, -(len(p.Word) - 1))
	if !b.PosExists(start) || !b.PosExists(p.Anchor) {
		return nil, fmt.Errorf("%w: %v does not fit ending at %v", ErrProposalMismatch,
			p.Word, p.Anchor)
	}
	wild := make(map[int]bool, len(p.Wildcards))
	for _, i := range p.Wildcards {
		wild[i] = true
	}
	var placements []Placement
	for i, sym := range p.Word {
		pos := start.Step(p.Direction, i)
		sym = tilemapping.NormalizeSymbol(sym)
		if b.IsOccupied(pos) {
			if b.Get(pos) != sym {
				return nil, fmt.Errorf("%w: %v is on %v, not %v", ErrProposalMismatch,
					b.Get(pos), pos, sym)
			}
			continue
		}
		placements = append(placements, Placement{Pos: pos, Symbol: sym, Wildcard: wild[i]})
	}
	return placements, nil
}
