package game

import (
	"context"
	"errors"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/lexicon"
	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/tilemapping"
)

// ErrNoMove is returned by a MoveProposer that has nothing to play. The
// computer player passes.
var ErrNoMove = errors.New("no move found")

// MoveProposer comes up with plays for computer players. It gets copies
// of the board and rack and may do what it likes with them.
type MoveProposer interface {
	Propose(ctx context.Context, lex lexicon.Lexicon, b *board.Board, rack *tilemapping.Rack,
		difficulty int) (*move.Proposal, error)
}

// ProposerFunc adapts a function to a MoveProposer.
type ProposerFunc func(ctx context.Context, lex lexicon.Lexicon, b *board.Board,
	rack *tilemapping.Rack, difficulty int) (*move.Proposal, error)

func (f ProposerFunc) Propose(ctx context.Context, lex lexicon.Lexicon, b *board.Board,
	rack *tilemapping.Rack, difficulty int) (*move.Proposal, error) {
	return f(ctx, lex, b, rack, difficulty)
}
