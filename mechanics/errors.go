package mechanics

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPlacement     = errors.New("no tiles were placed")
	ErrMisalignedTiles    = errors.New("tiles must be placed in a single row or column")
	ErrDisconnectedWord   = errors.New("tiles must form a single connected word")
	ErrIsolatedTile       = fmt.Errorf("%w: the tile does not touch any other tile", ErrDisconnectedWord)
	ErrNotAdjacentToBoard = errors.New("the play must touch a tile already on the board")
	ErrCenterNotCovered   = fmt.Errorf("%w: the first play must cover the center square",
		ErrNotAdjacentToBoard)
	ErrUnknownWord        = errors.New("unknown word")
	ErrUnresolvedWildcard = errors.New("a wildcard tile has no letter chosen")
	ErrPlacementsPending  = errors.New("the board already has provisional tiles")
	ErrInvalidPlacement   = errors.New("invalid placement")
)

// UnknownWordError lists the formed words that are not in the lexicon.
type UnknownWordError struct {
	Words []string
}

func (e *UnknownWordError) Error() string {
	if len(e.Words) == 1 {
		return fmt.Sprintf("%v: %v", ErrUnknownWord, e.Words[0])
	}
	return fmt.Sprintf("%vs: %v", ErrUnknownWord, strings.Join(e.Words, ", "))
}

func (e *UnknownWordError) Unwrap() error {
	return ErrUnknownWord
}
