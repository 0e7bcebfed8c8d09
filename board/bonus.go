package board

import "fmt"

// A Bonus is the scoring class of a square.
type Bonus uint8

const (
	Normal Bonus = iota
	// Center is the starting square. It scores as a double word.
	Center
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// Layout characters, as used in CrosswordGameBoard.
const (
	layoutNormal       = ' '
	layoutCenter       = '*'
	layoutDoubleLetter = '\''
	layoutTripleLetter = '"'
	layoutDoubleWord   = '-'
	layoutTripleWord   = '='
)

func bonusFromLayout(r rune) (Bonus, error) {
	switch r {
	case layoutNormal:
		return Normal, nil
	case layoutCenter:
		return Center, nil
	case layoutDoubleLetter:
		return DoubleLetter, nil
	case layoutTripleLetter:
		return TripleLetter, nil
	case layoutDoubleWord:
		return DoubleWord, nil
	case layoutTripleWord:
		return TripleWord, nil
	}
	return Normal, fmt.Errorf("unknown bonus square %q", r)
}

func (b Bonus) layoutRune() rune {
	switch b {
	case Center:
		return layoutCenter
	case DoubleLetter:
		return layoutDoubleLetter
	case TripleLetter:
		return layoutTripleLetter
	case DoubleWord:
		return layoutDoubleWord
	case TripleWord:
		return layoutTripleWord
	}
	return layoutNormal
}

func (b Bonus) LetterMultiplier() int {
	switch b {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

func (b Bonus) WordMultiplier() int {
	switch b {
	case Center, DoubleWord:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

func (b Bonus) String() string {
	switch b {
	case Normal:
		return "normal"
	case Center:
		return "center"
	case DoubleLetter:
		return "double-letter"
	case TripleLetter:
		return "triple-letter"
	case DoubleWord:
		return "double-word"
	case TripleWord:
		return "triple-word"
	}
	return fmt.Sprintf("bonus(%d)", uint8(b))
}
