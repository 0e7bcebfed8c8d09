package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/domino14/wordboard/tilemapping"
)

func (sq *square) displayString(width int) string {
	var s string
	if sq.occupied {
		s = sq.tile.Symbol
		if sq.tile.Wildcard {
			s = strings.ToLower(s)
		}
		if !sq.tile.Confirmed {
			s += "?"
		}
	} else if sq.bonus == Normal {
		s = "."
	} else {
		s = string(sq.bonus.layoutRune())
	}
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// ToDisplayText renders the board as text. Wildcard tiles are shown in
// lower case and provisional tiles are followed by a question mark.
func (b *Board) ToDisplayText() string {
	n := b.Dim()
	width := 2
	for i := range b.squares {
		for j := range b.squares[i] {
			if l := utf8.RuneCountInString(b.squares[i][j].displayString(0)); l+1 > width {
				width = l + 1
			}
		}
	}
	var sb strings.Builder
	sb.WriteString("\n   ")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%-*c", width, 'A'+i))
	}
	sb.WriteString("\n   " + strings.Repeat("-", n*width) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteString(b.squares[i][j].displayString(width))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*width) + "\n")
	return sb.String()
}

// SetRow puts confirmed tiles on a row, mostly for setting up positions
// in tests. An empty string leaves the square empty; a lower-case symbol
// is a wildcard standing for that letter. It returns the tiles that were
// placed, with wildcards as the wildcard token.
func (b *Board) SetRow(row int, symbols []string, lt *tilemapping.LetterTable) ([]string, error) {
	if row < 0 || row >= b.Dim() || len(symbols) > b.Dim() {
		return nil, fmt.Errorf("%w: row %d with %d symbols", ErrOutOfBounds, row, len(symbols))
	}
	var placed []string
	for col, sym := range symbols {
		p := Position{Row: row, Col: col}
		sq := &b.squares[row][col]
		if sq.occupied && sq.tile.Confirmed {
			b.tilesPlayed--
		}
		*sq = square{bonus: sq.bonus}
		if sym == "" {
			continue
		}
		lp := LetterPlacement{Symbol: tilemapping.NormalizeSymbol(sym)}
		if lp.Symbol != sym {
			lp.Wildcard = true
			placed = append(placed, tilemapping.WildcardToken)
		} else {
			lp.Points = int(lt.PointsOf(sym))
			placed = append(placed, sym)
		}
		if err := b.Place(p, lp); err != nil {
			return nil, err
		}
		if err := b.Confirm(p); err != nil {
			return nil, err
		}
	}
	return placed, nil
}
