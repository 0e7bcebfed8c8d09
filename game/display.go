package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/tilemapping"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := []rune(s)
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) []string {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return lines
}

// unseen returns the tiles the player on turn cannot see: the bag and
// everyone else's rack, in alphabet order.
func (g *Game) unseen() []string {
	r := tilemapping.NewRack(g.table)
	for sym, ct := range g.bag.Counts() {
		for i := 0; i < ct; i++ {
			r.Add(sym)
		}
	}
	for i, p := range g.players {
		if i != g.onturn {
			r.Add(p.rack.Tiles()...)
		}
	}
	return r.Tiles()
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bts := strings.Split(g.board.ToDisplayText(), "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	log.Debug().Int("onturn", g.onturn).Msg("todisplaytext")
	for pi, p := range g.players {
		bts = addText(bts, vpadding+pi, hpadding,
			p.stateString(g.playing == AwaitingMove && g.onturn == pi))
	}

	unseen := g.unseen()
	vpadding += len(g.players) + 1
	bts = addText(bts, vpadding, hpadding, fmt.Sprintf("Bag + unseen: (%d)", len(unseen)))
	vpadding += 2

	var bagDisp []string
	for len(unseen) > 0 {
		n := min(bagColCount, len(unseen))
		bagDisp = append(bagDisp, strings.Join(unseen[:n], " "))
		unseen = unseen[n:]
	}
	for _, line := range bagDisp {
		bts = addText(bts, vpadding, hpadding, line)
		vpadding++
	}

	vpadding++
	bts = addText(bts, vpadding, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	if len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		bts = addText(bts, vpadding+1, hpadding, g.summary(last))
	}
	if g.playing == GameOver {
		bts = addText(bts, vpadding+3, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n")
}

func (g *Game) summary(t TurnRecord) string {
	name := g.players[t.Player].Name
	switch t.Move.Action() {
	case move.MoveTypePlay:
		return fmt.Sprintf("%s played %s for %d pts (total %d)",
			name, t.Move.ShortDescription(), t.Move.Score(), t.Cumulative)
	default:
		return fmt.Sprintf("%s: %s (total %d)", name, t.Move.ShortDescription(), t.Cumulative)
	}
}
