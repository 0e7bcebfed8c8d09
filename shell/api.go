package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/game"
	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/tilemapping"
)

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (sc *ShellController) ensureSession() error {
	if sc.session != nil {
		return nil
	}
	s, err := game.NewSession(sc.config, nil, nil)
	if err != nil {
		return err
	}
	sc.session = s
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSession(); err != nil {
		return nil, err
	}
	ncomputers, err := cmd.options.IntDefault("computers", 1)
	if err != nil {
		return nil, err
	}
	difficulty, err := cmd.options.IntDefault("difficulty", 1)
	if err != nil {
		return nil, err
	}
	names := cmd.args
	if len(names) == 0 && ncomputers == 0 {
		names = []string{"player"}
	}
	sc.session.Reset()
	var players []*game.Player
	for _, n := range names {
		players = append(players, sc.session.NewHuman(n))
	}
	for i := 0; i < ncomputers; i++ {
		players = append(players, sc.session.NewComputer(difficulty))
	}
	g, err := sc.session.NewGame(players, nil)
	if err != nil {
		return nil, err
	}
	g.Start()
	sc.game = g
	return msg(sc.runComputers() + sc.game.ToDisplayText()), nil
}

// runComputers plays computer turns until a human is on turn or the game
// is over, and returns what they did.
func (sc *ShellController) runComputers() string {
	var out strings.Builder
	for !sc.game.IsGameOver() {
		p := sc.game.Players()[sc.game.PlayerOnTurn()]
		if !p.IsComputer() {
			break
		}
		m, err := sc.game.PlayComputerTurn(context.Background())
		if err != nil {
			log.Err(err).Str("player", p.Name).Msg("computer-turn-failed")
			out.WriteString(fmt.Sprintf("%s could not move: %v\n", p.Name, err))
			break
		}
		out.WriteString(fmt.Sprintf("%s: %s\n", p.Name, m.ShortDescription()))
	}
	return out.String()
}

func (sc *ShellController) afterMove(m *move.Move) (*Response, error) {
	var out strings.Builder
	if m.Action() == move.MoveTypePlay {
		out.WriteString(fmt.Sprintf("%s for %d\n", m.ShortDescription(), m.Score()))
	}
	out.WriteString(sc.runComputers())
	out.WriteString(sc.game.ToDisplayText())
	if sc.game.IsGameOver() {
		out.WriteString("\n" + finalScores(sc.game))
	}
	return msg(out.String()), nil
}

func finalScores(g *game.Game) string {
	players := append([]*game.Player(nil), g.Players()...)
	sort.SliceStable(players, func(i, j int) bool { return players[i].Score() > players[j].Score() })
	var out strings.Builder
	out.WriteString("Final scores:\n")
	for _, p := range players {
		out.WriteString(fmt.Sprintf("  %-20s %d\n", p.Name, p.Score()))
	}
	return out.String()
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

// parseSquare reads a square like 8H or H8.
func parseSquare(s string) (board.Position, error) {
	row, col, _, err := move.FromBoardGameCoords(s)
	if err != nil {
		return board.Position{}, err
	}
	return board.Position{Row: row, Col: col}, nil
}

// parseTiles splits rack tiles like "CHAS?" into symbols. A ? is a
// wildcard.
func parseTiles(s string, lt *tilemapping.LetterTable) []string {
	s = strings.ReplaceAll(s, "?", tilemapping.WildcardToken)
	return lt.Tokenize(s)
}

// parseWord splits a word to play into symbols. Lower-case letters are
// played with a wildcard.
func parseWord(word string, lt *tilemapping.LetterTable) ([]string, []int) {
	symbols := lt.Tokenize(word)
	runes := []rune(word)
	var wildcards []int
	pos := 0
	for i, sym := range symbols {
		n := len([]rune(sym))
		if pos+n <= len(runes) && strings.IndexFunc(string(runes[pos:pos+n]), unicode.IsLower) >= 0 {
			wildcards = append(wildcards, i)
		}
		pos += n
	}
	return symbols, wildcards
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: place <square> <tile>")
	}
	pos, err := parseSquare(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sym := cmd.args[1]
	p := move.Placement{Pos: pos, Symbol: tilemapping.NormalizeSymbol(sym)}
	switch {
	case sym == "?" || sym == tilemapping.WildcardToken:
		p.Symbol = tilemapping.WildcardToken
		p.Wildcard = true
	case p.Symbol != sym:
		p.Wildcard = true
	}
	if err := sc.game.PlacePending(sc.game.PlayerOnTurn(), p); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) retract(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: retract <square>")
	}
	pos, err := parseSquare(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.game.RetractPending(pos); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) clearPending(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	sc.game.ClearPending()
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) commit(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	m, err := sc.game.TakeTurn(sc.game.PlayerOnTurn(), nil)
	if err != nil {
		return nil, err
	}
	return sc.afterMove(m)
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: play <coords> <word>, e.g. play 8D CHARRO")
	}
	row, col, dir, err := move.FromBoardGameCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	word, wildcards := parseWord(cmd.args[1], sc.game.Lexicon().Table())
	start := board.Position{Row: row, Col: col}
	proposal := &move.Proposal{
		Word:      word,
		Anchor:    start.Step(dir, len(word)-1),
		Direction: dir,
		Wildcards: wildcards,
	}
	// Provisional tiles are replaced by the play, not played through.
	b := sc.game.Board()
	b.RetractAll()
	placements, err := proposal.Placements(b)
	if err != nil {
		return nil, err
	}
	m, err := sc.game.TakeTurn(sc.game.PlayerOnTurn(), placements)
	if err != nil {
		return nil, err
	}
	return sc.afterMove(m)
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	m, err := sc.game.Pass(sc.game.PlayerOnTurn())
	if err != nil {
		return nil, err
	}
	return sc.afterMove(m)
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: exchange <tiles>")
	}
	tiles := parseTiles(cmd.args[0], sc.game.Lexicon().Table())
	m, err := sc.game.Exchange(sc.game.PlayerOnTurn(), tiles)
	if err != nil {
		return nil, err
	}
	return sc.afterMove(m)
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	m, err := sc.game.PlayComputerTurn(context.Background())
	if err != nil {
		return nil, err
	}
	return sc.afterMove(m)
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	onturn := sc.game.PlayerOnTurn()
	if len(cmd.args) == 0 {
		return msg(sc.game.RackFor(onturn).String()), nil
	}
	tiles := parseTiles(cmd.args[0], sc.game.Lexicon().Table())
	if err := sc.game.SetRackFor(onturn, tiles); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if err := sc.ensureSession(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: check <word> [<word>...]")
	}
	lex := sc.session.Lexicon()
	var out strings.Builder
	for _, w := range cmd.args {
		verdict := "not valid"
		if lex.HasWord(w) {
			verdict = "valid"
		}
		out.WriteString(fmt.Sprintf("%s is %s in %s\n", strings.ToUpper(w), verdict, lex.Name()))
	}
	return msg(strings.TrimSuffix(out.String(), "\n")), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <file>")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := game.EncodeSnapshot(f, sc.game.Snapshot()); err != nil {
		return nil, err
	}
	return msg("saved game to " + cmd.args[0]), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <file>")
	}
	if err := sc.ensureSession(); err != nil {
		return nil, err
	}
	f, err := os.Open(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	snap, err := game.DecodeSnapshot(f)
	if err != nil {
		return nil, err
	}
	// Restore replaces the players.
	g, err := sc.session.NewGame([]*game.Player{game.NewHuman("placeholder")}, nil)
	if err != nil {
		return nil, err
	}
	if err := g.Restore(snap); err != nil {
		return nil, err
	}
	sc.game = g
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) gameID(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.Uid()), nil
}

func (sc *ShellController) showConfig(cmd *shellcmd) (*Response, error) {
	settings := sc.config.SanitizedSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out strings.Builder
	out.WriteString("Settings:\n")
	for _, k := range keys {
		out.WriteString(fmt.Sprintf("  %s: %v\n", k, settings[k]))
	}
	return msg(out.String()), nil
}
