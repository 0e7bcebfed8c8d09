package game

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/tilemapping"
)

// CellState is a tile on the board.
type CellState struct {
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	Symbol   string `yaml:"symbol"`
	Wildcard bool   `yaml:"wildcard,omitempty"`
}

type PlayerState struct {
	Name              string   `yaml:"name"`
	Computer          bool     `yaml:"computer,omitempty"`
	Difficulty        int      `yaml:"difficulty,omitempty"`
	Rack              []string `yaml:"rack"`
	Score             int      `yaml:"score"`
	Bingos            int      `yaml:"bingos,omitempty"`
	ConsecutivePasses int      `yaml:"consecutive_passes,omitempty"`
}

// Snapshot is the state of a game between turns. The bag is not stored;
// it holds whatever tiles are on neither the board nor a rack.
type Snapshot struct {
	ID        string        `yaml:"id"`
	Lexicon   string        `yaml:"lexicon"`
	BoardSize int           `yaml:"board_size"`
	Cells     []CellState   `yaml:"cells"`
	Players   []PlayerState `yaml:"players"`
	OnTurn    int           `yaml:"on_turn"`
	TurnNum   int           `yaml:"turn"`
	GameOver  bool          `yaml:"game_over,omitempty"`
}

// Snapshot saves the game. Provisional tiles are not saved.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:        g.uid,
		Lexicon:   g.lexicon.Name(),
		BoardSize: g.board.Dim(),
		OnTurn:    g.onturn,
		TurnNum:   g.turnnum,
		GameOver:  g.playing == GameOver,
	}
	for r := 0; r < g.board.Dim(); r++ {
		for c := 0; c < g.board.Dim(); c++ {
			tile, ok := g.board.Tile(board.Position{Row: r, Col: c})
			if !ok || !tile.Confirmed {
				continue
			}
			s.Cells = append(s.Cells, CellState{Row: r, Col: c, Symbol: tile.Symbol,
				Wildcard: tile.Wildcard})
		}
	}
	for _, p := range g.players {
		ps := PlayerState{
			Name:              p.Name,
			Rack:              p.rack.Tiles(),
			Score:             p.score,
			Bingos:            p.bingos,
			ConsecutivePasses: p.consecutivePasses,
		}
		if k, ok := p.Kind.(Computer); ok {
			ps.Computer = true
			ps.Difficulty = k.Difficulty
		}
		s.Players = append(s.Players, ps)
	}
	return s
}

// Restore replaces the game's board, players and bag with the snapshot.
// Tiles on the board are taken as played without checking the words they
// form. If the snapshot does not fit the game the game is left as it was.
func (g *Game) Restore(s *Snapshot) error {
	if s.BoardSize != g.board.Dim() {
		return fmt.Errorf("%w: snapshot has %d, game has %d", ErrBoardSizeMismatch,
			s.BoardSize, g.board.Dim())
	}
	if len(s.Players) == 0 {
		return ErrNoPlayers
	}
	if s.OnTurn < 0 || s.OnTurn >= len(s.Players) {
		return fmt.Errorf("%w: on turn %d", ErrNoSuchPlayer, s.OnTurn)
	}
	if s.Lexicon != g.lexicon.Name() {
		log.Warn().Str("snapshot", s.Lexicon).Str("game", g.lexicon.Name()).
			Msg("restoring a snapshot made with another lexicon")
	}

	b, err := board.NewBoard(s.BoardSize)
	if err != nil {
		return err
	}
	bag := tilemapping.NewBag(g.table, g.randSource)
	var used []string
	for _, c := range s.Cells {
		pos := board.Position{Row: c.Row, Col: c.Col}
		lp := board.LetterPlacement{Symbol: tilemapping.NormalizeSymbol(c.Symbol), Wildcard: c.Wildcard}
		if c.Wildcard || lp.Symbol == tilemapping.WildcardToken {
			lp.Wildcard = true
			used = append(used, tilemapping.WildcardToken)
		} else {
			lp.Points = int(g.table.PointsOf(lp.Symbol))
			used = append(used, lp.Symbol)
		}
		if err := b.Place(pos, lp); err != nil {
			return fmt.Errorf("restoring %v: %w", pos, err)
		}
		if err := b.Confirm(pos); err != nil {
			return err
		}
	}
	players := make([]*Player, len(s.Players))
	for i, ps := range s.Players {
		p := NewHuman(ps.Name)
		if ps.Computer {
			p = NewComputer(ps.Name, ps.Difficulty)
		}
		p.rack = tilemapping.RackFromSymbols(ps.Rack, g.table)
		p.score = ps.Score
		p.bingos = ps.Bingos
		p.consecutivePasses = ps.ConsecutivePasses
		players[i] = p
		used = append(used, ps.Rack...)
	}
	if err := bag.RemoveTiles(used); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentTiles, err)
	}

	if s.ID != "" {
		g.uid = s.ID
	}
	g.board = b
	g.bag = bag
	g.players = players
	g.onturn = s.OnTurn
	g.turnnum = s.TurnNum
	g.pending = nil
	g.history = nil
	g.wentOut = -1
	g.adjusted = nil
	g.playing = AwaitingMove
	if s.GameOver {
		g.playing = GameOver
		// Scores in the snapshot already include these.
		g.rackAdjustments()
	}
	log.Debug().Int("cells", len(s.Cells)).Int("players", len(players)).
		Int("bag", bag.TilesRemaining()).Msg("restored-snapshot")
	return nil
}

// EncodeSnapshot writes s as YAML.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	s := &Snapshot{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}

// MarshalSnapshot is EncodeSnapshot into a byte slice.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
