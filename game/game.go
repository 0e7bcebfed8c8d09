// Package game runs a crossword game: whose turn it is, the racks, the
// bag, scores, and when the game ends. Whether a play is legal is decided
// by the mechanics package.
package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/lexicon"
	"github.com/domino14/wordboard/mechanics"
	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/tilemapping"
)

var (
	ErrNoPlayers          = errors.New("a game needs at least one player")
	ErrGameOver           = errors.New("the game is over")
	ErrNotYourTurn        = errors.New("it is not this player's turn")
	ErrTileNotOnRack      = errors.New("tile is not on the rack")
	ErrNothingToExchange  = errors.New("no tiles to exchange")
	ErrNotComputer        = errors.New("the player on turn is not a computer player")
	ErrNoSuchPlayer       = errors.New("no such player")
	ErrGameNotStarted     = errors.New("the game has not started")
	ErrBoardSizeMismatch  = errors.New("board size does not match")
	ErrInconsistentTiles  = errors.New("tiles on the board and racks do not fit the distribution")
	ErrNoPendingPlacement = errors.New("no provisional tile on that square")
)

type PlayState uint8

const (
	NotStarted PlayState = iota
	AwaitingMove
	GameOver
)

func (s PlayState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case AwaitingMove:
		return "awaiting-move"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// TurnRecord is one entry of the game's history.
type TurnRecord struct {
	Turn   int
	Player int
	Move   *move.Move
	// Cumulative is the player's score after the turn.
	Cumulative int
}

// Game is the internal game structure that controls the business logic
// of the game: drawing, making moves, keeping score. A Game doesn't care
// how it is played; human and computer players make their moves through
// the same calls.
type Game struct {
	uid        string
	rules      Rules
	lexicon    lexicon.Lexicon
	table      *tilemapping.LetterTable
	validator  *mechanics.Validator
	proposer   MoveProposer
	board      *board.Board
	bag        *tilemapping.Bag
	randSource *frand.RNG

	players  []*Player
	playing  PlayState
	onturn   int
	turnnum  int
	pending  []move.Placement
	history  []TurnRecord
	wentOut  int
	adjusted []int
}

// NewGame sets up a game on b. Call Start to deal the tiles. A nil
// randSource uses a randomly seeded one.
func NewGame(rules Rules, lex lexicon.Lexicon, b *board.Board, players []*Player,
	randSource *frand.RNG) (*Game, error) {

	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if lex == nil || lex.Table() == nil {
		return nil, errors.New("a game needs a lexicon with a letter table")
	}
	if randSource == nil {
		randSource = frand.New()
	}
	g := &Game{
		uid:        uuid.NewString(),
		rules:      rules,
		lexicon:    lex,
		table:      lex.Table(),
		validator:  mechanics.NewValidator(lex, rules.WildcardPolicy),
		board:      b,
		randSource: randSource,
		players:    players,
		wentOut:    -1,
	}
	g.bag = tilemapping.NewBag(g.table, randSource)
	for _, p := range players {
		p.rack = tilemapping.NewRack(g.table)
	}
	return g, nil
}

// SetProposer sets where computer players get their moves from.
func (g *Game) SetProposer(p MoveProposer) {
	g.proposer = p
}

// Start deals the racks and picks a random player to go first.
func (g *Game) Start() {
	g.StartWithFirstPlayer(g.randSource.Intn(len(g.players)))
}

// StartWithFirstPlayer deals the racks and gives the first turn to first.
func (g *Game) StartWithFirstPlayer(first int) {
	g.board.Clear()
	g.bag.Refill()
	for _, p := range g.players {
		p.rack.Clear()
		p.rack.Add(g.bag.DrawAtMost(g.rules.RackSize)...)
		p.score = 0
		p.bingos = 0
		p.consecutivePasses = 0
	}
	g.onturn = first % len(g.players)
	g.turnnum = 0
	g.pending = nil
	g.history = nil
	g.wentOut = -1
	g.adjusted = nil
	g.playing = AwaitingMove
	log.Debug().Str("gid", g.uid).Int("players", len(g.players)).Int("first", g.onturn).
		Int("bag", g.bag.TilesRemaining()).Msg("game-started")
}

func (g *Game) checkTurn(playerIdx int) error {
	switch g.playing {
	case NotStarted:
		return ErrGameNotStarted
	case GameOver:
		return ErrGameOver
	}
	if playerIdx < 0 || playerIdx >= len(g.players) {
		return fmt.Errorf("%w: %d", ErrNoSuchPlayer, playerIdx)
	}
	if playerIdx != g.onturn {
		return fmt.Errorf("%w: player %d, on turn %d", ErrNotYourTurn, playerIdx, g.onturn)
	}
	return nil
}

// rackCovers returns an error unless rack holds every tile of symbols,
// counting repeats.
func rackCovers(rack *tilemapping.Rack, symbols []string) error {
	for sym, n := range lo.CountValues(symbols) {
		if rack.Count(sym) < n {
			return fmt.Errorf("%w: %v", ErrTileNotOnRack, sym)
		}
	}
	return nil
}

// PlacePending puts a provisional tile for this turn on the board. The
// tile must still be on the player's rack once the other provisional
// tiles are accounted for.
func (g *Game) PlacePending(playerIdx int, p move.Placement) error {
	if err := g.checkTurn(playerIdx); err != nil {
		return err
	}
	p.Symbol = tilemapping.NormalizeSymbol(p.Symbol)
	if p.Symbol == tilemapping.WildcardToken {
		p.Wildcard = true
	}
	others := lo.Reject(g.pending, func(q move.Placement, _ int) bool { return q.Pos == p.Pos })
	tiles := append(lo.Map(others, func(q move.Placement, _ int) string { return q.RackSymbol() }),
		p.RackSymbol())
	if err := rackCovers(g.players[playerIdx].rack, tiles); err != nil {
		return err
	}
	lp := board.LetterPlacement{Symbol: p.Symbol, Wildcard: p.Wildcard}
	if !p.Wildcard {
		lp.Points = int(g.table.PointsOf(p.Symbol))
	}
	if err := g.board.Place(p.Pos, lp); err != nil {
		return err
	}
	g.pending = append(others, p)
	return nil
}

// RetractPending takes back a provisional tile.
func (g *Game) RetractPending(pos board.Position) error {
	idx := lo.IndexOf(lo.Map(g.pending, func(q move.Placement, _ int) board.Position { return q.Pos }), pos)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrNoPendingPlacement, pos)
	}
	if err := g.board.Retract(pos); err != nil {
		return err
	}
	g.pending = append(g.pending[:idx], g.pending[idx+1:]...)
	return nil
}

// ClearPending takes back all of this turn's provisional tiles.
func (g *Game) ClearPending() {
	g.board.RetractAll()
	g.pending = nil
}

func (g *Game) Pending() []move.Placement {
	return append([]move.Placement(nil), g.pending...)
}

// TakeTurn plays placements for the player. With no placements the
// provisional tiles placed with PlacePending are played. On a move error
// nothing changes and it is still the same player's turn.
func (g *Game) TakeTurn(playerIdx int, placements []move.Placement) (*move.Move, error) {
	if err := g.checkTurn(playerIdx); err != nil {
		return nil, err
	}
	usingPending := len(placements) == 0
	if usingPending {
		placements = g.Pending()
	}
	if len(placements) == 0 {
		return nil, mechanics.ErrEmptyPlacement
	}
	player := g.players[playerIdx]
	rackTiles := lo.Map(placements, func(p move.Placement, _ int) string {
		if tilemapping.NormalizeSymbol(p.Symbol) == tilemapping.WildcardToken {
			return tilemapping.WildcardToken
		}
		return p.RackSymbol()
	})
	if err := rackCovers(player.rack, rackTiles); err != nil {
		return nil, err
	}

	pending := g.pending
	g.board.RetractAll()
	m, err := g.validator.ValidatePlacements(g.board, placements, !g.board.HasConfirmedTiles())
	if err != nil {
		g.restorePending(pending)
		return nil, err
	}
	g.pending = nil
	g.board.ConfirmAll()
	if err := player.rack.TakeAll(m.RackTiles()); err != nil {
		// rackCovers already checked this.
		panic(err)
	}
	if m.TilesPlayed() == g.rules.RackSize {
		m.AddScore(g.rules.BingoBonus)
		player.bingos++
	}
	player.score += m.Score()
	player.consecutivePasses = 0
	player.rack.Add(g.bag.DrawAtMost(g.rules.RackSize - player.rack.NumTiles())...)

	log.Debug().Str("player", player.Name).Str("move", m.ShortDescription()).
		Int("score", m.Score()).Str("rack", player.rack.String()).Msg("played")
	g.endTurn(playerIdx, m)
	return m, nil
}

func (g *Game) restorePending(pending []move.Placement) {
	g.board.RetractAll()
	g.pending = nil
	for _, p := range pending {
		if err := g.PlacePending(g.onturn, p); err != nil {
			log.Err(err).Msg("could not restore provisional tile")
		}
	}
}

// Pass passes the player's turn.
func (g *Game) Pass(playerIdx int) (*move.Move, error) {
	if err := g.checkTurn(playerIdx); err != nil {
		return nil, err
	}
	g.ClearPending()
	m := move.NewPassMove()
	g.players[playerIdx].consecutivePasses++
	log.Debug().Str("player", g.players[playerIdx].Name).Msg("passed")
	g.endTurn(playerIdx, m)
	return m, nil
}

// Exchange swaps tiles from the player's rack for tiles from the bag. If
// the bag holds fewer tiles than are being exchanged nothing changes.
func (g *Game) Exchange(playerIdx int, symbols []string) (*move.Move, error) {
	if err := g.checkTurn(playerIdx); err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, ErrNothingToExchange
	}
	symbols = lo.Map(symbols, func(s string, _ int) string { return tilemapping.NormalizeSymbol(s) })
	player := g.players[playerIdx]
	if err := rackCovers(player.rack, symbols); err != nil {
		return nil, err
	}
	drawn, err := g.bag.Exchange(symbols)
	if err != nil {
		return nil, err
	}
	g.ClearPending()
	if err := player.rack.TakeAll(symbols); err != nil {
		panic(err)
	}
	player.rack.Add(drawn...)
	player.consecutivePasses++
	m := move.NewExchangeMove(symbols)
	log.Debug().Str("player", player.Name).Str("rack", player.rack.String()).Msg("exchanged")
	g.endTurn(playerIdx, m)
	return m, nil
}

// PlayComputerTurn asks the proposer for a move for the computer player on
// turn and plays it. With no proposer, no move found or an illegal
// proposal the computer passes.
func (g *Game) PlayComputerTurn(ctx context.Context) (*move.Move, error) {
	if err := g.checkTurn(g.onturn); err != nil {
		return nil, err
	}
	player := g.players[g.onturn]
	var difficulty int
	switch k := player.Kind.(type) {
	case Computer:
		difficulty = k.Difficulty
	default:
		return nil, fmt.Errorf("%w: %v", ErrNotComputer, player.Name)
	}
	if g.proposer == nil {
		return g.Pass(g.onturn)
	}
	g.ClearPending()
	proposal, err := g.proposer.Propose(ctx, g.lexicon, g.board.Copy(), player.rack.Copy(), difficulty)
	if errors.Is(err, ErrNoMove) {
		return g.Pass(g.onturn)
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if proposal == nil {
		return g.Pass(g.onturn)
	}
	placements, err := proposal.Placements(g.board)
	if err == nil {
		var m *move.Move
		m, err = g.TakeTurn(g.onturn, placements)
		if err == nil {
			return m, nil
		}
	}
	log.Warn().Err(err).Str("player", player.Name).Msg("proposed move was rejected; passing")
	return g.Pass(g.onturn)
}

func (g *Game) endTurn(playerIdx int, m *move.Move) {
	g.history = append(g.history, TurnRecord{
		Turn:       g.turnnum,
		Player:     playerIdx,
		Move:       m,
		Cumulative: g.players[playerIdx].score,
	})
	g.turnnum++
	if g.gameShouldEnd() {
		g.endGame()
		return
	}
	g.onturn = (g.onturn + 1) % len(g.players)
}

func (g *Game) gameShouldEnd() bool {
	if g.bag.Empty() && lo.SomeBy(g.players, func(p *Player) bool { return p.rack.Empty() }) {
		return true
	}
	return lo.EveryBy(g.players, func(p *Player) bool {
		return p.consecutivePasses >= g.rules.PassRotations
	})
}

// endGame takes each player's rack off their score. A player who went out
// also gets the value of everyone else's rack.
func (g *Game) endGame() {
	g.playing = GameOver
	g.rackAdjustments()
	for i, p := range g.players {
		p.score += g.adjusted[i]
	}
	log.Info().Int("went-out", g.wentOut).Ints("adjustments", g.adjusted).
		Ints("scores", lo.Map(g.players, func(p *Player, _ int) int { return p.score })).
		Msg("game-over")
}

// rackAdjustments works out the end-of-game adjustments from the racks
// left over. It does not touch the scores.
func (g *Game) rackAdjustments() {
	g.wentOut = lo.IndexOf(lo.Map(g.players, func(p *Player, _ int) bool {
		return p.rack.Empty()
	}), true)
	g.adjusted = make([]int, len(g.players))
	for i, p := range g.players {
		pts := p.rack.Score()
		g.adjusted[i] -= pts
		if g.wentOut >= 0 {
			g.adjusted[g.wentOut] += pts
		}
	}
}

// IsGameOver returns true once the bag is empty and a player has no
// tiles left, or every player has passed or exchanged for the configured
// number of rounds.
func (g *Game) IsGameOver() bool {
	return g.playing == GameOver
}

// Uid is a unique ID for the game, kept across snapshots.
func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Board returns a copy of the board, e.g. for previews.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag.Copy(nil)
}

func (g *Game) Lexicon() lexicon.Lexicon {
	return g.lexicon
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Players returns the game's own players, not copies. Their racks and
// scores change as the game goes on.
func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) History() []TurnRecord {
	return slices.Clone(g.history)
}

// EndAdjustments returns the rack adjustment applied to each player's
// score at the end of the game, and the player who went out (-1 if
// nobody did).
func (g *Game) EndAdjustments() ([]int, int) {
	return g.adjusted, g.wentOut
}

func (g *Game) RackFor(playerIdx int) *tilemapping.Rack {
	return g.players[playerIdx].Rack()
}

func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].score
}

// SetRackFor replaces a player's rack, returning the old tiles to the bag
// and drawing the new ones from it. It is meant for setting up positions.
func (g *Game) SetRackFor(playerIdx int, symbols []string) error {
	if playerIdx < 0 || playerIdx >= len(g.players) {
		return fmt.Errorf("%w: %d", ErrNoSuchPlayer, playerIdx)
	}
	rack := g.players[playerIdx].rack
	old := rack.Tiles()
	g.bag.PutBack(old)
	if err := g.bag.RemoveTiles(symbols); err != nil {
		if rerr := g.bag.RemoveTiles(old); rerr != nil {
			panic(rerr)
		}
		return err
	}
	rack.Clear()
	rack.Add(symbols...)
	return nil
}
