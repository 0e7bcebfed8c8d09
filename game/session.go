package game

import (
	"lukechampine.com/frand"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/config"
	"github.com/domino14/wordboard/lexicon"
)

// ComputerNamePrefix is what computer players are called, followed by a
// number.
const ComputerNamePrefix = "Computer"

// A Session creates players and games that share a configuration and a
// lexicon. Computer player numbering starts over with each session.
type Session struct {
	cfg      *config.Config
	rules    Rules
	lexicon  lexicon.Lexicon
	proposer MoveProposer
	names    *NameGenerator
}

// NewSession reads the rules from cfg. A nil lexicon is loaded by name
// from the configured default lexicon.
func NewSession(cfg *config.Config, lex lexicon.Lexicon, proposer MoveProposer) (*Session, error) {
	rules, err := RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if lex == nil {
		dict, err := lexicon.Get(cfg, cfg.GetString(config.ConfigDefaultLexicon))
		if err != nil {
			return nil, err
		}
		lex = dict
	}
	return &Session{
		cfg:      cfg,
		rules:    rules,
		lexicon:  lex,
		proposer: proposer,
		names:    NewNameGenerator(ComputerNamePrefix),
	}, nil
}

func (s *Session) Rules() Rules {
	return s.rules
}

func (s *Session) Lexicon() lexicon.Lexicon {
	return s.lexicon
}

func (s *Session) NewHuman(name string) *Player {
	return NewHuman(name)
}

// NewComputer creates the next numbered computer player.
func (s *Session) NewComputer(difficulty int) *Player {
	return NewComputer(s.names.Next(), difficulty)
}

// NewGame creates a game on a fresh board with this session's rules,
// lexicon and proposer. The game still needs to be started.
func (s *Session) NewGame(players []*Player, randSource *frand.RNG) (*Game, error) {
	b, err := board.NewBoard(s.rules.BoardSize)
	if err != nil {
		return nil, err
	}
	g, err := NewGame(s.rules, s.lexicon, b, players, randSource)
	if err != nil {
		return nil, err
	}
	g.SetProposer(s.proposer)
	return g, nil
}

// Reset starts computer player numbering over.
func (s *Session) Reset() {
	s.names.Reset()
}
