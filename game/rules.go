package game

import (
	"fmt"

	"github.com/domino14/wordboard/config"
	"github.com/domino14/wordboard/mechanics"
)

const (
	DefaultRackSize      = 7
	DefaultBingoBonus    = 50
	DefaultPassRotations = 2
)

// Rules are the numbers a game is played with.
type Rules struct {
	BoardSize  int
	RackSize   int
	BingoBonus int
	// PassRotations is how many full rounds of passes and exchanges end
	// the game.
	PassRotations  int
	WildcardPolicy mechanics.WildcardPolicy
}

func DefaultRules() Rules {
	return Rules{
		BoardSize:      15,
		RackSize:       DefaultRackSize,
		BingoBonus:     DefaultBingoBonus,
		PassRotations:  DefaultPassRotations,
		WildcardPolicy: mechanics.WildcardStrict,
	}
}

// RulesFromConfig reads the rules out of cfg.
func RulesFromConfig(cfg *config.Config) (Rules, error) {
	policy, err := mechanics.ParseWildcardPolicy(cfg.GetString(config.ConfigWildcardPolicy))
	if err != nil {
		return Rules{}, err
	}
	r := Rules{
		BoardSize:      cfg.GetInt(config.ConfigBoardSize),
		RackSize:       cfg.GetInt(config.ConfigRackSize),
		BingoBonus:     cfg.GetInt(config.ConfigBingoBonus),
		PassRotations:  cfg.GetInt(config.ConfigPassRotations),
		WildcardPolicy: policy,
	}
	return r, r.validate()
}

func (r Rules) validate() error {
	if r.BoardSize < 1 {
		return fmt.Errorf("board size must be positive, got %d", r.BoardSize)
	}
	if r.RackSize < 1 {
		return fmt.Errorf("rack size must be positive, got %d", r.RackSize)
	}
	if r.PassRotations < 1 {
		return fmt.Errorf("pass rotations must be positive, got %d", r.PassRotations)
	}
	return nil
}
