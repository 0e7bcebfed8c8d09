package game

import (
	"fmt"

	"github.com/domino14/wordboard/tilemapping"
)

// PlayerKind is either Human or Computer.
type PlayerKind interface {
	isPlayerKind()
}

type Human struct{}

// Computer players get their moves from a MoveProposer.
type Computer struct {
	Difficulty int
}

func (Human) isPlayerKind()    {}
func (Computer) isPlayerKind() {}

type Player struct {
	Name string
	Kind PlayerKind

	rack              *tilemapping.Rack
	score             int
	bingos            int
	consecutivePasses int
}

func NewHuman(name string) *Player {
	return &Player{Name: name, Kind: Human{}}
}

func NewComputer(name string, difficulty int) *Player {
	return &Player{Name: name, Kind: Computer{Difficulty: difficulty}}
}

func (p *Player) IsComputer() bool {
	_, ok := p.Kind.(Computer)
	return ok
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) Bingos() int {
	return p.bingos
}

// ConsecutivePasses counts the passes and exchanges since the player's
// last play.
func (p *Player) ConsecutivePasses() int {
	return p.consecutivePasses
}

// Rack returns a copy of the player's rack.
func (p *Player) Rack() *tilemapping.Rack {
	if p.rack == nil {
		return nil
	}
	return p.rack.Copy()
}

func (p *Player) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Name, p.rack.String(), p.score)
}

// NameGenerator hands out names for computer players: "Computer 1",
// "Computer 2" and so on.
type NameGenerator struct {
	prefix string
	next   int
}

func NewNameGenerator(prefix string) *NameGenerator {
	return &NameGenerator{prefix: prefix, next: 1}
}

func (g *NameGenerator) Next() string {
	name := fmt.Sprintf("%s %d", g.prefix, g.next)
	g.next++
	return name
}

func (g *NameGenerator) Reset() {
	g.next = 1
}
