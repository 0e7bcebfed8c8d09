package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordboard/config"
	"github.com/domino14/wordboard/testhelpers"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"new JD -computers 2",
			&shellcmd{"new", []string{"JD"}, CmdOptions{"computers": {"2"}}},
			nil},
		{"play 8D CHARRO",
			&shellcmd{"play", []string{"8D", "CHARRO"}, CmdOptions{}},
			nil},
		{`new "José Arcadio" cesar -difficulty 3 `,
			&shellcmd{"new",
				[]string{"José Arcadio", "cesar"},
				CmdOptions{"difficulty": {"3"}}},
			nil,
		},
		{"new JD -computers",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestParseWord(t *testing.T) {
	is := is.New(t)
	lt := testhelpers.SpanishTable()
	word, wild := parseWord("CHaRRO", lt)
	is.Equal(word, []string{"CH", "A", "RR", "O"})
	is.Equal(wild, []int{1})

	word, wild = parseWord("chE", lt)
	is.Equal(word, []string{"CH", "E"})
	is.Equal(wild, []int{0})

	is.Equal(parseTiles("ch?a", lt), []string{"CH", "#", "A"})
}

// newTestController builds a controller without a terminal; handlers are
// called directly.
func newTestController(t *testing.T) *ShellController {
	t.Helper()
	dir := testhelpers.WriteLexicon(t, "SHELLTEST", testhelpers.SpanishAlphabet,
		testhelpers.SpanishWords)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, dir)
	cfg.Set(config.ConfigDefaultLexicon, "SHELLTEST")
	return &ShellController{config: cfg}
}

func run(t *testing.T, sc *ShellController, line string) (*Response, error) {
	t.Helper()
	return sc.standardModeSwitch(line)
}

func TestShellGame(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	_, err := run(t, sc, "show")
	is.Equal(err, errNoGame)

	resp, err := run(t, sc, "new JD -computers 0")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "JD"))

	resp, err = run(t, sc, "rack CASAEOL")
	is.NoErr(err)
	resp, err = run(t, sc, "rack")
	is.NoErr(err)
	is.Equal(resp.message, sc.game.RackFor(0).String())

	resp, err = run(t, sc, "play 8G CASA")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "8G CASA for 12"))
	is.Equal(sc.game.PointsFor(0), 12)

	// one player, so it's JD's turn again
	_, err = run(t, sc, "rack SOAEOLX")
	is.NoErr(err)
	_, err = run(t, sc, "place 7I O")
	is.NoErr(err)
	_, err = run(t, sc, "place 9I O")
	is.NoErr(err)
	is.Equal(len(sc.game.Pending()), 2)
	_, err = run(t, sc, "retract 9I")
	is.NoErr(err)
	_, err = run(t, sc, "place 9I O")
	is.NoErr(err)
	resp, err = run(t, sc, "commit")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "I7 OSO for 5"))
}

func TestShellPlayOverPendingTiles(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := run(t, sc, "new JD -computers 0")
	is.NoErr(err)
	_, err = run(t, sc, "rack CASAEOL")
	is.NoErr(err)
	_, err = run(t, sc, "place 8H A")
	is.NoErr(err)

	resp, err := run(t, sc, "play 8G CASA")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "8G CASA for 12"))
	is.Equal(len(sc.game.Pending()), 0)
	is.Equal(sc.game.Board().TilesPlayed(), 4)
}

func TestShellComputersPass(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	resp, err := run(t, sc, "new JD -computers 1")
	is.NoErr(err)
	is.Equal(sc.game.NumPlayers(), 2)
	is.Equal(sc.game.Players()[1].Name, "Computer 1")
	// the computer may have gone first
	is.Equal(sc.game.Players()[sc.game.PlayerOnTurn()].Name, "JD")

	resp, err = run(t, sc, "pass")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Computer 1: (Pass)"))
	is.Equal(sc.game.Players()[sc.game.PlayerOnTurn()].Name, "JD")
}

func TestShellSaveLoad(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := run(t, sc, "new JD cesar -computers 0")
	is.NoErr(err)
	onturn := sc.game.PlayerOnTurn()
	_, err = run(t, sc, "rack CASAEOL")
	is.NoErr(err)
	_, err = run(t, sc, "play 8G CASA")
	is.NoErr(err)

	resp, err := run(t, sc, "gid")
	is.NoErr(err)
	gid := resp.message
	is.Equal(len(gid), 36)

	file := filepath.Join(t.TempDir(), "game.yaml")
	_, err = run(t, sc, "save "+file)
	is.NoErr(err)
	before := sc.game.Board().ToDisplayText()

	sc.game = nil
	_, err = run(t, sc, "load "+file)
	is.NoErr(err)
	is.Equal(sc.game.Board().ToDisplayText(), before)
	is.Equal(sc.game.PointsFor(onturn), 12)
	resp, err = run(t, sc, "gid")
	is.NoErr(err)
	is.Equal(resp.message, gid)
}

func TestShellErrors(t *testing.T) {
	sc := newTestController(t)
	_, err := run(t, sc, "new JD -computers 0")
	assert.NoError(t, err)
	_, err = run(t, sc, "rack CASAEOL")
	assert.NoError(t, err)

	for _, line := range []string{
		"play 8G",
		"play 99 CASA",
		"play 8G CSAA",
		"place 8H",
		"retract 8H",
		"exchange",
		"frobnicate",
		"help nosuchtopic",
	} {
		_, err := run(t, sc, line)
		assert.Error(t, err, line)
	}
	assert.Equal(t, 0, sc.game.Board().TilesPlayed())
}

func TestShellCheckAndHelp(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	resp, err := run(t, sc, "check charro xyz")
	is.NoErr(err)
	is.Equal(resp.message, "CHARRO is valid in SHELLTEST\nXYZ is not valid in SHELLTEST")

	resp, err = run(t, sc, "help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "commit"))
	resp, err = run(t, sc, "help play")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "wildcard"))

	_, err = run(t, sc, "exit")
	is.Equal(err, errQuit)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(&ShellController{})
	matches, n := c.Do([]rune("pla"), 3)
	is.Equal(n, 3)
	is.Equal(matches, [][]rune{[]rune("y"), []rune("ce")})

	line := []rune("new JD -com")
	matches, _ = c.Do(line, len(line))
	is.Equal(matches, [][]rune{[]rune("puters")})
}
