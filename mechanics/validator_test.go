package mechanics

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordboard/board"
	"github.com/domino14/wordboard/lexicon"
	"github.com/domino14/wordboard/move"
	"github.com/domino14/wordboard/testhelpers"
)

func newFixture(t *testing.T, policy WildcardPolicy) (*Validator, *board.Board) {
	t.Helper()
	lex := lexicon.New("ES", testhelpers.SpanishTable(), testhelpers.SpanishWords)
	b, err := board.NewBoard(15)
	if err != nil {
		t.Fatal(err)
	}
	return NewValidator(lex, policy), b
}

// withCasa puts a confirmed CASA on 8G.
func withCasa(t *testing.T, v *Validator, b *board.Board) {
	t.Helper()
	_, err := b.SetRow(7, []string{"", "", "", "", "", "", "C", "A", "S", "A"}, v.Lexicon.Table())
	if err != nil {
		t.Fatal(err)
	}
}

func pl(row, col int, sym string) move.Placement {
	return move.Placement{Pos: board.Position{Row: row, Col: col}, Symbol: sym}
}

func wordStrings(m *move.Move) []string {
	var ws []string
	for _, w := range m.Words() {
		ws = append(ws, w.String())
	}
	return ws
}

func TestFirstMove(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	m, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "A"), pl(7, 8, "S"), pl(7, 9, "A"),
	}, true)
	is.NoErr(err)
	is.Equal(m.WordString(), "CASA")
	is.Equal(m.Direction(), board.Horizontal)
	is.Equal(m.Anchor(), board.Position{Row: 7, Col: 9})
	is.Equal(m.BoardCoords(), "8G")
	// (3 + 1 + 1 + 1) doubled by the center square
	is.Equal(m.Score(), 12)
	// the tiles stay on the board, unconfirmed
	is.Equal(len(b.Tentative()), 4)
	is.True(!b.HasConfirmedTiles())
}

func TestFirstMoveVertical(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	m, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 7, "CH"), pl(8, 7, "E"),
	}, true)
	is.NoErr(err)
	is.Equal(m.Word(), []string{"CH", "E"})
	is.Equal(m.Direction(), board.Vertical)
	is.Equal(m.BoardCoords(), "H8")
	is.Equal(m.Score(), 12)
}

func TestStructuralErrors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		withCasa   bool
		firstMove  bool
		placements []move.Placement
		err        error
	}{
		{"nothing placed", false, true, nil, ErrEmptyPlacement},
		{"misses center", false, true,
			[]move.Placement{pl(0, 0, "C"), pl(0, 1, "A"), pl(0, 2, "S"), pl(0, 3, "A")},
			ErrCenterNotCovered},
		{"misaligned", false, true,
			[]move.Placement{pl(7, 7, "S"), pl(8, 8, "E")}, ErrMisalignedTiles},
		{"gap", false, true,
			[]move.Placement{pl(7, 7, "S"), pl(7, 9, "E")}, ErrDisconnectedWord},
		{"lone tile on center", false, true,
			[]move.Placement{pl(7, 7, "A")}, ErrIsolatedTile},
		{"not touching", true, false,
			[]move.Placement{pl(0, 0, "S"), pl(0, 1, "E")}, ErrNotAdjacentToBoard},
		{"gap not filled by the board", true, false,
			[]move.Placement{pl(6, 10, "S"), pl(9, 10, "E")}, ErrDisconnectedWord},
		{"lone tile away from board", true, false,
			[]move.Placement{pl(3, 3, "A")}, ErrIsolatedTile},
		{"on a confirmed tile", true, false,
			[]move.Placement{pl(7, 6, "S"), pl(8, 6, "E")}, board.ErrCellConfirmed},
		{"off the board", true, false,
			[]move.Placement{pl(7, 10, "S"), pl(7, 15, "E")}, board.ErrOutOfBounds},
		{"same square twice", true, false,
			[]move.Placement{pl(7, 10, "S"), pl(7, 10, "E")}, ErrInvalidPlacement},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, b := newFixture(t, WildcardStrict)
			if tc.withCasa {
				withCasa(t, v, b)
			}
			before := b.ToDisplayText()
			_, err := v.ValidatePlacements(b, tc.placements, tc.firstMove)
			assert.ErrorIs(t, err, tc.err)
			assert.Empty(t, b.Tentative())
			assert.Equal(t, before, b.ToDisplayText())
		})
	}
}

func TestErrorHierarchy(t *testing.T) {
	is := is.New(t)
	is.True(errors.Is(ErrIsolatedTile, ErrDisconnectedWord))
	is.True(errors.Is(ErrCenterNotCovered, ErrNotAdjacentToBoard))
	is.True(!errors.Is(ErrNotAdjacentToBoard, ErrCenterNotCovered))
}

func TestPlayThroughBoardTile(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	withCasa(t, v, b)
	m, err := v.ValidatePlacements(b, []move.Placement{pl(6, 8, "O"), pl(8, 8, "O")}, false)
	is.NoErr(err)
	is.Equal(wordStrings(m), []string{"OSO"})
	is.Equal(m.Direction(), board.Vertical)
	is.Equal(m.Start(), board.Position{Row: 6, Col: 8})
	is.Equal(m.Anchor(), board.Position{Row: 8, Col: 8})
	// both O's sit on double letter squares; S was already played
	is.Equal(m.Score(), 5)
	is.Equal(m.TilesPlayed(), 2)
}

func TestExtendWord(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	withCasa(t, v, b)
	m, err := v.ValidatePlacements(b, []move.Placement{pl(7, 10, "S")}, false)
	is.NoErr(err)
	is.Equal(wordStrings(m), []string{"CASAS"})
	is.Equal(m.Score(), 7)
}

func TestSingleTileDirection(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	withCasa(t, v, b)
	m, err := v.ValidatePlacements(b, []move.Placement{pl(8, 7, "L")}, false)
	is.NoErr(err)
	is.Equal(m.Direction(), board.Vertical)
	is.Equal(wordStrings(m), []string{"AL"})
	is.Equal(m.Score(), 2)

	// with a word possible both ways the horizontal one is the main word
	v, b = newFixture(t, WildcardStrict)
	withCasa(t, v, b)
	_, err = b.SetRow(8, []string{"", "", "", "", "", "", "", "", "E"}, v.Lexicon.Table())
	is.NoErr(err)
	m, err = v.ValidatePlacements(b, []move.Placement{pl(8, 9, "S")}, false)
	is.NoErr(err)
	is.Equal(m.Direction(), board.Horizontal)
	is.Equal(wordStrings(m), []string{"ES", "AS"})
	is.Equal(m.Score(), 4)
}

func TestUnknownWords(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	_, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "S"), pl(7, 8, "A"), pl(7, 9, "A"),
	}, true)
	var uwe *UnknownWordError
	is.True(errors.As(err, &uwe))
	is.Equal(uwe.Words, []string{"CSAA"})
	is.True(errors.Is(err, ErrUnknownWord))

	// OSO is fine but the cross words are not
	v, b = newFixture(t, WildcardStrict)
	withCasa(t, v, b)
	_, err = v.ValidatePlacements(b, []move.Placement{
		pl(8, 7, "O"), pl(8, 8, "S"), pl(8, 9, "O"),
	}, false)
	is.True(errors.As(err, &uwe))
	is.Equal(uwe.Words, []string{"AO", "SS", "AO"})
	is.Equal(len(b.Tentative()), 0)
}

func TestWildcardStrict(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	_, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "A"), pl(7, 8, "S"), pl(7, 9, "#"),
	}, true)
	is.True(errors.Is(err, ErrUnresolvedWildcard))
	is.Equal(len(b.Tentative()), 0)

	resolved := pl(7, 9, "A")
	resolved.Wildcard = true
	m, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "A"), pl(7, 8, "S"), resolved,
	}, true)
	is.NoErr(err)
	is.Equal(m.WordString(), "CASA")
	// the wildcard scores nothing
	is.Equal(m.Score(), 10)
	is.Equal(m.RackTiles(), []string{"C", "A", "S", "#"})

	// a resolved wildcard is still looked up
	b.RetractAll()
	bad := pl(7, 9, "E")
	bad.Wildcard = true
	_, err = v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "A"), pl(7, 8, "S"), bad,
	}, true)
	is.True(errors.Is(err, ErrUnknownWord))
}

func TestWildcardLenient(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardLenient)
	m, err := v.ValidatePlacements(b, []move.Placement{
		pl(7, 6, "C"), pl(7, 7, "A"), pl(7, 8, "S"), pl(7, 9, "#"),
	}, true)
	is.NoErr(err)
	is.Equal(m.WordString(), "CAS#")
	is.Equal(m.Score(), 10)
}

func TestValidateLeavesBoardAlone(t *testing.T) {
	is := is.New(t)
	v, b := newFixture(t, WildcardStrict)
	lt := v.Lexicon.Table()
	for i, s := range []string{"O", "S", "O"} {
		p := board.Position{Row: 7, Col: 6 + i}
		is.NoErr(b.Place(p, board.LetterPlacement{Symbol: s, Points: int(lt.PointsOf(s))}))
	}
	m, err := v.Validate(b, true)
	is.NoErr(err)
	is.Equal(m.WordString(), "OSO")
	is.Equal(len(b.Tentative()), 3)

	_, err = v.ValidatePlacements(b, []move.Placement{pl(8, 7, "A")}, true)
	is.True(errors.Is(err, ErrPlacementsPending))
}

func TestAcceptAllLexicon(t *testing.T) {
	is := is.New(t)
	_, b := newFixture(t, WildcardStrict)
	v := NewValidator(lexicon.AcceptAll{LetterTable: testhelpers.SpanishTable()}, WildcardStrict)
	m, err := v.ValidatePlacements(b, []move.Placement{pl(7, 7, "Z"), pl(7, 8, "Z")}, true)
	is.NoErr(err)
	is.Equal(m.Score(), 40)
}

func TestParseWildcardPolicy(t *testing.T) {
	is := is.New(t)
	p, err := ParseWildcardPolicy("Lenient")
	is.NoErr(err)
	is.Equal(p, WildcardLenient)
	p, err = ParseWildcardPolicy("")
	is.NoErr(err)
	is.Equal(p, WildcardStrict)
	_, err = ParseWildcardPolicy("sloppy")
	is.True(err != nil)
}
