package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

const spanishAlphabet = `A 12 1
B 2 3
C 4 3
CH 1 5
E 12 1
L 4 1
LL 1 8
O 9 1
R 5 1
RR 1 8
S 6 1
Ñ 1 8
# 2 0
`

func spanishTable(t *testing.T) *LetterTable {
	lt, err := ScanLetterTable(strings.NewReader(spanishAlphabet))
	if err != nil {
		t.Fatal(err)
	}
	return lt
}

func TestScanLetterTable(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	is.Equal(len(lt.Symbols()), 13)
	is.Equal(lt.PointsOf("CH"), uint(5))
	is.Equal(lt.PointsOf("ch"), uint(5))
	is.Equal(lt.FrequencyOf("A"), uint(12))
	is.Equal(lt.NumTiles(), uint(60))
}

func TestScanLetterTableErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only blanks", "\n   \n"},
		{"two fields", "A 9 1\n#2 0\n"},
		{"four fields", "A 9 1 1\n"},
		{"negative frequency", "A -9 1\n"},
		{"negative points", "A 9 -1\n"},
		{"non-numeric", "A nine 1\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lt, err := ScanLetterTable(strings.NewReader(tc.input))
			assert.Nil(t, lt)
			var fe *FormatError
			assert.True(t, errors.As(err, &fe), "expected a FormatError, got %v", err)
		})
	}
}

func TestFormatErrorLine(t *testing.T) {
	is := is.New(t)
	_, err := ScanLetterTable(strings.NewReader("A 9 1\nE 12 1\nX y 8\n"))
	var fe *FormatError
	is.True(errors.As(err, &fe))
	is.Equal(fe.Line, 3)
	is.Equal(fe.Text, "X y 8")
}

func TestDuplicateLastWins(t *testing.T) {
	is := is.New(t)
	lt, err := NewLetterTable([]LetterEntry{
		{"A", 9, 1}, {"B", 2, 3}, {"A", 3, 7},
	})
	is.NoErr(err)
	is.Equal(lt.PointsOf("A"), uint(7))
	is.Equal(lt.FrequencyOf("A"), uint(3))
	is.Equal(lt.Symbols(), []string{"A", "B"})
	is.Equal(lt.NumTiles(), uint(5))
}

func TestPointsOfIsTotal(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	is.Equal(lt.PointsOf(""), uint(0))
	is.Equal(lt.PointsOf("Z"), uint(0))
	is.Equal(lt.PointsOf("#"), uint(0))
	var nilTable *LetterTable
	is.Equal(nilTable.PointsOf("A"), uint(0))
}

func TestIsWildcard(t *testing.T) {
	is := is.New(t)
	lt, err := NewLetterTable([]LetterEntry{
		{"A", 9, 1}, {"E", 12, 1}, {"#", 2, 5}, {"Q", 1, 0},
	})
	is.NoErr(err)
	is.True(lt.IsWildcard("#"))
	is.True(!lt.IsWildcard("A"))
	// zero points does not make a wildcard
	is.True(!lt.IsWildcard("Q"))
	// the wildcard is always worth nothing
	is.Equal(lt.PointsOf("#"), uint(0))
}

func TestAlphabetCharacters(t *testing.T) {
	is := is.New(t)
	lt, err := NewLetterTable([]LetterEntry{{"CH", 1, 5}, {"A", 1, 1}})
	is.NoErr(err)
	chars := lt.AlphabetCharacters()
	is.Equal(len(chars), 3)
	for _, r := range "CHA" {
		_, ok := chars[r]
		is.True(ok)
	}
	is.True(lt.ValidSpelling("chaca"))
	is.True(!lt.ValidSpelling("CHAS"))
}

func TestTokenize(t *testing.T) {
	lt := spanishTable(t)
	for _, tc := range []struct {
		word     string
		expected []string
	}{
		{"CHARRO", []string{"CH", "A", "RR", "O"}},
		{"calle", []string{"C", "A", "LL", "E"}},
		{"AÑO", []string{"A", "Ñ", "O"}},
		{"CASA", []string{"C", "A", "S", "A"}},
		// X is not in the alphabet and stands alone
		{"EXO", []string{"E", "X", "O"}},
		{"", []string{}},
	} {
		assert.Equal(t, tc.expected, lt.Tokenize(tc.word), tc.word)
	}
}

func TestWordScore(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	is.Equal(lt.WordScore(lt.Tokenize("CHARRO")), uint(15))
	is.Equal(lt.WordScore([]string{"#", "A"}), uint(1))
}
