package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestBagDrawsWholeDistribution(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(1))
	is.Equal(bag.TilesRemaining(), 60)

	drawn := map[string]uint{}
	for i := 0; i < 60; i++ {
		tiles, err := bag.Draw(1)
		is.NoErr(err)
		drawn[tiles[0]]++
	}
	for _, e := range lt.Entries() {
		is.Equal(drawn[e.Symbol], e.Frequency)
	}
	_, err := bag.Draw(1)
	is.True(errors.Is(err, ErrInsufficientBagSupply))
}

func TestBagSeededIsDeterministic(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	a, err := NewBag(lt, SeededRand(42)).Draw(7)
	is.NoErr(err)
	b, err := NewBag(lt, SeededRand(42)).Draw(7)
	is.NoErr(err)
	is.Equal(a, b)
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(3))
	for i := 0; i < 8; i++ {
		tiles, err := bag.Draw(7)
		is.NoErr(err)
		is.Equal(len(tiles), 7)
	}
	is.Equal(bag.TilesRemaining(), 4)
	is.Equal(len(bag.DrawAtMost(7)), 4)
	is.Equal(len(bag.DrawAtMost(7)), 0)
	is.True(bag.Empty())
}

func TestExchange(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(4))
	letters, err := bag.Draw(7)
	is.NoErr(err)
	newLetters, err := bag.Exchange(letters[:5])
	is.NoErr(err)
	is.Equal(len(newLetters), 5)
	is.Equal(bag.TilesRemaining(), 53)
}

func TestExchangeInsufficientSupply(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(5))
	bag.DrawAtMost(57)
	before := bag.Counts()

	_, err := bag.Exchange([]string{"A", "E", "S", "O"})
	is.True(errors.Is(err, ErrInsufficientBagSupply))
	is.Equal(bag.TilesRemaining(), 3)
	is.Equal(bag.Counts(), before)
}

func TestRemoveTiles(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(6))
	is.NoErr(bag.RemoveTiles([]string{"CH", "A", "A"}))
	is.Equal(bag.TilesRemaining(), 57)
	is.Equal(bag.Counts()["A"], 10)
	_, ok := bag.Counts()["CH"]
	is.True(!ok)

	// all-or-nothing
	err := bag.RemoveTiles([]string{"E", "CH"})
	is.True(err != nil)
	is.Equal(bag.TilesRemaining(), 57)
	is.Equal(bag.Counts()["E"], 12)
}

func TestBagCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	bag := NewBag(lt, SeededRand(7))
	cp := bag.Copy(SeededRand(8))
	_, err := cp.Draw(10)
	is.NoErr(err)
	is.Equal(bag.TilesRemaining(), 60)
	is.Equal(cp.TilesRemaining(), 50)
}
