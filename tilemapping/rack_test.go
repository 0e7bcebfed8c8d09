package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestRackTiles(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	rack := RackFromSymbols([]string{"S", "#", "CH", "A", "a"}, lt)
	is.Equal(rack.NumTiles(), 5)
	is.Equal(rack.Tiles(), []string{"A", "A", "CH", "S", "#"})
	is.Equal(rack.String(), "AACHS#")
	is.Equal(rack.Count("A"), 2)
}

func TestRackTake(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	rack := RackFromSymbols([]string{"A", "A", "LL"}, lt)
	is.NoErr(rack.Take("A"))
	is.Equal(rack.Count("A"), 1)
	is.NoErr(rack.Take("ll"))
	is.True(!rack.Has("LL"))
	is.True(rack.Take("LL") != nil)
	is.Equal(rack.NumTiles(), 1)
}

func TestRackTakeAllIsAtomic(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	rack := RackFromSymbols([]string{"A", "C", "S"}, lt)
	err := rack.TakeAll([]string{"A", "A"})
	is.True(err != nil)
	is.Equal(rack.NumTiles(), 3)
	is.NoErr(rack.TakeAll([]string{"S", "A"}))
	is.Equal(rack.Tiles(), []string{"C"})
}

func TestRackScoreAndCopy(t *testing.T) {
	is := is.New(t)
	lt := spanishTable(t)
	rack := RackFromSymbols([]string{"CH", "#", "E"}, lt)
	is.Equal(rack.Score(), 6)

	cp := rack.Copy()
	is.NoErr(cp.Take("CH"))
	is.True(rack.Has("CH"))
	is.Equal(cp.Score(), 1)
}
