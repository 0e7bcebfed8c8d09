// Package testhelpers has fixtures shared by tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/domino14/wordboard/config"
	"github.com/domino14/wordboard/tilemapping"
)

// SpanishAlphabet is a small Spanish-style distribution with digraph
// tiles and two wildcards, 100 tiles in all.
const SpanishAlphabet = `A 12 1
B 2 3
C 4 3
CH 1 5
D 5 2
E 12 1
F 1 4
G 2 2
H 2 4
I 6 1
J 1 8
L 4 1
LL 1 8
M 2 3
N 5 1
Ñ 1 8
O 9 1
P 2 3
Q 1 5
R 5 1
RR 1 8
S 6 1
T 4 1
U 5 1
V 1 4
X 1 8
Y 1 4
Z 1 10
# 2 0
`

// SpanishWords is a short word list over SpanishAlphabet.
var SpanishWords = []string{
	"CASA", "CASAS", "CAS", "COSA", "COSAS", "OSA", "OSO", "SAL", "SOL",
	"AS", "AL", "LA", "LAS", "LO", "LOS", "SE", "ES", "ESA", "ESO", "EL",
	"MESA", "MASA", "PASO", "PESO", "ROSA", "ROCA", "CHARRO", "CALLE",
	"CARRO", "PERRO", "AÑO", "AÑOS", "SI", "NO", "YA", "YO", "TU", "TE",
	"DE", "DA", "OCHO", "CHE", "LLAMA", "ALA", "ALAS", "ORO", "OSAS",
	"CASO", "COSO", "SACO", "SECO",
}

var DefaultConfig = config.DefaultConfig()

func SpanishTable() *tilemapping.LetterTable {
	lt, err := tilemapping.ScanLetterTable(strings.NewReader(SpanishAlphabet))
	if err != nil {
		panic(err)
	}
	return lt
}

// WriteLexicon writes an alphabet and word list under a temporary
// directory in the layout the lexicon loader expects and returns the
// directory.
func WriteLexicon(t *testing.T, name, alphabet string, words []string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, name+".alph"), []byte(alphabet), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, name+".txt"),
		[]byte(strings.Join(words, "\n")+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return dir
}
