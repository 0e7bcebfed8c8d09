package mechanics

import (
	"fmt"
	"strings"
)

// WildcardPolicy decides what happens to a word that holds a wildcard
// tile with no letter chosen for it.
type WildcardPolicy uint8

const (
	// WildcardStrict rejects the play; every wildcard must stand for a
	// letter and the resulting words are checked normally.
	WildcardStrict WildcardPolicy = iota
	// WildcardLenient accepts any word containing an unresolved wildcard
	// without looking it up.
	WildcardLenient
)

func (p WildcardPolicy) String() string {
	if p == WildcardLenient {
		return "lenient"
	}
	return "strict"
}

func ParseWildcardPolicy(s string) (WildcardPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return WildcardStrict, nil
	case "lenient":
		return WildcardLenient, nil
	}
	return WildcardStrict, fmt.Errorf("unknown wildcard policy %q", s)
}
