package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordboard/cache"
	"github.com/domino14/wordboard/config"
)

const (
	AlphabetExtension = ".alph"
	WordListExtension = ".txt"
)

func cacheKey(name string) string {
	return "lexicon:" + name
}

func loadFromPath(cfg *config.Config, key string) (any, error) {
	name := key[len("lexicon:"):]
	dir := cfg.GetString(config.ConfigLexiconPath)
	alph, err := os.Open(filepath.Join(dir, name+AlphabetExtension))
	if err != nil {
		return nil, err
	}
	defer alph.Close()
	words, err := os.Open(filepath.Join(dir, name+WordListExtension))
	if err != nil {
		return nil, err
	}
	defer words.Close()
	d, err := Load(name, alph, words)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", name).Int("words", d.NumWords()).
		Int("nodes", d.Dawg().NumNodes()).Msg("loaded-lexicon")
	return d, nil
}

// Get returns the named dictionary from the lexicon path, loading it the
// first time it is asked for.
func Get(cfg *config.Config, name string) (*Dictionary, error) {
	obj, err := cache.Load(cfg, cacheKey(name), loadFromPath)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %v: %w", name, err)
	}
	d, ok := obj.(*Dictionary)
	if !ok {
		return nil, fmt.Errorf("cached object for lexicon %v is a %T", name, obj)
	}
	return d, nil
}
