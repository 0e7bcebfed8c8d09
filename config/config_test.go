package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigBoardSize), 15)
	is.Equal(cfg.GetInt(ConfigRackSize), 7)
	is.Equal(cfg.GetString(ConfigWildcardPolicy), "strict")
	is.Equal(cfg.GetInt(ConfigPassRotations), 2)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--board-size=11", "--wildcard-policy=lenient", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigBoardSize), 11)
	is.Equal(cfg.GetString(ConfigWildcardPolicy), "lenient")
	is.True(cfg.GetBool(ConfigDebug))
	// untouched keys keep their defaults
	is.Equal(cfg.GetInt(ConfigBingoBonus), 50)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDBOARD_RACK_SIZE", "8")
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigRackSize), 8)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.AdjustRelativePaths("/opt/wordboard")
	is.Equal(cfg.GetString(ConfigLexiconPath), filepath.Join("/opt/wordboard", "data/lexica"))

	cfg.Set(ConfigLexiconPath, "/abs/lexica")
	cfg.AdjustRelativePaths("/opt/wordboard")
	is.Equal(cfg.GetString(ConfigLexiconPath), "/abs/lexica")
}
