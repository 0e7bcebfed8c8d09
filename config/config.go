package config

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLexiconPath    = "lexicon-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigBoardSize      = "board-size"
	ConfigRackSize       = "rack-size"
	ConfigBingoBonus     = "bingo-bonus"
	ConfigWildcardPolicy = "wildcard-policy"
	ConfigPassRotations  = "pass-rotations"
	ConfigDebug          = "debug"
	ConfigCPUProfile     = "cpu-profile"
)

// Config wraps a viper instance. Settings come from (in increasing order
// of precedence) defaults, WORDBOARD_* environment variables and
// command-line flags.
type Config struct {
	sync.Mutex
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLexiconPath, "./data/lexica")
	v.SetDefault(ConfigDefaultLexicon, "SPANISH")
	v.SetDefault(ConfigBoardSize, 15)
	v.SetDefault(ConfigRackSize, 7)
	v.SetDefault(ConfigBingoBonus, 50)
	v.SetDefault(ConfigWildcardPolicy, "strict")
	v.SetDefault(ConfigPassRotations, 2)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("wordboard")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// DefaultConfig returns a config with only defaults and environment
// overrides applied. Mostly useful for tests.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load parses the given command-line arguments on top of the defaults.
func (c *Config) Load(args []string) error {
	c.Lock()
	defer c.Unlock()
	c.Viper = newViper()

	fs := pflag.NewFlagSet("wordboard", pflag.ContinueOnError)
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "directory holding alphabet (.alph) and word list (.txt) files")
	fs.String(ConfigDefaultLexicon, c.GetString(ConfigDefaultLexicon), "the default lexicon to use")
	fs.Int(ConfigBoardSize, c.GetInt(ConfigBoardSize), "board dimension; 15 uses the classic layout")
	fs.Int(ConfigRackSize, c.GetInt(ConfigRackSize), "number of tiles on a full rack")
	fs.Int(ConfigBingoBonus, c.GetInt(ConfigBingoBonus), "bonus for playing a full rack")
	fs.String(ConfigWildcardPolicy, c.GetString(ConfigWildcardPolicy), "strict or lenient handling of unresolved wildcards")
	fs.Int(ConfigPassRotations, c.GetInt(ConfigPassRotations), "full rotations of passes/exchanges that end the game")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigCPUProfile, c.GetString(ConfigCPUProfile), "file to write a CPU profile to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.BindPFlags(fs)
}

// AdjustRelativePaths makes the lexicon path absolute relative to
// basepath, unless it already is absolute.
func (c *Config) AdjustRelativePaths(basepath string) {
	c.Lock()
	defer c.Unlock()
	p := c.GetString(ConfigLexiconPath)
	if !filepath.IsAbs(p) {
		c.Set(ConfigLexiconPath, filepath.Join(basepath, p))
	}
}

// SanitizedSettings returns every setting, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
