package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath           = "data-path"
	ConfigLexiconPath        = "lexicon-path"
	ConfigDefaultLexicon     = "default-lexicon"
	ConfigLetterDistribution = "letter-distribution"
	ConfigDebug              = "debug"
	ConfigCrossCacheSize     = "cross-cache-size"
	ConfigNatsURL            = "nats-url"
	ConfigNatsChannel        = "nats-channel"
	ConfigHTTPAddr           = "http-addr"
	ConfigMaxBatchWorkers    = "max-batch-workers"
	ConfigCPUProfile         = "cpu-profile"
)

// Config wraps a viper instance. Settings come from (in order of priority)
// command-line flags, WORDPLAY_* environment variables and defaults.
type Config struct {
	viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigLexiconPath, "./data/lexica")
	v.SetDefault(ConfigDefaultLexicon, "TWL06")
	v.SetDefault(ConfigLetterDistribution, "english")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCrossCacheSize, 4096)
	v.SetDefault(ConfigNatsURL, "nats://localhost:4222")
	v.SetDefault(ConfigNatsChannel, "wordplay.moves")
	v.SetDefault(ConfigHTTPAddr, ":8080")
	v.SetDefault(ConfigMaxBatchWorkers, 0)
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config populated only with defaults. It is mostly
// useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

// Load parses the passed-in args (usually os.Args[1:]) and binds the
// environment.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)

	fs := pflag.NewFlagSet("wordplay", pflag.ContinueOnError)
	fs.String(ConfigDataPath, "./data", "directory holding data files")
	fs.String(ConfigLexiconPath, "./data/lexica", "directory holding lexicon word graphs")
	fs.String(ConfigDefaultLexicon, "TWL06", "the default lexicon to use")
	fs.String(ConfigLetterDistribution, "english", "the letter distribution to use")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigCrossCacheSize, 4096, "size of the crossword validity cache used per search")
	fs.String(ConfigNatsURL, "nats://localhost:4222", "the NATS server URL")
	fs.String(ConfigNatsChannel, "wordplay.moves", "the NATS subject the worker listens on")
	fs.String(ConfigHTTPAddr, ":8080", "address for the HTTP server")
	fs.Int(ConfigMaxBatchWorkers, 0, "max concurrent analyses in a batch (0 = GOMAXPROCS)")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	// Positional args (for example, a shell command line) are left alone.
	fs.ParseErrorsWhitelist.UnknownFlags = true
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("wordplay")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args returns the positional arguments left after Load parsed the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if u, ok := settings[ConfigNatsURL].(string); ok && strings.Contains(u, "@") {
		// strip credentials
		settings[ConfigNatsURL] = "nats://***@" + u[strings.LastIndex(u, "@")+1:]
	}
	return settings
}

// AdjustRelativePaths makes the data paths absolute, relative to basepath,
// if they were given as relative paths and do not exist from the working
// directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath, ConfigLexiconPath} {
		p := c.GetString(key)
		if filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		abs := filepath.Join(basepath, p)
		log.Debug().Str("key", key).Str("path", abs).Msg("adjusted-path")
		c.Set(key, abs)
	}
}
