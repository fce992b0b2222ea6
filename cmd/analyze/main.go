package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/analyzer"
	"github.com/domino14/wordplay/config"
)

// analyze reads a JSON array of positions from each file argument and
// writes the results as YAML. With no files it runs the built-in sample.
func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	cfg.AdjustRelativePaths(exPath)

	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	an, err := analyzer.NewAnalyzer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-lexicon")
	}
	if len(cfg.Args()) == 0 {
		if err := an.RunTest(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("sample-failed")
		}
		return
	}
	for _, fn := range cfg.Args() {
		data, err := os.ReadFile(fn)
		if err != nil {
			log.Fatal().Err(err).Msg("read-failed")
		}
		var ps []analyzer.Position
		if err := json.Unmarshal(data, &ps); err != nil {
			log.Fatal().Err(err).Str("file", fn).Msg("bad-positions")
		}
		results, err := an.AnalyzeBatch(context.Background(), ps)
		if err != nil {
			log.Fatal().Err(err).Msg("analyze-failed")
		}
		out, err := analyzer.ToYAML(results)
		if err != nil {
			log.Fatal().Err(err).Msg("yaml")
		}
		os.Stdout.Write(out)
	}
}
