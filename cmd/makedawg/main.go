package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/graphmaker"
	"github.com/domino14/wordplay/wordgraph"
)

func main() {
	filename := flag.String("filename", "", "filename of the word list")
	out := flag.String("out", "", "output file (default: word list name with .dawg or .rdawg)")
	rotated := flag.Bool("rotated", false, "store every rotation of every word, for infix searches")
	latin1 := flag.Bool("latin1", false, "the word list is Latin-1 encoded")

	flag.Parse()
	if *filename == "" {
		log.Fatal().Msg("-filename is required")
	}
	if *out == "" {
		ext := wordgraph.GraphExtension
		if *rotated {
			ext = wordgraph.RotatedExtension
		}
		*out = strings.TrimSuffix(*filename, filepath.Ext(*filename)) + ext
	}
	if err := graphmaker.GenerateFile(*filename, *out, *rotated, *latin1); err != nil {
		log.Fatal().Err(err).Msg("could-not-make-graph")
	}
}
