package wordgraph

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/cache"
	"github.com/domino14/wordplay/config"
)

const (
	CacheKeyPrefix        = "graph:"
	RotatedCacheKeyPrefix = "rotated:"

	// GraphExtension is the file extension of a plain word graph.
	GraphExtension = ".dawg"
	// RotatedExtension is the file extension of a graph built in rotated mode.
	RotatedExtension = ".rdawg"
)

// CacheLoadFunc is the function that loads a graph into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	if name, ok := strings.CutPrefix(key, RotatedCacheKeyPrefix); ok {
		g, err := LoadGraph(filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+RotatedExtension))
		if err != nil {
			return nil, err
		}
		return NewRotated(g), nil
	}
	name := strings.TrimPrefix(key, CacheKeyPrefix)
	return LoadGraph(filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+GraphExtension))
}

// LoadGraph reads a graph file. The lexicon name is taken from the file name.
func LoadGraph(filename string) (*Graph, error) {
	log.Debug().Str("filename", filename).Msg("loading-graph")
	file, err := cache.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := ScanGraph(file)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(filename)
	g.lexiconName = strings.TrimSuffix(base, filepath.Ext(base))
	return g, nil
}

// Get loads a named graph from the cache or from the lexicon path.
func Get(cfg *config.Config, name string) (*Graph, error) {
	obj, err := cache.Load(cfg, CacheKeyPrefix+name, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Graph)
	if !ok {
		return nil, errors.New("could not read graph from file")
	}
	return ret, nil
}

// GetRotated loads a named rotated graph from the cache or from the lexicon
// path.
func GetRotated(cfg *config.Config, name string) (*Rotated, error) {
	obj, err := cache.Load(cfg, RotatedCacheKeyPrefix+name, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Rotated)
	if !ok {
		return nil, errors.New("could not read rotated graph from file")
	}
	return ret, nil
}

// Open loads a lexicon given either its name or the path of a graph file.
// A ".rdawg" file is read as a rotated graph. A bare name is looked up in
// the lexicon path, plain graph first.
func Open(cfg *config.Config, nameOrPath string) (WordGraph, error) {
	switch filepath.Ext(nameOrPath) {
	case RotatedExtension:
		g, err := LoadGraph(nameOrPath)
		if err != nil {
			return nil, err
		}
		return NewRotated(g), nil
	case GraphExtension:
		return LoadGraph(nameOrPath)
	}
	g, err := Get(cfg, nameOrPath)
	if err == nil {
		return g, nil
	}
	r, rerr := GetRotated(cfg, nameOrPath)
	if rerr != nil {
		// report the plain graph's error; it is the usual case
		return nil, err
	}
	return r, nil
}
