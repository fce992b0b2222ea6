package cache

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/config"
)

// The cache holds large, read-only objects that are expensive to load:
// word graphs and letter distributions. A server or worker loads each of
// these once and shares it between all requests.

type cache struct {
	sync.Mutex
	objects map[string]any
}

// LoadFunc loads the object for key.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is the process-wide object cache.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading-into-cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj
	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting-obj-from-cache")
	return obj, nil
}

func (c *cache) put(key string, obj any) {
	c.Lock()
	defer c.Unlock()
	c.objects[key] = obj
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
}

// Load returns the cached object for name, loading it with loadFunc on a miss.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Put stores an already-built object, for example a graph compiled in memory.
func Put(name string, obj any) {
	CreateGlobalObjectCache()
	GlobalObjectCache.put(name, obj)
}

// Evict removes name from the cache so that the next Load reloads it.
func Evict(name string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.evict(name)
}

// Open opens a data file.
func Open(filename string) (*os.File, error) {
	return os.Open(filename)
}
