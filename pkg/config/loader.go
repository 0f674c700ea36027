package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// cacheEntry is parsed at most once. Every caller that waited on the same
// entry observes the same value or the same error.
type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	globalCache = &configCache{entries: make(map[string]*cacheEntry)}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set win over file values. With no paths the
// .env file in the working directory is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once; later calls for the same type
// are served from the cache even if the environment has changed since.
//
// The default .env file is loaded, if present, before the first parse.
//
// Example:
//
//	var cfg config.Signing
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is not an error
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	entry := globalCache.entry(key)

	entry.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			// a later call may succeed once the environment is fixed
			globalCache.forget(key, entry)
			return
		}
		entry.value = parsed
	})

	if entry.err != nil {
		return entry.err
	}

	value, ok := entry.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = value
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload drops the cached value for T and parses the environment again.
func Reload[T any](v *T) error {
	globalCache.mu.Lock()
	delete(globalCache.entries, typeKey[T]())
	globalCache.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.entries = make(map[string]*cacheEntry)
	globalCache.mu.Unlock()
}

func (c *configCache) entry(key string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	return e
}

// forget removes e unless it has already been replaced.
func (c *configCache) forget(key string, e *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[key] == e {
		delete(c.entries, key)
	}
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
