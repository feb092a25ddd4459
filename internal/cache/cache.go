// Package cache memoizes remote lookups by normalized key for the life of the process
package cache

//go:generate mockgen -destination=mock/mock_fetcher.go -package=mockcache -source=cache.go

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// Fetcher loads a record that is not cached yet
type Fetcher[T any] interface {
	Fetch(ctx context.Context, key string) (T, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc[T any] func(ctx context.Context, key string) (T, error)

// Fetch implements Fetcher
func (f FetcherFunc[T]) Fetch(ctx context.Context, key string) (T, error) {
	return f(ctx, key)
}

// Config holds configuration for a cache
type Config[T any] struct {
	Name    string     // used in logs and error messages, e.g. "pokemon"
	Fetcher Fetcher[T] // Required

	// Normalize defaults to names.Normalize
	Normalize func(string) string
	// Alias maps a normalized key to the identifier passed to the fetcher. Optional.
	Alias func(string) string
}

// Cache stores successful lookups under the caller's normalized key. Entries never
// expire and failures are never stored. Two concurrent lookups of the same missing
// key may both fetch; the last one to finish wins.
type Cache[T any] struct {
	name      string
	fetcher   Fetcher[T]
	normalize func(string) string
	alias     func(string) string

	mu      sync.RWMutex
	entries map[string]T
}

// New creates a cache
func New[T any](cfg *Config[T]) (*Cache[T], error) {
	if cfg == nil {
		return nil, dexerr.InvalidArgument("cache config is required")
	}
	if cfg.Fetcher == nil {
		return nil, dexerr.InvalidArgument("cache fetcher is required")
	}

	c := &Cache[T]{
		name:      cfg.Name,
		fetcher:   cfg.Fetcher,
		normalize: cfg.Normalize,
		alias:     cfg.Alias,
		entries:   make(map[string]T),
	}
	if c.name == "" {
		c.name = "resource"
	}
	if c.normalize == nil {
		c.normalize = names.Normalize
	}
	if c.alias == nil {
		c.alias = func(s string) string { return s }
	}

	return c, nil
}

// Resolve returns the cached record for key or fetches and stores it. Every
// failure comes back as a not found error wrapping the cause.
func (c *Cache[T]) Resolve(ctx context.Context, key string) (T, error) {
	var zero T

	normalized := c.normalize(key)
	if normalized == "" {
		return zero, dexerr.NotFoundf("%s name is required", c.name)
	}

	if v, ok := c.Peek(normalized); ok {
		return v, nil
	}

	lookup := c.alias(normalized)
	v, err := c.fetcher.Fetch(ctx, lookup)
	if err != nil {
		if dexerr.RootCode(err) == dexerr.CodeNotFound {
			log.Printf("[Cache] %s %q not found upstream (looked up as %q)", c.name, normalized, lookup)
		} else {
			log.Printf("[Cache] %s %q fetch failed: %v", c.name, normalized, err)
		}
		return zero, dexerr.WrapWithCode(err, dexerr.CodeNotFound, fmt.Sprintf("%s %q not found", c.name, normalized)).
			WithMeta("key", normalized)
	}

	c.mu.Lock()
	c.entries[normalized] = v
	c.mu.Unlock()

	return v, nil
}

// Peek returns a cached record without fetching. The key is normalized first.
func (c *Cache[T]) Peek(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[c.normalize(key)]
	return v, ok
}

// Len returns the number of cached records
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
