package translate

import (
	"context"
	"sync"
)

// Cached decorates a Translator with an in-process memo keyed by
// (text, source, target). Provider calls are the expensive part of every
// translation task, and lesson content repeats heavily across users, so even
// this unbounded map pays for itself quickly. Safe for concurrent use.
type Cached struct {
	inner Translator
	mu    sync.RWMutex
	memo  map[cacheKey]string
}

type cacheKey struct {
	text, source, target string
}

// NewCached wraps a Translator with memoization.
func NewCached(inner Translator) *Cached {
	return &Cached{inner: inner, memo: make(map[cacheKey]string)}
}

// Translate returns the memoized translation when present, otherwise delegates
// to the wrapped provider and stores the result. Identical source and target
// short-circuit without a provider call. Failed translations are not cached.
func (c *Cached) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == target {
		return text, nil
	}

	key := cacheKey{text: text, source: source, target: target}

	c.mu.RLock()
	translated, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return translated, nil
	}

	translated, err := c.inner.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.memo[key] = translated
	c.mu.Unlock()

	return translated, nil
}

// Size returns the number of memoized translations.
func (c *Cached) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memo)
}
