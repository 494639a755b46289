package ner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// CachedExtractor wraps an EntityExtractor with an in-memory LRU cache keyed
// by input text. Feeds repeat headlines across scrape runs, so the same
// combined text keeps coming back; caching avoids re-querying the model for
// unchanged entries. Successful empty extractions are cached too — they are a
// valid deterministic answer, unlike errors, which are never cached so a
// recovered model gets retried.
type CachedExtractor struct {
	inner   domain.EntityExtractor
	cache   *lruCache
	lookups *prometheus.CounterVec // labels: result={hit,miss}; may be nil
}

// NewCachedExtractor creates a cache decorator around an extractor. lookups
// may be nil to disable cache metrics.
func NewCachedExtractor(inner domain.EntityExtractor, maxEntries int, lookups *prometheus.CounterVec) *CachedExtractor {
	return &CachedExtractor{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		lookups: lookups,
	}
}

func (c *CachedExtractor) ExtractEntities(ctx context.Context, text string) ([]string, error) {
	key := cacheKey(text)
	if entities, ok := c.cache.get(key); ok {
		c.count("hit")
		return entities, nil
	}
	c.count("miss")

	entities, err := c.inner.ExtractEntities(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, entities)
	return entities, nil
}

func (c *CachedExtractor) count(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the text so arbitrarily long articles do not bloat the key
// space.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:16])
}

// lruCache is a small thread-safe LRU for extraction results.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []string
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
