package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"tfidf/internal/domain"
	"tfidf/internal/port"
)

// QueryCache is a bounded LRU of ranking results. Entries expire after a TTL
// and are dropped when the vectorizer is refitted (see Invalidate).
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	fitGen  uint64
	now     func() time.Time
}

type cacheEntry struct {
	results   []domain.ScoredDocument
	timestamp time.Time
	fitGen    uint64
}

// NewQueryCache creates a cache. Non-positive arguments fall back to
// 100 entries and a five minute TTL.
func NewQueryCache(maxSize int, ttl time.Duration) *QueryCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &QueryCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(query string, topK int) string {
	hash := sha256.Sum256([]byte(strconv.Itoa(topK) + "\x00" + query))
	return hex.EncodeToString(hash[:16])
}

// Get returns cached results for query and topK.
func (c *QueryCache) Get(query string, topK int) ([]domain.ScoredDocument, bool) {
	key := cacheKey(query, topK)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl || entry.fitGen != c.fitGen {
		delete(c.entries, key)
		c.removeFromOrder(key)
		return nil, false
	}

	c.moveToEnd(key)
	return entry.results, true
}

// Put stores results, evicting the least recently used entry when full.
func (c *QueryCache) Put(query string, topK int, results []domain.ScoredDocument) {
	key := cacheKey(query, topK)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.moveToEnd(key)
	} else {
		if len(c.entries) >= c.maxSize {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}

	c.entries[key] = &cacheEntry{
		results:   results,
		timestamp: c.now(),
		fitGen:    c.fitGen,
	}
}

// Invalidate drops every entry. Call it after each fit.
func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.fitGen++
}

// Size returns the number of cached entries.
func (c *QueryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *QueryCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *QueryCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *QueryCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedRetriever serves repeated searches from a QueryCache.
type CachedRetriever struct {
	retriever port.Retriever
	cache     *QueryCache
}

var _ port.Retriever = (*CachedRetriever)(nil)

// NewCachedRetriever wraps retriever with cache.
func NewCachedRetriever(retriever port.Retriever, cache *QueryCache) *CachedRetriever {
	return &CachedRetriever{
		retriever: retriever,
		cache:     cache,
	}
}

// Search returns cached results when present, otherwise queries the wrapped
// retriever and caches its answer.
func (r *CachedRetriever) Search(query string, k int) ([]domain.ScoredDocument, error) {
	if results, hit := r.cache.Get(query, k); hit {
		return results, nil
	}

	results, err := r.retriever.Search(query, k)
	if err != nil {
		return nil, err
	}

	r.cache.Put(query, k, results)
	return results, nil
}
