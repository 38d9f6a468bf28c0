// Package cache holds recent chat responses in memory so identical
// questions skip the LLM round trip. Entries expire after a TTL and the
// cache is bounded; nothing survives a process restart.
package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/romchy222/AI-SANA/internal/models"
)

type entry struct {
	value     models.AgentResponse
	createdAt time.Time
	expiresAt time.Time
}

type Stats struct {
	Size    int     `json:"size"`
	MaxSize int     `json:"max_size"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// ResponseCache is safe for concurrent use; a single mutex guards the map.
type ResponseCache struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxSize    int
	defaultTTL time.Duration

	hits   int64
	misses int64

	// caching gate knobs
	minConfidence  float64
	minResponseLen int
	maxMessageLen  int
}

func NewResponseCache(maxSize int, defaultTTL time.Duration) *ResponseCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &ResponseCache{
		entries:        make(map[string]entry),
		maxSize:        maxSize,
		defaultTTL:     defaultTTL,
		minConfidence:  0.3,
		minResponseLen: 20,
		maxMessageLen:  500,
	}
}

func key(message, agentType, language string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	sum := sha256.Sum256([]byte(normalized + "|" + agentType + "|" + language))
	return fmt.Sprintf("%x", sum)
}

// Get returns the cached payload, or false on a miss or an expired entry.
func (c *ResponseCache) Get(message, agentType, language string) (models.AgentResponse, bool) {
	k := key(message, agentType, language)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok || time.Now().After(e.expiresAt) {
		if ok {
			delete(c.entries, k)
		}
		c.misses++
		return models.AgentResponse{}, false
	}

	c.hits++
	return e.value, true
}

// Set stores the payload under the default TTL, pruning expired entries and
// then the oldest entries when the cache is full.
func (c *ResponseCache) Set(message, agentType, language string, value models.AgentResponse) {
	c.SetTTL(message, agentType, language, value, c.defaultTTL)
}

func (c *ResponseCache) SetTTL(message, agentType, language string, value models.AgentResponse, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.pruneLocked(now)
	}

	c.entries[key(message, agentType, language)] = entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// pruneLocked drops expired entries, then evicts the oldest entries until a
// quarter of the capacity is free.
func (c *ResponseCache) pruneLocked(now time.Time) {
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}

	target := c.maxSize - c.maxSize/4
	if target < 1 {
		target = 1
	}
	for len(c.entries) >= target {
		oldestKey := ""
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.createdAt.Before(oldest) {
				oldestKey = k
				oldest = e.createdAt
			}
		}
		if oldestKey == "" {
			return
		}
		delete(c.entries, oldestKey)
	}
}

// ShouldCache decides whether a response is worth keeping: confident enough,
// long enough to be useful, and keyed by a message short enough to recur.
func (c *ResponseCache) ShouldCache(message string, response models.AgentResponse) bool {
	msgLen := len([]rune(message))
	if msgLen == 0 || msgLen > c.maxMessageLen {
		return false
	}
	if response.Confidence < c.minConfidence {
		return false
	}
	return len([]rune(response.Response)) >= c.minResponseLen
}

func (c *ResponseCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Size:    len(c.entries),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total) * 100
	}
	return s
}

// Clear removes every entry. Used by the admin API after bulk knowledge
// updates so stale answers are not served.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
