package cache

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/romchy222/AI-SANA/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() models.AgentResponse {
	return models.AgentResponse{
		Response:   "Для поступления нужны аттестат, справка о здоровье и фотографии 3x4.",
		Confidence: 0.8,
		AgentType:  "ai_abitur",
		AgentName:  "AI-Abitur",
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	c.Set("как поступить", "ai_abitur", "ru", sampleResponse())

	got, ok := c.Get("как поступить", "ai_abitur", "ru")
	require.True(t, ok)
	assert.Equal(t, sampleResponse(), got)

	// Different agent or language is a different key.
	_, ok = c.Get("как поступить", "uninav", "ru")
	assert.False(t, ok)
	_, ok = c.Get("как поступить", "ai_abitur", "kz")
	assert.False(t, ok)
}

func TestCacheKeyNormalization(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	c.Set("Как Поступить  В Университет", "ai_abitur", "ru", sampleResponse())

	_, ok := c.Get("  как поступить в университет ", "ai_abitur", "ru")
	assert.True(t, ok, "case and whitespace differences should hit the same entry")
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	c.SetTTL("вопрос", "ai_abitur", "ru", sampleResponse(), 10*time.Millisecond)

	_, ok := c.Get("вопрос", "ai_abitur", "ru")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.Get("вопрос", "ai_abitur", "ru")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Size, "expired entry should be dropped on read")
}

func TestCacheBoundedSize(t *testing.T) {
	c := NewResponseCache(4, time.Minute)

	for i := 0; i < 20; i++ {
		c.Set(fmt.Sprintf("вопрос %d", i), "ai_abitur", "ru", sampleResponse())
	}

	assert.LessOrEqual(t, c.Stats().Size, 4)

	// The newest entry survives eviction.
	_, ok := c.Get("вопрос 19", "ai_abitur", "ru")
	assert.True(t, ok)
}

func TestShouldCache(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	good := sampleResponse()
	assert.True(t, c.ShouldCache("как поступить в университет", good))

	lowConfidence := good
	lowConfidence.Confidence = 0.2
	assert.False(t, c.ShouldCache("как поступить", lowConfidence))

	short := good
	short.Response = "Да."
	assert.False(t, c.ShouldCache("как поступить", short))

	assert.False(t, c.ShouldCache(strings.Repeat("а", 501), good))
	assert.False(t, c.ShouldCache("", good))
}

func TestCacheStats(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	c.Set("вопрос", "ai_abitur", "ru", sampleResponse())

	c.Get("вопрос", "ai_abitur", "ru")
	c.Get("вопрос", "ai_abitur", "ru")
	c.Get("другой вопрос", "ai_abitur", "ru")

	s := c.Stats()
	assert.Equal(t, int64(2), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.InDelta(t, 66.6, s.HitRate, 0.1)
}

func TestCacheClear(t *testing.T) {
	c := NewResponseCache(10, time.Minute)

	c.Set("вопрос", "ai_abitur", "ru", sampleResponse())
	c.Clear()

	assert.Equal(t, 0, c.Stats().Size)
	_, ok := c.Get("вопрос", "ai_abitur", "ru")
	assert.False(t, ok)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewResponseCache(50, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				msg := fmt.Sprintf("вопрос %d-%d", n, j%5)
				c.Set(msg, "ai_abitur", "ru", sampleResponse())
				c.Get(msg, "ai_abitur", "ru")
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Stats().Size, 50)
}
