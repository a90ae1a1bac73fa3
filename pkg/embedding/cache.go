package embedding

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"agentforge/pkg/metrics"
)

const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = time.Hour
)

type cachedEncoder struct {
	next  Encoder
	cache *expirable.LRU[string, Vector]
}

// NewCached wraps enc with an LRU+TTL cache keyed by the exact input text.
// Only the misses of a batch are forwarded to enc.
func NewCached(enc Encoder, size int, ttl time.Duration) Encoder {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedEncoder{
		next:  enc,
		cache: expirable.NewLRU[string, Vector](size, nil, ttl),
	}
}

func (c *cachedEncoder) Model() string {
	return c.next.Model()
}

func (c *cachedEncoder) Encode(ctx context.Context, texts []string) ([]Vector, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}

	out := make([]Vector, len(texts))
	var missIdx []int
	var missTexts []string

	for i, text := range texts {
		if v, ok := c.cache.Get(text); ok {
			metrics.EmbeddingCacheLookups.WithLabelValues("hit").Inc()
			out[i] = v
			continue
		}
		metrics.EmbeddingCacheLookups.WithLabelValues("miss").Inc()
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	vecs, err := c.next.Encode(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missTexts) {
		return nil, ErrResultMismatch
	}

	for j, i := range missIdx {
		out[i] = vecs[j]
		c.cache.Add(missTexts[j], vecs[j])
	}
	return out, nil
}
