package expander

import (
	"context"
	"log/slog"
	"time"

	"github.com/prepdeck/prepdeck/internal/planner"
)

// SubtopicCache is the slice of the cache client the expander needs.
// *cache.Cache satisfies it.
type SubtopicCache interface {
	GetJSON(ctx context.Context, key string, v any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Cached memoizes expansions keyed by topic and difficulty. Cache failures
// degrade to the inner expander and are logged, never surfaced.
type Cached struct {
	next  planner.Expander
	cache SubtopicCache
	ttl   time.Duration
}

// NewCached wraps an expander with cache lookups.
func NewCached(next planner.Expander, c SubtopicCache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: c, ttl: ttl}
}

// Expand implements planner.Expander.
func (c *Cached) Expand(ctx context.Context, topic, difficulty string) ([]string, error) {
	key := cacheKey(topic, difficulty)

	var subs []string
	if err := c.cache.GetJSON(ctx, key, &subs); err == nil && len(subs) > 0 {
		return subs, nil
	}

	subs, err := c.next.Expand(ctx, topic, difficulty)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, subs, c.ttl); err != nil {
		slog.Warn("caching expansion failed", "topic", topic, "error", err)
	}
	return subs, nil
}

func cacheKey(topic, difficulty string) string {
	return "expand:" + planner.NormalizeDifficulty(difficulty) + ":" + topic
}
