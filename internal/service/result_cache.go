package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache guarda la vista pública de un resultado por slug. Es una
// optimización de lectura compartida entre réplicas; la fuente de verdad
// sigue siendo el store. Sin redis no hay cache.
type ResultCache interface {
	Get(ctx context.Context, slug string) (ResultView, bool)
	Set(ctx context.Context, slug string, view ResultView)
	Invalidate(ctx context.Context, slug string)
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisResultCache struct {
	client redisKV
	ttl    time.Duration
	prefix string
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisResultCache{
		client: client,
		ttl:    ttl,
		prefix: "quiz:result:",
	}
}

// Los errores de redis se tratan como miss: el store responde igual.
func (c *redisResultCache) Get(ctx context.Context, slug string) (ResultView, bool) {
	if strings.TrimSpace(slug) == "" {
		return ResultView{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+slug).Bytes()
	if err != nil {
		return ResultView{}, false
	}
	var view ResultView
	if err := json.Unmarshal(raw, &view); err != nil {
		return ResultView{}, false
	}
	return view, true
}

func (c *redisResultCache) Set(ctx context.Context, slug string, view ResultView) {
	if strings.TrimSpace(slug) == "" {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+slug, payload, c.ttl).Err()
}

func (c *redisResultCache) Invalidate(ctx context.Context, slug string) {
	if strings.TrimSpace(slug) == "" {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Del(ctx, c.prefix+slug).Err()
}
