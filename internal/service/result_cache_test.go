package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"dog-personality-quiz/internal/domain"
)

type mockRedisKVClient struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMockRedisKVClient() *mockRedisKVClient {
	return &mockRedisKVClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mockRedisKVClient) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	if m.getErr != nil {
		cmd.SetErr(m.getErr)
		return cmd
	}
	v, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (m *mockRedisKVClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStatusCmd(ctx)
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKVClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewIntCmd(ctx)
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func sampleView() ResultView {
	return ResultView{
		Session: domain.Session{Slug: "abc123", DogName: "Rex"},
		Result: domain.Result{
			Title:  "Rex is a Loyal Knight",
			Scores: domain.Scores{domain.TraitLove: {Label: "Sweet Heart", Score: 70}},
			Images: map[string]string{domain.TraitLove: "https://img.test/love.png"},
		},
		Pairs: []domain.QAPair{{Question: "q", Answer: "a"}},
	}
}

func TestRedisResultCache(t *testing.T) {
	ctx := context.Background()

	t.Run("nil client returns nil cache", func(t *testing.T) {
		if NewRedisResultCache(nil, time.Minute) != nil {
			t.Fatalf("expected nil cache without client")
		}
	})

	t.Run("set get invalidate", func(t *testing.T) {
		mock := newMockRedisKVClient()
		c := &redisResultCache{client: mock, ttl: 5 * time.Minute, prefix: "quiz:result:"}

		if _, ok := c.Get(ctx, "abc123"); ok {
			t.Fatalf("expected miss on empty cache")
		}
		c.Set(ctx, "abc123", sampleView())
		if mock.ttls["quiz:result:abc123"] != 5*time.Minute {
			t.Fatalf("expected ttl on key, got %+v", mock.ttls)
		}

		view, ok := c.Get(ctx, "abc123")
		if !ok {
			t.Fatalf("expected hit")
		}
		if view.Result.Title != "Rex is a Loyal Knight" || view.Result.Images[domain.TraitLove] != "https://img.test/love.png" {
			t.Fatalf("unexpected cached view %+v", view)
		}

		c.Invalidate(ctx, "abc123")
		if _, ok := c.Get(ctx, "abc123"); ok {
			t.Fatalf("expected miss after invalidate")
		}
	})

	t.Run("redis errors are misses", func(t *testing.T) {
		mock := newMockRedisKVClient()
		mock.getErr = errors.New("redis down")
		c := &redisResultCache{client: mock, ttl: time.Minute, prefix: "quiz:result:"}
		if _, ok := c.Get(ctx, "abc123"); ok {
			t.Fatalf("expected miss on redis error")
		}
	})

	t.Run("corrupt payload is a miss", func(t *testing.T) {
		mock := newMockRedisKVClient()
		mock.data["quiz:result:abc123"] = "not json"
		c := &redisResultCache{client: mock, ttl: time.Minute, prefix: "quiz:result:"}
		if _, ok := c.Get(ctx, "abc123"); ok {
			t.Fatalf("expected miss on corrupt payload")
		}
	})
}
