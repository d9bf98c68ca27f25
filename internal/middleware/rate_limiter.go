package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/garage-manager/internal/httperr"
)

type RateLimitStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
	GetCount(ctx context.Context, key string) (int, error)
}

// ------------------------------------------------------
// Redis
// ------------------------------------------------------

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	pipe := s.client.TxPipeline()

	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return int(incr.Val()), nil
}

func (s *RedisStore) GetCount(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

// ------------------------------------------------------
// Memory
// ------------------------------------------------------

type MemoryStore struct {
	mu    sync.Mutex
	store map[string]*rateLimitEntry
	now   func() time.Time
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string]*rateLimitEntry),
		now:   time.Now,
	}
}

func (s *MemoryStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, entry := range s.store {
		if now.After(entry.expiresAt) {
			delete(s.store, k)
		}
	}

	entry, exists := s.store[key]
	if !exists {
		entry = &rateLimitEntry{expiresAt: now.Add(window)}
		s.store[key] = entry
	}

	entry.count++
	return entry.count, nil
}

func (s *MemoryStore) GetCount(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.store[key]
	if !exists || s.now().After(entry.expiresAt) {
		return 0, nil
	}
	return entry.count, nil
}

// ------------------------------------------------------
// Middleware
// ------------------------------------------------------

type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

type RateLimiter struct {
	store  RateLimitStore
	config RateLimitConfig
}

func NewRateLimiter(store RateLimitStore, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{store: store, config: config}
}

// Limit counts requests per client IP under scope. A store failure lets
// the request through.
func (r *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.config.Enabled || r.config.Limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:ip:%s", scope, c.ClientIP())

		allowed, err := r.allow(c.Request.Context(), key)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("rate limit store unavailable")
			c.Next()
			return
		}
		if !allowed {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (r *RateLimiter) allow(ctx context.Context, key string) (bool, error) {
	count, err := r.store.GetCount(ctx, key)
	if err != nil {
		return false, err
	}
	if count >= r.config.Limit {
		return false, nil
	}

	_, err = r.store.Increment(ctx, key, r.config.Window)
	return err == nil, err
}
