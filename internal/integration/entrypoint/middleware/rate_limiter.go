// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
	"github.com/pos-dashboard/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed requests per window.
	defaultMaxAttempts = 60
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ratelimit:"
)

// counterStore counts hits per key inside a fixed window.
type counterStore interface {
	// Increment records a hit and returns the number of hits in the current window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context) error
}

// RateLimiter provides IP-based fixed-window rate limiting.
type RateLimiter struct {
	store          counterStore
	maxAttempts    int
	windowDuration time.Duration
	enabled        bool
}

// NewRateLimiter creates a rate limiter. Counters live in Redis when a client
// is given, otherwise in process memory.
func NewRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}

	var store counterStore
	if client != nil {
		store = &redisCounter{client: client}
	} else {
		store = newMemoryCounter()
	}

	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		enabled:        true,
	}
}

// SetEnabled turns limiting on or off. Test and E2E environments run with it off.
func (rl *RateLimiter) SetEnabled(enabled bool) {
	rl.enabled = enabled
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
// A failing counter store lets the request through.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	hits, err := rl.store.Increment(ctx, key, rl.windowDuration)
	if err != nil {
		slog.WarnContext(ctx, "Rate limiter store failed, allowing request", "error", err)
		return true
	}
	return hits <= int64(rl.maxAttempts)
}

// Reset clears the rate limiter state (useful for testing).
func (rl *RateLimiter) Reset() {
	if err := rl.store.Reset(context.Background()); err != nil {
		slog.Warn("Failed to reset rate limiter", "error", err)
	}
}

// redisCounter keeps counters in Redis so every instance shares the limit.
type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := redisKeyPrefix + key

	hits, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// The first hit opens the window.
	if hits == 1 {
		if err := r.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return hits, nil
}

func (r *redisCounter) Reset(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete rate limit counter: %w", err)
		}
	}
	return iter.Err()
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int64
	resetTime time.Time
}

// memoryCounter keeps counters in process memory.
type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

func (m *memoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	entry, exists := m.entries[key]
	if !exists || now.After(entry.resetTime) {
		m.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}

func (m *memoryCounter) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*rateLimitEntry)
	return nil
}
