package httpserver

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"form-server/internal/infra/cache"

	"golang.org/x/time/rate"
)

const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"

	rateLimitExceededMessage = "Too many requests from this IP, please try again later"
)

type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

func (c RateLimitConfig) normalized() RateLimitConfig {
	if c.Window <= 0 {
		c.Window = 15 * time.Minute
	}
	if c.Max <= 0 {
		c.Max = 100
	}
	return c
}

// MemoryRateLimiter keeps one token bucket per client. The bucket refills
// max tokens per window and bursts up to max.
type MemoryRateLimiter struct {
	config    RateLimitConfig
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var _ RateLimiter = (*MemoryRateLimiter)(nil)

func NewMemoryRateLimiter(config RateLimitConfig) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		config:   config.normalized(),
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, ok := l.visitors[key]
	if !ok {
		every := rate.Every(l.config.Window / time.Duration(l.config.Max))
		v = &visitor{limiter: rate.NewLimiter(every, l.config.Max)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	allowed := v.limiter.AllowN(now, 1)
	tokens := v.limiter.TokensAt(now)
	missing := float64(l.config.Max) - tokens

	return RateLimitResult{
		Allowed:   allowed,
		Limit:     l.config.Max,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		Reset:     time.Duration(missing / float64(l.config.Max) * float64(l.config.Window)),
	}, nil
}

// Visitors returns how many clients are currently tracked.
func (l *MemoryRateLimiter) Visitors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// sweep drops clients idle for a whole window; their buckets are full again.
func (l *MemoryRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.config.Window {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.config.Window {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// RedisRateLimiter counts hits in fixed windows shared by every replica.
type RedisRateLimiter struct {
	config  RateLimitConfig
	counter *cache.RedisCounter
}

var _ RateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(config RateLimitConfig, client cache.CacheClient) *RedisRateLimiter {
	return &RedisRateLimiter{
		config:  config.normalized(),
		counter: cache.NewRedisCounter(client, "rate_limit:"),
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	count, ttl, err := l.counter.Increment(ctx, key, l.config.Window)
	if err != nil {
		return RateLimitResult{}, err
	}

	remaining := l.config.Max - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:   count <= int64(l.config.Max),
		Limit:     l.config.Max,
		Remaining: remaining,
		Reset:     ttl,
	}, nil
}

// createRateLimitMiddleware limits requests under prefix per client IP. A
// failing store lets the request through.
func createRateLimitMiddleware(limiter RateLimiter, prefix string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || !underPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				slog.Warn("rate limit store unavailable", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(int(math.Ceil(result.Reset.Seconds()))))

			if !result.Allowed {
				ReplyWithError(w, http.StatusTooManyRequests, rateLimitExceededMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// underPrefix matches prefix as whole path segments, so /api covers
// /api/forms but not /apis.
func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}

// clientIP is the connection's peer address unless RealIP already replaced
// it from trusted proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
