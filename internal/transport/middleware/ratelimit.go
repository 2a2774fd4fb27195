package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/foundermind/foundermind-backend/internal/config"
)

// RateLimiter implements per-client token bucket rate limiting. Buckets live
// in a bounded LRU cache so an attacker cycling source addresses cannot grow
// memory without bound; evicting an idle bucket just resets its budget.
type RateLimiter struct {
	buckets *lru.Cache[string, *bucket]
	rps     float64
	burst   float64
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter from config.
func NewRateLimiter(cfg config.RateLimitConfig) (*RateLimiter, error) {
	cache, err := lru.New[string, *bucket](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		buckets: cache,
		rps:     cfg.RPS,
		burst:   float64(cfg.Burst),
	}, nil
}

// Limit returns middleware that rate-limits requests per client IP.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientIP(r)) {
				retryAfter := 1.0 / rl.rps
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Allow consumes one token from the client's bucket, reporting whether the
// request is within budget.
func (rl *RateLimiter) Allow(key string) bool {
	b, ok := rl.buckets.Get(key)
	if !ok {
		b = &bucket{tokens: rl.burst, lastRefill: time.Now()}
		// Another goroutine may race us here; losing the race means one
		// extra fresh bucket, which is acceptable.
		rl.buckets.Add(key, b)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * rl.rps
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// clientIP strips the port from RemoteAddr, falling back to the raw value.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
