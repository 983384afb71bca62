package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/scentdesk/concierge/internal/observability"
)

// RateLimitConfig tunes the per-client token buckets.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// clientLimiters hands out one token bucket per client IP. Buckets are
// created lazily and kept for the lifetime of the server.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rate    rate.Limit
	burst   int
}

func newClientLimiters(r rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		buckets: make(map[string]*rate.Limiter),
		rate:    r,
		burst:   burst,
	}
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lim, ok := c.buckets[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(c.rate, c.burst)
	c.buckets[ip] = lim
	return lim
}

// RateLimit throttles clients by IP. Requests beyond the configured rate and
// burst are rejected with 429.
func RateLimit(logger *observability.Logger, cfg RateLimitConfig) func(http.Handler) http.Handler {
	limiters := newClientLimiters(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !limiters.get(ip).Allow() {
				logger.WithContext(r.Context()).Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("rate limit exceeded")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":   "too many requests",
					"message": "too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client address, tolerating RemoteAddr values that
// were already stripped of their port by an upstream middleware.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
