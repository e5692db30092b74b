package mcp

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/unitconv/internal/logger"
)

// Defaults for the HTTP transport's token bucket.
const (
	DefaultRateLimit = 20.0
	DefaultRateBurst = 40
)

// RateLimiter rejects HTTP requests beyond a token-bucket budget shared by all clients.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows perSecond requests per second with the given burst.
// A non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 || math.IsInf(perSecond, 1) {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Allow reports whether a request may proceed now.
func (l *RateLimiter) Allow() bool {
	return l.limiter.Allow()
}

// Middleware wraps next, answering 429 Too Many Requests when the budget is spent.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			logger.Warn("rate limited %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// retryAfter is the whole number of seconds until a token is available, at least 1.
func (l *RateLimiter) retryAfter() int {
	limit := l.limiter.Limit()
	if limit == rate.Inf || limit <= 0 {
		return 1
	}
	secs := int(math.Ceil(1 / float64(limit)))
	if secs < 1 {
		secs = 1
	}
	return secs
}
