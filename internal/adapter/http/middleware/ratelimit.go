package middleware

import (
	"net/http"
	"sync"
	"time"

	"fieldops_billing/internal/usecase/interfaces"
	"fieldops_billing/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-IP limiter for the public portal
// endpoints. Token validation is constant-time either way; the limiter's job
// is to make token guessing impractical, not to shape legitimate traffic.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   interfaces.Clock
	windows map[string]*ipWindow
}

type ipWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(limit int, window time.Duration, clock interfaces.Clock) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		clock:   clock,
		windows: map[string]*ipWindow{},
	}
}

// Allow reports whether one more request from ip fits the current window.
func (r *RateLimiter) Allow(ip string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[ip]
	if !ok || now.Sub(w.start) >= r.window {
		r.windows[ip] = &ipWindow{start: now, count: 1}
		r.dropExpired(now)
		return true
	}
	if w.count >= r.limit {
		return false
	}
	w.count++
	return true
}

// dropExpired keeps the map from growing without bound. Called under mu.
func (r *RateLimiter) dropExpired(now time.Time) {
	for ip, w := range r.windows {
		if now.Sub(w.start) >= r.window {
			delete(r.windows, ip)
		}
	}
}

var errRateLimited = apperror.New(apperror.KindPolicyDenied, "RATE_LIMITED",
	"Too many requests; try again shortly", http.StatusTooManyRequests)

// Handler aborts over-limit requests with 429 before they reach the token
// layer.
func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
