// Package ratelimiter は資格情報エンドポイントへの試行回数を制限します。
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter is a sliding-window counter keyed by an arbitrary string
// (typically the client IP). It is safe for concurrent use.
type Limiter struct {
	limit    int           // 1ウィンドウあたりの上限
	interval time.Duration // ウィンドウ幅
	mu       sync.Mutex
	hits     map[string][]time.Time
}

// New creates a new Limiter allowing limit attempts per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		hits:     map[string][]time.Time{},
	}
}

// Allow records an attempt for key and reports whether it is within
// the limit. Entries older than the window are pruned on the way.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	cutoff := now.Add(-l.interval)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.hits[key] = recent
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}

// Middleware returns a Gin middleware that rejects requests over the
// limit with 429, keyed by client IP.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"msg": "too many attempts, try again later"})
			return
		}
		c.Next()
	}
}
