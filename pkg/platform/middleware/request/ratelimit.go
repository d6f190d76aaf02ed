package request

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"librarian/pkg/platform/httputil"
	"librarian/pkg/platform/requestcontext"
)

// idleLimiterTTL is how long a per-client limiter survives without traffic.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key (client IP).
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewKeyedLimiter creates a limiter allowing rps requests per second per key
// with the given burst, and starts a sweeper for idle keys.
func NewKeyedLimiter(rps float64, burst int) *KeyedLimiter {
	kl := &KeyedLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go kl.sweep(time.Minute)
	return kl
}

// Allow reports whether a request for key may proceed now.
func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	cl, ok := kl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(kl.limit, kl.burst)}
		kl.limiters[key] = cl
	}
	cl.lastSeen = kl.now()
	kl.mu.Unlock()
	return cl.limiter.Allow()
}

// Stop shuts down the sweeper goroutine.
func (kl *KeyedLimiter) Stop() {
	kl.stopOnce.Do(func() {
		close(kl.done)
	})
}

func (kl *KeyedLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-kl.done:
			return
		case <-ticker.C:
			kl.evictIdle()
		}
	}
}

func (kl *KeyedLimiter) evictIdle() {
	cutoff := kl.now().Add(-idleLimiterTTL)
	kl.mu.Lock()
	defer kl.mu.Unlock()
	for key, cl := range kl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(kl.limiters, key)
		}
	}
}

func (kl *KeyedLimiter) size() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.limiters)
}

// RateLimit rejects requests with 429 once the caller's bucket is empty.
// Must run after RequestID so the client IP is in the context.
func RateLimit(kl *KeyedLimiter, m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if kl == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := requestcontext.ClientIP(r.Context())
			if !kl.Allow(key) {
				if m != nil {
					m.IncrementRateLimited()
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSeconds(kl.limit)))
				httputil.WriteJSON(w, http.StatusTooManyRequests, httputil.ErrorResponse{
					Message:   "rate limit exceeded",
					ErrorCode: http.StatusTooManyRequests,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 || limit >= 1 {
		return 1
	}
	return int(1/float64(limit)) + 1
}
