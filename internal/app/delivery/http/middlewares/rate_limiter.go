package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP. Assembly is the expensive
// route, so it gets its own limiter independent of the global httprate cap.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rps      int
	burst    int
}

func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps < 1 {
		rps = 1
	}
	if burst < 1 {
		burst = rps
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()
		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(r.rps)), r.burst)
			r.limiters[ip] = limiter
		}
		r.mu.Unlock()

		if !limiter.Allow() {
			http.Error(w, "Too many requests, please retry later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}
