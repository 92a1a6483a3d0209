package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"redline-garage/pitwall/internal/common"
)

// RateLimitMiddleware allows each client IP rps requests per second with the
// given burst.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	var (
		limiters = make(map[string]*rate.Limiter)
		mu       sync.Mutex
	)

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if limiter, exists := limiters[ip]; exists {
			return limiter
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		limiters[ip] = limiter
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !getLimiter(ip).Allow() {
				common.RespondError(w, time.Now(), nil, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
