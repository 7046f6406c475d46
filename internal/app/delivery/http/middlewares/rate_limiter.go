package middlewares

import (
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. A client that exhausts
// its bucket is rejected until blockTime has passed.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		r.log.Warn("Client blocked by rate limiter",
			zap.String(constvars.LoggingRemoteAddrKey, ip),
			zap.Duration(constvars.LoggingDurationKey, r.blockTime),
		)
		return false
	}
	return true
}
