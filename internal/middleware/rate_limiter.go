package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/tnp/internal/app/models/dto"
	"golang.org/x/time/rate"
)

// clientLimiter is the token bucket of one client IP
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter limits requests per client IP. Idle buckets are dropped by a
// background janitor until Stop is called.
type IPRateLimiter struct {
	rps     rate.Limit
	burst   int
	idleTTL time.Duration

	mu      sync.Mutex
	clients map[string]*clientLimiter

	logger   zerolog.Logger
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewIPRateLimiter creates a limiter and starts its janitor
func NewIPRateLimiter(rps float64, burst int, idleTTL time.Duration, logger zerolog.Logger) *IPRateLimiter {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	rl := &IPRateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		clients: make(map[string]*clientLimiter),
		logger:  logger.With().Str("component", "rate_limiter").Logger(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	go rl.janitor()
	return rl
}

// Allow reports whether a request from ip may proceed now
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = rl.now()
	return cl.limiter.AllowN(cl.lastSeen, 1)
}

// Middleware rejects over-limit clients with 429
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			rl.logger.Debug().Str("clientIP", c.ClientIP()).Msg("Request rejected by rate limiter")
			RespondError(c, http.StatusTooManyRequests,
				dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests").WithSeverity(dto.ErrorSeverityWarning))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *IPRateLimiter) janitor() {
	defer close(rl.done)

	ticker := time.NewTicker(rl.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup removes clients idle for longer than idleTTL
func (rl *IPRateLimiter) cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	removed := 0
	for ip, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	if removed > 0 {
		rl.logger.Debug().Int("removed", removed).Msg("Cleaned up idle rate limiters")
	}
	return removed
}

// Stop ends the janitor and waits for it to exit
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
	<-rl.done
}
