package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second, per client IP
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// Idle limiters are forgotten after this long
	TTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a per-IP limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	return &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.cfg.TTL {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > rl.cfg.TTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).AllowN(rl.now(), 1)
}

// Middleware rejects clients over their budget with 429 Too Many Requests
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		l := rl.limiter(utils.GetRealIP(c))
		now := rl.now()

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Burst))

		if !l.AllowN(now, 1) {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter(rl.cfg.RPS).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(
				common.ErrCodeTooManyRequests,
				"Muitas tentativas. Aguarde um momento e tente novamente.",
				nil,
			))
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(l.TokensAt(now))))
		c.Next()
	}
}

func retryAfter(rps float64) time.Duration {
	if rps <= 0 {
		return time.Minute
	}
	d := time.Duration(float64(time.Second) / rps)
	if d < time.Second {
		return time.Second
	}
	return d
}
