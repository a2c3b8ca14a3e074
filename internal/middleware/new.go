package middleware

import (
	"game-manager/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RateLimitPerMin int // per client IP; 0 disables limiting
	RateLimitBurst  int // defaults to a tenth of the per-minute rate, at least 1
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst),
	}
}
