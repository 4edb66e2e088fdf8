package middleware

import (
	"luminaria-skill/pkg/log"
)

// Config holds transport middleware settings.
type Config struct {
	RateLimitEnabled bool
	RateLimitPerMin  int // max requests per minute per client IP
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
