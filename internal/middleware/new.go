package middleware

import (
	"agentforge/pkg/log"
)

// Config tunes the shared middleware.
type Config struct {
	// RequestsPerMin per client IP. Zero disables rate limiting.
	RequestsPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: log.OrNop(l)}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
