package middleware

import (
	"item-store-api/pkg/log"
)

// Config configures the shared HTTP middleware.
type Config struct {
	// Environment selects the CORS policy; production restricts origins to AllowedOrigins.
	Environment     string
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l              log.Logger
	environment    string
	allowedOrigins map[string]bool
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}

	var limiter *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	return Middleware{
		l:              l,
		environment:    cfg.Environment,
		allowedOrigins: origins,
		limiter:        limiter,
	}
}
