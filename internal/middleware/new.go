package middleware

import (
	"event-planning-assistant/config"
	"event-planning-assistant/pkg/log"
)

// Middleware holds the shared gin middlewares of the HTTP server.
type Middleware struct {
	l              log.Logger
	allowedOrigins map[string]struct{}
	rateLimiter    *rateLimiter
}

// New creates the middleware set. Rate limiting is disabled when rl.Enabled
// is false or the limit is not positive.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	origins := make(map[string]struct{}, len(cors.AllowedOrigins))
	for _, o := range cors.AllowedOrigins {
		origins[o] = struct{}{}
	}

	var limiter *rateLimiter
	if rl.Enabled && rl.RequestsPerMin > 0 {
		limiter = newRateLimiter(rl.RequestsPerMin)
	}

	return Middleware{
		l:              l,
		allowedOrigins: origins,
		rateLimiter:    limiter,
	}
}

// AllowedOriginCount is the number of origins CORS accepts.
func (m Middleware) AllowedOriginCount() int {
	return len(m.allowedOrigins)
}
