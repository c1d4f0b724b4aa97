package middleware

import (
	"krishisaathi/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client IP's
// turn rate; zero disables limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
