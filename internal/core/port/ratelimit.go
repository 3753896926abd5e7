package port

import (
	"context"
	"time"
)

// RateLimiter bounds how often a principal may invoke sensitive operations.
// Implementations fail open: a store outage must not block legitimate traffic.
//
//go:generate mockgen -source=ratelimit.go -destination=mock/ratelimit.go -package=mock
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}
