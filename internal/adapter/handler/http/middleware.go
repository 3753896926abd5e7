package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"proxymarket/internal/adapter/metrics"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const accountPayloadKey = "account_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(accountPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(accountPayloadKey).(*port.TokenPayload)
}

// rateLimit enforces a per-account sliding window on authenticated routes
// and a per-client-IP window on anonymous ones (webhooks).
func rateLimit(limiter port.RateLimiter, m *metrics.Metrics,
	scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var key string
		if payload, ok := ctx.Get(accountPayloadKey); ok {
			key = "rl:" + scope + ":" + strconv.FormatUint(payload.(*port.TokenPayload).AccountID, 10)
		} else {
			key = "rl:" + scope + ":" + ctx.ClientIP()
		}

		if !limiter.Allow(ctx, key, limit, window) {
			if m != nil {
				m.RateLimitDrops.WithLabelValues(scope).Inc()
			}
			handleAbort(ctx, domain.ErrTooManyRequests)
			return
		}

		ctx.Next()
	}
}
