package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"proxymarket/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrInvalidSignature:           http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,
	domain.ErrGuestCheckout:              http.StatusForbidden,

	domain.ErrBadRequest: http.StatusBadRequest,
	domain.ErrEmptyCart:  http.StatusBadRequest,

	domain.ErrInsufficientBalance: http.StatusPaymentRequired,

	domain.ErrNonPositiveAmount:    http.StatusUnprocessableEntity,
	domain.ErrUnsupportedCurrency:  http.StatusUnprocessableEntity,
	domain.ErrOrderLimitExceeded:   http.StatusUnprocessableEntity,
	domain.ErrPaymentLimitExceeded: http.StatusUnprocessableEntity,

	domain.ErrInvalidOrderState:     http.StatusConflict,
	domain.ErrInvalidTransition:     http.StatusConflict,
	domain.ErrConflictingExternalID: http.StatusConflict,

	domain.ErrTooManyRequests:       http.StatusTooManyRequests,
	domain.ErrServiceUnavailable:    http.StatusServiceUnavailable,
	domain.ErrInventoryProvisioning: http.StatusBadGateway,
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithError(statusCode, err)
}
