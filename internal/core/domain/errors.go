package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInsufficientBalance   = errors.New("balance is not enough")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrGuestCheckout         = errors.New("guest accounts cannot pay from balance")
	ErrOrderLimitExceeded    = errors.New("order exceeds amount or item limit")
	ErrPaymentLimitExceeded  = errors.New("payment amount exceeds maximum limit")
	ErrInvalidOrderState     = errors.New("operation is not allowed for current order status")
	ErrInvalidTransition     = errors.New("transaction status transition is not allowed")
	ErrConflictingExternalID = errors.New("transaction already has a different external id")
	ErrUnsupportedCurrency   = errors.New("currency is not supported")
	ErrNonPositiveAmount     = errors.New("amount must be positive")

	// * Integration errors.
	ErrServiceUnavailable    = errors.New("external service is unavailable")
	ErrInventoryProvisioning = errors.New("inventory provisioning failed")
	ErrInvalidSignature      = errors.New("webhook signature is invalid")
	ErrTooManyRequests       = errors.New("rate limit exceeded")
)
