package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"proxymarket/internal/adapter/metrics"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
	"proxymarket/internal/core/service"
)

const signatureHeaderKey = "X-Signature"

type PaymentHandler struct {
	Handler
	service    port.Service
	reconciler *service.Reconciler
	metrics    *metrics.Metrics
}

func NewPaymentHandler(svc port.Service, reconciler *service.Reconciler,
	m *metrics.Metrics, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler:    *NewHandler(logger),
		service:    svc,
		reconciler: reconciler,
		metrics:    m,
	}, nil
}

type depositRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency" binding:"required"`
}

type depositResponse struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PayURL        string          `json:"pay_url"`
}

func (ph *PaymentHandler) CreateDeposit(ctx *gin.Context) {
	req := depositRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	deposit, err := ph.service.CreateDeposit(ctx, getAuthPayload(ctx).AccountID, amount, req.Currency)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, depositResponse{
		TransactionID: deposit.Transaction.ID,
		Amount:        deposit.Transaction.Amount,
		Currency:      deposit.Transaction.Currency,
		Status:        string(deposit.Transaction.Status),
		PayURL:        deposit.PayURL,
	}, http.StatusCreated)
}

func (ph *PaymentHandler) CancelDeposit(ctx *gin.Context) {
	transactionID := ctx.Param("transaction")
	if transactionID == "" {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err := ph.service.CancelDeposit(ctx, getAuthPayload(ctx).AccountID, transactionID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type webhookResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Webhook receives payment-status notifications. Everything past signature
// verification answers 200 so the provider stops retrying deliveries we have
// already settled or can never settle.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	rawBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	defer ctx.Request.Body.Close()

	result, err := ph.reconciler.Apply(ctx, rawBody, ctx.GetHeader(signatureHeaderKey))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			ph.countWebhook("rejected")
			ph.handleError(ctx, err)
			return
		}
		ph.countWebhook("error")
		ph.logger.Error("webhook processing failed", zap.Error(err))
		ctx.JSON(http.StatusOK, webhookResponse{Status: "error"})
		return
	}

	if result.Applied {
		ph.countWebhook("applied")
	} else {
		ph.countWebhook("ignored")
	}
	ctx.JSON(http.StatusOK, webhookResponse{Status: "success", TransactionID: result.TransactionID})
}

func (ph *PaymentHandler) countWebhook(outcome string) {
	if ph.metrics != nil {
		ph.metrics.WebhookEvents.WithLabelValues(outcome).Inc()
	}
}
