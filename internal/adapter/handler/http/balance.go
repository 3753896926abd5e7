package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func (bh *BalanceHandler) GetBalance(ctx *gin.Context) {
	account, err := bh.service.GetBalance(ctx, getAuthPayload(ctx).AccountID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{Balance: account.Balance})
}

type transactionResponse struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id,omitempty"`
	OrderID     uint64          `json:"order_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newTransactionResponse(txn *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          txn.ID,
		ExternalID:  txn.ExternalID,
		OrderID:     txn.OrderID,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		Description: txn.Description,
		ProcessedAt: txn.ProcessedAt,
		CreatedAt:   txn.CreatedAt,
	}
}

func (bh *BalanceHandler) ListTransactions(ctx *gin.Context) {
	list, err := bh.service.ListTransactions(ctx, getAuthPayload(ctx).AccountID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	result := make([]transactionResponse, 0, len(list))
	for _, txn := range list {
		result = append(result, newTransactionResponse(txn))
	}

	bh.handleSuccess(ctx, result)
}

type grantResponse struct {
	ID        uint64    `json:"id"`
	OrderID   uint64    `json:"order_id"`
	ProductID uint64    `json:"product_id"`
	ProxyList string    `json:"proxy_list"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (bh *BalanceHandler) ListActiveGrants(ctx *gin.Context) {
	grants, err := bh.service.ListActiveGrants(ctx, getAuthPayload(ctx).AccountID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	result := make([]grantResponse, 0, len(grants))
	for _, grant := range grants {
		result = append(result, grantResponse{
			ID:        grant.ID,
			OrderID:   grant.OrderID,
			ProductID: grant.ProductID,
			ProxyList: grant.ProxyList,
			Username:  grant.Username,
			Password:  grant.Password,
			ExpiresAt: grant.ExpiresAt,
		})
	}

	bh.handleSuccess(ctx, result)
}
