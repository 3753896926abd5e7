package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

type CartHandler struct {
	Handler
	service port.Service
}

func NewCartHandler(service port.Service, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type cartItemRequest struct {
	ProductID    uint64  `json:"product_id" binding:"required"`
	Quantity     int32   `json:"quantity" binding:"required"`
	UnitPrice    float64 `json:"unit_price" binding:"required"`
	DurationDays int32   `json:"duration_days"`
	Country      string  `json:"country"`
}

type cartItemResponse struct {
	ID           uint64          `json:"id"`
	ProductID    uint64          `json:"product_id"`
	Quantity     int32           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	DurationDays int32           `json:"duration_days"`
	Country      string          `json:"country,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (ch *CartHandler) AddCartItem(ctx *gin.Context) {
	req := cartItemRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	price, err := decimal.NewFromFloat64(req.UnitPrice)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	item := &domain.CartItem{
		AccountID:    getAuthPayload(ctx).AccountID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		UnitPrice:    price,
		DurationDays: req.DurationDays,
		Country:      req.Country,
	}

	created, err := ch.service.AddCartItem(ctx, item)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCartItemResponse(created))
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	items, err := ch.service.GetCart(ctx, getAuthPayload(ctx).AccountID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, newCartItemResponse(item))
	}

	ch.handleSuccess(ctx, result)
}

func newCartItemResponse(item *domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		DurationDays: item.DurationDays,
		Country:      item.Country,
		CreatedAt:    item.CreatedAt,
	}
}
