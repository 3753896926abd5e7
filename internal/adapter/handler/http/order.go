package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"proxymarket/internal/adapter/metrics"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

type OrderHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewOrderHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

type orderLineResponse struct {
	ProductID  uint64          `json:"product_id"`
	Quantity   int32           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type orderResponse struct {
	ID          uint64              `json:"id"`
	Number      string              `json:"number"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	Lines       []orderLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		ID:          order.ID,
		Number:      order.Number,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}
	return resp
}

// CreateOrder runs the whole checkout for the caller's cart.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	accountID := getAuthPayload(ctx).AccountID

	order, err := oh.service.CreateOrderFromCart(ctx, accountID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	if oh.metrics != nil {
		oh.metrics.OrdersCreated.WithLabelValues(string(order.Status)).Inc()
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	accountID := getAuthPayload(ctx).AccountID

	orderID, err := strconv.ParseUint(ctx.Param("order"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := cancelOrderRequest{}
	_ = ctx.ShouldBindBodyWithJSON(&req)

	order, err := oh.service.CancelOrder(ctx, accountID, orderID, req.Reason)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	accountID := getAuthPayload(ctx).AccountID

	orderID, err := strconv.ParseUint(ctx.Param("order"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, accountID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	accountID := getAuthPayload(ctx).AccountID

	list, err := oh.service.ListOrders(ctx, accountID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}

type orderSummaryResponse struct {
	TotalOrders     int             `json:"total_orders"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	StatusBreakdown map[string]int  `json:"status_breakdown"`
	PeriodDays      int             `json:"period_days"`
}

func (oh *OrderHandler) GetOrderSummary(ctx *gin.Context) {
	accountID := getAuthPayload(ctx).AccountID

	days := 0
	if raw := ctx.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		days = parsed
	}

	summary, err := oh.service.GetOrderSummary(ctx, accountID, days)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	breakdown := make(map[string]int, len(summary.StatusBreakdown))
	for status, count := range summary.StatusBreakdown {
		breakdown[string(status)] = count
	}

	oh.handleSuccess(ctx, orderSummaryResponse{
		TotalOrders:     summary.TotalOrders,
		TotalAmount:     summary.TotalAmount,
		StatusBreakdown: breakdown,
		PeriodDays:      summary.PeriodDays,
	})
}
