package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusFailed     OrderStatus = "FAILED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type Order struct {
	ID          uint64
	Number      string
	AccountID   uint64
	TotalAmount decimal.Decimal
	Currency    string
	Status      OrderStatus
	Lines       []OrderLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderLine struct {
	ID         uint64
	OrderID    uint64
	ProductID  uint64
	Quantity   int32
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// NewOrderLine keeps the unit_price*quantity == total_price invariant in one place.
func NewOrderLine(productID uint64, quantity int32, unitPrice decimal.Decimal) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, ErrNonPositiveAmount
	}
	qty, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return OrderLine{}, fmt.Errorf("math error:%w", err)
	}
	total, err := unitPrice.Mul(qty)
	if err != nil {
		return OrderLine{}, fmt.Errorf("math error:%w", err)
	}
	return OrderLine{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: total,
	}, nil
}

// CanCancel reports whether a user-initiated cancellation is allowed.
// Pre-payment and post-payment orders may be cancelled, terminal ones may not.
func (o *Order) CanCancel() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Paid reports whether funds were already debited for the order.
func (o *Order) Paid() bool {
	switch o.Status {
	case OrderStatusPaid, OrderStatusProcessing, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// NewOrderNumber generates a human-readable globally unique order number,
// ORD-20060102-XXXXXXXX.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

type OrderSummary struct {
	TotalOrders     int
	TotalAmount     decimal.Decimal
	StatusBreakdown map[OrderStatus]int
	PeriodDays      int
}
