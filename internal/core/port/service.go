package port

import (
	"context"

	"proxymarket/internal/core/domain"

	"github.com/govalues/decimal"
)

// Deposit is a created balance top-up: the pending transaction plus the
// provider-hosted payment page the user is redirected to.
type Deposit struct {
	Transaction *domain.Transaction
	PayURL      string
}

type Service interface {
	RegisterAccount(ctx context.Context, login string, password string) (*domain.Account, error)
	LoginAccount(ctx context.Context, login string, password string) (string, error)

	AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	GetCart(ctx context.Context, accountID uint64) ([]*domain.CartItem, error)

	CreateOrderFromCart(ctx context.Context, accountID uint64) (*domain.Order, error)
	CancelOrder(ctx context.Context, accountID uint64, orderID uint64, reason string) (*domain.Order, error)
	GetOrder(ctx context.Context, accountID uint64, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, accountID uint64) ([]*domain.Order, error)
	GetOrderSummary(ctx context.Context, accountID uint64, days int) (*domain.OrderSummary, error)

	GetBalance(ctx context.Context, accountID uint64) (*domain.Account, error)
	CreateDeposit(ctx context.Context, accountID uint64, amount decimal.Decimal, currency string) (*Deposit, error)
	CancelDeposit(ctx context.Context, accountID uint64, transactionID string) error
	ListTransactions(ctx context.Context, accountID uint64) ([]*domain.Transaction, error)

	ListActiveGrants(ctx context.Context, accountID uint64) ([]*domain.InventoryGrant, error)
}
