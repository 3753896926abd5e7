package port

import (
	"context"
	"time"

	"proxymarket/internal/core/domain"
)

// UpdateBalanceFn mutates an account inside a storage transaction that holds
// a row lock on the account.
type UpdateBalanceFn func(*domain.Account) error

// ReconcileFn mutates a transaction and its owning account inside one storage
// transaction, with row locks on both. Returning an error rolls everything
// back.
type ReconcileFn func(*domain.Transaction, *domain.Account) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Account
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID uint64) (*domain.Account, error)
	GetAccountByLogin(ctx context.Context, login string) (*domain.Account, error)
	UpdateAccountBalance(ctx context.Context, accountID uint64, fn UpdateBalanceFn) (*domain.Account, error)

	// Order
	CreateOrderWithPurchase(ctx context.Context,
		order *domain.Order, txn *domain.Transaction, debit UpdateBalanceFn) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error)
	ListExpiredPendingOrders(ctx context.Context, olderThan time.Time) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error)
	GetOrderSummary(ctx context.Context, accountID uint64, since time.Time) (*domain.OrderSummary, error)

	// Transaction
	CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetTransactionByExternalID(ctx context.Context, externalID string) (*domain.Transaction, error)
	GetTransactionByOrder(ctx context.Context, orderID uint64, txnType domain.TransactionType) (*domain.Transaction, error)
	AttachTransactionExternalID(ctx context.Context, transactionID string, externalID string) error
	ReconcileTransaction(ctx context.Context, transactionID string, fn ReconcileFn) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID uint64) ([]*domain.Transaction, error)

	// Inventory grants
	CreateGrant(ctx context.Context, grant *domain.InventoryGrant) (*domain.InventoryGrant, error)
	ListGrantsByOrder(ctx context.Context, orderID uint64) ([]*domain.InventoryGrant, error)
	ListActiveGrantsByAccount(ctx context.Context, accountID uint64) ([]*domain.InventoryGrant, error)
	DeactivateGrantsByOrder(ctx context.Context, orderID uint64) (int64, error)

	// Cart
	AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ReadCart(ctx context.Context, accountID uint64) ([]*domain.CartItem, error)
	ClearCart(ctx context.Context, accountID uint64) error
}
