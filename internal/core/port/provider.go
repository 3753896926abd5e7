package port

import (
	"context"

	"github.com/govalues/decimal"
)

type CreatePaymentRequest struct {
	Amount      decimal.Decimal
	Currency    string
	OrderID     string // internal transaction id, echoed back in webhooks
	CallbackURL string
}

type PaymentIntent struct {
	ExternalID string
	PayURL     string
}

//go:generate mockgen -source=provider.go -destination=mock/provider.go -package=mock
type PaymentProvider interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentIntent, error)
	CancelPayment(ctx context.Context, externalID string) error
}

type PurchaseRequest struct {
	ProductID    uint64
	Quantity     int32
	DurationDays int32
	Country      string
}

type PurchaseResult struct {
	ProviderOrderID string
	ProxyList       string
	Username        string
	Password        string
}

type InventoryProvider interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	Revoke(ctx context.Context, providerOrderID string) error
}
