package domain

import "time"

// InventoryGrant is a provisioned proxy subscription. Created only after the
// owning order is paid, deactivated on cancellation, refund or expiry.
type InventoryGrant struct {
	ID              uint64
	OrderID         uint64
	AccountID       uint64
	ProductID       uint64
	ProxyList       string
	Username        string
	Password        string
	ProviderOrderID string
	ExpiresAt       time.Time
	IsActive        bool
	CreatedAt       time.Time
}
