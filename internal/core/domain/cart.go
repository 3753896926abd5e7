package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// CartItem snapshots the product price at the moment it was added to the
// cart; checkout never re-reads catalog prices.
type CartItem struct {
	ID           uint64
	AccountID    uint64
	ProductID    uint64
	Quantity     int32
	UnitPrice    decimal.Decimal
	DurationDays int32
	Country      string
	CreatedAt    time.Time
}
