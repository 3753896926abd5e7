package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypePurchase   TransactionType = "PURCHASE"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is the unit of webhook idempotency: created once as PENDING,
// then status-mutated at most once into a terminal state.
type Transaction struct {
	ID          string
	ExternalID  string
	AccountID   uint64
	OrderID     uint64
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
	Status      TransactionStatus
	Description string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Transaction) IsTerminal() bool {
	return t.Status != TransactionStatusPending
}

// TransitionTo enforces the PENDING -> {COMPLETED, FAILED, CANCELLED} state
// machine. Any transition out of a terminal state fails with
// ErrInvalidTransition: callers treat that as "already applied" and no-op,
// which is what makes webhook replays safe.
func (t *Transaction) TransitionTo(status TransactionStatus) error {
	if t.IsTerminal() {
		return ErrInvalidTransition
	}
	switch status {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled:
	default:
		return ErrInvalidTransition
	}
	now := time.Now()
	t.Status = status
	t.ProcessedAt = &now
	t.UpdatedAt = now
	return nil
}

// AttachExternalID is idempotent for the same id and rejects a different one
// once set.
func (t *Transaction) AttachExternalID(externalID string) error {
	if t.ExternalID == externalID {
		return nil
	}
	if t.ExternalID != "" {
		return ErrConflictingExternalID
	}
	t.ExternalID = externalID
	return nil
}

// NewTransactionID generates the internal transaction id, TXN-20060102-XXXXXXXX.
func NewTransactionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s-%s", now.Format("20060102"), suffix)
}
