package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"

	"go.uber.org/zap"
)

// WebhookEvent is the provider's payment-status notification payload.
type WebhookEvent struct {
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	UUID     string `json:"uuid"`
	Sign     string `json:"sign"`
}

// WebhookResult reports what a delivery did. Applied is false for replays,
// unknown transactions and still-pending provider statuses.
type WebhookResult struct {
	TransactionID string
	Status        domain.TransactionStatus
	Applied       bool
}

// Reconciler applies asynchronous payment notifications to the transaction
// ledger and the account balance, exactly once per provider event. Signature
// verification happens before any state lookup; idempotency is enforced by
// the transaction state machine, not by deduplicating deliveries.
type Reconciler struct {
	repo   port.Repository
	secret []byte
	logger *zap.Logger
}

func NewReconciler(repo port.Repository, secret string, logger *zap.Logger) (*Reconciler, error) {
	return &Reconciler{
		repo:   repo,
		secret: []byte(secret),
		logger: logger,
	}, nil
}

func (r *Reconciler) Apply(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error) {
	if !r.verifySignature(rawBody, signature) {
		return nil, domain.ErrInvalidSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, domain.ErrBadRequest
	}

	txn, err := r.resolveTransaction(ctx, &event)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// Unknown invoice: answer success so the provider stops
			// retrying, mutate nothing.
			r.logger.Warn("Webhook for unknown transaction", zap.String("order_id", event.OrderID))
			return &WebhookResult{TransactionID: event.OrderID}, nil
		}
		return nil, err
	}

	mapped := MapProviderStatus(event.Status)
	if mapped == domain.TransactionStatusPending {
		return &WebhookResult{TransactionID: txn.ID, Status: txn.Status}, nil
	}

	updated, err := r.repo.ReconcileTransaction(ctx, txn.ID,
		func(t *domain.Transaction, acc *domain.Account) error {
			if err := t.TransitionTo(mapped); err != nil {
				return err
			}
			if event.UUID != "" {
				if err := t.AttachExternalID(event.UUID); err != nil {
					return err
				}
			}
			// The credit is gated on the transition having just happened:
			// that ordering is what makes a retried delivery credit nothing.
			if mapped == domain.TransactionStatusCompleted && t.Type == domain.TransactionTypeDeposit {
				return acc.Credit(t.Amount)
			}
			return nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// Replay of an already-settled event.
			r.logger.Info("Webhook replay ignored",
				zap.String("transaction", txn.ID), zap.String("status", event.Status))
			return &WebhookResult{TransactionID: txn.ID, Status: txn.Status}, nil
		}
		return nil, err
	}

	r.logger.Info("Webhook applied",
		zap.String("transaction", updated.ID),
		zap.String("provider_status", event.Status),
		zap.String("status", string(updated.Status)))
	return &WebhookResult{TransactionID: updated.ID, Status: updated.Status, Applied: true}, nil
}

// verifySignature checks HMAC-SHA256 of the raw body. An optional "sha256="
// prefix on the header value is accepted.
func (r *Reconciler) verifySignature(rawBody []byte, signature string) bool {
	if len(r.secret) == 0 || signature == "" {
		return false
	}
	signature = strings.TrimPrefix(signature, "sha256=")

	mac := hmac.New(sha256.New, r.secret)
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// resolveTransaction maps the provider's order_id to the internal transaction
// id, falling back to the provider-issued uuid.
func (r *Reconciler) resolveTransaction(ctx context.Context, event *WebhookEvent) (*domain.Transaction, error) {
	if event.OrderID != "" {
		txn, err := r.repo.GetTransaction(ctx, event.OrderID)
		if err == nil {
			return txn, nil
		}
		if !errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
	}
	if event.UUID != "" {
		return r.repo.GetTransactionByExternalID(ctx, event.UUID)
	}
	return nil, domain.ErrDataNotFound
}

// MapProviderStatus translates the provider's status vocabulary into the
// internal one. Anything unknown stays PENDING so a bad payload can never
// settle a transaction.
func MapProviderStatus(providerStatus string) domain.TransactionStatus {
	switch strings.ToLower(providerStatus) {
	case "paid", "paid_over", "confirmed":
		return domain.TransactionStatusCompleted
	case "fail", "wrong_amount", "timeout", "expired":
		return domain.TransactionStatusFailed
	case "cancel":
		return domain.TransactionStatusCancelled
	default:
		return domain.TransactionStatusPending
	}
}
