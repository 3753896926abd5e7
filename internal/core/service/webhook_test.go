package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
	"proxymarket/internal/core/port/mock"
	"proxymarket/internal/core/service"
)

const webhookSecret = "test-webhook-secret"

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(orderID, status, uuid string) []byte {
	return []byte(fmt.Sprintf(
		`{"order_id":%q,"status":%q,"amount":"25.00","currency":"USD","uuid":%q}`,
		orderID, status, uuid))
}

func newReconciler(t *testing.T, mockCtrl *gomock.Controller) (*service.Reconciler, *mock.MockRepository) {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	r, err := service.NewReconciler(repo, webhookSecret, zap.NewNop())
	require.NoError(t, err)
	return r, repo
}

func pendingDeposit() *domain.Transaction {
	return &domain.Transaction{
		ID:        "TXN-20260826-AAAAAAAA",
		AccountID: 7,
		Amount:    decimal.MustParse("25.00"),
		Currency:  "USD",
		Type:      domain.TransactionTypeDeposit,
		Status:    domain.TransactionStatusPending,
	}
}

func TestReconciler_Apply(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Invalid signature rejected before any lookup", func(t *testing.T) {
		r, _ := newReconciler(t, mockCtrl)

		body := webhookBody("TXN-20260826-AAAAAAAA", "paid", "uuid-1")

		_, err := r.Apply(context.Background(), body, "deadbeef")

		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("Missing signature rejected", func(t *testing.T) {
		r, _ := newReconciler(t, mockCtrl)

		body := webhookBody("TXN-20260826-AAAAAAAA", "paid", "uuid-1")

		_, err := r.Apply(context.Background(), body, "")

		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("Malformed body", func(t *testing.T) {
		r, _ := newReconciler(t, mockCtrl)

		body := []byte(`{"order_id":`)

		_, err := r.Apply(context.Background(), body, signBody(body))

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("Unknown transaction is acknowledged without mutation", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		repo.EXPECT().GetTransaction(gomock.Any(), "TXN-UNKNOWN").
			Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().GetTransactionByExternalID(gomock.Any(), "uuid-1").
			Return(nil, domain.ErrDataNotFound)

		body := webhookBody("TXN-UNKNOWN", "paid", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.False(t, result.Applied)
	})

	t.Run("Paid credits the account once", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		txn := pendingDeposit()
		account := &domain.Account{ID: 7, Balance: decimal.MustParse("1.00")}

		repo.EXPECT().GetTransaction(gomock.Any(), txn.ID).Return(txn, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), txn.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fn port.ReconcileFn) (*domain.Transaction, error) {
				require.NoError(t, fn(txn, account))
				assert.Equal(t, domain.TransactionStatusCompleted, txn.Status)
				assert.Equal(t, "uuid-1", txn.ExternalID)
				assert.Equal(t, "26.00", account.Balance.String())
				return txn, nil
			})

		body := webhookBody(txn.ID, "paid", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Equal(t, domain.TransactionStatusCompleted, result.Status)
	})

	t.Run("Replayed delivery credits nothing", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		settled := pendingDeposit()
		settled.Status = domain.TransactionStatusCompleted
		settled.ExternalID = "uuid-1"

		repo.EXPECT().GetTransaction(gomock.Any(), settled.ID).Return(settled, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), settled.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fn port.ReconcileFn) (*domain.Transaction, error) {
				account := &domain.Account{ID: 7, Balance: decimal.MustParse("26.00")}
				err := fn(settled, account)
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, "26.00", account.Balance.String())
				return nil, err
			})

		body := webhookBody(settled.ID, "paid", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.False(t, result.Applied)
	})

	t.Run("Failed payment never credits", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		txn := pendingDeposit()
		account := &domain.Account{ID: 7, Balance: decimal.MustParse("1.00")}

		repo.EXPECT().GetTransaction(gomock.Any(), txn.ID).Return(txn, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), txn.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fn port.ReconcileFn) (*domain.Transaction, error) {
				require.NoError(t, fn(txn, account))
				assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
				assert.Equal(t, "1.00", account.Balance.String())
				return txn, nil
			})

		body := webhookBody(txn.ID, "fail", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Equal(t, domain.TransactionStatusFailed, result.Status)
	})

	t.Run("Intermediate provider status is a no-op", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		txn := pendingDeposit()
		repo.EXPECT().GetTransaction(gomock.Any(), txn.ID).Return(txn, nil)

		body := webhookBody(txn.ID, "process", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.False(t, result.Applied)
	})

	t.Run("Lookup falls back to provider uuid", func(t *testing.T) {
		r, repo := newReconciler(t, mockCtrl)

		txn := pendingDeposit()
		txn.ExternalID = "uuid-1"
		account := &domain.Account{ID: 7, Balance: decimal.Zero}

		repo.EXPECT().GetTransaction(gomock.Any(), "not-our-id").
			Return(nil, domain.ErrDataNotFound)
		repo.EXPECT().GetTransactionByExternalID(gomock.Any(), "uuid-1").Return(txn, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), txn.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fn port.ReconcileFn) (*domain.Transaction, error) {
				require.NoError(t, fn(txn, account))
				return txn, nil
			})

		body := webhookBody("not-our-id", "paid", "uuid-1")

		result, err := r.Apply(context.Background(), body, signBody(body))

		require.NoError(t, err)
		assert.True(t, result.Applied)
	})
}

func TestMapProviderStatus(t *testing.T) {
	tests := []struct {
		provider string
		expected domain.TransactionStatus
	}{
		{"paid", domain.TransactionStatusCompleted},
		{"paid_over", domain.TransactionStatusCompleted},
		{"confirmed", domain.TransactionStatusCompleted},
		{"fail", domain.TransactionStatusFailed},
		{"wrong_amount", domain.TransactionStatusFailed},
		{"timeout", domain.TransactionStatusFailed},
		{"expired", domain.TransactionStatusFailed},
		{"cancel", domain.TransactionStatusCancelled},
		{"process", domain.TransactionStatusPending},
		{"check", domain.TransactionStatusPending},
		{"something_new", domain.TransactionStatusPending},
		{"PAID", domain.TransactionStatusCompleted},
	}

	for _, test := range tests {
		t.Run(test.provider, func(t *testing.T) {
			assert.Equal(t, test.expected, service.MapProviderStatus(test.provider))
		})
	}
}
