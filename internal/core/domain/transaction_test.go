package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxymarket/internal/core/domain"
)

func TestTransaction_TransitionTo(t *testing.T) {
	terminal := []domain.TransactionStatus{
		domain.TransactionStatusCompleted,
		domain.TransactionStatusFailed,
		domain.TransactionStatusCancelled,
	}

	for _, target := range terminal {
		t.Run("pending to "+string(target), func(t *testing.T) {
			txn := domain.Transaction{Status: domain.TransactionStatusPending}

			require.NoError(t, txn.TransitionTo(target))

			assert.Equal(t, target, txn.Status)
			assert.True(t, txn.IsTerminal())
			require.NotNil(t, txn.ProcessedAt)
			assert.WithinDuration(t, time.Now(), *txn.ProcessedAt, time.Second)
		})
	}

	for _, from := range terminal {
		for _, target := range terminal {
			t.Run("no exit from "+string(from), func(t *testing.T) {
				txn := domain.Transaction{Status: from}

				err := txn.TransitionTo(target)

				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, from, txn.Status)
			})
		}
	}

	t.Run("pending to pending rejected", func(t *testing.T) {
		txn := domain.Transaction{Status: domain.TransactionStatusPending}

		err := txn.TransitionTo(domain.TransactionStatusPending)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestTransaction_AttachExternalID(t *testing.T) {
	txn := domain.Transaction{}

	require.NoError(t, txn.AttachExternalID("uuid-1"))
	assert.Equal(t, "uuid-1", txn.ExternalID)

	// Same id again is a no-op.
	require.NoError(t, txn.AttachExternalID("uuid-1"))

	err := txn.AttachExternalID("uuid-2")
	assert.ErrorIs(t, err, domain.ErrConflictingExternalID)
	assert.Equal(t, "uuid-1", txn.ExternalID)
}

func TestNewTransactionID(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	id := domain.NewTransactionID(now)
	other := domain.NewTransactionID(now)

	assert.True(t, strings.HasPrefix(id, "TXN-20260826-"))
	assert.Len(t, id, len("TXN-20260826-")+8)
	assert.NotEqual(t, id, other)
}
