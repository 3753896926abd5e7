package service

import (
	"context"
	"fmt"
	"time"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"

	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const maxDepositAmount = "100000.00"

var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "RUB": true,
	"BTC": true, "ETH": true, "USDT": true,
}

// CreateDeposit opens a pending DEPOSIT transaction and asks the payment
// provider for a hosted payment page. The balance is credited later, by the
// webhook reconciler, never here.
func (s *Service) CreateDeposit(ctx context.Context, accountID uint64,
	amount decimal.Decimal, currency string) (*port.Deposit, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.IsGuest {
		return nil, domain.ErrGuestCheckout
	}

	if !amount.IsPos() {
		return nil, domain.ErrNonPositiveAmount
	}
	if amount.Cmp(decimal.MustParse(maxDepositAmount)) > 0 {
		return nil, domain.ErrPaymentLimitExceeded
	}
	if currency == "" {
		currency = "USD"
	}
	if !supportedCurrencies[currency] {
		return nil, domain.ErrUnsupportedCurrency
	}

	now := time.Now()
	txn, err := s.repo.CreateTransaction(ctx, &domain.Transaction{
		ID:          domain.NewTransactionID(now),
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Type:        domain.TransactionTypeDeposit,
		Status:      domain.TransactionStatusPending,
		Description: fmt.Sprintf("Balance top-up %s %s", amount, currency),
	})
	if err != nil {
		return nil, err
	}

	var intent *port.PaymentIntent
	err = s.paymentCB.Do(ctx, func(ctx context.Context) error {
		var callErr error
		intent, callErr = s.payment.CreatePayment(ctx, port.CreatePaymentRequest{
			Amount:      amount,
			Currency:    currency,
			OrderID:     txn.ID,
			CallbackURL: s.callbackURL,
		})
		return callErr
	})
	if err != nil {
		// Leave nothing dangling: the provider never saw the invoice.
		_, failErr := s.repo.ReconcileTransaction(ctx, txn.ID,
			func(t *domain.Transaction, _ *domain.Account) error {
				return t.TransitionTo(domain.TransactionStatusFailed)
			})
		if failErr != nil {
			s.logger.Error("Fail deposit transaction", zap.String("transaction", txn.ID), zap.Error(failErr))
		}
		s.logger.Error("Create provider payment", zap.String("transaction", txn.ID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.AttachTransactionExternalID(ctx, txn.ID, intent.ExternalID); err != nil {
		s.logger.Error("Attach external id",
			zap.String("transaction", txn.ID), zap.String("external", intent.ExternalID), zap.Error(err))
		return nil, err
	}
	txn.ExternalID = intent.ExternalID

	return &port.Deposit{Transaction: txn, PayURL: intent.PayURL}, nil
}

// CancelDeposit cancels a still-pending top-up. The provider-side cancel is
// best effort; the local transition is what counts.
func (s *Service) CancelDeposit(ctx context.Context, accountID uint64, transactionID string) error {
	txn, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.AccountID != accountID {
		return domain.ErrDataNotFound
	}
	if txn.Type != domain.TransactionTypeDeposit || txn.IsTerminal() {
		return domain.ErrInvalidTransition
	}

	if txn.ExternalID != "" {
		cancelErr := s.paymentCB.Do(ctx, func(ctx context.Context) error {
			return s.payment.CancelPayment(ctx, txn.ExternalID)
		})
		if cancelErr != nil {
			s.logger.Warn("Provider-side payment cancel",
				zap.String("transaction", transactionID), zap.Error(cancelErr))
		}
	}

	_, err = s.repo.ReconcileTransaction(ctx, transactionID,
		func(t *domain.Transaction, _ *domain.Account) error {
			return t.TransitionTo(domain.TransactionStatusCancelled)
		})
	return err
}
