package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
	"proxymarket/internal/core/port/mock"
)

func TestService_CreateOrderFromCart(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const accountID = uint64(7)

	cart := []*domain.CartItem{
		{ID: 1, AccountID: accountID, ProductID: 42, Quantity: 2,
			UnitPrice: decimal.MustParse("2.00"), DurationDays: 30},
	}

	t.Run("Checkout good", func(t *testing.T) {
		account := &domain.Account{ID: accountID, Login: "buyer", Balance: decimal.MustParse("10.00")}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetAccount(gomock.Any(), accountID).Return(account, nil)
		repo.EXPECT().ReadCart(gomock.Any(), accountID).Return(cart, nil)

		repo.EXPECT().CreateOrderWithPurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order,
				txn *domain.Transaction, debit port.UpdateBalanceFn) (*domain.Order, error) {
				require.NoError(t, debit(account))
				assert.Equal(t, "6.00", account.Balance.String())
				assert.Equal(t, "4.00", order.TotalAmount.String())
				assert.Equal(t, domain.TransactionTypePurchase, txn.Type)
				assert.Equal(t, domain.TransactionStatusPending, txn.Status)
				order.ID = 100
				txn.OrderID = order.ID
				return order, nil
			})
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(100), domain.OrderStatusPaid).
			Return(&domain.Order{ID: 100, Status: domain.OrderStatusPaid}, nil)

		inventory.EXPECT().Purchase(gomock.Any(), port.PurchaseRequest{
			ProductID: 42, Quantity: 2, DurationDays: 30,
		}).Return(&port.PurchaseResult{
			ProviderOrderID: "711-1", ProxyList: "1.2.3.4:8080", Username: "u", Password: "p",
		}, nil)

		repo.EXPECT().CreateGrant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, grant *domain.InventoryGrant) (*domain.InventoryGrant, error) {
				assert.Equal(t, uint64(100), grant.OrderID)
				assert.Equal(t, "711-1", grant.ProviderOrderID)
				assert.True(t, grant.IsActive)
				return grant, nil
			})
		repo.EXPECT().ReconcileTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transactionID string,
				fn port.ReconcileFn) (*domain.Transaction, error) {
				txn := &domain.Transaction{ID: transactionID, Status: domain.TransactionStatusPending}
				require.NoError(t, fn(txn, account))
				assert.Equal(t, domain.TransactionStatusCompleted, txn.Status)
				assert.Equal(t, "6.00", account.Balance.String())
				return txn, nil
			})
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(100), domain.OrderStatusCompleted).
			Return(&domain.Order{ID: 100, Status: domain.OrderStatusCompleted}, nil)
		repo.EXPECT().ClearCart(gomock.Any(), accountID).Return(nil)

		order, err := s.CreateOrderFromCart(context.Background(), accountID)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.Equal(t, "4.00", order.TotalAmount.String())
	})

	t.Run("Insufficient balance leaves nothing behind", func(t *testing.T) {
		account := &domain.Account{ID: accountID, Login: "buyer", Balance: decimal.MustParse("1.00")}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetAccount(gomock.Any(), accountID).Return(account, nil)
		repo.EXPECT().ReadCart(gomock.Any(), accountID).Return(cart, nil)
		repo.EXPECT().CreateOrderWithPurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *domain.Order,
				_ *domain.Transaction, debit port.UpdateBalanceFn) (*domain.Order, error) {
				err := debit(account)
				require.ErrorIs(t, err, domain.ErrInsufficientBalance)
				return nil, err
			})

		_, err := s.CreateOrderFromCart(context.Background(), accountID)

		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, "1.00", account.Balance.String())
	})

	t.Run("Empty cart", func(t *testing.T) {
		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetAccount(gomock.Any(), accountID).
			Return(&domain.Account{ID: accountID}, nil)
		repo.EXPECT().ReadCart(gomock.Any(), accountID).Return([]*domain.CartItem{}, nil)

		_, err := s.CreateOrderFromCart(context.Background(), accountID)

		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("Guest checkout rejected", func(t *testing.T) {
		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetAccount(gomock.Any(), accountID).
			Return(&domain.Account{ID: accountID, IsGuest: true}, nil)

		_, err := s.CreateOrderFromCart(context.Background(), accountID)

		assert.ErrorIs(t, err, domain.ErrGuestCheckout)
	})

	t.Run("Provisioning failure refunds exactly the debit", func(t *testing.T) {
		account := &domain.Account{ID: accountID, Login: "buyer", Balance: decimal.MustParse("10.00")}

		twoItems := []*domain.CartItem{
			{ID: 1, AccountID: accountID, ProductID: 42, Quantity: 2,
				UnitPrice: decimal.MustParse("2.00"), DurationDays: 30},
			{ID: 2, AccountID: accountID, ProductID: 43, Quantity: 1,
				UnitPrice: decimal.MustParse("3.50"), DurationDays: 30},
		}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetAccount(gomock.Any(), accountID).Return(account, nil)
		repo.EXPECT().ReadCart(gomock.Any(), accountID).Return(twoItems, nil)
		repo.EXPECT().CreateOrderWithPurchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order,
				txn *domain.Transaction, debit port.UpdateBalanceFn) (*domain.Order, error) {
				require.NoError(t, debit(account))
				assert.Equal(t, "2.50", account.Balance.String())
				order.ID = 101
				txn.OrderID = order.ID
				return order, nil
			})
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(101), domain.OrderStatusPaid).
			Return(&domain.Order{ID: 101, Status: domain.OrderStatusPaid}, nil)

		inventory.EXPECT().Purchase(gomock.Any(), port.PurchaseRequest{
			ProductID: 42, Quantity: 2, DurationDays: 30,
		}).Return(&port.PurchaseResult{ProviderOrderID: "711-1"}, nil)
		inventory.EXPECT().Purchase(gomock.Any(), port.PurchaseRequest{
			ProductID: 43, Quantity: 1, DurationDays: 30,
		}).Return(nil, errors.New("provider down"))

		// Compensation: the already-provisioned line is revoked and the full
		// order amount comes back.
		inventory.EXPECT().Revoke(gomock.Any(), "711-1").Return(nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transactionID string,
				fn port.ReconcileFn) (*domain.Transaction, error) {
				txn := &domain.Transaction{ID: transactionID, Status: domain.TransactionStatusPending}
				require.NoError(t, fn(txn, account))
				assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
				assert.Equal(t, "10.00", account.Balance.String())
				return txn, nil
			})
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(101), domain.OrderStatusFailed).
			Return(&domain.Order{ID: 101, Status: domain.OrderStatusFailed}, nil)

		_, err := s.CreateOrderFromCart(context.Background(), accountID)

		assert.ErrorIs(t, err, domain.ErrInventoryProvisioning)
	})
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const accountID = uint64(7)

	t.Run("Cancel paid order refunds and revokes", func(t *testing.T) {
		account := &domain.Account{ID: accountID, Balance: decimal.MustParse("0.00")}
		order := &domain.Order{ID: 100, Number: "ORD-20260826-AAAAAAAA", AccountID: accountID,
			TotalAmount: decimal.MustParse("4.00"), Currency: "USD", Status: domain.OrderStatusCompleted}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TransactionTypeRefund, txn.Type)
				assert.Equal(t, "4.00", txn.Amount.String())
				return txn, nil
			})
		repo.EXPECT().ReconcileTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transactionID string,
				fn port.ReconcileFn) (*domain.Transaction, error) {
				txn := &domain.Transaction{ID: transactionID, Status: domain.TransactionStatusPending}
				require.NoError(t, fn(txn, account))
				assert.Equal(t, "4.00", account.Balance.String())
				return txn, nil
			})
		repo.EXPECT().ListGrantsByOrder(gomock.Any(), order.ID).Return([]*domain.InventoryGrant{
			{ID: 1, OrderID: order.ID, ProviderOrderID: "711-1", IsActive: true},
		}, nil)
		repo.EXPECT().DeactivateGrantsByOrder(gomock.Any(), order.ID).Return(int64(1), nil)
		inventory.EXPECT().Revoke(gomock.Any(), "711-1").Return(nil)
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, domain.OrderStatusCancelled).
			Return(&domain.Order{ID: order.ID, Status: domain.OrderStatusCancelled}, nil)

		cancelled, err := s.CancelOrder(context.Background(), accountID, order.ID, "changed my mind")

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("Cancel pending order returns the debit", func(t *testing.T) {
		// A PENDING order means the debit committed but provisioning never
		// settled the purchase transaction.
		account := &domain.Account{ID: accountID, Balance: decimal.MustParse("6.00")}
		order := &domain.Order{ID: 102, Number: "ORD-20260826-BBBBBBBB", AccountID: accountID,
			TotalAmount: decimal.MustParse("4.00"), Currency: "USD", Status: domain.OrderStatusPending}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
		repo.EXPECT().GetTransactionByOrder(gomock.Any(), order.ID, domain.TransactionTypePurchase).
			Return(&domain.Transaction{ID: "TXN-20260826-BBBBBBBB", AccountID: accountID,
				OrderID: order.ID, Amount: order.TotalAmount,
				Type: domain.TransactionTypePurchase, Status: domain.TransactionStatusPending}, nil)
		repo.EXPECT().ReconcileTransaction(gomock.Any(), "TXN-20260826-BBBBBBBB", gomock.Any()).
			DoAndReturn(func(_ context.Context, transactionID string,
				fn port.ReconcileFn) (*domain.Transaction, error) {
				txn := &domain.Transaction{ID: transactionID, Status: domain.TransactionStatusPending}
				require.NoError(t, fn(txn, account))
				assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
				assert.Equal(t, "10.00", account.Balance.String())
				return txn, nil
			})
		repo.EXPECT().ListGrantsByOrder(gomock.Any(), order.ID).Return([]*domain.InventoryGrant{}, nil)
		repo.EXPECT().DeactivateGrantsByOrder(gomock.Any(), order.ID).Return(int64(0), nil)
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, domain.OrderStatusCancelled).
			Return(&domain.Order{ID: order.ID, Status: domain.OrderStatusCancelled}, nil)

		cancelled, err := s.CancelOrder(context.Background(), accountID, order.ID, "stuck checkout")

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, "10.00", account.Balance.String())
	})

	t.Run("Cancel pending order with settled purchase credits nothing", func(t *testing.T) {
		account := &domain.Account{ID: accountID, Balance: decimal.MustParse("10.00")}
		order := &domain.Order{ID: 103, Number: "ORD-20260826-CCCCCCCC", AccountID: accountID,
			TotalAmount: decimal.MustParse("4.00"), Currency: "USD", Status: domain.OrderStatusPending}

		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)
		repo.EXPECT().GetTransactionByOrder(gomock.Any(), order.ID, domain.TransactionTypePurchase).
			Return(&domain.Transaction{ID: "TXN-20260826-CCCCCCCC", AccountID: accountID,
				OrderID: order.ID, Amount: order.TotalAmount,
				Type: domain.TransactionTypePurchase, Status: domain.TransactionStatusFailed}, nil)
		repo.EXPECT().ListGrantsByOrder(gomock.Any(), order.ID).Return([]*domain.InventoryGrant{}, nil)
		repo.EXPECT().DeactivateGrantsByOrder(gomock.Any(), order.ID).Return(int64(0), nil)
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, domain.OrderStatusCancelled).
			Return(&domain.Order{ID: order.ID, Status: domain.OrderStatusCancelled}, nil)

		_, err := s.CancelOrder(context.Background(), accountID, order.ID, "")

		require.NoError(t, err)
		assert.Equal(t, "10.00", account.Balance.String())
	})

	t.Run("Cancel foreign order", func(t *testing.T) {
		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetOrder(gomock.Any(), uint64(100)).
			Return(&domain.Order{ID: 100, AccountID: 99}, nil)

		_, err := s.CancelOrder(context.Background(), accountID, 100, "")

		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})

	t.Run("Cancel refunded order rejected", func(t *testing.T) {
		inventory := mock.NewMockInventoryProvider(mockCtrl)
		s, repo := newCheckoutService(t, mockCtrl, inventory)

		repo.EXPECT().GetOrder(gomock.Any(), uint64(100)).
			Return(&domain.Order{ID: 100, AccountID: accountID, Status: domain.OrderStatusRefunded}, nil)

		_, err := s.CancelOrder(context.Background(), accountID, 100, "")

		assert.ErrorIs(t, err, domain.ErrInvalidOrderState)
	})
}
