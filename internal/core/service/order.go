package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"

	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const (
	maxOrderAmount           = "50000.00"
	maxOrderItems            = 10000
	defaultGrantDurationDays = 30
	expiredOrderAge          = 24 * time.Hour
)

// CreateOrderFromCart runs the checkout saga: snapshot the cart, debit the
// balance atomically with the order/transaction insert, provision inventory
// through the circuit breaker, and compensate with an exact refund when
// provisioning fails. The cart is cleared only after everything succeeded.
func (s *Service) CreateOrderFromCart(ctx context.Context, accountID uint64) (*domain.Order, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.IsGuest {
		return nil, domain.ErrGuestCheckout
	}

	items, err := s.repo.ReadCart(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order, err := buildOrder(accountID, items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := &domain.Transaction{
		ID:          domain.NewTransactionID(now),
		AccountID:   accountID,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		Type:        domain.TransactionTypePurchase,
		Status:      domain.TransactionStatusPending,
		Description: fmt.Sprintf("Purchase for order %s", order.Number),
	}

	// Debit, order, lines and the purchase transaction commit or roll back
	// together. InsufficientBalance aborts before anything is persisted.
	order, err = s.repo.CreateOrderWithPurchase(ctx, order, txn, func(acc *domain.Account) error {
		return acc.Debit(order.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPaid); err != nil {
		s.logger.Error("Mark order paid", zap.String("order", order.Number), zap.Error(err))
		return nil, err
	}

	results, err := s.provisionInventory(ctx, items)
	if err != nil {
		s.compensateOrder(ctx, order, txn, results)
		if errors.Is(err, domain.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, domain.ErrInventoryProvisioning
	}

	if err := s.finalizeOrder(ctx, order, txn, items, results); err != nil {
		return nil, err
	}

	if err := s.repo.ClearCart(ctx, accountID); err != nil {
		// The order is complete; a surviving cart only annoys the user.
		s.logger.Error("Clear cart after checkout", zap.Uint64("account", accountID), zap.Error(err))
	}

	order.Status = domain.OrderStatusCompleted
	return order, nil
}

func buildOrder(accountID uint64, items []*domain.CartItem) (*domain.Order, error) {
	lines := make([]domain.OrderLine, 0, len(items))
	total := decimal.Zero
	var totalQty int64

	for _, item := range items {
		line, err := domain.NewOrderLine(item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		newTotal, err := total.Add(line.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		total = newTotal
		totalQty += int64(item.Quantity)
		lines = append(lines, line)
	}

	if total.Cmp(decimal.MustParse(maxOrderAmount)) > 0 || totalQty > maxOrderItems {
		return nil, domain.ErrOrderLimitExceeded
	}
	if !total.IsPos() {
		return nil, domain.ErrNonPositiveAmount
	}

	now := time.Now()
	return &domain.Order{
		Number:      domain.NewOrderNumber(now),
		AccountID:   accountID,
		TotalAmount: total,
		Currency:    "USD",
		Status:      domain.OrderStatusPending,
		Lines:       lines,
		CreatedAt:   now,
	}, nil
}

// provisionInventory purchases every cart line from the provider. On the
// first failure it returns the results collected so far, so the caller can
// revoke them.
func (s *Service) provisionInventory(ctx context.Context,
	items []*domain.CartItem) ([]*port.PurchaseResult, error) {
	results := make([]*port.PurchaseResult, 0, len(items))

	for _, item := range items {
		var result *port.PurchaseResult
		err := s.inventoryCB.Do(ctx, func(ctx context.Context) error {
			var callErr error
			result, callErr = s.inventory.Purchase(ctx, port.PurchaseRequest{
				ProductID:    item.ProductID,
				Quantity:     item.Quantity,
				DurationDays: item.DurationDays,
				Country:      item.Country,
			})
			return callErr
		})
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// compensateOrder reverses a failed checkout: revoke whatever was already
// provisioned (best effort), refund the debit and fail the purchase
// transaction atomically, then fail the order.
func (s *Service) compensateOrder(ctx context.Context,
	order *domain.Order, txn *domain.Transaction, provisioned []*port.PurchaseResult) {
	for _, result := range provisioned {
		if err := s.inventory.Revoke(ctx, result.ProviderOrderID); err != nil {
			s.logger.Error("Revoke provisioned inventory",
				zap.String("provider_order", result.ProviderOrderID), zap.Error(err))
		}
	}

	amount := order.TotalAmount
	_, err := s.repo.ReconcileTransaction(ctx, txn.ID,
		func(t *domain.Transaction, acc *domain.Account) error {
			if err := t.TransitionTo(domain.TransactionStatusFailed); err != nil {
				return err
			}
			return acc.Credit(amount)
		})
	if err != nil {
		s.logger.Error("Compensating refund",
			zap.String("order", order.Number), zap.String("transaction", txn.ID), zap.Error(err))
	}

	if _, err := s.repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusFailed); err != nil {
		s.logger.Error("Mark order failed", zap.String("order", order.Number), zap.Error(err))
	}
}

func (s *Service) finalizeOrder(ctx context.Context, order *domain.Order,
	txn *domain.Transaction, items []*domain.CartItem, results []*port.PurchaseResult) error {
	now := time.Now()
	for i, result := range results {
		item := items[i]
		_, err := s.repo.CreateGrant(ctx, &domain.InventoryGrant{
			OrderID:         order.ID,
			AccountID:       order.AccountID,
			ProductID:       item.ProductID,
			ProxyList:       result.ProxyList,
			Username:        result.Username,
			Password:        result.Password,
			ProviderOrderID: result.ProviderOrderID,
			ExpiresAt:       now.AddDate(0, 0, int(item.DurationDays)),
			IsActive:        true,
		})
		if err != nil {
			s.logger.Error("Persist inventory grant", zap.String("order", order.Number), zap.Error(err))
			return err
		}
	}

	_, err := s.repo.ReconcileTransaction(ctx, txn.ID,
		func(t *domain.Transaction, _ *domain.Account) error {
			return t.TransitionTo(domain.TransactionStatusCompleted)
		})
	if err != nil {
		return err
	}

	_, err = s.repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCompleted)
	return err
}

// CancelOrder refunds a paid order and deactivates its grants. Money-back
// takes priority: a failed provider-side revoke is logged, never blocking.
func (s *Service) CancelOrder(ctx context.Context, accountID uint64, orderID uint64, reason string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		return nil, domain.ErrDataNotFound
	}
	if !order.CanCancel() {
		return nil, domain.ErrInvalidOrderState
	}

	if order.Paid() {
		if err := s.refundOrder(ctx, order, reason); err != nil {
			return nil, err
		}
	} else if err := s.failPendingPurchase(ctx, order); err != nil {
		// A PENDING order was already debited when it was created, so the
		// cancel must put the money back before the order leaves PENDING.
		return nil, err
	}

	s.revokeOrderGrants(ctx, order)

	cancelled, err := s.repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order cancelled",
		zap.String("order", order.Number),
		zap.Uint64("account", accountID),
		zap.String("reason", reason))
	return cancelled, nil
}

func (s *Service) refundOrder(ctx context.Context, order *domain.Order, reason string) error {
	now := time.Now()
	refund := &domain.Transaction{
		ID:          domain.NewTransactionID(now),
		AccountID:   order.AccountID,
		OrderID:     order.ID,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		Type:        domain.TransactionTypeRefund,
		Status:      domain.TransactionStatusPending,
		Description: fmt.Sprintf("Refund for order %s: %s", order.Number, reason),
	}
	if _, err := s.repo.CreateTransaction(ctx, refund); err != nil {
		return err
	}

	amount := order.TotalAmount
	_, err := s.repo.ReconcileTransaction(ctx, refund.ID,
		func(t *domain.Transaction, acc *domain.Account) error {
			if err := t.TransitionTo(domain.TransactionStatusCompleted); err != nil {
				return err
			}
			return acc.Credit(amount)
		})
	return err
}

// failPendingPurchase fails a still-pending purchase transaction and credits
// the debit back. A missing or already-settled transaction is a no-op, so the
// credit can never be applied twice.
func (s *Service) failPendingPurchase(ctx context.Context, order *domain.Order) error {
	txn, err := s.repo.GetTransactionByOrder(ctx, order.ID, domain.TransactionTypePurchase)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		return err
	}
	if txn.IsTerminal() {
		return nil
	}

	amount := order.TotalAmount
	_, err = s.repo.ReconcileTransaction(ctx, txn.ID,
		func(t *domain.Transaction, acc *domain.Account) error {
			if err := t.TransitionTo(domain.TransactionStatusFailed); err != nil {
				return err
			}
			return acc.Credit(amount)
		})
	if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		return err
	}
	return nil
}

func (s *Service) revokeOrderGrants(ctx context.Context, order *domain.Order) {
	grants, err := s.repo.ListGrantsByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("List grants for cancellation", zap.String("order", order.Number), zap.Error(err))
		return
	}

	if _, err := s.repo.DeactivateGrantsByOrder(ctx, order.ID); err != nil {
		s.logger.Error("Deactivate grants", zap.String("order", order.Number), zap.Error(err))
	}

	for _, grant := range grants {
		if grant.ProviderOrderID == "" {
			continue
		}
		revokeErr := s.inventoryCB.Do(ctx, func(ctx context.Context) error {
			return s.inventory.Revoke(ctx, grant.ProviderOrderID)
		})
		if revokeErr != nil {
			s.logger.Error("Provider-side revoke",
				zap.String("provider_order", grant.ProviderOrderID), zap.Error(revokeErr))
		}
	}
}

func (s *Service) GetOrder(ctx context.Context, accountID uint64, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		return nil, domain.ErrDataNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, accountID uint64) ([]*domain.Order, error) {
	return s.repo.ListOrdersByAccount(ctx, accountID)
}

func (s *Service) GetOrderSummary(ctx context.Context, accountID uint64, days int) (*domain.OrderSummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	summary, err := s.repo.GetOrderSummary(ctx, accountID, since)
	if err != nil {
		return nil, err
	}
	summary.PeriodDays = days
	return summary, nil
}

// AutoCancelExpiredOrders sweeps orders stuck in PENDING for more than a day.
// A pending order whose purchase transaction is still pending means a
// checkout died between debit and provisioning: the money is returned.
func (s *Service) AutoCancelExpiredOrders(ctx context.Context) int {
	orders, err := s.repo.ListExpiredPendingOrders(ctx, time.Now().Add(-expiredOrderAge))
	if err != nil {
		s.logger.Error("List expired orders", zap.Error(err))
		return 0
	}

	cancelled := 0
	for _, order := range orders {
		if err := s.failPendingPurchase(ctx, order); err != nil {
			s.logger.Error("Refund expired order", zap.String("order", order.Number), zap.Error(err))
			continue
		}

		if _, err := s.repo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCancelled); err != nil {
			s.logger.Error("Cancel expired order", zap.String("order", order.Number), zap.Error(err))
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		s.logger.Info("Auto-cancelled expired orders", zap.Int("count", cancelled))
	}
	return cancelled
}

// ScheduleExpiredOrderSweep runs AutoCancelExpiredOrders on a ticker until
// the context is done.
func (s *Service) ScheduleExpiredOrderSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.AutoCancelExpiredOrders(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}
