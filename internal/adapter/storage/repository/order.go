package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

// CreateOrderWithPurchase commits the debit, the order with its lines and the
// purchase transaction as one unit. The account row is locked first, so a
// concurrent checkout for the same account cannot observe a stale balance.
func (r *Repository) CreateOrderWithPurchase(ctx context.Context,
	order *domain.Order, txn *domain.Transaction, debit port.UpdateBalanceFn) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		account, err := r.lockAccount(ctx, tx, order.AccountID)
		if err != nil {
			return err
		}
		if err := debit(account); err != nil {
			return err
		}
		if err := r.saveBalance(ctx, tx, account); err != nil {
			return err
		}

		if err := r.insertOrder(ctx, tx, order); err != nil {
			return err
		}

		txn.OrderID = order.ID
		return r.insertTransaction(ctx, tx, txn)
	})
	if err != nil {
		return nil, wrapPgError(err)
	}

	return order, nil
}

func (r *Repository) insertOrder(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Insert("orders").
		Columns("number", "account_id", "total_amount", "currency", "status").
		Values(order.Number, order.AccountID, order.TotalAmount, order.Currency, order.Status).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID

		lineSt := r.db.QueryBuilder.
			Insert("order_lines").
			Columns("order_id", "product_id", "quantity", "unit_price", "total_price").
			Values(line.OrderID, line.ProductID, line.Quantity, line.UnitPrice, line.TotalPrice).
			Suffix("RETURNING id")

		sql, args, err := lineSt.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&line.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *Repository) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.getOrder(ctx, sq.Eq{"number": number})
}

func (r *Repository) getOrder(ctx context.Context, where sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "number", "account_id", "total_amount", "currency", "status", "created_at", "updated_at").
		From("orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Number,
		&order.AccountID,
		&order.TotalAmount,
		&order.Currency,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, wrapPgError(err)
	}

	lines, err := r.readOrderLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (r *Repository) readOrderLines(ctx context.Context, orderID uint64) ([]domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_id", "quantity", "unit_price", "total_price").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		line := domain.OrderLine{}
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Quantity,
			&line.UnitPrice,
			&line.TotalPrice,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (r *Repository) ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "number", "account_id", "total_amount", "currency", "status", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListExpiredPendingOrders(ctx context.Context, olderThan time.Time) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "number", "account_id", "total_amount", "currency", "status", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"status": domain.OrderStatusPending}).
		Where(sq.Lt{"created_at": olderThan})

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.AccountID,
			&order.TotalAmount,
			&order.Currency,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	return list, rows.Err()
}

func (r *Repository) UpdateOrderStatus(ctx context.Context,
	orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.GetOrder(ctx, orderID)
}

func (r *Repository) GetOrderSummary(ctx context.Context,
	accountID uint64, since time.Time) (*domain.OrderSummary, error) {
	statement := r.db.QueryBuilder.
		Select("status", "COUNT(*)", "COALESCE(SUM(total_amount), 0)").
		From("orders").
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.GtOrEq{"created_at": since}).
		GroupBy("status")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	defer rows.Close()

	summary := domain.OrderSummary{
		TotalAmount:     decimal.Zero,
		StatusBreakdown: make(map[domain.OrderStatus]int),
	}
	for rows.Next() {
		var status domain.OrderStatus
		var count int
		var amount decimal.Decimal
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, err
		}
		summary.StatusBreakdown[status] = count
		summary.TotalOrders += count
		total, err := summary.TotalAmount.Add(amount)
		if err != nil {
			return nil, err
		}
		summary.TotalAmount = total
	}

	return &summary, rows.Err()
}
