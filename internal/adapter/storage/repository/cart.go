package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"proxymarket/internal/core/domain"
)

func (r *Repository) AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Insert("cart_items").
		Columns("account_id", "product_id", "quantity", "unit_price", "duration_days", "country").
		Values(item.AccountID, item.ProductID, item.Quantity, item.UnitPrice,
			item.DurationDays, nullIfEmpty(item.Country)).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return item, nil
}

func (r *Repository) ReadCart(ctx context.Context, accountID uint64) ([]*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "account_id", "product_id", "quantity", "unit_price",
			"duration_days", "country", "created_at").
		From("cart_items").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	defer rows.Close()

	items := make([]*domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{}
		var country *string
		err := rows.Scan(
			&item.ID,
			&item.AccountID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.DurationDays,
			&country,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if country != nil {
			item.Country = *country
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *Repository) ClearCart(ctx context.Context, accountID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"account_id": accountID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return wrapPgError(err)
}
