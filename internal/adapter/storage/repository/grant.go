package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"proxymarket/internal/core/domain"
)

const grantColumns = "id, order_id, account_id, product_id, proxy_list, username, " +
	"password, provider_order_id, expires_at, is_active, created_at"

func (r *Repository) CreateGrant(ctx context.Context, grant *domain.InventoryGrant) (*domain.InventoryGrant, error) {
	statement := r.db.QueryBuilder.
		Insert("inventory_grants").
		Columns("order_id", "account_id", "product_id", "proxy_list", "username",
			"password", "provider_order_id", "expires_at", "is_active").
		Values(grant.OrderID, grant.AccountID, grant.ProductID, grant.ProxyList,
			grant.Username, grant.Password, nullIfEmpty(grant.ProviderOrderID),
			grant.ExpiresAt, grant.IsActive).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&grant.ID, &grant.CreatedAt)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return grant, nil
}

func (r *Repository) ListGrantsByOrder(ctx context.Context, orderID uint64) ([]*domain.InventoryGrant, error) {
	return r.listGrants(ctx, sq.Eq{"order_id": orderID})
}

func (r *Repository) ListActiveGrantsByAccount(ctx context.Context, accountID uint64) ([]*domain.InventoryGrant, error) {
	return r.listGrants(ctx, sq.Eq{"account_id": accountID, "is_active": true})
}

func (r *Repository) listGrants(ctx context.Context, where sq.Eq) ([]*domain.InventoryGrant, error) {
	statement := r.db.QueryBuilder.
		Select(grantColumns).
		From("inventory_grants").
		Where(where).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgError(err)
	}
	defer rows.Close()

	grants := make([]*domain.InventoryGrant, 0)
	for rows.Next() {
		grant, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}

func scanGrant(row pgx.Row) (*domain.InventoryGrant, error) {
	grant := domain.InventoryGrant{}
	var providerOrderID *string

	err := row.Scan(
		&grant.ID,
		&grant.OrderID,
		&grant.AccountID,
		&grant.ProductID,
		&grant.ProxyList,
		&grant.Username,
		&grant.Password,
		&providerOrderID,
		&grant.ExpiresAt,
		&grant.IsActive,
		&grant.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if providerOrderID != nil {
		grant.ProviderOrderID = *providerOrderID
	}
	return &grant, nil
}

func (r *Repository) DeactivateGrantsByOrder(ctx context.Context, orderID uint64) (int64, error) {
	statement := r.db.QueryBuilder.
		Update("inventory_grants").
		Set("is_active", false).
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, wrapPgError(err)
	}
	return tag.RowsAffected(), nil
}
