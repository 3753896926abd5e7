package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

const transactionColumns = "id, external_id, account_id, order_id, amount, currency, " +
	"type, status, description, processed_at, created_at, updated_at"

func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return r.insertTransaction(ctx, tx, txn)
	})
	if err != nil {
		return nil, wrapPgError(err)
	}
	return txn, nil
}

func (r *Repository) insertTransaction(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	statement := r.db.QueryBuilder.
		Insert("transactions").
		Columns("id", "external_id", "account_id", "order_id", "amount",
			"currency", "type", "status", "description").
		Values(txn.ID, nullIfEmpty(txn.ExternalID), txn.AccountID, nullIfZero(txn.OrderID),
			txn.Amount, txn.Currency, txn.Type, txn.Status, txn.Description).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, sql, args...).Scan(&txn.CreatedAt, &txn.UpdatedAt)
}

func (r *Repository) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.getTransaction(ctx, sq.Eq{"id": transactionID})
}

func (r *Repository) GetTransactionByExternalID(ctx context.Context, externalID string) (*domain.Transaction, error) {
	return r.getTransaction(ctx, sq.Eq{"external_id": externalID})
}

func (r *Repository) GetTransactionByOrder(ctx context.Context,
	orderID uint64, txnType domain.TransactionType) (*domain.Transaction, error) {
	return r.getTransaction(ctx, sq.Eq{"order_id": orderID, "type": txnType})
}

func (r *Repository) getTransaction(ctx context.Context, where sq.Eq) (*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns).
		From("transactions").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	txn, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrapPgError(err)
	}
	return txn, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	txn := domain.Transaction{}
	var externalID *string
	var orderID *uint64
	var description *string

	err := row.Scan(
		&txn.ID,
		&externalID,
		&txn.AccountID,
		&orderID,
		&txn.Amount,
		&txn.Currency,
		&txn.Type,
		&txn.Status,
		&description,
		&txn.ProcessedAt,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if externalID != nil {
		txn.ExternalID = *externalID
	}
	if orderID != nil {
		txn.OrderID = *orderID
	}
	if description != nil {
		txn.Description = *description
	}
	return &txn, nil
}

// lockTransaction reads the transaction row FOR UPDATE.
func (r *Repository) lockTransaction(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns).
		From("transactions").
		Where(sq.Eq{"id": transactionID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	txn, err := scanTransaction(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrapPgError(err)
	}
	return txn, nil
}

func (r *Repository) saveTransaction(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	statement := r.db.QueryBuilder.
		Update("transactions").
		Set("external_id", nullIfEmpty(txn.ExternalID)).
		Set("status", txn.Status).
		Set("processed_at", txn.ProcessedAt).
		Set("updated_at", txn.UpdatedAt).
		Where(sq.Eq{"id": txn.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// AttachTransactionExternalID is idempotent for the same external id and
// rejects a conflicting one, all under the transaction row lock.
func (r *Repository) AttachTransactionExternalID(ctx context.Context,
	transactionID string, externalID string) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		txn, err := r.lockTransaction(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if err := txn.AttachExternalID(externalID); err != nil {
			return err
		}
		return r.saveTransaction(ctx, tx, txn)
	})
	return wrapPgError(err)
}

// ReconcileTransaction applies fn to the transaction and its owning account
// inside one storage transaction, with row locks on both. The transaction
// row is locked first; every reconciling path locks in the same order.
func (r *Repository) ReconcileTransaction(ctx context.Context,
	transactionID string, fn port.ReconcileFn) (*domain.Transaction, error) {
	var result *domain.Transaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		txn, err := r.lockTransaction(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		account, err := r.lockAccount(ctx, tx, txn.AccountID)
		if err != nil {
			return err
		}

		oldBalance := account.Balance

		if err := fn(txn, account); err != nil {
			return err
		}

		if err := r.saveTransaction(ctx, tx, txn); err != nil {
			return err
		}
		if account.Balance.Cmp(oldBalance) != 0 {
			if err := r.saveBalance(ctx, tx, account); err != nil {
				return err
			}
		}

		result = txn
		return nil
	})
	if err != nil {
		return nil, wrapPgError(err)
	}

	return result, nil
}

func (r *Repository) ListTransactionsByAccount(ctx context.Context, accountID uint64) ([]*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns).
		From("transactions").
		Where(sq.Eq{"account_id": accountID}).
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

	list := make([]*domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, txn)
	}

	return list, rows.Err()
}
