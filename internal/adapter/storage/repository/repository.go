package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"proxymarket/internal/adapter/storage"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrConflictingData
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(id uint64) any {
	if id == 0 {
		return nil
	}
	return id
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Insert("accounts").
		Columns("login", "password", "is_guest").
		Values(account.Login, account.Password, account.IsGuest).
		Suffix("RETURNING id, balance, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.Balance, &account.CreatedAt)
	if err != nil {
		return nil, wrapPgError(err)
	}

	return account, nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID uint64) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "balance", "is_guest", "created_at").
		From("accounts").
		Where(sq.Eq{"id": accountID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Login,
		&account.Password,
		&account.Balance,
		&account.IsGuest,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgError(err)
	}

	return &account, nil
}

func (r *Repository) GetAccountByLogin(ctx context.Context, login string) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "balance", "is_guest", "created_at").
		From("accounts").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Login,
		&account.Password,
		&account.Balance,
		&account.IsGuest,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgError(err)
	}

	return &account, nil
}

// lockAccount reads the account row FOR UPDATE inside the given transaction.
func (r *Repository) lockAccount(ctx context.Context, tx pgx.Tx, accountID uint64) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "balance", "is_guest", "created_at").
		From("accounts").
		Where(sq.Eq{"id": accountID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}
	err = tx.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Login,
		&account.Password,
		&account.Balance,
		&account.IsGuest,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgError(err)
	}

	return &account, nil
}

func (r *Repository) saveBalance(ctx context.Context, tx pgx.Tx, account *domain.Account) error {
	statement := r.db.QueryBuilder.
		Update("accounts").
		Set("balance", account.Balance).
		Where(sq.Eq{"id": account.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// UpdateAccountBalance applies fn to the account under a row lock, so two
// concurrent mutations of the same balance serialize.
func (r *Repository) UpdateAccountBalance(ctx context.Context,
	accountID uint64, fn port.UpdateBalanceFn) (*domain.Account, error) {
	var account *domain.Account

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		acc, err := r.lockAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if err := fn(acc); err != nil {
			return err
		}
		if err := r.saveBalance(ctx, tx, acc); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		return nil, wrapPgError(err)
	}

	return account, nil
}
