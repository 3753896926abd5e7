package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Account struct {
	ID        uint64
	Login     string
	Password  string
	Balance   decimal.Decimal
	IsGuest   bool
	CreatedAt time.Time
}

// Debit decreases the balance, never below zero.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	newBalance, err := a.Balance.Sub(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNeg() {
		return ErrBadRequest
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}
