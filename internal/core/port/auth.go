package port

import "proxymarket/internal/core/domain"

type TokenPayload struct {
	AccountID uint64
	IsGuest   bool
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(account *domain.Account) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
