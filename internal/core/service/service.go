package service

import (
	"context"
	"errors"

	"proxymarket/internal/core/breaker"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port"
	"proxymarket/internal/core/utils"

	"go.uber.org/zap"
)

// ProviderSet bundles the external collaborators with the breakers guarding
// them. Breakers are shared with main so metrics can observe state changes.
type ProviderSet struct {
	Payment          port.PaymentProvider
	Inventory        port.InventoryProvider
	PaymentBreaker   *breaker.Breaker
	InventoryBreaker *breaker.Breaker
}

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	payment      port.PaymentProvider
	inventory    port.InventoryProvider
	paymentCB    *breaker.Breaker
	inventoryCB  *breaker.Breaker
	callbackURL  string
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	providers ProviderSet, callbackURL string, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		payment:      providers.Payment,
		inventory:    providers.Inventory,
		paymentCB:    providers.PaymentBreaker,
		inventoryCB:  providers.InventoryBreaker,
		callbackURL:  callbackURL,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterAccount(ctx context.Context, login string, password string) (*domain.Account, error) {
	exAccount, err := s.repo.GetAccountByLogin(ctx, login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get account", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exAccount != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}

	account, err := s.repo.CreateAccount(ctx, &domain.Account{
		Login:    login,
		Password: hashed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create account", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return account, nil
}

func (s *Service) LoginAccount(ctx context.Context, login string, password string) (string, error) {
	account, err := s.repo.GetAccountByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, account.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(account)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item.Quantity <= 0 || !item.UnitPrice.IsPos() {
		return nil, domain.ErrNonPositiveAmount
	}
	if item.DurationDays <= 0 {
		item.DurationDays = defaultGrantDurationDays
	}
	return s.repo.AddCartItem(ctx, item)
}

func (s *Service) GetCart(ctx context.Context, accountID uint64) ([]*domain.CartItem, error) {
	return s.repo.ReadCart(ctx, accountID)
}

func (s *Service) GetBalance(ctx context.Context, accountID uint64) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("Get balance", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) ListTransactions(ctx context.Context, accountID uint64) ([]*domain.Transaction, error) {
	return s.repo.ListTransactionsByAccount(ctx, accountID)
}

func (s *Service) ListActiveGrants(ctx context.Context, accountID uint64) ([]*domain.InventoryGrant, error) {
	return s.repo.ListActiveGrantsByAccount(ctx, accountID)
}
