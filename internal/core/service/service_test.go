package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proxymarket/internal/core/breaker"
	"proxymarket/internal/core/domain"
	"proxymarket/internal/core/port/mock"
	"proxymarket/internal/core/service"
	"proxymarket/internal/core/utils"
)

type prepareMocks func(repo *mock.MockRepository,
	payment *mock.MockPaymentProvider, inventory *mock.MockInventoryProvider)

func newTestService(t *testing.T, mockCtrl *gomock.Controller,
	prepare prepareMocks) (*service.Service, *mock.MockRepository) {
	t.Helper()

	logger := zap.NewNop()
	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	payment := mock.NewMockPaymentProvider(mockCtrl)
	inventory := mock.NewMockInventoryProvider(mockCtrl)
	if prepare != nil {
		prepare(repo, payment, inventory)
	}

	s, err := service.NewService(repo, ts, service.ProviderSet{
		Payment:          payment,
		Inventory:        inventory,
		PaymentBreaker:   breaker.New("payment", 5, time.Minute, logger),
		InventoryBreaker: breaker.New("inventory", 5, time.Minute, logger),
	}, "https://shop.example/api/payments/webhook/cryptomus", logger)
	require.NoError(t, err)

	return s, repo
}

// newCheckoutService wires a service around a caller-owned inventory mock so
// checkout tests can set provisioning expectations.
func newCheckoutService(t *testing.T, mockCtrl *gomock.Controller,
	inventory *mock.MockInventoryProvider) (*service.Service, *mock.MockRepository) {
	t.Helper()

	logger := zap.NewNop()
	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	payment := mock.NewMockPaymentProvider(mockCtrl)

	s, err := service.NewService(repo, ts, service.ProviderSet{
		Payment:          payment,
		Inventory:        inventory,
		PaymentBreaker:   breaker.New("payment", 5, time.Minute, logger),
		InventoryBreaker: breaker.New("inventory", 5, time.Minute, logger),
	}, "https://shop.example/api/payments/webhook/cryptomus", logger)
	require.NoError(t, err)

	return s, repo
}

func TestService_RegisterAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	account := domain.Account{ID: 1, Login: "test"}

	tests := []struct {
		name     string
		login    string
		mock     prepareMocks
		expError error
	}{
		{
			name:  "Register good",
			login: "test",
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentProvider, _ *mock.MockInventoryProvider) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), "test").Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&account, nil)
			},
			expError: nil,
		},
		{
			name:  "Register already exists",
			login: "test",
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentProvider, _ *mock.MockInventoryProvider) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), "test").Return(&account, nil)
			},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			result, err := s.RegisterAccount(context.Background(), test.login, "secret")

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, &account, result)
			}
		})
	}
}

func TestService_LoginAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	account := domain.Account{ID: 1, Login: "test", Password: hashedPass}

	tests := []struct {
		name     string
		password string
		mock     prepareMocks
		expError error
	}{
		{
			name:     "Login good",
			password: "test",
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentProvider, _ *mock.MockInventoryProvider) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(&account, nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			password: "hacker",
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentProvider, _ *mock.MockInventoryProvider) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(&account, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			password: "test",
			mock: func(repo *mock.MockRepository, _ *mock.MockPaymentProvider, _ *mock.MockInventoryProvider) {
				repo.EXPECT().GetAccountByLogin(gomock.Any(), account.Login).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	logger := zap.NewNop()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			payment := mock.NewMockPaymentProvider(mockCtrl)
			inventory := mock.NewMockInventoryProvider(mockCtrl)
			test.mock(repo, payment, inventory)
			if test.expError == nil {
				ts.EXPECT().CreateToken(&account).Return("token", nil)
			}

			s, err := service.NewService(repo, ts, service.ProviderSet{
				Payment:          payment,
				Inventory:        inventory,
				PaymentBreaker:   breaker.New("payment", 5, time.Minute, logger),
				InventoryBreaker: breaker.New("inventory", 5, time.Minute, logger),
			}, "", logger)
			require.NoError(t, err)

			token, err := s.LoginAccount(context.Background(), account.Login, test.password)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, "token", token)
			}
		})
	}
}
