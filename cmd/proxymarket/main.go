package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"proxymarket/internal/adapter/auth"
	"proxymarket/internal/adapter/client/inventory"
	"proxymarket/internal/adapter/client/payment"
	"proxymarket/internal/adapter/config"
	"proxymarket/internal/adapter/handler/http"
	"proxymarket/internal/adapter/logger"
	"proxymarket/internal/adapter/metrics"
	"proxymarket/internal/adapter/ratelimit"
	"proxymarket/internal/adapter/storage"
	"proxymarket/internal/adapter/storage/repository"
	"proxymarket/internal/core/breaker"
	"proxymarket/internal/core/service"
)

const expiredOrderSweepInterval = 10 * time.Minute

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	m := metrics.New()

	paymentClient, err := payment.NewClient(conf.Payment, log.Named("Payment client"))
	if err != nil {
		log.Error("payment client creating error", zap.Error(err))
		return
	}
	inventoryClient, err := inventory.NewClient(conf.Inventory, log.Named("Inventory client"))
	if err != nil {
		log.Error("inventory client creating error", zap.Error(err))
		return
	}

	paymentBreaker := breaker.New("payment",
		conf.Breaker.FailureThreshold, conf.Breaker.RecoveryTimeout, log.Named("Breaker"))
	inventoryBreaker := breaker.New("inventory",
		conf.Breaker.FailureThreshold, conf.Breaker.RecoveryTimeout, log.Named("Breaker"))
	paymentBreaker.StateChange = m.BreakerStateHook()
	inventoryBreaker.StateChange = m.BreakerStateHook()

	svc, err := service.NewService(repo, tokenService, service.ProviderSet{
		Payment:          paymentClient,
		Inventory:        inventoryClient,
		PaymentBreaker:   paymentBreaker,
		InventoryBreaker: inventoryBreaker,
	}, conf.Payment.CallbackURL, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	svc.ScheduleExpiredOrderSweep(ctx, expiredOrderSweepInterval)

	reconciler, err := service.NewReconciler(repo, conf.Payment.WebhookSecret, log.Named("Reconciler"))
	if err != nil {
		log.Error("reconciler creating error", zap.Error(err))
		return
	}

	limiter := ratelimit.NewRedisLimiter(conf.Redis, log.Named("RateLimit"))

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	cartHandler, err := http.NewCartHandler(svc, log.Named("Cart handler"))
	if err != nil {
		log.Error("cart handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, m, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, reconciler, m, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, conf.RateLimit, tokenService, limiter, m,
		userHandler, cartHandler, orderHandler, balanceHandler, paymentHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
