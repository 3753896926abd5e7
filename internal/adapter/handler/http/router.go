package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"proxymarket/internal/adapter/config"
	"proxymarket/internal/adapter/metrics"
	"proxymarket/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	rateLimitConf *config.RateLimit,
	tokenService port.TokenService,
	limiter port.RateLimiter,
	m *metrics.Metrics,
	userHandler *UserHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	balanceHandler *BalanceHandler,
	paymentHandler *PaymentHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterAccount)
			user.POST("/login", userHandler.LoginAccount)
		}

		authed := api.Group("")
		authed.Use(authCheck(tokenService))
		{
			cart := authed.Group("/cart")
			{
				cart.POST("/items", cartHandler.AddCartItem)
				cart.GET("", cartHandler.GetCart)
			}

			orders := authed.Group("/orders")
			{
				orders.POST("", rateLimit(limiter, m, "orders",
					rateLimitConf.OrderLimit, rateLimitConf.OrderWindow), orderHandler.CreateOrder)
				orders.GET("", orderHandler.ListOrders)
				orders.GET("/summary", orderHandler.GetOrderSummary)
				orders.GET("/:order", orderHandler.GetOrder)
				orders.POST("/:order/cancel", orderHandler.CancelOrder)
			}

			authed.GET("/balance", balanceHandler.GetBalance)
			authed.GET("/transactions", balanceHandler.ListTransactions)
			authed.GET("/grants", balanceHandler.ListActiveGrants)

			payments := authed.Group("/payments")
			{
				payments.POST("/deposit", rateLimit(limiter, m, "payments",
					rateLimitConf.PaymentLimit, rateLimitConf.PaymentWindow), paymentHandler.CreateDeposit)
				payments.POST("/:transaction/cancel", paymentHandler.CancelDeposit)
			}
		}

		// Provider callbacks are not authenticated, the body signature is
		// the credential. Limited per client IP.
		api.POST("/payments/webhook/:provider", rateLimit(limiter, m, "webhooks",
			rateLimitConf.WebhookLimit, rateLimitConf.WebhookWindow), paymentHandler.Webhook)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
