package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Redis     *Redis
	Payment   *Payment
	Inventory *Inventory
	Breaker   *Breaker
	RateLimit *RateLimit
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
}

type Payment struct {
	BaseURL       string `env:"PAYMENT_BASE_URL"`
	MerchantID    string `env:"PAYMENT_MERCHANT_ID"`
	APIKey        string `env:"PAYMENT_API_KEY"`
	WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
	CallbackURL   string `env:"PAYMENT_CALLBACK_URL"`
}

type Inventory struct {
	BaseURL  string `env:"INVENTORY_BASE_URL"`
	Username string `env:"INVENTORY_USERNAME"`
	Password string `env:"INVENTORY_PASSWORD"`
}

type Breaker struct {
	FailureThreshold int           `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	RecoveryTimeout  time.Duration `env:"BREAKER_RECOVERY_TIMEOUT" envDefault:"60s"`
}

type RateLimit struct {
	OrderLimit    int           `env:"RATE_LIMIT_ORDERS" envDefault:"10"`
	PaymentLimit  int           `env:"RATE_LIMIT_PAYMENTS" envDefault:"5"`
	WebhookLimit  int           `env:"RATE_LIMIT_WEBHOOKS" envDefault:"120"`
	OrderWindow   time.Duration `env:"RATE_LIMIT_ORDER_WINDOW" envDefault:"1m"`
	PaymentWindow time.Duration `env:"RATE_LIMIT_PAYMENT_WINDOW" envDefault:"1m"`
	WebhookWindow time.Duration `env:"RATE_LIMIT_WEBHOOK_WINDOW" envDefault:"1m"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var redis Redis
	var payment Payment
	var inventory Inventory
	var breaker Breaker
	var rateLimit RateLimit
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&redis.Addr, "r", `localhost:6379`, "Redis address")
	flag.StringVar(&payment.BaseURL, "p", "", "Payment provider base URL")
	flag.StringVar(&inventory.BaseURL, "i", "", "Inventory provider base URL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&inventory)
	if err != nil {
		return nil, fmt.Errorf("error parsing inventory config: %w", err)
	}
	err = env.Parse(&breaker)
	if err != nil {
		return nil, fmt.Errorf("error parsing breaker config: %w", err)
	}
	err = env.Parse(&rateLimit)
	if err != nil {
		return nil, fmt.Errorf("error parsing rate limit config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Redis:     &redis,
		Payment:   &payment,
		Inventory: &inventory,
		Breaker:   &breaker,
		RateLimit: &rateLimit,
		App:       &app,
	}

	return &config, nil
}
