package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"proxymarket/internal/core/breaker"
)

type Metrics struct {
	OrdersCreated  *prometheus.CounterVec
	WebhookEvents  *prometheus.CounterVec
	RateLimitDrops *prometheus.CounterVec
	breakerState   *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proxymarket",
			Name:      "orders_created_total",
			Help:      "Checkout attempts by final order status.",
		}, []string{"status"}),
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proxymarket",
			Name:      "webhook_events_total",
			Help:      "Payment webhook deliveries by outcome.",
		}, []string{"outcome"}),
		RateLimitDrops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proxymarket",
			Name:      "rate_limit_drops_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"scope"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "proxymarket",
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state: 0 closed, 1 open, 2 half-open.",
		}, []string{"name"}),
	}

	prometheus.MustRegister(m.OrdersCreated, m.WebhookEvents, m.RateLimitDrops, m.breakerState)
	return m
}

// BreakerStateHook returns a callback suitable for breaker.Breaker.StateChange.
func (m *Metrics) BreakerStateHook() func(name string, state breaker.State) {
	return func(name string, state breaker.State) {
		var v float64
		switch state {
		case breaker.StateOpen:
			v = 1
		case breaker.StateHalfOpen:
			v = 2
		}
		m.breakerState.WithLabelValues(name).Set(v)
	}
}
