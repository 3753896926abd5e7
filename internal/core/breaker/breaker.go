package breaker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"proxymarket/internal/core/domain"
)

type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// Breaker wraps calls to an external provider. After failureThreshold
// consecutive failures it fails fast with domain.ErrServiceUnavailable for
// recoveryTimeout, then lets one probe call through.
type Breaker struct {
	name             string
	failureThreshold int
	recoveryTimeout  time.Duration
	logger           *zap.Logger

	// StateChange, when set, is called outside the lock on every state
	// change. Used for metrics.
	StateChange func(name string, state State)

	mu           sync.Mutex
	state        State
	failureCount int
	lastFailure  time.Time
}

func New(name string, failureThreshold int, recoveryTimeout time.Duration, logger *zap.Logger) *Breaker {
	return &Breaker{
		name:             name,
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		logger:           logger,
		state:            StateClosed,
	}
}

func (b *Breaker) Name() string { return b.name }

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Do runs fn under the breaker. In OPEN it fails fast until the recovery
// timeout elapses; the first caller after that becomes the HALF_OPEN probe
// and concurrent callers keep failing fast until the probe resolves.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}

	err := fn(ctx)
	b.after(err)
	return err
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if time.Since(b.lastFailure) < b.recoveryTimeout {
			return domain.ErrServiceUnavailable
		}
		b.setState(StateHalfOpen)
		return nil
	case StateHalfOpen:
		// A probe is already in flight.
		return domain.ErrServiceUnavailable
	default:
		return nil
	}
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		if b.state == StateHalfOpen {
			b.setState(StateClosed)
		}
		b.failureCount = 0
		return
	}

	b.failureCount++
	b.lastFailure = time.Now()

	if b.state == StateHalfOpen {
		b.setState(StateOpen)
		return
	}
	if b.failureCount >= b.failureThreshold && b.state == StateClosed {
		b.setState(StateOpen)
	}
}

// setState is called with b.mu held.
func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	b.logger.Warn("circuit breaker state change",
		zap.String("breaker", b.name),
		zap.String("from", string(b.state)),
		zap.String("to", string(state)))
	b.state = state

	if b.StateChange != nil {
		go b.StateChange(b.name, state)
	}
}
