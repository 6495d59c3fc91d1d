package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("publishing suspended: broker circuit is open")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 2,
	}
}

// CircuitBreaker stops calls to a failing dependency for ResetTimeout after MaxFailures
// consecutive failures, then lets trial calls through until HalfOpenSuccesses of them pass.
type CircuitBreaker struct {
	mu        sync.Mutex
	config    BreakerConfig
	state     BreakerState
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
}

func NewCircuitBreaker(config BreakerConfig) *CircuitBreaker {
	defaults := DefaultBreakerConfig()
	if config.MaxFailures <= 0 {
		config.MaxFailures = defaults.MaxFailures
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = defaults.ResetTimeout
	}
	if config.HalfOpenSuccesses <= 0 {
		config.HalfOpenSuccesses = defaults.HalfOpenSuccesses
	}
	return &CircuitBreaker{config: config, now: time.Now}
}

// Allow reports whether a call may proceed. An open breaker turns half-open once the reset
// timeout has elapsed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.config.ResetTimeout {
			return false
		}
		cb.state = StateHalfOpen
		cb.successes = 0
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.config.HalfOpenSuccesses {
			cb.state = StateClosed
			cb.failures = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.open()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.open()
		}
	}
}

func (cb *CircuitBreaker) open() {
	cb.state = StateOpen
	cb.openedAt = cb.now()
	cb.successes = 0
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// BreakerPublisher guards a Publisher so an unreachable broker fails fast instead of
// holding every record write for the publish timeout.
type BreakerPublisher struct {
	next    Publisher
	breaker *CircuitBreaker
}

func NewBreakerPublisher(next Publisher, config BreakerConfig) *BreakerPublisher {
	return &BreakerPublisher{next: next, breaker: NewCircuitBreaker(config)}
}

func (p *BreakerPublisher) PublishRecordChanged(ctx context.Context, event RecordChanged) error {
	if !p.breaker.Allow() {
		return ErrCircuitOpen
	}

	err := p.next.PublishRecordChanged(ctx, event)
	switch {
	case err == nil:
		p.breaker.RecordSuccess()
	case ctx.Err() != nil:
		// the caller gave up; says nothing about the broker
	default:
		p.breaker.RecordFailure()
		if p.breaker.State() == StateOpen {
			slog.WarnContext(ctx, "Broker circuit opened", "error", err)
		}
	}
	return err
}

func (p *BreakerPublisher) Close() error {
	return p.next.Close()
}
