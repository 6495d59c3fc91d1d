package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(config BreakerConfig) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(config)
	cb.now = clock.now
	return cb, clock
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _ := newTestBreaker(BreakerConfig{MaxFailures: 3, ResetTimeout: time.Minute, HalfOpenSuccesses: 1})

	for i := 0; i < 2; i++ {
		require.True(t, cb.Allow())
		cb.RecordFailure()
	}
	assert.Equal(t, StateClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(BreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenSuccesses: 1})

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, clock := newTestBreaker(BreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenSuccesses: 2})

	cb.RecordFailure()
	require.Equal(t, StateOpen, cb.State())

	clock.advance(59 * time.Second)
	assert.False(t, cb.Allow())

	clock.advance(time.Second)
	assert.True(t, cb.Allow())
	assert.Equal(t, StateHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.State())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(BreakerConfig{MaxFailures: 1, ResetTimeout: time.Minute, HalfOpenSuccesses: 2})

	cb.RecordFailure()
	clock.advance(time.Minute)
	require.True(t, cb.Allow())

	cb.RecordFailure()

	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(BreakerConfig{})

	assert.Equal(t, DefaultBreakerConfig(), cb.config)
	assert.Equal(t, "closed", cb.State().String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
}

type stubPublisher struct {
	err    error
	calls  int
	closed bool
}

func (p *stubPublisher) PublishRecordChanged(ctx context.Context, event RecordChanged) error {
	p.calls++
	return p.err
}

func (p *stubPublisher) Close() error {
	p.closed = true
	return nil
}

func TestBreakerPublisher_FailsFastWhenOpen(t *testing.T) {
	next := &stubPublisher{err: errors.New("connection refused")}
	publisher := NewBreakerPublisher(next, BreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour, HalfOpenSuccesses: 1})
	event := NewRecordChanged(ActionCreated, models.KindExpense, uuid.New(), uuid.New())

	for i := 0; i < 2; i++ {
		assert.ErrorContains(t, publisher.PublishRecordChanged(context.Background(), event), "connection refused")
	}

	err := publisher.PublishRecordChanged(context.Background(), event)

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, next.calls)
}

func TestBreakerPublisher_CancelledCallerDoesNotTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	next := &stubPublisher{err: context.Canceled}
	publisher := NewBreakerPublisher(next, BreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour, HalfOpenSuccesses: 1})
	event := NewRecordChanged(ActionDeleted, models.KindEarning, uuid.New(), uuid.New())

	_ = publisher.PublishRecordChanged(ctx, event)
	_ = publisher.PublishRecordChanged(ctx, event)

	assert.Equal(t, 2, next.calls)
	assert.Equal(t, StateClosed, publisher.breaker.State())
}

func TestBreakerPublisher_ClosePassesThrough(t *testing.T) {
	next := &stubPublisher{}

	require.NoError(t, NewBreakerPublisher(next, DefaultBreakerConfig()).Close())
	assert.True(t, next.closed)
}
