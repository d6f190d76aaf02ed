// Package circuit provides a small circuit breaker for calls to remote dependencies.
package circuit

import (
	"sync"
	"time"
)

// State represents the circuit breaker state.
type State int

const (
	// StateClosed means the dependency is healthy and calls flow normally.
	StateClosed State = iota
	// StateOpen means the circuit has tripped and calls should use a fallback.
	StateOpen
	// StateHalfOpen means the cooldown elapsed and a single trial call is allowed.
	StateHalfOpen
)

func (s State) String() string {
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

// Breaker opens after FailureThreshold consecutive failures and stays open for
// the cooldown. After the cooldown one trial call is let through: success
// closes the circuit, failure reopens it.
type Breaker struct {
	mu               sync.Mutex
	name             string
	state            State
	failureCount     int
	failureThreshold int
	cooldown         time.Duration
	openedAt         time.Time
	trialInFlight    bool
	now              func() time.Time
}

// Option configures a Breaker instance.
type Option func(*Breaker)

// WithFailureThreshold sets the number of consecutive failures to open the circuit.
// Default is 5.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithCooldown sets how long the circuit stays open before a trial call.
// Default is 30 seconds.
func WithCooldown(d time.Duration) Option {
	return func(b *Breaker) {
		if d > 0 {
			b.cooldown = d
		}
	}
}

// WithClock overrides time.Now; used by tests.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) {
		if now != nil {
			b.now = now
		}
	}
}

// New creates a circuit breaker with the given name and options.
func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		state:            StateClosed,
		failureThreshold: 5,
		cooldown:         30 * time.Second,
		now:              time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Name returns the circuit breaker's name for logging.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current circuit state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advance()
	return b.state
}

// Allow reports whether the caller may use the primary path now.
// In half-open state only one caller at a time is allowed through.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advance()

	switch b.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		if b.trialInFlight {
			return false
		}
		b.trialInFlight = true
		return true
	default:
		return false
	}
}

// RecordFailure records a failed primary call and reports whether the circuit
// just opened.
func (b *Breaker) RecordFailure() (opened bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	switch b.state {
	case StateHalfOpen:
		b.trip()
		return true
	case StateClosed:
		if b.failureCount >= b.failureThreshold {
			b.trip()
			return true
		}
	}
	return false
}

// RecordSuccess records a successful primary call and reports whether the
// circuit just closed.
func (b *Breaker) RecordSuccess() (closed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	wasOpen := b.state != StateClosed
	b.state = StateClosed
	b.failureCount = 0
	b.trialInFlight = false
	return wasOpen
}

// Reset resets the circuit breaker to closed state with zero counts.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failureCount = 0
	b.trialInFlight = false
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.trialInFlight = false
}

// advance moves an open circuit to half-open once the cooldown has elapsed.
// Callers hold b.mu.
func (b *Breaker) advance() {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cooldown {
		b.state = StateHalfOpen
	}
}
