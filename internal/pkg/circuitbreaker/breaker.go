package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
)

// Errors
var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows requests to pass through
	StateClosed State = iota
	// StateOpen rejects requests until the cool-down elapses
	StateOpen
	// StateHalfOpen lets a single probe request through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string               // Upstream name, used in logs
	FailureThreshold uint32               // Consecutive failures that open the breaker
	Cooldown         time.Duration        // Time spent open before a half-open probe
	IsFailure        func(err error) bool // Which errors count against the upstream
}

// DefaultConfig returns the configuration used for third-party upstreams
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Cooldown:         30 * time.Second,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

// CircuitBreaker stops calling an upstream that keeps failing
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mutex               sync.Mutex
	state               State
	consecutiveFailures uint32
	openedAt            time.Time
	probeInFlight       bool
}

// New creates a new circuit breaker
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &CircuitBreaker{
		config: config,
		logger: l,
		now:    time.Now,
		state:  StateClosed,
	}
}

// Execute executes the given function with circuit breaker protection
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.afterRequest(err)

	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.Cooldown {
			return ErrCircuitBreakerOpen
		}
		cb.setState(StateHalfOpen)
		cb.probeInFlight = true
	case StateHalfOpen:
		if cb.probeInFlight {
			return ErrTooManyRequests
		}
		cb.probeInFlight = true
	}
	return nil
}

func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.probeInFlight = false

	if cb.config.IsFailure(err) {
		cb.consecutiveFailures++
		if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.config.FailureThreshold {
			cb.openedAt = cb.now()
			cb.setState(StateOpen)
		}
		return
	}

	cb.consecutiveFailures = 0
	if cb.state != StateClosed {
		cb.setState(StateClosed)
	}
}

// setState changes the state and logs the transition
func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Uint32("consecutive_failures", cb.consecutiveFailures))
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

// Name returns the circuit breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}
