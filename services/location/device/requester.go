package device

import (
	"context"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/services/location"
)

// Defaults for the device-location flow
const (
	DefaultPollInterval  = 250 * time.Millisecond
	DefaultHelperTimeout = 10 * time.Second
)

// Config holds the requester settings
type Config struct {
	PollInterval  time.Duration
	HelperTimeout time.Duration
	// MaxFixAge allows reusing a stored device fix younger than this; zero (the default) disables reuse
	MaxFixAge time.Duration
}

// Requester obtains the device position through a helper process and a handoff file
type Requester struct {
	fixFile  *FixFile
	launcher Launcher
	lastFix  location.LastFixRepo
	config   Config
	now      func() time.Time
	logger   *logger.ZapLogger

	// one request owns the handoff file at a time
	inFlight chan struct{}
}

// NewRequester creates a requester. lastFix may be nil.
func NewRequester(fixFile *FixFile, launcher Launcher, lastFix location.LastFixRepo, config Config, l *logger.ZapLogger) *Requester {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.HelperTimeout <= 0 {
		config.HelperTimeout = DefaultHelperTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Requester{
		fixFile:  fixFile,
		launcher: launcher,
		lastFix:  lastFix,
		config:   config,
		now:      time.Now,
		logger:   l,
		inFlight: make(chan struct{}, 1),
	}
}

// RequestDeviceLocation launches the helper and waits up to timeout for its fix.
// An error marker, an unreadable fix or the timeout all report false; on timeout a live helper is killed.
func (r *Requester) RequestDeviceLocation(ctx context.Context, timeout time.Duration) (models.Coordinate, bool) {
	if coord, ok := r.recentFix(ctx); ok {
		return coord, true
	}

	started := time.Now()
	deadline := started.Add(timeout)

	if !r.acquire(ctx, timeout) {
		r.logger.Warn("Device location busy with another request", logger.Duration("timeout", timeout))
		metrics.ObserveUpstream(metrics.ServiceDevice, metrics.OutcomeNotFound, started)
		return models.Coordinate{}, false
	}
	defer r.release()

	if err := r.fixFile.Clear(); err != nil {
		r.logger.Error("Cannot clear stale device fix", logger.Err(err))
		metrics.ObserveUpstream(metrics.ServiceDevice, metrics.OutcomeError, started)
		return models.Coordinate{}, false
	}

	proc, err := r.launcher.Launch(ctx, r.fixFile.Path(), r.config.HelperTimeout)
	if err != nil {
		// nothing will ever write the file; fall through to the timeout path
		r.logger.Error("Failed to launch location helper", logger.Err(err))
	}

	coord, ok := r.wait(ctx, time.Until(deadline), proc)
	outcome := metrics.OutcomeSuccess
	if !ok {
		outcome = metrics.OutcomeNotFound
	}
	metrics.ObserveUpstream(metrics.ServiceDevice, outcome, started)
	return coord, ok
}

// acquire waits for the handoff file to be free, bounded by timeout and ctx
func (r *Requester) acquire(ctx context.Context, timeout time.Duration) bool {
	select {
	case r.inFlight <- struct{}{}:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case r.inFlight <- struct{}{}:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

func (r *Requester) release() {
	<-r.inFlight
}

func (r *Requester) wait(ctx context.Context, timeout time.Duration, proc Process) (models.Coordinate, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(r.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fix, exists, err := r.fixFile.Read()
			if !exists {
				continue
			}
			// read-once
			if clearErr := r.fixFile.Clear(); clearErr != nil {
				r.logger.Warn("Failed to remove consumed device fix", logger.Err(clearErr))
			}
			if err != nil {
				r.logger.Error("Unreadable device fix", logger.Err(err))
				return models.Coordinate{}, false
			}
			if !fix.HasCoordinate() {
				r.logger.Warn("Device location unavailable", logger.String("reason", fix.Error))
				return models.Coordinate{}, false
			}
			r.logger.Info("Device location obtained",
				logger.Coordinate("position", fix.Coordinate.Latitude, fix.Coordinate.Longitude))
			return *fix.Coordinate, true

		case <-deadline.C:
			r.logger.Warn("Device location timed out", logger.Duration("timeout", timeout))
			r.terminate(proc)
			return models.Coordinate{}, false

		case <-ctx.Done():
			r.logger.Warn("Device location cancelled", logger.Err(ctx.Err()))
			r.terminate(proc)
			return models.Coordinate{}, false
		}
	}
}

func (r *Requester) terminate(proc Process) {
	if proc == nil || !proc.Alive() {
		return
	}
	if err := proc.Kill(); err != nil {
		r.logger.Warn("Failed to terminate location helper", logger.Err(err))
	}
}

// recentFix reuses a stored device fix that is still fresh enough
func (r *Requester) recentFix(ctx context.Context) (models.Coordinate, bool) {
	if r.lastFix == nil || r.config.MaxFixAge <= 0 {
		return models.Coordinate{}, false
	}

	fix, found, err := r.lastFix.Load(ctx)
	if err != nil {
		r.logger.Warn("Cannot read last known location", logger.Err(err))
		return models.Coordinate{}, false
	}
	if !found || fix.Source != models.OriginSourceDevice {
		return models.Coordinate{}, false
	}

	age := r.now().Sub(fix.Timestamp)
	if age < 0 || age > r.config.MaxFixAge {
		return models.Coordinate{}, false
	}

	r.logger.Info("Reusing recent device fix", logger.Duration("age", age))
	return fix.Coordinate(), true
}
