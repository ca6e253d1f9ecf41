// Package sampler turns cumulative byte counters into per-second rates by
// reading them twice, one interval apart.
package sampler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"

	apperrors "github.com/agbru/statline/internal/errors"
	"github.com/agbru/statline/internal/logging"
	"github.com/agbru/statline/internal/sysmon"
)

// Sleeper blocks the calling goroutine for a duration. clock.Clock satisfies
// it; tests substitute a recorder.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Rate is a per-second throughput in bytes.
type Rate struct {
	Up   uint64
	Down uint64
}

// Sampler runs the two-point measurement protocol against a provider.
type Sampler struct {
	provider sysmon.Provider
	sleeper  Sleeper
	logger   logging.Logger
}

// Option configures a Sampler during construction.
type Option func(*Sampler)

// WithSleeper replaces the wall clock used between the two snapshots.
func WithSleeper(s Sleeper) Option {
	return func(smp *Sampler) { smp.sleeper = s }
}

// WithLogger attaches a logger for debug diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(smp *Sampler) { smp.logger = l }
}

// New creates a Sampler reading from provider.
func New(provider sysmon.Provider, opts ...Option) *Sampler {
	s := &Sampler{
		provider: provider,
		sleeper:  clock.New(),
		logger:   logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delta returns after-before modulo 2^64, so a counter that wrapped between
// the two reads yields the small positive distance it actually travelled.
func Delta(before, after uint64) uint64 {
	return after - before
}

// SampleRate reads the network counters, sleeps for interval, reads them
// again and divides the difference by the whole seconds in interval.
//
// Parameters:
//   - ctx: The context passed to the provider.
//   - interval: The sampling window; must be at least one second.
//
// Returns:
//   - Rate: Bytes per second sent (Up) and received (Down).
//   - error: A provider failure, or a ValidationError for a sub-second window.
func (s *Sampler) SampleRate(ctx context.Context, interval time.Duration) (Rate, error) {
	seconds := uint64(interval / time.Second)
	if seconds == 0 {
		return Rate{}, apperrors.ValidationError{Field: "interval", Message: "must be at least 1 second"}
	}

	first, err := s.provider.SnapshotNetwork(ctx)
	if err != nil {
		return Rate{}, apperrors.WrapError(err, "first snapshot")
	}
	s.sleeper.Sleep(interval)
	second, err := s.provider.SnapshotNetwork(ctx)
	if err != nil {
		return Rate{}, apperrors.WrapError(err, "second snapshot")
	}

	rate := Rate{
		Up:   Delta(first.BytesSent, second.BytesSent) / seconds,
		Down: Delta(first.BytesReceived, second.BytesReceived) / seconds,
	}
	s.logger.Debug("network rate sampled",
		logging.Duration("interval", interval),
		logging.Uint64("up", rate.Up),
		logging.String("up_human", humanize.IBytes(rate.Up)),
		logging.Uint64("down", rate.Down),
		logging.String("down_human", humanize.IBytes(rate.Down)),
	)
	return rate, nil
}
