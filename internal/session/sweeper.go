package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultIdleTimeout is how long a session may go untouched before the
	// sweeper evicts it.
	DefaultIdleTimeout = 30 * time.Minute

	// DefaultSweepInterval is how often the sweeper scans the registry.
	DefaultSweepInterval = 5 * time.Second
)

// Sweeper evicts idle sessions from a registry on a fixed interval. It runs
// for the lifetime of the process and stops cooperatively when its context
// is cancelled.
type Sweeper struct {
	registry *Registry
	timeout  time.Duration
	interval time.Duration
	log      zerolog.Logger
}

func NewSweeper(registry *Registry, timeout, interval time.Duration, log zerolog.Logger) *Sweeper {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		registry: registry,
		timeout:  timeout,
		interval: interval,
		log:      log.With().Str("component", "session_sweeper").Logger(),
	}
}

// Run blocks until ctx is cancelled, scanning the registry once per
// interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().
		Dur("timeout", s.timeout).
		Dur("interval", s.interval).
		Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if evicted := s.registry.EvictIdle(time.Now().Add(-s.timeout)); evicted > 0 {
				s.log.Info().Int("evicted", evicted).Msg("evicted idle sessions")
			}
		}
	}
}
