package scheduler

import (
	"context"
	"time"

	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
)

const (
	// DefaultSessionTTL is how long an untouched diagnosis session
	// survives before the reaper drops it.
	DefaultSessionTTL = 24 * time.Hour
)

// SessionReaper drops diagnosis sessions that went quiet.
type SessionReaper struct {
	sessions *index.SessionTable
	logger   logger.Logger
	interval time.Duration
	ttl      time.Duration
	stopCh   chan struct{}
}

// NewSessionReaper creates a session reaper.
func NewSessionReaper(sessions *index.SessionTable, log logger.Logger, interval, ttl time.Duration) *SessionReaper {
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionReaper{
		sessions: sessions,
		logger:   log,
		interval: interval,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic reaping process.
func (sr *SessionReaper) Start(ctx context.Context) {
	sr.Reap(time.Now())

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sr.Reap(time.Now())
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the reaper.
func (sr *SessionReaper) Stop() {
	close(sr.stopCh)
}

// Reap removes sessions idle longer than the TTL.
func (sr *SessionReaper) Reap(now time.Time) {
	removed := sr.sessions.PurgeIdle(sr.ttl, now)
	if removed > 0 {
		sr.logger.Info("reaped idle diagnosis sessions",
			logger.Int("removed", removed),
			logger.Int("remaining", sr.sessions.Count()))
	}
}
