package index

import (
	"sync"
	"time"

	"github.com/pathforward/doorhub/internal/domain"
)

// SessionTable keeps live diagnosis sessions in memory. Sessions are
// small and regenerable, so losing them on restart is acceptable;
// finished results are persisted separately.
type SessionTable struct {
	mu       sync.RWMutex
	sessions map[string]*domain.DiagnosisSession
}

func NewSessionTable() *SessionTable {
	return &SessionTable{sessions: make(map[string]*domain.DiagnosisSession)}
}

// Put stores or replaces a session.
func (t *SessionTable) Put(s *domain.DiagnosisSession) {
	t.mu.Lock()
	t.sessions[s.ID] = s
	t.mu.Unlock()
}

// Get returns a point-in-time copy of the session. The copy is
// detached from the stored one, so callers can encode it while other
// requests keep mutating the session through Update.
func (t *SessionTable) Get(id string) (domain.DiagnosisSession, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[id]
	if !ok {
		return domain.DiagnosisSession{}, false
	}
	return s.Clone(), true
}

// Update applies fn to the stored session while holding the table
// lock, serializing concurrent mutations of the same session. It
// returns a detached copy of the state after fn ran, or ok=false when
// the id is unknown. An error from fn is returned as-is with the
// session left as fn left it.
func (t *SessionTable) Update(id string, fn func(*domain.DiagnosisSession) error) (domain.DiagnosisSession, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[id]
	if !ok {
		return domain.DiagnosisSession{}, false, nil
	}
	if err := fn(s); err != nil {
		return domain.DiagnosisSession{}, true, err
	}
	return s.Clone(), true, nil
}

// Delete removes a session. Deleting a missing id is a no-op.
func (t *SessionTable) Delete(id string) {
	t.mu.Lock()
	delete(t.sessions, id)
	t.mu.Unlock()
}

// PurgeIdle drops sessions untouched for longer than ttl and returns
// how many were removed.
func (t *SessionTable) PurgeIdle(ttl time.Duration, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for id, s := range t.sessions {
		if now.Sub(s.UpdatedAt) > ttl {
			delete(t.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live sessions.
func (t *SessionTable) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
