// Package session tracks interactive user sessions and owns each one's
// summary history.
//
// Lifecycle: Start creates a session with an empty history store, End tears
// it down. Sessions nobody has touched for the idle timeout are torn down
// by a background sweep, the same way stale rate-limit buckets are dropped.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shimizu-Technology/medsum/internal/history"
)

// Session is one interactive user context.
type Session struct {
	ID        string
	CreatedAt time.Time
	History   *history.Store

	lastSeen time.Time // guarded by Manager.mu
}

// Manager creates, finds and ends sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTimeout time.Duration
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewManager returns a manager. A positive idleTimeout starts the background
// sweep; call Stop to end it.
func NewManager(idleTimeout time.Duration) *Manager {
	m := &Manager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		now:         time.Now,
		stop:        make(chan struct{}),
	}

	if idleTimeout > 0 {
		go m.cleanup()
	}
	return m
}

// Start initializes a new session with an empty history.
func (m *Manager) Start() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		History:   history.NewStore(),
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with id and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = m.now()
	return s, true
}

// End tears down the session and its history. It reports whether the
// session existed.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop ends the background sweep.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// expire removes sessions idle for longer than the timeout and returns how
// many were removed.
func (m *Manager) expire() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.idleTimeout {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) cleanup() {
	interval := m.idleTimeout / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	// Go Pattern: time.Ticker sends values at regular intervals.
	// Always defer ticker.Stop() to release resources.
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expire()
		case <-m.stop:
			return
		}
	}
}
