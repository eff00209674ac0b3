package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shimizu-Technology/medsum/internal/models"
)

func TestStartGetEnd(t *testing.T) {
	m := NewManager(0)
	defer m.Stop()

	s := m.Start()
	require.NotEmpty(t, s.ID)
	require.NotNil(t, s.History)
	assert.Equal(t, 0, s.History.Count())
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, m.End(s.ID))
	assert.False(t, m.End(s.ID))
	_, ok = m.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestSessionsHaveSeparateHistories(t *testing.T) {
	m := NewManager(0)
	defer m.Stop()

	a := m.Start()
	b := m.Start()
	require.NotEqual(t, a.ID, b.ID)

	a.History.Append(models.SummaryRecord{ID: "r1", Summary: "only in a"})

	assert.Equal(t, 1, a.History.Count())
	assert.Equal(t, 0, b.History.Count())
}

func TestExpireIdleSessions(t *testing.T) {
	m := NewManager(0)
	defer m.Stop()
	m.idleTimeout = time.Hour

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	idle := m.Start()
	active := m.Start()

	now = now.Add(50 * time.Minute)
	_, ok := m.Get(active.ID)
	require.True(t, ok)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, m.expire())

	_, ok = m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(active.ID)
	assert.True(t, ok)
}

func TestStopIsIdempotent(t *testing.T) {
	m := NewManager(time.Hour)
	m.Stop()
	m.Stop()
}
