package service

import (
	"testing"
	"time"

	"go-consultation-booking/internal/scheduler"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *PlannerStore {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := NewPlannerStore(time.Minute, time.Minute, log)
	t.Cleanup(store.Stop)
	return store
}

func newTestSession(t *testing.T) *PlannerSession {
	t.Helper()
	window := scheduler.TimeWindow{StartMin: 600, EndMin: 720, SessionMin: 60, GapMin: 0}
	slots, err := scheduler.Generate(window, nil)
	require.NoError(t, err)

	session := &PlannerSession{
		ID:     uuid.New(),
		Window: window,
		Dates:  []string{"2025-01-01", "2025-01-02"},
		Roster: []string{"Alice", "Bob"},
		Slots:  slots,
		Index:  scheduler.NewIndex(),
	}
	session.Rematerialize()
	return session
}

func TestPlannerStorePutAndWithSession(t *testing.T) {
	store := newTestStore(t)
	session := newTestSession(t)
	store.Put(session)
	assert.Equal(t, 1, store.Len())

	err := store.WithSession(session.ID, func(s *PlannerSession) error {
		assert.Len(t, s.Preview, 4) // 2 dates x 2 slots
		return nil
	})
	require.NoError(t, err)
}

func TestPlannerStoreUnknownSession(t *testing.T) {
	store := newTestStore(t)
	err := store.WithSession(uuid.New(), func(*PlannerSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPlannerStoreDelete(t *testing.T) {
	store := newTestStore(t)
	session := newTestSession(t)
	store.Put(session)

	store.Delete(session.ID)
	store.Delete(session.ID) // deleting twice is a no-op

	err := store.WithSession(session.ID, func(*PlannerSession) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPlannerStoreReapsStaleSessions(t *testing.T) {
	store := newTestStore(t)
	stale := newTestSession(t)
	fresh := newTestSession(t)
	store.Put(stale)
	store.Put(fresh)

	// Touch only the fresh session, then reap as if the TTL elapsed.
	require.NoError(t, store.WithSession(fresh.ID, func(*PlannerSession) error { return nil }))
	store.mu.RLock()
	store.sessions[stale.ID].lastUsed.Store(time.Now().Add(-2 * time.Minute).Unix())
	store.mu.RUnlock()

	store.reapStale(time.Now())

	assert.Equal(t, 1, store.Len())
	assert.ErrorIs(t, store.WithSession(stale.ID, func(*PlannerSession) error { return nil }), ErrSessionNotFound)
	assert.NoError(t, store.WithSession(fresh.ID, func(*PlannerSession) error { return nil }))
}

func TestPlannerStoreStopIsIdempotent(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	store := NewPlannerStore(time.Minute, time.Minute, log)

	store.Stop()
	store.Stop()
}

func TestSessionSnapshotRestore(t *testing.T) {
	session := newTestSession(t)
	snap := session.Snapshot()

	session.Index.SetException("Alice", "2025-01-01", 600, false)
	session.Rematerialize()
	require.Equal(t, []string{"Bob"}, session.Preview[0].Consultants)

	session.Restore(snap)
	assert.True(t, session.Index.IsAvailable("Alice", "2025-01-01", 600))
	assert.Equal(t, []string{"Alice", "Bob"}, session.Preview[0].Consultants)
}

func TestSessionToggleKeepsIndexAndPreviewConsistent(t *testing.T) {
	session := newTestSession(t)

	session.Index.SetException("Bob", "2025-01-02", 660, false)
	session.Rematerialize()

	for _, a := range session.Preview {
		if a.Date == "2025-01-02" && a.StartMin == 660 {
			assert.Equal(t, []string{"Alice"}, a.Consultants)
		} else {
			assert.Equal(t, []string{"Alice", "Bob"}, a.Consultants)
		}
	}
}

func TestSessionInRoster(t *testing.T) {
	session := newTestSession(t)
	assert.True(t, session.InRoster("Alice"))
	assert.False(t, session.InRoster("Carol"))
}
