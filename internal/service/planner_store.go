package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go-consultation-booking/internal/scheduler"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when a planner session id is unknown or the
// session has expired.
var ErrSessionNotFound = errors.New("planner session not found")

const (
	// DefaultSessionTTL is how long an idle planning session is kept.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultCleanupInterval is how often expired sessions are reaped.
	DefaultCleanupInterval = 5 * time.Minute
)

// PlannerSession is one admin's in-progress slot planning state: the
// configuration it was generated from, the availability index, and the
// current materialized preview. Sessions are ephemeral and rebuilt on every
// configuration change; persisted slots are owned by the database, not by
// the session.
type PlannerSession struct {
	ID        uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Window    scheduler.TimeWindow
	Breaks    []scheduler.BreakPeriod
	Dates     []string
	Roster    []string
	Slots     []scheduler.TimeSlot
	Index     *scheduler.Index
	Preview   []scheduler.GeneratedAppointment
}

// InRoster reports whether the consultant belongs to this session's roster.
func (s *PlannerSession) InRoster(consultant string) bool {
	for _, name := range s.Roster {
		if name == consultant {
			return true
		}
	}
	return false
}

// Rematerialize rebuilds the preview from the index. Callers must hold the
// session lock (see PlannerStore.WithSession).
func (s *PlannerSession) Rematerialize() {
	s.Preview = s.Index.Materialize(s.Dates, s.Slots, s.Roster)
}

// SessionSnapshot captures the mutable session state before an optimistic
// mutation so a failed downstream call can restore it.
type SessionSnapshot struct {
	Index   *scheduler.Index
	Preview []scheduler.GeneratedAppointment
}

// Snapshot copies the index and preview. Restore puts them back unchanged.
func (s *PlannerSession) Snapshot() SessionSnapshot {
	preview := make([]scheduler.GeneratedAppointment, len(s.Preview))
	copy(preview, s.Preview)
	return SessionSnapshot{Index: s.Index.Clone(), Preview: preview}
}

func (s *PlannerSession) Restore(snap SessionSnapshot) {
	s.Index = snap.Index
	s.Preview = snap.Preview
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *PlannerSession
	lastUsed atomic.Int64 // Unix timestamp
}

// PlannerStore owns the live planning sessions. It is safe for concurrent
// use: each session has its own mutex, and idle sessions are reaped by a
// background goroutine. Call Stop() during graceful shutdown.
type PlannerStore struct {
	log *logrus.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry

	ttl             time.Duration
	cleanupInterval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewPlannerStore creates the store and starts the background reaper.
func NewPlannerStore(ttl, cleanupInterval time.Duration, log *logrus.Logger) *PlannerStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	store := &PlannerStore{
		log:             log,
		sessions:        make(map[uuid.UUID]*sessionEntry),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		stopChan:        make(chan struct{}),
	}

	store.wg.Add(1)
	go store.reapLoop()

	return store
}

// Stop shuts down the reaper goroutine. Safe to call multiple times.
func (p *PlannerStore) Stop() {
	if p.stopped.CompareAndSwap(false, true) {
		close(p.stopChan)
		p.wg.Wait()
		p.log.Info("PlannerStore stopped")
	}
}

// Put registers a new session.
func (p *PlannerStore) Put(session *PlannerSession) {
	entry := &sessionEntry{session: session}
	entry.lastUsed.Store(time.Now().Unix())

	p.mu.Lock()
	p.sessions[session.ID] = entry
	p.mu.Unlock()
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (p *PlannerStore) Delete(id uuid.UUID) {
	p.mu.Lock()
	delete(p.sessions, id)
	p.mu.Unlock()
}

// Len returns the number of live sessions.
func (p *PlannerStore) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.sessions)
}

// WithSession runs fn with the session locked, refreshing its idle timer.
// Returns ErrSessionNotFound for unknown or expired ids.
func (p *PlannerStore) WithSession(id uuid.UUID, fn func(session *PlannerSession) error) error {
	p.mu.RLock()
	entry, ok := p.sessions[id]
	p.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastUsed.Store(time.Now().Unix())

	return fn(entry.session)
}

func (p *PlannerStore) reapLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.reapStale(time.Now())
		case <-p.stopChan:
			return
		}
	}
}

func (p *PlannerStore) reapStale(now time.Time) {
	cutoff := now.Add(-p.ttl).Unix()
	reaped := 0

	p.mu.Lock()
	for id, entry := range p.sessions {
		if entry.lastUsed.Load() < cutoff {
			delete(p.sessions, id)
			reaped++
		}
	}
	p.mu.Unlock()

	if reaped > 0 {
		p.log.Infof("Reaped %d expired planner session(s)", reaped)
	}
}
