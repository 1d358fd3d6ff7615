package service

import (
	"testing"

	"go-consultation-booking/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToggle(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.Toggle("Alice", "2025-01-01", 600))
	assert.False(t, session.Index.IsAvailable("Alice", "2025-01-01", 600))
	assert.Equal(t, []string{"Bob"}, session.Preview[0].Consultants)

	// Toggling again restores the default and clears the exception.
	require.NoError(t, session.Toggle("Alice", "2025-01-01", 600))
	assert.Equal(t, 0, session.Index.Len())
	assert.Equal(t, []string{"Alice", "Bob"}, session.Preview[0].Consultants)
}

func TestSessionToggleRejectsUnknownConsultant(t *testing.T) {
	session := newTestSession(t)
	assert.ErrorIs(t, session.Toggle("Carol", "2025-01-01", 600), ErrConsultantNotInRoster)
}

func TestSessionBulkEditRemove(t *testing.T) {
	session := newTestSession(t)

	summary, err := session.BulkEdit(
		scheduler.SlotFilter{Date: "2025-01-01"},
		scheduler.BulkActionRemove,
		[]string{"Bob"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Modified)

	for _, a := range session.Preview {
		if a.Date == "2025-01-01" {
			assert.Equal(t, []string{"Alice"}, a.Consultants)
		} else {
			assert.Equal(t, []string{"Alice", "Bob"}, a.Consultants)
		}
	}
}

func TestSessionBulkEditRemoveAllDropsAppointments(t *testing.T) {
	session := newTestSession(t)

	summary, err := session.BulkEdit(
		scheduler.SlotFilter{Date: "2025-01-02"},
		scheduler.BulkActionReplace,
		[]string{"Alice"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Modified)

	summary, err = session.BulkEdit(
		scheduler.SlotFilter{Date: "2025-01-02"},
		scheduler.BulkActionRemove,
		[]string{"Alice"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Modified)

	// Candidates that lost every consultant disappear from the preview.
	assert.Len(t, session.Preview, 2)
	for _, a := range session.Preview {
		assert.Equal(t, "2025-01-01", a.Date)
	}
}

func TestSessionBulkEditAddIsIdempotent(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.Toggle("Bob", "2025-01-01", 600))

	summary, err := session.BulkEdit(scheduler.SlotFilter{}, scheduler.BulkActionAdd, []string{"Bob"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Modified)

	summary, err = session.BulkEdit(scheduler.SlotFilter{}, scheduler.BulkActionAdd, []string{"Bob"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)
}

func TestSessionBulkEditRollsBackOnUnknownConsultant(t *testing.T) {
	session := newTestSession(t)
	before := session.Snapshot()

	_, err := session.BulkEdit(scheduler.SlotFilter{}, scheduler.BulkActionAdd, []string{"Carol"})
	assert.ErrorIs(t, err, ErrConsultantNotInRoster)

	// The failed batch left no partial state behind.
	assert.Equal(t, before.Preview, session.Preview)
	assert.Equal(t, 0, session.Index.Len())
}

func TestSessionBulkEditUnknownAction(t *testing.T) {
	session := newTestSession(t)
	_, err := session.BulkEdit(scheduler.SlotFilter{}, scheduler.BulkAction("bad"), []string{"Alice"})
	assert.ErrorIs(t, err, scheduler.ErrUnknownBulkAction)
}
