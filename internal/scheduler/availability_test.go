package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexDefaultsToAvailable(t *testing.T) {
	ix := NewIndex()

	for _, consultant := range []string{"Alice", "Bob"} {
		for _, date := range []string{"2025-01-01", "2025-06-15"} {
			assert.True(t, ix.IsAvailable(consultant, date, 600))
		}
	}
	assert.Equal(t, 0, ix.Len())
}

func TestIndexExceptionToggleInvolution(t *testing.T) {
	ix := NewIndex()

	ix.SetException("Alice", "2025-01-01", 600, false)
	assert.False(t, ix.IsAvailable("Alice", "2025-01-01", 600))
	assert.Equal(t, 1, ix.Len())

	// Only the exact key is affected.
	assert.True(t, ix.IsAvailable("Alice", "2025-01-01", 660))
	assert.True(t, ix.IsAvailable("Alice", "2025-01-02", 600))
	assert.True(t, ix.IsAvailable("Bob", "2025-01-01", 600))

	// Restoring availability removes the stored exception.
	ix.SetException("Alice", "2025-01-01", 600, true)
	assert.True(t, ix.IsAvailable("Alice", "2025-01-01", 600))
	assert.Equal(t, 0, ix.Len())
}

func TestIndexDoesNotStoreRedundantAvailableEntries(t *testing.T) {
	ix := NewIndex()

	ix.SetException("Alice", "2025-01-01", 600, true)
	ix.SetException("Alice", "2025-01-01", 600, true)
	assert.Equal(t, 0, ix.Len())

	ix.SetException("Alice", "2025-01-01", 600, false)
	ix.SetException("Alice", "2025-01-01", 600, false)
	assert.Equal(t, 1, ix.Len())
}

func TestIndexClone(t *testing.T) {
	ix := NewIndex()
	ix.SetException("Alice", "2025-01-01", 600, false)

	clone := ix.Clone()
	clone.SetException("Bob", "2025-01-01", 600, false)
	clone.SetException("Alice", "2025-01-01", 600, true)

	assert.False(t, ix.IsAvailable("Alice", "2025-01-01", 600))
	assert.True(t, ix.IsAvailable("Bob", "2025-01-01", 600))
	assert.True(t, clone.IsAvailable("Alice", "2025-01-01", 600))
}

func TestMaterializeAllAvailable(t *testing.T) {
	ix := NewIndex()
	dates := []string{"2025-01-01", "2025-01-02"}
	slots := []TimeSlot{{StartMin: 600, EndMin: 660}}
	consultants := []string{"A", "B"}

	appointments := ix.Materialize(dates, slots, consultants)
	require.Len(t, appointments, 2)

	for i, a := range appointments {
		assert.Equal(t, dates[i], a.Date)
		assert.Equal(t, 600, a.StartMin)
		assert.Equal(t, 660, a.EndMin)
		assert.Equal(t, []string{"A", "B"}, a.Consultants)
	}
}

func TestMaterializeDropsEmptyAppointments(t *testing.T) {
	ix := NewIndex()
	ix.SetException("A", "2025-01-01", 600, false)
	ix.SetException("B", "2025-01-01", 600, false)

	appointments := ix.Materialize(
		[]string{"2025-01-01"},
		[]TimeSlot{{StartMin: 600, EndMin: 660}, {StartMin: 660, EndMin: 720}},
		[]string{"A", "B"},
	)

	// The 10:00 slot lost both consultants and is dropped entirely.
	require.Len(t, appointments, 1)
	assert.Equal(t, 660, appointments[0].StartMin)
	assert.Equal(t, []string{"A", "B"}, appointments[0].Consultants)
}

func TestMaterializeFiltersExcludedConsultant(t *testing.T) {
	ix := NewIndex()
	ix.SetException("B", "2025-01-01", 600, false)

	appointments := ix.Materialize(
		[]string{"2025-01-01"},
		[]TimeSlot{{StartMin: 600, EndMin: 660}},
		[]string{"A", "B"},
	)

	require.Len(t, appointments, 1)
	assert.Equal(t, []string{"A"}, appointments[0].Consultants)
}
