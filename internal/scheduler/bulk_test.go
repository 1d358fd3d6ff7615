package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAppointments() []GeneratedAppointment {
	return []GeneratedAppointment{
		{Date: "2025-01-01", StartMin: 600, EndMin: 660, Consultants: []string{"Alice"}},
		{Date: "2025-01-01", StartMin: 660, EndMin: 720, Consultants: []string{"Alice", "Bob"}},
		{Date: "2025-01-02", StartMin: 600, EndMin: 660, Consultants: []string{"Bob"}},
	}
}

func TestSelectEmptyFilterMatchesAll(t *testing.T) {
	matched := Select(sampleAppointments(), SlotFilter{})
	assert.Len(t, matched, 3)
}

func TestSelectByDate(t *testing.T) {
	matched := Select(sampleAppointments(), SlotFilter{Date: "2025-01-02"})
	require.Len(t, matched, 1)
	assert.Equal(t, []string{"Bob"}, matched[0].Consultants)
}

func TestSelectByConsultant(t *testing.T) {
	matched := Select(sampleAppointments(), SlotFilter{Consultant: "Alice"})
	assert.Len(t, matched, 2)
}

func TestSelectByQuery(t *testing.T) {
	// Substring match is case-insensitive and spans date, times and names.
	assert.Len(t, Select(sampleAppointments(), SlotFilter{Query: "bob"}), 2)
	assert.Len(t, Select(sampleAppointments(), SlotFilter{Query: "12:00"}), 1)
	assert.Len(t, Select(sampleAppointments(), SlotFilter{Query: "2025-01-01"}), 2)
	assert.Empty(t, Select(sampleAppointments(), SlotFilter{Query: "carol"}))
}

func TestSelectCombinesFiltersWithAnd(t *testing.T) {
	matched := Select(sampleAppointments(), SlotFilter{Date: "2025-01-01", Consultant: "Bob"})
	require.Len(t, matched, 1)
	assert.Equal(t, 660, matched[0].StartMin)

	assert.Empty(t, Select(sampleAppointments(), SlotFilter{Date: "2025-01-02", Consultant: "Alice"}))
}

func TestApplyBulkEditAddIsIdempotent(t *testing.T) {
	first, summary, err := ApplyBulkEdit(sampleAppointments(), BulkActionAdd, []string{"Carol"})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Modified)
	for _, a := range first {
		assert.Contains(t, a.Consultants, "Carol")
	}

	second, summary, err := ApplyBulkEdit(first, BulkActionAdd, []string{"Carol"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)
	assert.Equal(t, first, second)
}

func TestApplyBulkEditAddCountsOnlyChangedSlots(t *testing.T) {
	_, summary, err := ApplyBulkEdit(sampleAppointments(), BulkActionAdd, []string{"Alice"})
	require.NoError(t, err)
	// Two slots already contain Alice; only the Bob-only slot changes.
	assert.Equal(t, 1, summary.Modified)
}

func TestApplyBulkEditRemoveAbsentIsNoOp(t *testing.T) {
	before := sampleAppointments()
	updated, summary, err := ApplyBulkEdit(before, BulkActionRemove, []string{"Zed"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)
	assert.Equal(t, before, updated)
}

func TestApplyBulkEditRemove(t *testing.T) {
	updated, summary, err := ApplyBulkEdit(sampleAppointments(), BulkActionRemove, []string{"Alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Modified)
	assert.Empty(t, updated[0].Consultants)
	assert.Equal(t, []string{"Bob"}, updated[1].Consultants)
	assert.Equal(t, []string{"Bob"}, updated[2].Consultants)
}

func TestApplyBulkEditReplace(t *testing.T) {
	updated, summary, err := ApplyBulkEdit(sampleAppointments(), BulkActionReplace, []string{"Carol", "Carol", "Dan"})
	require.NoError(t, err)
	// The replacement set is deduplicated; every slot changes value.
	assert.Equal(t, 3, summary.Modified)
	for _, a := range updated {
		assert.Equal(t, []string{"Carol", "Dan"}, a.Consultants)
	}
}

func TestApplyBulkEditReplaceWithSameSetIsUnmodified(t *testing.T) {
	slots := []GeneratedAppointment{
		{Date: "2025-01-01", StartMin: 600, EndMin: 660, Consultants: []string{"Bob", "Alice"}},
	}
	// Same membership in a different order is not a value change.
	_, summary, err := ApplyBulkEdit(slots, BulkActionReplace, []string{"Alice", "Bob"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Modified)
}

func TestApplyBulkEditRejectsUnknownAction(t *testing.T) {
	_, _, err := ApplyBulkEdit(sampleAppointments(), BulkAction("drop_consultants"), []string{"Alice"})
	assert.ErrorIs(t, err, ErrUnknownBulkAction)
}

func TestEditMembersRejectsUnknownAction(t *testing.T) {
	_, _, err := EditMembers([]string{"Alice"}, BulkAction("noop"), nil)
	assert.ErrorIs(t, err, ErrUnknownBulkAction)
}
