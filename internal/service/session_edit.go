package service

import (
	"errors"

	"go-consultation-booking/internal/scheduler"
)

// ErrConsultantNotInRoster is returned when a bulk edit or toggle references
// a consultant outside the session's roster.
var ErrConsultantNotInRoster = errors.New("consultant is not in the session roster")

// Toggle flips one consultant's availability on one candidate slot, keeping
// the index and the materialized preview consistent in the same step.
// Callers must hold the session lock.
func (s *PlannerSession) Toggle(consultant, date string, slotStart int) error {
	if !s.InRoster(consultant) {
		return ErrConsultantNotInRoster
	}

	available := s.Index.IsAvailable(consultant, date, slotStart)
	s.Index.SetException(consultant, date, slotStart, !available)
	s.Rematerialize()
	return nil
}

// BulkEdit applies one action to every candidate slot matching the filter,
// by rewriting availability exceptions. The whole batch is applied
// optimistically against a snapshot: if any edit fails, the snapshot is
// restored and the session is left exactly as it was. Callers must hold the
// session lock.
func (s *PlannerSession) BulkEdit(filter scheduler.SlotFilter, action scheduler.BulkAction, consultants []string) (scheduler.EditSummary, error) {
	snap := s.Snapshot()

	summary := scheduler.EditSummary{}
	for _, appointment := range scheduler.Select(s.Preview, filter) {
		members, changed, err := scheduler.EditMembers(appointment.Consultants, action, consultants)
		if err != nil {
			s.Restore(snap)
			return scheduler.EditSummary{}, err
		}
		if !changed {
			continue
		}
		if err := s.applyMembers(appointment, members); err != nil {
			s.Restore(snap)
			return scheduler.EditSummary{}, err
		}
		summary.Modified++
	}

	s.Rematerialize()
	return summary, nil
}

// applyMembers rewrites the exceptions for one candidate slot so that
// exactly the given roster members remain available on it.
func (s *PlannerSession) applyMembers(appointment scheduler.GeneratedAppointment, members []string) error {
	for _, member := range members {
		if !s.InRoster(member) {
			return ErrConsultantNotInRoster
		}
	}

	included := make(map[string]bool, len(members))
	for _, member := range members {
		included[member] = true
	}
	for _, consultant := range s.Roster {
		s.Index.SetException(consultant, appointment.Date, appointment.StartMin, included[consultant])
	}
	return nil
}
