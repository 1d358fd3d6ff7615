package scheduler

// AvailabilityKey identifies one consultant on one generated slot. It is the
// only join key between the index and materialized appointments.
type AvailabilityKey struct {
	Consultant string
	Date       string // Format: YYYY-MM-DD
	SlotStart  int    // minutes since midnight
}

// Index records per-consultant availability as exceptions to a
// default-available rule. Only "unavailable" entries are stored; a key that
// is absent is available. The index must never be reinterpreted as
// default-false, and it never grows with redundant "available" entries.
type Index struct {
	exceptions map[AvailabilityKey]struct{}
}

func NewIndex() *Index {
	return &Index{exceptions: make(map[AvailabilityKey]struct{})}
}

// IsAvailable returns true unless an explicit exception exists for the key.
func (ix *Index) IsAvailable(consultant, date string, slotStart int) bool {
	_, excluded := ix.exceptions[AvailabilityKey{Consultant: consultant, Date: date, SlotStart: slotStart}]
	return !excluded
}

// SetException stores an exception when available is false, and clears any
// stored exception when available is true (back to the default).
func (ix *Index) SetException(consultant, date string, slotStart int, available bool) {
	key := AvailabilityKey{Consultant: consultant, Date: date, SlotStart: slotStart}
	if available {
		delete(ix.exceptions, key)
		return
	}
	ix.exceptions[key] = struct{}{}
}

// Len returns the number of stored exceptions.
func (ix *Index) Len() int {
	return len(ix.exceptions)
}

// Clone returns an independent copy of the index, used for snapshots.
func (ix *Index) Clone() *Index {
	clone := NewIndex()
	for key := range ix.exceptions {
		clone.exceptions[key] = struct{}{}
	}
	return clone
}

// GeneratedAppointment is the materialized view of one (date, slot) pair with
// the consultants that remain available for it.
type GeneratedAppointment struct {
	Date        string
	StartMin    int
	EndMin      int
	Consultants []string
}

// Materialize evaluates every (date, slot, consultant) triple against the
// index and keeps the included ones. Appointments whose consultant set comes
// out empty are dropped entirely.
func (ix *Index) Materialize(dates []string, slots []TimeSlot, consultants []string) []GeneratedAppointment {
	var appointments []GeneratedAppointment
	for _, date := range dates {
		for _, slot := range slots {
			var included []string
			for _, consultant := range consultants {
				if ix.IsAvailable(consultant, date, slot.StartMin) {
					included = append(included, consultant)
				}
			}
			if len(included) == 0 {
				continue
			}
			appointments = append(appointments, GeneratedAppointment{
				Date:        date,
				StartMin:    slot.StartMin,
				EndMin:      slot.EndMin,
				Consultants: included,
			})
		}
	}
	return appointments
}
