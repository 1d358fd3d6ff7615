package scheduler

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidWindow     = errors.New("invalid time window")
)

// TimeWindow describes the daily working window slots are generated from.
// All fields are minutes: StartMin/EndMin since midnight, SessionMin and
// GapMin as durations.
type TimeWindow struct {
	StartMin   int
	EndMin     int
	SessionMin int
	GapMin     int
}

// Validate checks the window invariants before generation.
func (w TimeWindow) Validate() error {
	if w.SessionMin <= 0 || w.GapMin < 0 || w.StartMin >= w.EndMin {
		return ErrInvalidWindow
	}
	return nil
}

// BreakPeriod is a half-open interval [StartMin, EndMin) during which no
// session may be scheduled. Breaks may overlap each other.
type BreakPeriod struct {
	StartMin int
	EndMin   int
}

// TimeSlot is a single bookable interval, EndMin = StartMin + SessionMin.
type TimeSlot struct {
	StartMin int
	EndMin   int
}

// Generate produces the ordered slot sequence for one day. It is a pure
// function of its inputs: identical arguments always yield an identical
// sequence, which is what makes regeneration idempotent.
//
// A candidate that would run past the window end stops generation entirely;
// truncated slots are never emitted. Excluded candidates still advance the
// cadence, so breaks do not shift later slots.
func Generate(window TimeWindow, breaks []BreakPeriod) ([]TimeSlot, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	var slots []TimeSlot
	for current := window.StartMin; current < window.EndMin; {
		slotEnd := current + window.SessionMin
		if slotEnd > window.EndMin {
			break
		}

		if !overlapsAnyBreak(current, slotEnd, breaks) {
			slots = append(slots, TimeSlot{StartMin: current, EndMin: slotEnd})
		}

		current = slotEnd + window.GapMin
	}
	return slots, nil
}

// overlapsAnyBreak reports whether the candidate [start, end) overlaps any
// break. A session ending exactly at a break's end is still excluded.
func overlapsAnyBreak(start, end int, breaks []BreakPeriod) bool {
	for _, b := range breaks {
		startsInside := start >= b.StartMin && start < b.EndMin
		endsInside := end > b.StartMin && end <= b.EndMin
		containsBreak := start < b.StartMin && end > b.EndMin
		if startsInside || endsInside || containsBreak {
			return true
		}
	}
	return false
}
