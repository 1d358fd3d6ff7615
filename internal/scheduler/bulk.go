package scheduler

import (
	"errors"
	"strings"
)

var ErrUnknownBulkAction = errors.New("unknown bulk action")

// BulkAction selects how a bulk edit changes each slot's consultant set.
type BulkAction string

const (
	BulkActionAdd     BulkAction = "add_consultants"
	BulkActionRemove  BulkAction = "remove_consultants"
	BulkActionReplace BulkAction = "replace_consultants"
)

func (a BulkAction) Valid() bool {
	return a == BulkActionAdd || a == BulkActionRemove || a == BulkActionReplace
}

// SlotFilter selects a subset of appointments. Empty fields are absent and
// match everything; provided fields are combined with AND.
type SlotFilter struct {
	Date       string // exact date match, YYYY-MM-DD
	Consultant string // consultant set membership
	Query      string // case-insensitive substring over date/time/consultants
}

// Matches reports whether one appointment passes every provided field.
func (f SlotFilter) Matches(a GeneratedAppointment) bool {
	if f.Date != "" && a.Date != f.Date {
		return false
	}
	if f.Consultant != "" && !containsMember(a.Consultants, f.Consultant) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		haystack := strings.ToLower(
			a.Date + " " + FormatClock(a.StartMin) + " " + FormatClock(a.EndMin) + " " + strings.Join(a.Consultants, " "),
		)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

// Select returns the appointments matching the filter, preserving order.
func Select(appointments []GeneratedAppointment, filter SlotFilter) []GeneratedAppointment {
	var matched []GeneratedAppointment
	for _, a := range appointments {
		if filter.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched
}

// EditSummary reports the outcome of one bulk edit batch.
type EditSummary struct {
	Modified int
}

// EditMembers applies one bulk action to a single consultant set. The second
// result reports whether the set actually changed value, not merely that it
// was touched. Adding a present member and removing an absent one are no-ops.
func EditMembers(current []string, action BulkAction, consultants []string) ([]string, bool, error) {
	switch action {
	case BulkActionAdd:
		updated := append([]string(nil), current...)
		changed := false
		for _, c := range consultants {
			if !containsMember(updated, c) {
				updated = append(updated, c)
				changed = true
			}
		}
		return updated, changed, nil

	case BulkActionRemove:
		var updated []string
		for _, c := range current {
			if !containsMember(consultants, c) {
				updated = append(updated, c)
			}
		}
		return updated, len(updated) != len(current), nil

	case BulkActionReplace:
		updated := dedupeMembers(consultants)
		return updated, !sameMembers(current, updated), nil

	default:
		return nil, false, ErrUnknownBulkAction
	}
}

// ApplyBulkEdit applies one action uniformly across the selected
// appointments, returning the new collection and a change summary.
func ApplyBulkEdit(selected []GeneratedAppointment, action BulkAction, consultants []string) ([]GeneratedAppointment, EditSummary, error) {
	if !action.Valid() {
		return nil, EditSummary{}, ErrUnknownBulkAction
	}

	updated := make([]GeneratedAppointment, len(selected))
	summary := EditSummary{}
	for i, a := range selected {
		members, changed, err := EditMembers(a.Consultants, action, consultants)
		if err != nil {
			return nil, EditSummary{}, err
		}
		if changed {
			summary.Modified++
		}
		a.Consultants = members
		updated[i] = a
	}
	return updated, summary, nil
}

func containsMember(members []string, name string) bool {
	for _, m := range members {
		if m == name {
			return true
		}
	}
	return false
}

func dedupeMembers(members []string) []string {
	var out []string
	for _, m := range members {
		if !containsMember(out, m) {
			out = append(out, m)
		}
	}
	return out
}

// sameMembers compares two sets ignoring order.
func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, m := range a {
		if !containsMember(b, m) {
			return false
		}
	}
	return true
}
