package scheduler

import (
	"fmt"
	"time"
)

// TimeFormat is the wall-clock format used across the service.
// All times are naive local wall-clock values; there is no timezone handling.
const TimeFormat = "15:04"

// DateFormat is the calendar date format used across the service.
const DateFormat = "2006-01-02"

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to an "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ExpandDates enumerates one date string per calendar day, inclusive of both
// endpoints. Returns nil if end is before start.
func ExpandDates(start, end time.Time) []string {
	if end.Before(start) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateFormat))
	}
	return dates
}
