package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) int {
	t.Helper()
	m, err := ParseClock(s)
	require.NoError(t, err)
	return m
}

func window(t *testing.T, start, end string, session, gap int) TimeWindow {
	t.Helper()
	return TimeWindow{
		StartMin:   mustClock(t, start),
		EndMin:     mustClock(t, end),
		SessionMin: session,
		GapMin:     gap,
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = ParseClock("9h30")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestGenerateValidatesWindow(t *testing.T) {
	cases := []TimeWindow{
		{StartMin: 600, EndMin: 720, SessionMin: 0, GapMin: 0},
		{StartMin: 600, EndMin: 720, SessionMin: 30, GapMin: -1},
		{StartMin: 720, EndMin: 600, SessionMin: 30, GapMin: 0},
		{StartMin: 600, EndMin: 600, SessionMin: 30, GapMin: 0},
	}
	for _, w := range cases {
		_, err := Generate(w, nil)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestGenerateStaysInsideWindow(t *testing.T) {
	w := window(t, "08:00", "17:30", 45, 10)
	slots, err := Generate(w, nil)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.GreaterOrEqual(t, s.StartMin, w.StartMin)
		assert.LessOrEqual(t, s.EndMin, w.EndMin)
		assert.Equal(t, w.SessionMin, s.EndMin-s.StartMin)
	}
}

func TestGenerateDropsTruncatedTail(t *testing.T) {
	// 10:00-11:00 fits; the next candidate starts 11:30 and would end 12:30,
	// past the window end, so generation stops without emitting it.
	slots, err := Generate(window(t, "10:00", "12:00", 60, 30), nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{StartMin: 600, EndMin: 660}, slots[0])
}

func TestGenerateExcludesBreakOverlap(t *testing.T) {
	breaks := []BreakPeriod{{StartMin: mustClock(t, "11:00"), EndMin: mustClock(t, "12:00")}}
	slots, err := Generate(window(t, "10:00", "14:00", 60, 0), breaks)
	require.NoError(t, err)

	expected := []TimeSlot{
		{StartMin: 600, EndMin: 660},  // 10:00-11:00
		{StartMin: 720, EndMin: 780},  // 12:00-13:00
		{StartMin: 780, EndMin: 840},  // 13:00-14:00
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateBreaksDoNotShiftCadence(t *testing.T) {
	// The 10:30 candidate is excluded but the next slot still starts at 11:00.
	breaks := []BreakPeriod{{StartMin: 630, EndMin: 660}}
	slots, err := Generate(window(t, "10:00", "12:00", 30, 0), breaks)
	require.NoError(t, err)

	expected := []TimeSlot{
		{StartMin: 600, EndMin: 630},
		{StartMin: 660, EndMin: 690},
		{StartMin: 690, EndMin: 720},
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateExcludesSessionEndingAtBreakEnd(t *testing.T) {
	// A session ending exactly at the break end is still excluded.
	breaks := []BreakPeriod{{StartMin: 615, EndMin: 660}}
	slots, err := Generate(window(t, "10:00", "11:30", 30, 0), breaks)
	require.NoError(t, err)

	expected := []TimeSlot{{StartMin: 660, EndMin: 690}}
	assert.Equal(t, expected, slots)
}

func TestGenerateExcludesSessionContainingBreak(t *testing.T) {
	breaks := []BreakPeriod{{StartMin: 620, EndMin: 640}}
	slots, err := Generate(window(t, "10:00", "12:00", 60, 0), breaks)
	require.NoError(t, err)

	expected := []TimeSlot{{StartMin: 660, EndMin: 720}}
	assert.Equal(t, expected, slots)
}

func TestGenerateExcludesSessionInsideLargerBreak(t *testing.T) {
	// Break fully contains every candidate of the morning.
	breaks := []BreakPeriod{{StartMin: 540, EndMin: 780}}
	slots, err := Generate(window(t, "10:00", "12:00", 30, 0), breaks)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateIsIdempotent(t *testing.T) {
	w := window(t, "09:00", "18:00", 50, 10)
	breaks := []BreakPeriod{
		{StartMin: 720, EndMin: 780},
		{StartMin: 760, EndMin: 800}, // overlapping breaks are allowed
	}

	first, err := Generate(w, breaks)
	require.NoError(t, err)
	second, err := Generate(w, breaks)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpandDates(t *testing.T) {
	start, err := time.Parse(DateFormat, "2025-01-01")
	require.NoError(t, err)
	end, err := time.Parse(DateFormat, "2025-01-03")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, ExpandDates(start, end))
	assert.Equal(t, []string{"2025-01-01"}, ExpandDates(start, start))
	assert.Nil(t, ExpandDates(end, start))
}

func TestExpandDatesCrossesMonthBoundary(t *testing.T) {
	start, err := time.Parse(DateFormat, "2025-01-31")
	require.NoError(t, err)
	end, err := time.Parse(DateFormat, "2025-02-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-31", "2025-02-01"}, ExpandDates(start, end))
}
