package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Satyam7Parsad/hotel-management-system/internal/calendar"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-01", date(2026, time.March, 1)},
		{"2024-02-29", date(2024, time.February, 29)}, // leap year
		{"2000-02-29", date(2000, time.February, 29)}, // divisible by 400
		{"1900-01-01", date(1900, time.January, 1)},
		{"2100-12-31", date(2100, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := calendar.ParseDate(tt.input)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []string{
		"2026-02-30", // day does not exist
		"2025-02-29", // not a leap year
		"2023-02-29", // not a leap year
		"1900-02-29", // divisible by 100 but not 400
		"2026-13-01", // month out of range
		"2026-00-10", // month zero
		"2026-01-00", // day zero
		"1899-12-31", // year below range
		"2101-01-01", // year above range
		"2026-3-01",  // missing zero padding
		"2026/03/01", // wrong separator
		"03-01-2026", // wrong field order
		"2026-03-01 ",
		"",
		"not-a-date",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := calendar.ParseDate(input)
			assert.Error(t, err)
			assert.True(t, failure.IsValidation(err))
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := calendar.ParseDateTime("2026-03-01 14:30:00")
	assert.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, time.March, 1, 14, 30, 0, 0, time.UTC)))

	invalid := []string{
		"2026-03-01 24:00:00", // hour out of range
		"2026-03-01 12:60:00", // minute out of range
		"2026-03-01 12:00:60", // second out of range
		"2026-02-30 12:00:00", // bad date part
		"2026-03-01T12:00:00", // wrong separator
		"2026-03-01 12:00",    // missing seconds
	}
	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := calendar.ParseDateTime(input)
			assert.Error(t, err)
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, calendar.IsLeapYear(2000))
	assert.False(t, calendar.IsLeapYear(1900))
	assert.True(t, calendar.IsLeapYear(2024))
	assert.False(t, calendar.IsLeapYear(2023))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysInMonth(2024, 2))
	assert.Equal(t, 28, calendar.DaysInMonth(2023, 2))
	assert.Equal(t, 31, calendar.DaysInMonth(2026, 1))
	assert.Equal(t, 30, calendar.DaysInMonth(2026, 4))
	assert.Equal(t, 0, calendar.DaysInMonth(2026, 13))
}

func TestDaysBetween(t *testing.T) {
	d1 := date(2026, time.March, 1)
	d2 := date(2026, time.March, 5)

	assert.Equal(t, 4, calendar.DaysBetween(d1, d2))
	assert.Equal(t, 0, calendar.DaysBetween(d1, d1))
	assert.Equal(t, -4, calendar.DaysBetween(d2, d1))

	// across a leap day
	assert.Equal(t, 2, calendar.DaysBetween(date(2024, time.February, 28), date(2024, time.March, 1)))
	assert.Equal(t, 1, calendar.DaysBetween(date(2023, time.February, 28), date(2023, time.March, 1)))
}

func TestDaysBetween_NonNegativeForOrderedDates(t *testing.T) {
	start := date(2026, time.January, 1)
	for i := 0; i < 400; i++ {
		end := calendar.AddDays(start, i)
		assert.GreaterOrEqual(t, calendar.DaysBetween(start, end), 0)
	}
}

func TestCompareDates(t *testing.T) {
	a := date(2026, time.January, 1)
	b := date(2026, time.January, 2)

	assert.Equal(t, -1, calendar.CompareDates(a, b))
	assert.Equal(t, 1, calendar.CompareDates(b, a))
	assert.Equal(t, 0, calendar.CompareDates(a, a))
}

func TestAddSubtractDays(t *testing.T) {
	assert.True(t, calendar.AddDays(date(2026, time.January, 31), 1).Equal(date(2026, time.February, 1)))
	assert.True(t, calendar.AddDays(date(2026, time.December, 31), 1).Equal(date(2027, time.January, 1)))
	assert.True(t, calendar.AddDays(date(2024, time.February, 28), 1).Equal(date(2024, time.February, 29)))
	assert.True(t, calendar.SubtractDays(date(2026, time.March, 1), 1).Equal(date(2026, time.February, 28)))
}

func TestDayOfWeek(t *testing.T) {
	// 2026-03-01 is a Sunday
	assert.Equal(t, 0, calendar.DayOfWeek(date(2026, time.March, 1)))
	// 2026-03-02 is a Monday
	assert.Equal(t, 1, calendar.DayOfWeek(date(2026, time.March, 2)))
}

func TestWeekOfYear(t *testing.T) {
	// 2024-01-01 is a Monday: first week is week 1
	assert.Equal(t, 1, calendar.WeekOfYear(date(2024, time.January, 1)))
	// 2023-01-01 is a Sunday: before the first Monday, week 0
	assert.Equal(t, 0, calendar.WeekOfYear(date(2023, time.January, 1)))
	// the day after is the first Monday of 2023
	assert.Equal(t, 1, calendar.WeekOfYear(date(2023, time.January, 2)))
}

func TestIsDateInRange(t *testing.T) {
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 10)

	assert.True(t, calendar.IsDateInRange(date(2026, time.March, 5), start, end))
	assert.True(t, calendar.IsDateInRange(start, start, end))
	assert.True(t, calendar.IsDateInRange(end, start, end))
	assert.False(t, calendar.IsDateInRange(date(2026, time.March, 11), start, end))
}

func TestFormatting(t *testing.T) {
	d := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-05", calendar.FormatDate(d))
	assert.Equal(t, "2026-03-05 14:30:00", calendar.FormatDateTime(d))
	assert.Equal(t, "March 05, 2026", calendar.FormatForDisplay(d))
}

func TestParseFormatRoundTrip(t *testing.T) {
	parsed, err := calendar.ParseDate("2026-07-15")
	assert.NoError(t, err)
	assert.Equal(t, "2026-07-15", calendar.FormatDate(parsed))
}
