// Package calendar owns all date and datetime parsing, validation, and
// arithmetic for the booking engine. Values are whole calendar dates held as
// midnight-UTC time.Time; arithmetic here is calendar-date arithmetic and is
// not wall-clock-safe across timezone or DST boundaries.
package calendar

import (
	"time"

	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: divisible by 4 and either not
// divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the day count of a month, 0 when month is out of range.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return daysPerMonth[month-1]
}

// ParseDate accepts only the literal pattern YYYY-MM-DD with year in
// [1900,2100], a real month, and a day that exists in that month. Anything
// else returns a validation failure; no silent clamping.
func ParseDate(s string) (time.Time, error) {
	if !matchesDateShape(s) {
		return time.Time{}, failure.Validationf("invalid date %q: expected format YYYY-MM-DD", s)
	}

	year := atoi4(s[0:4])
	month := atoi2(s[5:7])
	day := atoi2(s[8:10])

	if err := validateDateParts(s, year, month, day); err != nil {
		return time.Time{}, err
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseDateTime accepts only the literal pattern YYYY-MM-DD HH:MM:SS with the
// same date rules plus hour in [0,23] and minute/second in [0,59].
func ParseDateTime(s string) (time.Time, error) {
	if !matchesDateTimeShape(s) {
		return time.Time{}, failure.Validationf("invalid datetime %q: expected format YYYY-MM-DD HH:MM:SS", s)
	}

	year := atoi4(s[0:4])
	month := atoi2(s[5:7])
	day := atoi2(s[8:10])
	hour := atoi2(s[11:13])
	minute := atoi2(s[14:16])
	second := atoi2(s[17:19])

	if err := validateDateParts(s, year, month, day); err != nil {
		return time.Time{}, err
	}

	if hour > 23 {
		return time.Time{}, failure.Validationf("invalid datetime %q: hour out of range", s)
	}

	if minute > 59 || second > 59 {
		return time.Time{}, failure.Validationf("invalid datetime %q: minute or second out of range", s)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

// IsValidDate reports whether s parses under ParseDate.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsValidDateTime reports whether s parses under ParseDateTime.
func IsValidDateTime(s string) bool {
	_, err := ParseDateTime(s)
	return err == nil
}

// DaysBetween counts whole days from a to b by truncating the whole-hour
// difference by 24. Callers must only pass date-only values.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours()) / 24
}

// CompareDates is a total order: -1 when a < b, 0 when equal, 1 when a > b.
func CompareDates(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// AddDays shifts a date by n calendar days with correct month and year
// rollover.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// SubtractDays shifts a date back by n calendar days.
func SubtractDays(t time.Time, days int) time.Time {
	return AddDays(t, -days)
}

// DayOfWeek returns the weekday with Sunday = 0.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// WeekOfYear counts weeks from January 1 with Monday as the first day of the
// week; days before the year's first Monday fall in week 0. This is the
// strftime %W convention, deliberately not ISO-8601.
func WeekOfYear(t time.Time) int {
	yday := t.YearDay() - 1
	mondayBased := (int(t.Weekday()) + 6) % 7

	return (yday + 7 - mondayBased) / 7
}

// IsDateInRange reports whether d falls inside [start, end], both ends
// inclusive.
func IsDateInRange(d, start, end time.Time) bool {
	return CompareDates(d, start) >= 0 && CompareDates(d, end) <= 0
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateLayout)
}

// FormatDateTime renders a timestamp as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(t time.Time) string {
	return t.Format(constant.DateTimeLayout)
}

// FormatForDisplay renders a date as e.g. "March 05, 2026".
func FormatForDisplay(t time.Time) string {
	return t.Format(constant.DisplayLayout)
}

func validateDateParts(s string, year, month, day int) error {
	if year < 1900 || year > 2100 {
		return failure.Validationf("invalid date %q: year out of range [1900,2100]", s)
	}

	if month < 1 || month > 12 {
		return failure.Validationf("invalid date %q: month out of range", s)
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return failure.Validationf("invalid date %q: day does not exist in month", s)
	}

	return nil
}

func matchesDateShape(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}

	return allDigits(s[0:4]) && allDigits(s[5:7]) && allDigits(s[8:10])
}

func matchesDateTimeShape(s string) bool {
	if len(s) != 19 || s[10] != ' ' || s[13] != ':' || s[16] != ':' {
		return false
	}

	return matchesDateShape(s[0:10]) && allDigits(s[11:13]) && allDigits(s[14:16]) && allDigits(s[17:19])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func atoi4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
