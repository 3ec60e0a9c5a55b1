package seasons

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for a date string that is not "abbr day"
var ErrInvalidDate = errors.New("invalid date")

var monthAbbreviations = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// MonthDay is a calendar date without a year, i.e. "apr 14"
type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%s %d", strings.ToLower(md.Month.String()[:3]), md.Day)
}

// Ordinal returns the 1-based day of year of md in year, or 0 when md is not a date in that year
func (md MonthDay) Ordinal(year int) int {
	return DayOfYear(year, md.Month, md.Day)
}

// ParseMonthDay parses "apr 14" (case-insensitive month abbreviation followed by a day)
//
// The day is not range checked; that happens when an ordinal is computed for a specific year.
func ParseMonthDay(s string) (MonthDay, error) {
	abbr, day, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return MonthDay{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
	}
	m, ok := monthAbbreviations[strings.ToLower(abbr)]
	if !ok {
		return MonthDay{}, fmt.Errorf("%w %q: unknown month %q", ErrInvalidDate, s, abbr)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}
	return MonthDay{Month: m, Day: d}, nil
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfYear returns the 1-based ordinal of month/day within year.
//
// The date is anchored at UTC midnight so local offsets can't shift it. 0 is
// returned when month or day do not name a date in year (e.g. feb 29 in 2025).
func DayOfYear(year int, month time.Month, day int) int {
	if month < time.January || month > time.December {
		return 0
	}
	if day < 1 || day > daysIn(year, month) {
		return 0
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(jan1).Hours()/24) + 1
}

// IsActive reports whether the local calendar date of now falls within [start, end] inclusive.
//
// A range whose start is after its end wraps across the year boundary (dec 16 - jan 13).
// Malformed start or end dates are never active.
func IsActive(start, end string, now time.Time) bool {
	s, err := ParseMonthDay(start)
	if err != nil {
		return false
	}
	e, err := ParseMonthDay(end)
	if err != nil {
		return false
	}
	return inRange(s, e, now)
}

func inRange(start, end MonthDay, now time.Time) bool {
	year := now.Year()
	s := start.Ordinal(year)
	e := end.Ordinal(year)
	cur := DayOfYear(year, now.Month(), now.Day())
	if s == 0 || e == 0 || cur == 0 {
		return false
	}
	if s <= e {
		return cur >= s && cur <= e
	}
	return cur >= s || cur <= e
}

// FormatDateRange returns "jun 15-20" for dates in the same month and "apr 14 - may 14" otherwise
func FormatDateRange(start, end string) string {
	s := strings.Split(start, " ")
	e := strings.Split(end, " ")
	if len(s) != 2 || len(e) != 2 {
		return "Invalid Date"
	}
	if strings.EqualFold(s[0], e[0]) {
		return fmt.Sprintf("%s %s-%s", s[0], s[1], e[1])
	}
	return fmt.Sprintf("%s %s - %s %s", s[0], s[1], e[0], e[1])
}

// NextOccurrence returns the first local midnight on or after now's date matching md.
// A date that does not exist in a year (feb 29) is skipped until a year where it does.
func NextOccurrence(md MonthDay, now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	for year := y; year <= y+8; year++ {
		if md.Ordinal(year) == 0 {
			continue
		}
		t := time.Date(year, md.Month, md.Day, 0, 0, 0, 0, now.Location())
		if !t.Before(today) {
			return t
		}
	}
	return time.Time{}
}
