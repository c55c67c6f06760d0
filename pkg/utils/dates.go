package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseCalendarDate reads an ISO "2006-01-02" string as a plain calendar date.
// Parsing through time.Parse would yield a UTC instant and shift the day for
// viewers west of Greenwich, so the components are split out by hand.
func ParseCalendarDate(value string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad calendar date %q", value)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad calendar date %q", value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("bad calendar date %q", value)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("bad calendar date %q", value)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// InclusiveDays counts the days covered by [start, end], both ends included.
// An end before the start still yields 1: a trip is never shorter than a day.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start).Hours() / 24
	days := int(math.Ceil(math.Abs(diff))) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FormatDayDate renders the per-day heading date, e.g. "Dec 27, Sat".
func FormatDayDate(t time.Time) string {
	return t.Format("Jan 2, Mon")
}

// FormatLongDate renders the trip header date, e.g. "November 30, 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateRange renders a compact range like "Nov 30 - Dec 2".
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
