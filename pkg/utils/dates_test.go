package utils

import (
	"testing"
	"time"
)

func TestParseCalendarDate(t *testing.T) {
	got, err := ParseCalendarDate("2025-12-27")
	if err != nil {
		t.Fatalf("ParseCalendarDate returned error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 27 {
		t.Fatalf("ParseCalendarDate = %v, want 2025-12-27", got)
	}
	if got.Location() != time.Local {
		t.Fatalf("ParseCalendarDate location = %v, want local", got.Location())
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "2025-12", "2025-13-01", "2025-12-40", "not-a-date"} {
		if _, err := ParseCalendarDate(value); err == nil {
			t.Fatalf("ParseCalendarDate(%q) expected error", value)
		}
	}
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same day", start: "2025-12-27", end: "2025-12-27", want: 1},
		{name: "weekend", start: "2025-12-27", end: "2025-12-28", want: 2},
		{name: "three days", start: "2025-12-27", end: "2025-12-29", want: 3},
		{name: "reversed dates", start: "2025-12-29", end: "2025-12-27", want: 3},
		{name: "across month boundary", start: "2025-11-30", end: "2025-12-02", want: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, err := ParseCalendarDate(tc.start)
			if err != nil {
				t.Fatal(err)
			}
			end, err := ParseCalendarDate(tc.end)
			if err != nil {
				t.Fatal(err)
			}
			if got := InclusiveDays(start, end); got != tc.want {
				t.Fatalf("InclusiveDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestFormatDayDate(t *testing.T) {
	d := time.Date(2025, time.December, 27, 0, 0, 0, 0, time.Local)
	if got := FormatDayDate(d); got != "Dec 27, Sat" {
		t.Fatalf("FormatDayDate = %q, want %q", got, "Dec 27, Sat")
	}
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.Local)
	if got := FormatLongDate(d); got != "November 30, 2025" {
		t.Fatalf("FormatLongDate = %q, want %q", got, "November 30, 2025")
	}
}
