package plan_models

import "testing"

func TestDayKeyRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 7, 42} {
		key := DayKey(idx)
		if got := DayIndex(key); got != idx {
			t.Fatalf("DayIndex(DayKey(%d)) = %d", idx, got)
		}
	}
}

func TestDayIndex_Malformed(t *testing.T) {
	for _, key := range []string{"", "day-", "day--1", "day-x", "0", "Day-0", "day_0"} {
		if got := DayIndex(key); got != -1 {
			t.Fatalf("DayIndex(%q) = %d, want -1", key, got)
		}
	}
}

func TestGeneratedDayNumber(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{key: "day_1", want: 1},
		{key: "day_12", want: 12},
		{key: "day_0", want: 0},
		{key: "day-1", want: 0},
		{key: "first", want: 0},
	}
	for _, tc := range tests {
		if got := GeneratedDayNumber(tc.key); got != tc.want {
			t.Fatalf("GeneratedDayNumber(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}
