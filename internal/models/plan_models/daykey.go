package plan_models

import (
	"fmt"
	"strconv"
	"strings"
)

// DayKey maps a zero-based day index to its stable identifier, e.g. "day-0".
// Every per-day map in the session is keyed by this.
func DayKey(index int) string {
	return fmt.Sprintf("day-%d", index)
}

// DayIndex recovers the index from a day key. Returns -1 for anything that is
// not a well-formed key.
func DayIndex(key string) int {
	raw, ok := strings.CutPrefix(key, "day-")
	if !ok {
		return -1
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return -1
	}
	return idx
}

// GeneratedDayNumber parses the 1-based day number out of a generated
// itinerary key such as "day_3". Returns 0 when the key carries no number.
func GeneratedDayNumber(key string) int {
	raw, ok := strings.CutPrefix(key, "day_")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
