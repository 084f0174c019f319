package timeutil

import (
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ToMinutes parses an "HH:MM" 24-hour clock string into minutes since
// midnight. Empty or malformed input yields 0 so callers on read paths
// never fail over a bad legacy time value.
func ToMinutes(hhmm string) int {
	hhmm = strings.TrimSpace(hhmm)
	if hhmm == "" {
		return 0
	}

	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// WorkHours computes elapsed hours between two clock times. A checkout
// numerically earlier than the check-in is treated as an overnight
// shift and gains a day. Either side missing yields 0.
func WorkHours(checkIn, checkOut string) float64 {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return 0
	}

	elapsed := ToMinutes(checkOut) - ToMinutes(checkIn)
	if elapsed < 0 {
		elapsed += minutesPerDay
	}

	return Round2(float64(elapsed) / 60)
}

// Round2 rounds to 2 decimal places; applied to every money and hours
// value before it is persisted.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
