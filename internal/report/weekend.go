package report

import (
	"os"
	"strings"
	"time"
)

// WeekendConfig names which weekdays the institution closes. The
// Friday+Saturday default matches the local school week; deployments
// on a Saturday+Sunday week override WEEKEND_DAYS.
type WeekendConfig struct {
	days map[time.Weekday]bool
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func DefaultWeekend() WeekendConfig {
	return NewWeekend(time.Friday, time.Saturday)
}

func NewWeekend(days ...time.Weekday) WeekendConfig {
	m := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		m[d] = true
	}
	return WeekendConfig{days: m}
}

// WeekendFromEnv reads WEEKEND_DAYS as a comma-separated list of day
// names. Unknown names are ignored; an empty or fully-invalid value
// falls back to the default.
func WeekendFromEnv() WeekendConfig {
	raw := os.Getenv("WEEKEND_DAYS")
	if raw == "" {
		return DefaultWeekend()
	}

	m := make(map[time.Weekday]bool)
	for _, part := range strings.Split(raw, ",") {
		if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			m[d] = true
		}
	}
	if len(m) == 0 {
		return DefaultWeekend()
	}
	return WeekendConfig{days: m}
}

func (w WeekendConfig) IsWeekend(d time.Weekday) bool {
	return w.days[d]
}

// WorkingDays counts the calendar days of a month that are not weekend
// days under this configuration.
func (w WeekendConfig) WorkingDays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	working := 0
	for day := 0; day < daysInMonth; day++ {
		if !w.IsWeekend(first.AddDate(0, 0, day).Weekday()) {
			working++
		}
	}
	return working
}
