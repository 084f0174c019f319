package report_test

import (
	"testing"
	"time"

	"hazri/internal/attendance"
	"hazri/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(date time.Time, status string, workHours, deduction float64) attendance.Attendance {
	return attendance.Attendance{
		ID:              uuid.New(),
		TeacherID:       uuid.New(),
		Date:            date,
		Status:          status,
		WorkHours:       workHours,
		SalaryDeduction: deduction,
	}
}

func TestWorkingDays(t *testing.T) {
	t.Run("friday saturday weekend", func(t *testing.T) {
		// March 2026 has 31 days, 4 Fridays and 4 Saturdays.
		got := report.DefaultWeekend().WorkingDays(2026, time.March)
		assert.Equal(t, 23, got)
	})

	t.Run("saturday sunday weekend", func(t *testing.T) {
		// February 2026 has 28 days, exactly 4 of each weekday.
		got := report.NewWeekend(time.Saturday, time.Sunday).WorkingDays(2026, time.February)
		assert.Equal(t, 20, got)
	})
}

func TestWeekendFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("WEEKEND_DAYS", "")
		w := report.WeekendFromEnv()
		assert.True(t, w.IsWeekend(time.Friday))
		assert.True(t, w.IsWeekend(time.Saturday))
		assert.False(t, w.IsWeekend(time.Sunday))
	})

	t.Run("parses configured days", func(t *testing.T) {
		t.Setenv("WEEKEND_DAYS", "Saturday, Sunday")
		w := report.WeekendFromEnv()
		assert.True(t, w.IsWeekend(time.Saturday))
		assert.True(t, w.IsWeekend(time.Sunday))
		assert.False(t, w.IsWeekend(time.Friday))
	})

	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("WEEKEND_DAYS", "someday,never")
		w := report.WeekendFromEnv()
		assert.True(t, w.IsWeekend(time.Friday))
	})
}

func TestSummarize(t *testing.T) {
	weekend := report.DefaultWeekend()

	records := []attendance.Attendance{
		record(day(2026, time.March, 1), attendance.StatusPresent, 8, 0),
		record(day(2026, time.March, 2), attendance.StatusPresent, 7.5, 62.5),
		record(day(2026, time.March, 3), attendance.StatusLate, 6, 125),
		record(day(2026, time.March, 4), attendance.StatusHalfDay, 4, 0),
		record(day(2026, time.March, 5), attendance.StatusLeave, 0, 500),
		record(day(2026, time.March, 8), attendance.StatusAbsent, 0, 1000),
		// Outside the target month, must be filtered out.
		record(day(2026, time.April, 1), attendance.StatusPresent, 8, 0),
	}

	t.Run("single month", func(t *testing.T) {
		s := report.Summarize(records, weekend, 30000, time.March, 2026, false)

		assert.Equal(t, 6, s.TotalRecords)
		assert.Len(t, s.Records, 6)
		assert.Equal(t, 2, s.Counts.Present)
		assert.Equal(t, 1, s.Counts.Absent)
		assert.Equal(t, 1, s.Counts.Late)
		assert.Equal(t, 1, s.Counts.HalfDay)
		assert.Equal(t, 1, s.Counts.Leave)

		// Every record lands in exactly one bucket.
		total := s.Counts.Present + s.Counts.Absent + s.Counts.Late + s.Counts.HalfDay + s.Counts.Leave
		assert.Equal(t, s.TotalRecords, total)

		assert.InDelta(t, 25.5, s.TotalWorkHours, 0.0001)
		assert.InDelta(t, 1687.5, s.TotalDeductions, 0.0001)

		assert.Equal(t, 23, s.WorkingDays)
		// (2 present + 0.5*1 half-day) / 23 * 100
		assert.InDelta(t, 10.87, s.AttendancePercentage, 0.0001)

		assert.InDelta(t, 28312.5, s.FinalSalary, 0.0001)
	})

	t.Run("all months includes every record", func(t *testing.T) {
		s := report.Summarize(records, weekend, 30000, 0, 0, true)

		assert.Equal(t, 7, s.TotalRecords)
		assert.True(t, s.AllMonths)
		// March plus April working days.
		assert.Equal(t, 23+22, s.WorkingDays)
	})

	t.Run("deductions exceeding salary floor at zero", func(t *testing.T) {
		s := report.Summarize([]attendance.Attendance{
			record(day(2026, time.March, 1), attendance.StatusAbsent, 0, 600),
			record(day(2026, time.March, 2), attendance.StatusAbsent, 0, 600),
		}, weekend, 1000, time.March, 2026, false)

		assert.InDelta(t, 1200, s.TotalDeductions, 0.0001)
		assert.Zero(t, s.FinalSalary)
	})

	t.Run("empty set yields zeroed figures", func(t *testing.T) {
		s := report.Summarize(nil, weekend, 30000, time.March, 2026, false)

		assert.Zero(t, s.TotalRecords)
		assert.Zero(t, s.AttendancePercentage)
		assert.Equal(t, 23, s.WorkingDays)
		assert.InDelta(t, 30000, s.FinalSalary, 0.0001)
		assert.NotNil(t, s.Records)
	})
}
