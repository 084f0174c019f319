package attendance_test

import (
	"testing"

	"hazri/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func TestComputeDeduction(t *testing.T) {
	t.Run("thirty minutes late", func(t *testing.T) {
		// 30000/30/8/60 = 4.166..., times 30 minutes = 62.5
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "08:30", "08:00")
		assert.InDelta(t, 62.5, got, 0.0001)
	})

	t.Run("two hours late", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "10:00", "08:00")
		assert.InDelta(t, 250.0, got, 0.0001)
	})

	t.Run("extreme lateness capped at half day", func(t *testing.T) {
		// 400 late minutes uncapped would be 833.33; cap is 500.
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "14:40", "08:00")
		assert.InDelta(t, 500.0, got, 0.0001)
	})

	t.Run("on time", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "08:00", "08:00")
		assert.Zero(t, got)
	})

	t.Run("early arrival", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "07:45", "08:00")
		assert.Zero(t, got)
	})

	t.Run("leave is half day", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusLeave, 30000, "", "08:00")
		assert.InDelta(t, 500.0, got, 0.0001)
	})

	t.Run("absent is full day", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusAbsent, 30000, "", "08:00")
		assert.InDelta(t, 1000.0, got, 0.0001)
	})

	t.Run("zero salary never deducts", func(t *testing.T) {
		assert.Zero(t, attendance.ComputeDeduction(attendance.StatusAbsent, 0, "", "08:00"))
		assert.Zero(t, attendance.ComputeDeduction(attendance.StatusLeave, 0, "", "08:00"))
		assert.Zero(t, attendance.ComputeDeduction(attendance.StatusPresent, 0, "12:00", "08:00"))
	})

	t.Run("present without check-in", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusPresent, 30000, "", "08:00")
		assert.Zero(t, got)
	})

	t.Run("half-day status itself deducts nothing", func(t *testing.T) {
		got := attendance.ComputeDeduction(attendance.StatusHalfDay, 30000, "08:00", "08:00")
		assert.Zero(t, got)
	})
}
