package timeutil_test

import (
	"testing"

	"hazri/internal/shared/timeutil"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.Equal(t, 0, timeutil.ToMinutes("00:00"))
		assert.Equal(t, 480, timeutil.ToMinutes("08:00"))
		assert.Equal(t, 510, timeutil.ToMinutes("08:30"))
		assert.Equal(t, 1439, timeutil.ToMinutes("23:59"))
	})

	t.Run("negative malformed input yields zero", func(t *testing.T) {
		assert.Equal(t, 0, timeutil.ToMinutes(""))
		assert.Equal(t, 0, timeutil.ToMinutes("   "))
		assert.Equal(t, 0, timeutil.ToMinutes("eight"))
		assert.Equal(t, 0, timeutil.ToMinutes("08"))
		assert.Equal(t, 0, timeutil.ToMinutes("08:xx"))
	})
}

func TestWorkHours(t *testing.T) {
	t.Run("success regular day", func(t *testing.T) {
		assert.Equal(t, 8.0, timeutil.WorkHours("08:00", "16:00"))
		assert.Equal(t, 7.5, timeutil.WorkHours("08:30", "16:00"))
	})

	t.Run("success overnight wraparound", func(t *testing.T) {
		assert.Equal(t, 8.0, timeutil.WorkHours("22:00", "06:00"))
	})

	t.Run("success equal times yield zero", func(t *testing.T) {
		assert.Equal(t, 0.0, timeutil.WorkHours("09:00", "09:00"))
	})

	t.Run("negative missing side yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, timeutil.WorkHours("", "16:00"))
		assert.Equal(t, 0.0, timeutil.WorkHours("08:00", ""))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 62.5, timeutil.Round2(62.499999999))
	assert.Equal(t, 7.52, timeutil.Round2(7.516))
	assert.Equal(t, 0.0, timeutil.Round2(0))
}
