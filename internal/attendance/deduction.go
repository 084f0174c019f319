package attendance

import (
	"hazri/internal/shared/timeutil"
)

const (
	salaryDaysPerMonth = 30
	paidHoursPerDay    = 8
)

// ComputeDeduction derives the salary deduction for one day.
//
// Leave costs half a day's pay, absence a full day, and lateness on a
// present day accrues per late minute, capped at half a day so a very
// late arrival never out-costs taking leave.
func ComputeDeduction(status string, monthlySalary float64, checkIn, officialStart string) float64 {
	if monthlySalary <= 0 {
		return 0
	}

	dailySalary := monthlySalary / salaryDaysPerMonth
	perMinuteSalary := dailySalary / paidHoursPerDay / 60

	switch status {
	case StatusLeave:
		return dailySalary * 0.5
	case StatusAbsent:
		return dailySalary
	case StatusPresent:
		if checkIn == "" || officialStart == "" {
			return 0
		}
		lateMinutes := timeutil.ToMinutes(checkIn) - timeutil.ToMinutes(officialStart)
		if lateMinutes <= 0 {
			return 0
		}
		deduction := float64(lateMinutes) * perMinuteSalary
		cap := dailySalary * 0.5
		if deduction > cap {
			return cap
		}
		return deduction
	default:
		return 0
	}
}
