package report

import (
	"time"

	"hazri/internal/attendance"
	"hazri/internal/shared/timeutil"
)

// Summarize aggregates a teacher's records for one month, or for all
// months when allMonths is set. It is pure: storage access and salary
// lookup belong to the caller.
func Summarize(
	records []attendance.Attendance,
	weekend WeekendConfig,
	monthlySalary float64,
	month time.Month,
	year int,
	allMonths bool,
) MonthlySummary {
	summary := MonthlySummary{
		AllMonths:     allMonths,
		MonthlySalary: monthlySalary,
		Records:       []attendance.AttendanceResponse{},
	}
	if !allMonths {
		summary.Month = int(month)
		summary.Year = year
	}

	// Tracks which (year, month) pairs the filtered set spans so the
	// all-months working-day count covers exactly the months with data.
	monthsSeen := map[time.Time]bool{}

	for _, r := range records {
		if !allMonths && (r.Date.Year() != year || r.Date.Month() != month) {
			continue
		}

		switch r.Status {
		case attendance.StatusPresent:
			summary.Counts.Present++
		case attendance.StatusAbsent:
			summary.Counts.Absent++
		case attendance.StatusLate:
			summary.Counts.Late++
		case attendance.StatusHalfDay:
			summary.Counts.HalfDay++
		case attendance.StatusLeave:
			summary.Counts.Leave++
		}

		summary.TotalRecords++
		summary.TotalWorkHours += r.WorkHours
		summary.TotalDeductions += r.SalaryDeduction
		summary.Records = append(summary.Records, mapRecord(r))

		monthsSeen[time.Date(r.Date.Year(), r.Date.Month(), 1, 0, 0, 0, 0, time.UTC)] = true
	}

	if allMonths {
		for m := range monthsSeen {
			summary.WorkingDays += weekend.WorkingDays(m.Year(), m.Month())
		}
	} else {
		summary.WorkingDays = weekend.WorkingDays(year, month)
	}

	if summary.WorkingDays > 0 {
		attended := float64(summary.Counts.Present) + float64(summary.Counts.HalfDay)*0.5
		summary.AttendancePercentage = timeutil.Round2(attended / float64(summary.WorkingDays) * 100)
	}

	summary.TotalWorkHours = timeutil.Round2(summary.TotalWorkHours)
	summary.TotalDeductions = timeutil.Round2(summary.TotalDeductions)

	finalSalary := monthlySalary - summary.TotalDeductions
	if finalSalary < 0 {
		finalSalary = 0
	}
	summary.FinalSalary = timeutil.Round2(finalSalary)

	return summary
}

func mapRecord(a attendance.Attendance) attendance.AttendanceResponse {
	teacherID := a.TeacherID.String()
	return attendance.AttendanceResponse{
		ID:              a.ID.String(),
		Teacher:         teacherID,
		TeacherID:       teacherID,
		Date:            a.Date.Format("2006-01-02"),
		Status:          a.Status,
		CheckIn:         a.CheckIn,
		TimeIn:          a.CheckIn,
		CheckOut:        a.CheckOut,
		TimeOut:         a.CheckOut,
		WorkHours:       a.WorkHours,
		SalaryDeduction: a.SalaryDeduction,
		Comment:         a.Comment,
		Comments:        a.Comment,
		Notes:           a.Comment,
		IsLate:          a.IsLate,
		IsShortDay:      a.IsShortDay,
	}
}
