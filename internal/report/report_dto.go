package report

import "hazri/internal/attendance"

type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
	Leave   int `json:"leave"`
}

// MonthlySummary carries both the aggregate figures and the filtered
// detail rows; clients render the table and the totals from one call.
type MonthlySummary struct {
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	Month       int    `json:"month,omitempty"`
	Year        int    `json:"year,omitempty"`
	AllMonths   bool   `json:"allMonths"`

	Counts       StatusCounts `json:"counts"`
	TotalRecords int          `json:"totalRecords"`

	TotalWorkHours  float64 `json:"totalWorkHours"`
	TotalDeductions float64 `json:"totalDeductions"`

	WorkingDays          int     `json:"workingDays"`
	AttendancePercentage float64 `json:"attendancePercentage"`

	MonthlySalary float64 `json:"monthlySalary"`
	FinalSalary   float64 `json:"finalSalary"`

	Records []attendance.AttendanceResponse `json:"records"`
}
