package events

import "time"

const AttendanceReconciledTopic = "hazri.attendance.reconciled"

// AttendanceReconciledEvent is queued on the outbox whenever a day
// record is created or updated for a teacher.
type AttendanceReconciledEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	AttendanceID    string    `json:"attendance_id"`
	TeacherID       string    `json:"teacher_id"`
	Date            string    `json:"date"`
	Status          string    `json:"status"`
	WorkHours       float64   `json:"work_hours"`
	SalaryDeduction float64   `json:"salary_deduction"`
	Created         bool      `json:"created"`
	OccurredAt      time.Time `json:"occurred_at"`
}
