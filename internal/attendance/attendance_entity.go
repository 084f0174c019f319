package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusLeave   = "leave"
)

// Attendance is the canonical day record. The legacy alias fields
// (timeIn/timeOut, teacherId, comments/notes) exist only at the API
// boundary; storage holds exactly one name for each value.
type Attendance struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// The composite unique index is the real one-record-per-day guard;
	// the service-level existence check only picks insert vs update.
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;not null;uniqueIndex:uq_attendance_teacher_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_teacher_date"`

	CheckIn  *string `gorm:"type:varchar(5)"`
	CheckOut *string `gorm:"type:varchar(5)"`

	Status          string  `gorm:"type:varchar(20);not null"`
	WorkHours       float64 `gorm:"not null;default:0"`
	SalaryDeduction float64 `gorm:"not null;default:0"`

	Comment *string `gorm:"type:text"`

	// Derived flags, never independently authoritative.
	IsLate     bool `gorm:"not null;default:false"`
	IsShortDay bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}

func validStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusLeave:
		return true
	default:
		return false
	}
}
