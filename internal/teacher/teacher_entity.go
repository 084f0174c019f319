package teacher

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DesignationJamia is the one designation that carries a secondary
// jamia-type sub-classification; every other designation forces the
// sub-classification empty.
const DesignationJamia = "Jamia"

const (
	DefaultStartTime = "08:00"
	DefaultEndTime   = "16:00"
)

type Teacher struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);not null"`

	// Login identifiers; at least one is always present. Nullable so
	// the partial unique indexes ignore teachers without one.
	Username *string `gorm:"type:varchar(100);uniqueIndex:uq_teachers_username"`
	GrNumber *string `gorm:"column:gr_number;type:varchar(5);uniqueIndex:uq_teachers_gr_number"`
	Email    *string `gorm:"type:varchar(255);uniqueIndex:uq_teachers_email"`

	// Bcrypt hash; legacy rows may still hold a pre-migration value
	// which the auth service rehashes on first successful login.
	Password string `gorm:"type:varchar(255);not null"`

	// Kept mirror-equal on every write; two names for one number.
	PhoneNumber   string `gorm:"type:varchar(30)"`
	ContactNumber string `gorm:"type:varchar(30)"`

	MonthlySalary float64 `gorm:"not null;default:0"`
	Designation   string  `gorm:"type:varchar(100)"`
	JamiaType     string  `gorm:"type:varchar(100)"`

	WorkStartTime string `gorm:"type:varchar(5);not null;default:'08:00'"`
	WorkEndTime   string `gorm:"type:varchar(5);not null;default:'16:00'"`

	Active      bool      `gorm:"not null;default:true"`
	JoiningDate time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Teacher) TableName() string {
	return "teachers"
}
