package auth

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// User is an administrative account. Teachers authenticate against
// their own table via the teacher login path.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'admin'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
