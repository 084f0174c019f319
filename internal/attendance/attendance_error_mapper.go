package attendance

import (
	"errors"
	"strings"

	attendanceerrors "hazri/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	// The only unique index on the table is uq_attendance_teacher_date,
	// so any 23505 here is a same-day race.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrDuplicateAttendance
	}

	// Drivers that surface violations as plain strings.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return attendanceerrors.ErrDuplicateAttendance
	}

	return err
}
