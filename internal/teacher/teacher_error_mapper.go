package teacher

import (
	"errors"
	"strings"

	teachererrors "hazri/internal/teacher/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return teachererrors.ErrTeacherNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_teachers_username":
				return teachererrors.ErrUsernameAlreadyExists
			case "uq_teachers_gr_number":
				return teachererrors.ErrGrNumberAlreadyExists
			case "uq_teachers_email":
				return teachererrors.ErrEmailAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_teachers_username"):
			return teachererrors.ErrUsernameAlreadyExists
		case strings.Contains(errMsg, "uq_teachers_gr_number"):
			return teachererrors.ErrGrNumberAlreadyExists
		case strings.Contains(errMsg, "uq_teachers_email"):
			return teachererrors.ErrEmailAlreadyExists
		}
	}

	return err
}
