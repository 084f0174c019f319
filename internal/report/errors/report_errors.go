package reporterrors

import (
	"net/http"

	"hazri/internal/shared/apperror"
)

var (
	ErrInvalidMonth    = apperror.New(apperror.CodeInvalidInput, "Month must be between 1 and 12", http.StatusBadRequest)
	ErrInvalidYear     = apperror.New(apperror.CodeInvalidInput, "Year must be a four digit number", http.StatusBadRequest)
	ErrTeacherNotFound = apperror.New(apperror.CodeNotFound, "Teacher not found", http.StatusNotFound)
)
