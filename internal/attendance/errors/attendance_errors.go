package attendanceerrors

import (
	"net/http"

	"hazri/internal/shared/apperror"
)

var (
	ErrTeacherRefRequired = apperror.New(apperror.CodeInvalidInput, "Teacher reference is required", http.StatusBadRequest)
	ErrDateRequired       = apperror.New(apperror.CodeInvalidInput, "Date is required", http.StatusBadRequest)
	ErrInvalidDate        = apperror.New(apperror.CodeInvalidInput, "Date must be formatted YYYY-MM-DD", http.StatusBadRequest)
	ErrStatusRequired     = apperror.New(apperror.CodeInvalidInput, "Status is required", http.StatusBadRequest)
	ErrInvalidStatus      = apperror.New(apperror.CodeInvalidInput, "Status must be one of present, absent, late, half-day, leave", http.StatusBadRequest)
	ErrInvalidTime        = apperror.New(apperror.CodeInvalidInput, "Times must be formatted HH:MM", http.StatusBadRequest)
	ErrInvalidAttendanceID = apperror.New(apperror.CodeInvalidInput, "Attendance id must be a valid UUID", http.StatusBadRequest)

	ErrTeacherNotFound    = apperror.New(apperror.CodeNotFound, "Teacher not found", http.StatusNotFound)
	ErrAttendanceNotFound = apperror.New(apperror.CodeNotFound, "Attendance record not found", http.StatusNotFound)

	ErrDuplicateAttendance = apperror.New(apperror.CodeConflict, "Attendance for this teacher and date already exists", http.StatusConflict)

	ErrNotRecordOwner = apperror.New(apperror.CodeForbidden, "You may only manage your own attendance", http.StatusForbidden)
)
