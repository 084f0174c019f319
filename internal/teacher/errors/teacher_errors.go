package teachererrors

import (
	"net/http"

	"hazri/internal/shared/apperror"
)

var (
	ErrTeacherNotFound = apperror.New(
		apperror.CodeNotFound,
		"Teacher not found",
		http.StatusNotFound,
	)
	ErrInvalidTeacherID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid teacher ID",
		http.StatusBadRequest,
	)
	ErrLoginIdentifierRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one of username or GR number is required",
		http.StatusBadRequest,
	)
	ErrInvalidGrNumber = apperror.New(
		apperror.CodeInvalidInput,
		"GR number must be exactly 5 digits",
		http.StatusBadRequest,
	)
	ErrInvalidWorkingHours = apperror.New(
		apperror.CodeInvalidInput,
		"Working hours must be HH:MM 24-hour times",
		http.StatusBadRequest,
	)
	ErrJamiaTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Jamia type is required for the Jamia designation",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
	ErrGrNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"GR number already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)
	ErrWrongCurrentPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
)
