package autherrors

import (
	"net/http"

	"hazri/internal/shared/apperror"
)

var (
	// Admin logins never reveal whether the username or the password
	// was wrong.
	ErrInvalidCredentials = apperror.New(apperror.CodeUnauthorized, "Invalid credentials", http.StatusUnauthorized)

	// The teacher path does distinguish, so a teacher mistyping a GR
	// number gets a useful message at the kiosk.
	ErrTeacherNotFound = apperror.New(apperror.CodeNotFound, "No account found for this username or GR number", http.StatusNotFound)
	ErrWrongPassword   = apperror.New(apperror.CodeUnauthorized, "Incorrect password", http.StatusUnauthorized)

	ErrInvalidToken        = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired        = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrInvalidRefreshToken = apperror.New(apperror.CodeUnauthorized, "Invalid refresh token", http.StatusUnauthorized)

	ErrUserNotFound          = apperror.New(apperror.CodeNotFound, "User not found", http.StatusNotFound)
	ErrUsernameAlreadyExists = apperror.New(apperror.CodeConflict, "Username already registered", http.StatusConflict)
	ErrTokenGenerationFailed = apperror.New(apperror.CodeInternalError, "Could not generate token", http.StatusInternalServerError)
	ErrForbidden             = apperror.New(apperror.CodeForbidden, "You do not have access to this resource", http.StatusForbidden)
)
