package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrUnavailable = New(
		CodeServiceUnavailable,
		"The service is temporarily unavailable, retry shortly",
		http.StatusServiceUnavailable,
	)
)

// Forbidden names the denied operation so every policy denial tells the
// caller what was attempted.
func Forbidden(operation string) *AppError {
	return New(CodeForbidden, "Not authorized to "+operation, http.StatusForbidden)
}
