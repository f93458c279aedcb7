package accounterrors

import (
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid username or password",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"username is already registered",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"employee already has an account",
		http.StatusConflict,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate access token",
		http.StatusInternalServerError,
	)
)
