package authorityerrors

import (
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
)

var (
	ErrCurrentUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"current user not found",
		http.StatusNotFound,
	)
	ErrEmployeeLinkMissing = apperror.New(
		apperror.CodeNotFound,
		"account has no linked employee record",
		http.StatusNotFound,
	)
	ErrAccountDisabled = apperror.New(
		apperror.CodeUnauthorized,
		"account is disabled",
		http.StatusUnauthorized,
	)
)
