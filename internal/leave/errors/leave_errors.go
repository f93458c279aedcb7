package leaveerrors

import (
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"request status must be Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave_start_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrOwnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee named in the leave request not found",
		http.StatusNotFound,
	)
)
