package employeeerrors

import (
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeExists = apperror.New(
		apperror.CodeConflict,
		"employee id is already registered",
		http.StatusConflict,
	)
	ErrNICExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this NIC already exists",
		http.StatusConflict,
	)
	ErrInvalidBirthday = apperror.New(
		apperror.CodeInvalidInput,
		"invalid birthday format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
