package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Muniya-64bit/Database-Backend/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "nic") {
				return employeeerrors.ErrNICExists
			}
			return employeeerrors.ErrEmployeeExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "nic") {
			return employeeerrors.ErrNICExists
		}
		return employeeerrors.ErrEmployeeExists
	}

	return err
}
