package account

import (
	"errors"
	"strings"

	accounterrors "github.com/Muniya-64bit/Database-Backend/internal/account/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return accounterrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_pkey":
				return accounterrors.ErrUsernameTaken
			case "idx_users_employee_id":
				return accounterrors.ErrEmployeeAlreadyRegistered
			}
			return accounterrors.ErrUsernameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "employee_id") {
			return accounterrors.ErrEmployeeAlreadyRegistered
		}
		return accounterrors.ErrUsernameTaken
	}

	return err
}
