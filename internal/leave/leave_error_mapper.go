package leave

import (
	"errors"
	"net/http"

	leaveerrors "github.com/Muniya-64bit/Database-Backend/internal/leave/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
}
