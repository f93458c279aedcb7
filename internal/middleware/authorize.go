package middleware

import (
	"context"
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authority is a local interface; anything with an Enforce method fits.
type Authority interface {
	Enforce(ctx context.Context, username, resource, action string) (bool, error)
}

// Authorize gates a route on a purely role-scoped policy row. Rows that also
// depend on self/manager relations are checked inside the services.
func Authorize(auth Authority, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := auth.Enforce(c.Request.Context(), username, resource, action)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				resource+":"+action)
			c.Abort()
			return
		}
		c.Next()
	}
}
