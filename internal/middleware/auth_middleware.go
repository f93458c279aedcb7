package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Muniya-64bit/Database-Backend/internal/domain"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/contextutil"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityResolver is a local interface so the middleware does not depend on
// the full authority service surface.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, username string) (domain.Identity, error)
}

// AuthMiddleware validates the bearer token and resolves the subject to a
// persisted account with an employee linkage. Disabled accounts are rejected
// here so no handler ever sees them.
func AuthMiddleware(identity IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			message := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				message = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Subject not found in token", nil)
			c.Abort()
			return
		}

		resolved, err := identity.ResolveIdentity(c.Request.Context(), username)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("username", resolved.Username)
		c.Set("employee_id", resolved.EmployeeID)

		ctx := contextutil.WithUsername(c.Request.Context(), resolved.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
