package account

import (
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, auth authority.Service) {
	// Login and registration are throttled per source IP.
	r.POST("/user/reg", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Register)
	r.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Login)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.PUT("/user/:username",
			middleware.Authorize(auth, "account", "update_password"),
			handler.UpdatePassword,
		)
	}
}
