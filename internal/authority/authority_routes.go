package authority

import (
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, auth Service) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.GET("/all_admins", middleware.Authorize(auth, "directory", "read"), handler.AdminList)
		authed.GET("/supervisors", middleware.Authorize(auth, "directory", "read"), handler.SupervisorList)
		authed.GET("/supervisor/team/", middleware.Authorize(auth, "team", "read"), handler.Team)
	}
}
