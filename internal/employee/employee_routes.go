package employee

import (
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, auth authority.Service) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.POST("/employee/new", handler.Create)
		authed.GET("/employee/:username", handler.Get)
		authed.PUT("/employee/:username", handler.Update)
		authed.DELETE("/employee/:employee_id",
			middleware.Authorize(auth, "employee", "delete"),
			handler.Delete,
		)
		authed.GET("/employee_of_month", handler.EmployeeOfMonth)
	}
}
