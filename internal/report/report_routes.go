package report

import (
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, auth authority.Service) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.GET("/on_leave", handler.OnLeave)
		authed.GET("/pie_graph_gender", handler.GenderBreakdown)
	}
}
