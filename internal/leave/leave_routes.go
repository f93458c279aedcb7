package leave

import (
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, auth authority.Service, rdb *redis.Client) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(auth))
	{
		authed.POST("/leave/request", middleware.Idempotency(rdb), handler.Create)
		authed.GET("/leave/request/:id", handler.Get)
		authed.PUT("/leave/request/:id",
			middleware.Authorize(auth, "leave", "update"),
			handler.UpdateStatus,
		)
		authed.DELETE("/leave/request/:id",
			middleware.Authorize(auth, "leave", "delete"),
			handler.Delete,
		)

		authed.GET("/supervisor/leave_requests",
			middleware.Authorize(auth, "leave", "list_team"),
			handler.TeamPending,
		)
		authed.GET("/team_leaves",
			middleware.Authorize(auth, "leave", "list_team"),
			handler.TeamAll,
		)
		authed.GET("/admin_leaves",
			middleware.Authorize(auth, "leave", "list_all"),
			handler.AdminList,
		)

		authed.PUT("/leavings/status",
			middleware.Authorize(auth, "leave", "evaluate"),
			handler.Evaluate,
		)
	}
}
