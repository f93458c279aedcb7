package authority

import (
	"net/http"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("authority.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authority.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("directory request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) AdminList(c *gin.Context) {
	members, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members, nil)
}

func (h *Handler) SupervisorList(c *gin.Context) {
	members, err := h.service.ListSupervisors(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members, nil)
}

func (h *Handler) Team(c *gin.Context) {
	ctx := c.Request.Context()
	roles, err := h.service.ResolveRoles(ctx, c.GetString("username"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	members, err := h.service.Team(ctx, roles)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members, nil)
}
