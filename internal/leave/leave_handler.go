package leave

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyCacheTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	if _, ok := err.(validator.ValidationErrors); ok {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", nil)
}

func (h *Handler) leaveID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "leave request id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	// Release the idempotency lock whatever the outcome, so a failed attempt
	// does not block a legitimate retry for the lock's full TTL.
	if lockKey := c.GetString("idempotency_lock_key"); h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("username"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if cacheKey := c.GetString("idempotency_cache_key"); h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(response.ApiEnvelope{Ok: true, Data: resp}); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
		}
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.SetStatus(c.Request.Context(), c.GetString("username"), id, req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.leaveID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("username"), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_request_id": id}, nil)
}

// TeamPending serves the supervisor dashboard: only undecided requests.
func (h *Handler) TeamPending(c *gin.Context) {
	resp, err := h.service.ListForTeam(c.Request.Context(), c.GetString("username"), true)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// TeamAll returns every request for the caller's team regardless of state.
func (h *Handler) TeamAll(c *gin.Context) {
	resp, err := h.service.ListForTeam(c.Request.Context(), c.GetString("username"), false)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminList(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context(), c.GetString("username"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Evaluate is the admin-only status endpoint with the id in the body.
func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.SetStatus(c.Request.Context(), c.GetString("username"), req.LeaveRequestID, req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
