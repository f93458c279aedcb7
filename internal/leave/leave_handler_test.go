package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/leave"
	leaveerrors "github.com/Muniya-64bit/Database-Backend/internal/leave/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn      func(ctx context.Context, actor string, req leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error)
	getByIDFn     func(ctx context.Context, id int64) (*leave.LeaveRequestResponse, error)
	setStatusFn   func(ctx context.Context, actor string, id int64, status string) (*leave.LeaveRequestResponse, error)
	deleteFn      func(ctx context.Context, actor string, id int64) error
	listForTeamFn func(ctx context.Context, actor string, pendingOnly bool) ([]leave.LeaveRequestResponse, error)
	listAllFn     func(ctx context.Context, actor string) ([]leave.LeaveRequestResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, actor string, req leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error) {
	return f.createFn(ctx, actor, req)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id int64) (*leave.LeaveRequestResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeLeaveService) SetStatus(ctx context.Context, actor string, id int64, status string) (*leave.LeaveRequestResponse, error) {
	return f.setStatusFn(ctx, actor, id, status)
}
func (f *fakeLeaveService) Delete(ctx context.Context, actor string, id int64) error {
	return f.deleteFn(ctx, actor, id)
}
func (f *fakeLeaveService) ListForTeam(ctx context.Context, actor string, pendingOnly bool) ([]leave.LeaveRequestResponse, error) {
	return f.listForTeamFn(ctx, actor, pendingOnly)
}
func (f *fakeLeaveService) ListAll(ctx context.Context, actor string) ([]leave.LeaveRequestResponse, error) {
	return f.listAllFn(ctx, actor)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, actor string, req leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error) {
				assert.Equal(t, "alice", actor)
				assert.Equal(t, "emp-1", req.EmployeeID)
				assert.Equal(t, 3, req.PeriodOfAbsence)
				return &leave.LeaveRequestResponse{
					LeaveRequestID:   7,
					EmployeeID:       req.EmployeeID,
					LeaveStartDate:   req.LeaveStartDate,
					PeriodOfAbsence:  req.PeriodOfAbsence,
					ReasonForAbsence: req.ReasonForAbsence,
					TypeOfLeave:      req.TypeOfLeave,
					RequestStatus:    leave.StatusPending,
				}, nil
			},
		}

		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"emp-1","leave_start_date":"2026-09-07","period_of_absence":3,"reason_for_absence":"Medical","type_of_leave":"Sick"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("username", "alice")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, int64(7), got.LeaveRequestID)
		assert.Equal(t, leave.StatusPending, got.RequestStatus)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestLeaveHandler_CreateIdempotency(t *testing.T) {
	const body = `{"employee_id":"emp-1","leave_start_date":"2026-09-07","period_of_absence":3,"reason_for_absence":"Medical","type_of_leave":"Sick"}`
	const cacheKey = "idemp:/leave/request:alice:abc-1"
	const lockKey = cacheKey + ":lock"

	t.Run("success caches the response and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		resp := &leave.LeaveRequestResponse{
			LeaveRequestID: 7,
			EmployeeID:     "emp-1",
			RequestStatus:  leave.StatusPending,
		}
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, actor string, req leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error) {
				return resp, nil
			},
		}

		payload, _ := json.Marshal(response.ApiEnvelope{Ok: true, Data: resp})
		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		h := leave.NewHandler(svc, rdb)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("username", "alice")
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure releases the lock without caching", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, actor string, req leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error) {
				return nil, leaveerrors.ErrInvalidStartDate
			},
		}

		mock.ExpectDel(lockKey).SetVal(1)

		h := leave.NewHandler(svc, rdb)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("username", "alice")
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLeaveHandler_Get(t *testing.T) {
	t.Run("non-numeric id", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/request/abc", nil)
		c.Params = []gin.Param{{Key: "id", Value: "abc"}}

		h.Get(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.Equal(t, "leave request id must be an integer", env.Error.Message)
	})

	t.Run("missing row maps to 404", func(t *testing.T) {
		svc := &fakeLeaveService{
			getByIDFn: func(ctx context.Context, id int64) (*leave.LeaveRequestResponse, error) {
				return nil, leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave/request/404", nil)
		c.Params = []gin.Param{{Key: "id", Value: "404"}}

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestLeaveHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			setStatusFn: func(ctx context.Context, actor string, id int64, status string) (*leave.LeaveRequestResponse, error) {
				assert.Equal(t, "sam", actor)
				assert.Equal(t, int64(7), id)
				assert.Equal(t, leave.StatusApproved, status)
				return &leave.LeaveRequestResponse{LeaveRequestID: id, RequestStatus: status}, nil
			},
		}
		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/leave/request/7", strings.NewReader(`{"request_status":"Approved"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "7"}}
		c.Set("username", "sam")

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative unknown status value", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/leave/request/7", strings.NewReader(`{"request_status":"Maybe"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestLeaveHandler_Evaluate(t *testing.T) {
	t.Run("reads id and status from the body", func(t *testing.T) {
		svc := &fakeLeaveService{
			setStatusFn: func(ctx context.Context, actor string, id int64, status string) (*leave.LeaveRequestResponse, error) {
				assert.Equal(t, "root", actor)
				assert.Equal(t, int64(42), id)
				assert.Equal(t, leave.StatusRejected, status)
				return &leave.LeaveRequestResponse{LeaveRequestID: id, RequestStatus: status}, nil
			},
		}
		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/leavings/status", strings.NewReader(`{"leave_request_id":42,"status_":"Rejected"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("username", "root")

		h.Evaluate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got leave.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, leave.StatusRejected, got.RequestStatus)
	})

	t.Run("negative missing body fields", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/leavings/status", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Evaluate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestLeaveHandler_Delete(t *testing.T) {
	t.Run("success echoes the id", func(t *testing.T) {
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, actor string, id int64) error {
				assert.Equal(t, "root", actor)
				assert.Equal(t, int64(7), id)
				return nil
			},
		}
		h := leave.NewHandler(svc, nil)
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("username", "root")
			c.Next()
		})
		r.DELETE("/leave/request/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/leave/request/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative missing row", func(t *testing.T) {
		svc := &fakeLeaveService{
			deleteFn: func(ctx context.Context, actor string, id int64) error {
				return leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc, nil)
		r := gin.New()
		r.DELETE("/leave/request/:id", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/leave/request/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestLeaveHandler_TeamLists(t *testing.T) {
	rows := []leave.LeaveRequestResponse{
		{LeaveRequestID: 1, EmployeeID: "emp-1", RequestStatus: leave.StatusPending},
		{LeaveRequestID: 2, EmployeeID: "emp-2", RequestStatus: leave.StatusApproved},
	}

	t.Run("pending view filters", func(t *testing.T) {
		svc := &fakeLeaveService{
			listForTeamFn: func(ctx context.Context, actor string, pendingOnly bool) ([]leave.LeaveRequestResponse, error) {
				assert.Equal(t, "sam", actor)
				assert.True(t, pendingOnly)
				return rows[:1], nil
			},
		}
		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/supervisor/leave_requests", nil)
		c.Set("username", "sam")

		h.TeamPending(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got []leave.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, leave.StatusPending, got[0].RequestStatus)
	})

	t.Run("full view passes pendingOnly false", func(t *testing.T) {
		svc := &fakeLeaveService{
			listForTeamFn: func(ctx context.Context, actor string, pendingOnly bool) ([]leave.LeaveRequestResponse, error) {
				assert.False(t, pendingOnly)
				return rows, nil
			},
		}
		h := leave.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/supervisor/team_leaves", nil)
		c.Set("username", "sam")

		h.TeamAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got []leave.LeaveRequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
	})
}
