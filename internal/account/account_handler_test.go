package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Muniya-64bit/Database-Backend/internal/account"
	accounterrors "github.com/Muniya-64bit/Database-Backend/internal/account/errors"

	"github.com/gin-gonic/gin"
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

type fakeAccountService struct {
	registerFn       func(ctx context.Context, req account.RegisterRequest) (*account.AccountResponse, error)
	loginFn          func(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error)
	updatePasswordFn func(ctx context.Context, actor, target string, req account.UpdatePasswordRequest) error
}

func (f *fakeAccountService) Register(ctx context.Context, req account.RegisterRequest) (*account.AccountResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeAccountService) Login(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
	return f.loginFn(ctx, req)
}
func (f *fakeAccountService) UpdatePassword(ctx context.Context, actor, target string, req account.UpdatePasswordRequest) error {
	return f.updatePasswordFn(ctx, actor, target, req)
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAccountService{
			registerFn: func(ctx context.Context, req account.RegisterRequest) (*account.AccountResponse, error) {
				assert.Equal(t, "alice", req.Username)
				assert.Equal(t, account.AccessLevelEmployee, req.AccessLevel)
				return &account.AccountResponse{Username: req.Username, EmployeeID: req.EmployeeID}, nil
			},
		}
		h := account.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"username":"alice","password":"secret99","employee_id":"emp-1","access_level":"employee"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/user/reg", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got account.AccountResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "emp-1", got.EmployeeID)
	})

	t.Run("negative unknown access level", func(t *testing.T) {
		h := account.NewHandler(&fakeAccountService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"username":"alice","password":"secret99","employee_id":"emp-1","access_level":"superuser"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/user/reg", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative username taken", func(t *testing.T) {
		svc := &fakeAccountService{
			registerFn: func(ctx context.Context, req account.RegisterRequest) (*account.AccountResponse, error) {
				return nil, accounterrors.ErrUsernameTaken
			},
		}
		h := account.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"username":"alice","password":"secret99","employee_id":"emp-1","access_level":"employee"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/user/reg", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAccountService{
			loginFn: func(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
				assert.Equal(t, "sam", req.Username)
				return &account.LoginResponse{Username: req.Username, Token: "signed.jwt.here", Role: account.AccessLevelSupervisor}, nil
			},
		}
		h := account.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"sam","password":"hunter22"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got account.LoginResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "signed.jwt.here", got.Token)
		assert.Equal(t, account.AccessLevelSupervisor, got.Role)
	})

	t.Run("negative bad credentials", func(t *testing.T) {
		svc := &fakeAccountService{
			loginFn: func(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
				return nil, accounterrors.ErrInvalidCredentials
			},
		}
		h := account.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"sam","password":"wrong"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})
}

func TestAccountHandler_UpdatePassword(t *testing.T) {
	t.Run("passes actor and target separately", func(t *testing.T) {
		svc := &fakeAccountService{
			updatePasswordFn: func(ctx context.Context, actor, target string, req account.UpdatePasswordRequest) error {
				assert.Equal(t, "root", actor)
				assert.Equal(t, "bob", target)
				assert.Equal(t, "newsecret", req.Password)
				return nil
			},
		}
		h := account.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/user/bob", strings.NewReader(`{"password":"newsecret"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "username", Value: "bob"}}
		c.Set("username", "root")

		h.UpdatePassword(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative short password", func(t *testing.T) {
		h := account.NewHandler(&fakeAccountService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/user/bob", strings.NewReader(`{"password":"abc"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "username", Value: "bob"}}

		h.UpdatePassword(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
