package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/service"
	"github.com/ryank-holgate/ChronoChef/internal/testhelpers"
)

type authTestEnv struct {
	router *gin.Engine
	auth   *service.AuthService
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(testhelpers.OpenTestDB(t), "test-secret", testhelpers.NewMemorySessionStore())

	router := gin.New()
	group := router.Group("/api")
	NewAuthHandler(auth).RegisterRoutes(group, auth)
	NewProfileHandler(auth, &testhelpers.StubImageService{}).RegisterRoutes(group, auth)

	return &authTestEnv{router: router, auth: auth}
}

func (env *authTestEnv) do(t *testing.T, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

type authPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func TestAuthHandler_Register(t *testing.T) {
	credentials := map[string]string{
		"email":    "new@example.com",
		"username": "newcook",
		"password": "secret-pass",
	}

	t.Run("should create an account and return a token", func(t *testing.T) {
		env := newAuthTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/register", credentials, "")
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp authPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "newcook", resp.User.Username)

		me := env.do(t, http.MethodGet, "/api/auth/me", nil, resp.Token)
		assert.Equal(t, http.StatusOK, me.Code)
	})

	t.Run("should reject a duplicate email with 409", func(t *testing.T) {
		env := newAuthTestEnv(t)

		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/auth/register", credentials, "").Code)

		dup := map[string]string{"email": "new@example.com", "username": "othercook", "password": "secret-pass"}
		rec := env.do(t, http.MethodPost, "/api/auth/register", dup, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should reject malformed payloads", func(t *testing.T) {
		env := newAuthTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{"email": "not-an-email"}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_LoginLogout(t *testing.T) {
	env := newAuthTestEnv(t)
	credentials := map[string]string{
		"email":    "flow@example.com",
		"username": "flowcook",
		"password": "secret-pass",
	}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/auth/register", credentials, "").Code)

	t.Run("should sign in and out", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "flow@example.com", "password": "secret-pass",
		}, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp authPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/auth/logout", nil, resp.Token).Code)

		me := env.do(t, http.MethodGet, "/api/auth/me", nil, resp.Token)
		assert.Equal(t, http.StatusUnauthorized, me.Code)
	})

	t.Run("should reject bad credentials with 401", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "flow@example.com", "password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "prof@example.com", "username": "profcook", "password": "secret-pass",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var session authPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	t.Run("should require auth", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/profile", nil, "").Code)
	})

	t.Run("should update and return display fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/profile", map[string]string{
			"first_name": "Grace", "last_name": "Hopper",
		}, session.Token)
		require.Equal(t, http.StatusOK, rec.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Grace", user.FirstName)
		assert.Equal(t, "Hopper", user.LastName)

		get := env.do(t, http.MethodGet, "/api/profile", nil, session.Token)
		require.Equal(t, http.StatusOK, get.Code)
	})
}
