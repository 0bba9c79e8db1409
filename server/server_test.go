package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diskusiapp/diskusi/server/middlewares"
	"github.com/diskusiapp/diskusi/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// These tests exercise binding/validation and the auth gate only, so the
// router runs against a nil DB: a request that reaches the service layer
// would panic, proving rejection happened before any persistence call.
func setupValidationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	middlewares.Setup()
	gin.SetMode(gin.TestMode)
	return NewRouter(service.New(nil, nil, nil))
}

func authedRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	token, err := middlewares.IssueToken("user-1", "user")
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRateTopicValidationRejectedBeforeService(t *testing.T) {
	router := setupValidationRouter(t)

	for _, body := range []string{
		`{"topic_id": "t", "rating": 9}`,
		`{"topic_id": "t", "rating": 0}`,
		`{"rating": 3}`,
		`not json`,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/ai/trending/rate", body))
		require.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestRateTopicFieldErrorEnvelope(t *testing.T) {
	router := setupValidationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/ai/trending/rate", `{"topic_id": "t", "rating": 9}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "errors")
	require.Contains(t, w.Body.String(), "Rating")
}

func TestCreateCommentEmptyContentRejected(t *testing.T) {
	router := setupValidationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/posts/p-1/comments", `{"content": ""}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWriteEndpointsRequireAuth(t *testing.T) {
	router := setupValidationRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/posts"},
		{http.MethodPost, "/api/posts/p-1/like"},
		{http.MethodPost, "/api/posts/p-1/bookmark"},
		{http.MethodPost, "/api/ai/trending/rate"},
		{http.MethodDelete, "/api/comments/c-1"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	router := setupValidationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/ai/trending/generate", `{"count": 5}`))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGenerateTopicsCountBounds(t *testing.T) {
	router := setupValidationRouter(t)

	token, err := middlewares.IssueToken("admin-1", "admin")
	require.NoError(t, err)

	for _, body := range []string{`{"count": 0}`, `{"count": 51}`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ai/trending/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestRegisterValidation(t *testing.T) {
	router := setupValidationRouter(t)

	for _, body := range []string{
		`{"name": "A", "email": "not-an-email", "password": "password1"}`,
		`{"name": "A", "email": "a@example.com", "password": "short"}`,
		`{"email": "a@example.com", "password": "password1"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestPing(t *testing.T) {
	router := setupValidationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "pong")
}
