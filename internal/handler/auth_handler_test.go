package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/middleware"
	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	"github.com/campusgpt/portal-api/internal/service"
	"github.com/campusgpt/portal-api/pkg/config"
	"github.com/campusgpt/portal-api/pkg/response"
)

const testCookieName = "campus_session"

func newAuthTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repository.NewUserRepository()
	require.NoError(t, users.Seed([]repository.SeedUser{
		{
			Password: "student123",
			User: models.User{
				Email:    "student@college.edu",
				FullName: "John Doe",
				Role:     models.RoleStudent,
				StudentProfile: &models.StudentProfile{
					Courses: []string{"Data Structures"},
				},
			},
		},
	}))
	sessions := repository.NewSessionRepository()
	authSvc := service.NewAuthService(users, sessions, validator.New(), zap.NewNop(), service.AuthConfig{
		SessionSecret: "test_secret",
		SessionTTL:    time.Hour,
	})

	cookieCfg := config.SessionConfig{CookieName: testCookieName, TTL: time.Hour}
	h := NewAuthHandler(authSvc, cookieCfg)

	r := gin.New()
	r.Use(middleware.Session(authSvc, testCookieName))
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/me", h.Me)
	return r, authSvc
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandlerLoginSetsCookie(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"student@college.edu","password":"student123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	payload, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"name":"John Doe"`)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "hash")
}

func TestAuthHandlerLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	for _, body := range []string{
		`{"email":"student@college.edu","password":"wrong"}`,
		`{"email":"ghost@college.edu","password":"student123"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	}
}

func TestAuthHandlerMeRequiresSession(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLoginLogoutRoundTrip(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"student@college.edu","password":"student123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	cookie := sessionCookie(t, rec)

	// Session cookie resolves on /me.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Logout clears the binding; the same cookie is now anonymous.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLogoutWithoutSession(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
