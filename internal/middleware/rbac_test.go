package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusgpt/portal-api/internal/models"
)

func TestRequireRolesUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	calls := 0
	r.POST("/mutate", RequireRoles(models.RoleFaculty), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mutate", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, calls)
}

func TestRequireRolesInsufficientRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	calls := 0
	r.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.User{Email: "student@college.edu", Role: models.RoleStudent})
	})
	r.POST("/mutate", RequireRoles(models.RoleFaculty), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mutate", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, calls)
}

func TestRequireRolesAdmitted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	calls := 0
	r.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.User{Email: "faculty@college.edu", Role: models.RoleFaculty})
	})
	r.POST("/mutate", RequireRoles(models.RoleFaculty), func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mutate", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, CurrentUser(c))
}
