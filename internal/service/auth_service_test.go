package service

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.SessionRepository) {
	t.Helper()
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
		{
			Password: "faculty123",
			User: models.User{
				Email:    "faculty@college.edu",
				FullName: "Dr. Smith",
				Role:     models.RoleFaculty,
				FacultyProfile: &models.FacultyProfile{
					Department: "Computer Science",
				},
			},
		},
	}))
	sessions := repository.NewSessionRepository()
	svc := NewAuthService(users, sessions, validator.New(), zap.NewNop(), AuthConfig{
		SessionSecret: "test_secret",
		SessionTTL:    time.Hour,
		Issuer:        "test",
	})
	return svc, sessions
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	res, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "student123"}, "")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "John Doe", res.User.FullName)
	assert.Equal(t, models.RoleStudent, res.User.Role)
	assert.Equal(t, 1, sessions.Count())

	user := svc.Resolve(res.Token)
	require.NotNil(t, user)
	assert.Equal(t, "student@college.edu", user.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "nope"}, "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 0, sessions.Count())
}

func TestAuthServiceLoginUnknownIdentitySameRejection(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, errUnknown := svc.Login(models.LoginRequest{Email: "ghost@college.edu", Password: "nope"}, "")
	_, errWrong := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "nope"}, "")

	// Identical outcome for unknown identity and wrong secret.
	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, appErrors.FromError(errWrong).Message, appErrors.FromError(errUnknown).Message)
}

func TestAuthServiceLoginInvalidPayload(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(models.LoginRequest{Email: "not-an-email", Password: "x"}, "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginReplacesPriorSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	first, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "student123"}, "")
	require.NoError(t, err)

	second, err := svc.Login(models.LoginRequest{Email: "faculty@college.edu", Password: "faculty123"}, first.Token)
	require.NoError(t, err)

	assert.Equal(t, 1, sessions.Count())
	assert.Nil(t, svc.Resolve(first.Token))
	require.NotNil(t, svc.Resolve(second.Token))
}

func TestAuthServiceResolveNeverErrors(t *testing.T) {
	svc, _ := newAuthFixture(t)

	assert.Nil(t, svc.Resolve(""))
	assert.Nil(t, svc.Resolve("garbage"))
	assert.Nil(t, svc.Resolve("aaa.bbb.ccc"))
}

func TestAuthServiceResolveTamperedToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	res, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "student123"}, "")
	require.NoError(t, err)

	parts := strings.Split(res.Token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	assert.Nil(t, svc.Resolve(tampered))
}

func TestAuthServiceResolveExpiredToken(t *testing.T) {
	users := repository.NewUserRepository()
	require.NoError(t, users.Seed([]repository.SeedUser{{
		Password: "student123",
		User:     models.User{Email: "student@college.edu", Role: models.RoleStudent},
	}}))
	sessions := repository.NewSessionRepository()
	svc := NewAuthService(users, sessions, validator.New(), zap.NewNop(), AuthConfig{
		SessionSecret: "test_secret",
		SessionTTL:    -time.Minute,
	})

	res, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "student123"}, "")
	require.NoError(t, err)

	// TTL defaulting guards the zero value, not negatives; the token above
	// is already expired and must degrade to anonymous.
	assert.Nil(t, svc.Resolve(res.Token))
}

func TestAuthServiceLogoutIdempotent(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	res, err := svc.Login(models.LoginRequest{Email: "student@college.edu", Password: "student123"}, "")
	require.NoError(t, err)

	svc.Logout(res.Token)
	assert.Equal(t, 0, sessions.Count())
	assert.Nil(t, svc.Resolve(res.Token))

	// Ending an already-ended session and a garbage token are no-ops.
	svc.Logout(res.Token)
	svc.Logout("garbage")
}
