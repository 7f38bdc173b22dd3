package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgpt/portal-api/internal/models"
)

func seededUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	repo := NewUserRepository()
	require.NoError(t, repo.Seed([]SeedUser{
		{
			Password: "student123",
			User: models.User{
				Email:    "student@college.edu",
				FullName: "John Doe",
				Role:     models.RoleStudent,
				StudentProfile: &models.StudentProfile{
					Courses:            []string{"Data Structures", "Database Systems"},
					Attendance:         87,
					PendingAssignments: 2,
				},
			},
		},
	}))
	return repo
}

func TestUserRepositoryVerify(t *testing.T) {
	repo := seededUserRepo(t)

	assert.True(t, repo.Verify("student@college.edu", "student123"))
	assert.False(t, repo.Verify("student@college.edu", "wrong"))
	assert.False(t, repo.Verify("ghost@college.edu", "student123"))
}

func TestUserRepositoryVerifyNormalizesIdentity(t *testing.T) {
	repo := seededUserRepo(t)

	assert.True(t, repo.Verify("  Student@College.edu ", "student123"))
}

func TestUserRepositoryLookupReturnsCopy(t *testing.T) {
	repo := seededUserRepo(t)

	user, ok := repo.Lookup("student@college.edu")
	require.True(t, ok)
	require.NotNil(t, user.StudentProfile)

	user.StudentProfile.Courses[0] = "mutated"
	user.StudentProfile.Attendance = 0

	again, ok := repo.Lookup("student@college.edu")
	require.True(t, ok)
	assert.Equal(t, "Data Structures", again.StudentProfile.Courses[0])
	assert.Equal(t, 87, again.StudentProfile.Attendance)
}

func TestUserRepositoryLookupUnknown(t *testing.T) {
	repo := seededUserRepo(t)

	_, ok := repo.Lookup("ghost@college.edu")
	assert.False(t, ok)
}

func TestUserRepositoryNeverExposesHash(t *testing.T) {
	repo := seededUserRepo(t)

	user, ok := repo.Lookup("student@college.edu")
	require.True(t, ok)
	assert.NotEmpty(t, user.PasswordHash)

	// The hash must be stripped by JSON serialisation.
	info := models.NewUserInfo(user)
	assert.Equal(t, user.Email, info.Email)
}
