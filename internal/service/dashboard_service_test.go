package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *repository.SessionRepository) {
	t.Helper()
	users := repository.NewUserRepository()
	require.NoError(t, users.Seed([]repository.SeedUser{{
		Password: "student123",
		User: models.User{
			Email: "student@college.edu",
			Role:  models.RoleStudent,
			StudentProfile: &models.StudentProfile{
				Attendance:         87,
				PendingAssignments: 2,
			},
		},
	}}))
	sessions := repository.NewSessionRepository()
	return NewDashboardService(users, sessions, NewMetricsService(nil), nil), sessions
}

func TestDashboardMetricsAnonymous(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	metrics := svc.Metrics(nil)

	assert.Equal(t, FallbackAttendance, metrics.Attendance)
	assert.Equal(t, 0, metrics.PendingAssignments)
}

func TestDashboardMetricsStudent(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	metrics := svc.Metrics(&models.User{
		Role: models.RoleStudent,
		StudentProfile: &models.StudentProfile{
			Attendance:         91,
			PendingAssignments: 4,
		},
	})

	assert.Equal(t, "91", metrics.Attendance)
	assert.Equal(t, 4, metrics.PendingAssignments)
}

func TestDashboardMetricsFaculty(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	metrics := svc.Metrics(&models.User{
		Role:           models.RoleFaculty,
		FacultyProfile: &models.FacultyProfile{GradingLoad: 15},
	})

	assert.Equal(t, FallbackAttendance, metrics.Attendance)
	assert.Equal(t, 15, metrics.PendingAssignments)
}

func TestDashboardMetricsUnknownRoleDegrades(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	metrics := svc.Metrics(&models.User{Role: models.UserRole("admin")})

	assert.Equal(t, FallbackAttendance, metrics.Attendance)
	assert.Equal(t, 0, metrics.PendingAssignments)
}

func TestDashboardMetricsStudentMissingProfileDegrades(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	metrics := svc.Metrics(&models.User{Role: models.RoleStudent})

	assert.Equal(t, FallbackAttendance, metrics.Attendance)
	assert.Equal(t, 0, metrics.PendingAssignments)
}

func TestDashboardAnalyticsCountsStudentSessions(t *testing.T) {
	svc, sessions := newDashboardFixture(t)

	sessions.Create("sid-1", "student@college.edu")
	sessions.Create("sid-2", "unknown@college.edu")

	snapshot := svc.Analytics()
	assert.Equal(t, 1, snapshot.ActiveSessions)
}
