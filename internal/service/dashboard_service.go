package service

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
)

// FallbackAttendance is the attendance display shown whenever no stored
// percentage applies: anonymous visitors, faculty, and unknown roles.
const FallbackAttendance = "78"

// DashboardService projects a resolved identity into the dashboard metrics
// row. The projection always succeeds; unauthenticated and malformed
// sessions degrade to the anonymous row so the dashboard renders on first
// page load.
type DashboardService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(users *repository.UserRepository, sessions *repository.SessionRepository, metrics *MetricsService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{users: users, sessions: sessions, metrics: metrics, logger: logger}
}

// Metrics maps the resolved identity to its role-appropriate metrics row.
func (s *DashboardService) Metrics(user *models.User) models.DashboardMetrics {
	if user == nil {
		return models.DashboardMetrics{Attendance: FallbackAttendance, PendingAssignments: 0}
	}

	switch user.Role {
	case models.RoleStudent:
		if user.StudentProfile == nil {
			break
		}
		return models.DashboardMetrics{
			Attendance:         strconv.Itoa(user.StudentProfile.Attendance),
			PendingAssignments: user.StudentProfile.PendingAssignments,
		}
	case models.RoleFaculty:
		if user.FacultyProfile == nil {
			break
		}
		return models.DashboardMetrics{
			Attendance:         FallbackAttendance,
			PendingAssignments: user.FacultyProfile.GradingLoad,
		}
	}

	// Unrecognised role or missing profile: degrade to the anonymous row.
	return models.DashboardMetrics{Attendance: FallbackAttendance, PendingAssignments: 0}
}

// Analytics summarises live portal usage from the Prometheus snapshot and
// the session store.
func (s *DashboardService) Analytics() models.AnalyticsSnapshot {
	snapshot := s.metrics.Snapshot()
	return models.AnalyticsSnapshot{
		TotalQueries:    snapshot.AssistantQueries,
		ActiveSessions:  s.sessions.CountByRole(s.users, models.RoleStudent),
		RequestsTotal:   snapshot.RequestsTotal,
		AssistantErrors: snapshot.AssistantFailures,
	}
}
