package service

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
	"github.com/campusgpt/portal-api/pkg/export"
)

// CampusService serves the shared reference collections, scoping timetable
// and exams down to a student's enrollment.
type CampusService struct {
	repo      *repository.CampusRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCampusService constructs a CampusService.
func NewCampusService(repo *repository.CampusRepository, validate *validator.Validate, logger *zap.Logger) *CampusService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampusService{repo: repo, validator: validate, logger: logger}
}

// Timetable returns the timetable visible to the given user. Students see
// the stable subsequence of the master list matching their enrolled courses;
// anonymous and faculty callers see the full list. The result is always a
// copy, so callers cannot mutate shared state through it.
func (s *CampusService) Timetable(user *models.User) []models.TimetableEntry {
	master := s.repo.Timetable()
	if user == nil || user.Role != models.RoleStudent {
		return master
	}

	// An enrolled-course set that is empty still filters: no enrollment
	// data means no visible entries, not the full schedule.
	filtered := make([]models.TimetableEntry, 0, len(master))
	for _, entry := range master {
		if user.EnrolledIn(entry.Subject) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Exams returns the exam schedule visible to the given user, scoped the same
// way as Timetable.
func (s *CampusService) Exams(user *models.User) []models.ExamEntry {
	master := s.repo.Exams()
	if user == nil || user.Role != models.RoleStudent {
		return master
	}

	filtered := make([]models.ExamEntry, 0, len(master))
	for _, entry := range master {
		if user.EnrolledIn(entry.Subject) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// Events returns all campus events ordered by date ascending. Events are not
// identity-scoped.
func (s *CampusService) Events() []models.Event {
	events := s.repo.Events()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events
}

// PostEvent appends a new event. Authorization is enforced by the route
// guard; this operation carries no role awareness of its own.
func (s *CampusService) PostEvent(req models.PostEventRequest) (models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Event{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	event := models.Event{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	}
	s.repo.AddEvent(event)
	s.logger.Info("event posted", zap.String("title", event.Title), zap.String("date", event.Date))
	return event, nil
}

// Faculty returns the faculty directory as-is.
func (s *CampusService) Faculty() []models.FacultyMember {
	return s.repo.Faculty()
}

// Notifications returns announcements sorted by ID descending, newest first.
func (s *CampusService) Notifications() []models.Notification {
	notifications := s.repo.Notifications()
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].ID > notifications[j].ID
	})
	return notifications
}

// TimetableDataset projects the scoped timetable into an exportable table.
func (s *CampusService) TimetableDataset(user *models.User) export.Dataset {
	entries := s.Timetable(user)
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"Day":     entry.Day,
			"Time":    entry.Time,
			"Subject": entry.Subject,
			"Faculty": entry.Faculty,
			"Room":    entry.Room,
		})
	}
	return export.Dataset{
		Headers: []string{"Day", "Time", "Subject", "Faculty", "Room"},
		Rows:    rows,
	}
}

// ExamsDataset projects the scoped exam schedule into an exportable table.
func (s *CampusService) ExamsDataset(user *models.User) export.Dataset {
	entries := s.Exams(user)
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"Subject":  entry.Subject,
			"Date":     entry.Date,
			"Time":     entry.Time,
			"Room":     entry.Room,
			"Duration": entry.Duration,
		})
	}
	return export.Dataset{
		Headers: []string{"Subject", "Date", "Time", "Room", "Duration"},
		Rows:    rows,
	}
}
