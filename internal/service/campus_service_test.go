package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	appErrors "github.com/campusgpt/portal-api/pkg/errors"
)

func newCampusFixture() (*CampusService, *repository.CampusRepository) {
	repo := repository.NewCampusRepository(
		[]models.TimetableEntry{
			{Day: "Monday", Time: "9:00 AM", Subject: "Data Structures"},
			{Day: "Monday", Time: "11:00 AM", Subject: "Database Systems"},
			{Day: "Tuesday", Time: "10:00 AM", Subject: "Machine Learning"},
		},
		[]models.ExamEntry{
			{Subject: "Data Structures", Date: "2025-10-15"},
			{Subject: "Database Systems", Date: "2025-10-18"},
			{Subject: "Machine Learning", Date: "2025-10-22"},
		},
		[]models.Event{
			{Title: "Tech Fest", Date: "2025-10-20"},
			{Title: "Guest Lecture", Date: "2025-10-12"},
			{Title: "Sports Day", Date: "2025-10-25"},
		},
		[]models.FacultyMember{
			{Name: "Dr. Smith"},
			{Name: "Prof. Johnson"},
		},
		[]models.Notification{
			{ID: 1, Title: "Oldest"},
			{ID: 2, Title: "Middle"},
			{ID: 3, Title: "Newest"},
		},
	)
	return NewCampusService(repo, validator.New(), zap.NewNop()), repo
}

func studentWith(courses ...string) *models.User {
	return &models.User{
		Email: "student@college.edu",
		Role:  models.RoleStudent,
		StudentProfile: &models.StudentProfile{
			Courses: courses,
		},
	}
}

func TestCampusServiceTimetableScopedToStudent(t *testing.T) {
	svc, _ := newCampusFixture()
	student := studentWith("Data Structures", "Database Systems")

	scoped := svc.Timetable(student)

	require.Len(t, scoped, 2)
	assert.Equal(t, "Data Structures", scoped[0].Subject)
	assert.Equal(t, "Database Systems", scoped[1].Subject)
}

func TestCampusServiceTimetableEmptyEnrollment(t *testing.T) {
	svc, _ := newCampusFixture()

	// No enrollment data filters everything out; it is not "no filter".
	assert.Empty(t, svc.Timetable(studentWith()))
}

func TestCampusServiceTimetableAnonymousAndFaculty(t *testing.T) {
	svc, _ := newCampusFixture()
	faculty := &models.User{Role: models.RoleFaculty, FacultyProfile: &models.FacultyProfile{}}

	assert.Len(t, svc.Timetable(nil), 3)
	assert.Len(t, svc.Timetable(faculty), 3)
}

func TestCampusServiceTimetableReturnsDefensiveCopy(t *testing.T) {
	svc, _ := newCampusFixture()

	first := svc.Timetable(nil)
	first[0].Subject = "mutated"

	again := svc.Timetable(nil)
	assert.Equal(t, "Data Structures", again[0].Subject)
}

func TestCampusServiceExamsScopedToStudent(t *testing.T) {
	svc, _ := newCampusFixture()
	student := studentWith("Machine Learning")

	scoped := svc.Exams(student)

	require.Len(t, scoped, 1)
	assert.Equal(t, "Machine Learning", scoped[0].Subject)
}

func TestCampusServiceEventsSortedByDate(t *testing.T) {
	svc, _ := newCampusFixture()

	events := svc.Events()

	require.Len(t, events, 3)
	assert.Equal(t, "Guest Lecture", events[0].Title)
	assert.Equal(t, "Tech Fest", events[1].Title)
	assert.Equal(t, "Sports Day", events[2].Title)
}

func TestCampusServicePostEvent(t *testing.T) {
	svc, repo := newCampusFixture()

	event, err := svc.PostEvent(models.PostEventRequest{
		Title:    "Hackathon",
		Date:     "2025-11-01",
		Time:     "9:00 AM",
		Location: "CS Lab",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hackathon", event.Title)
	assert.Len(t, repo.Events(), 4)
}

func TestCampusServicePostEventValidation(t *testing.T) {
	svc, repo := newCampusFixture()

	_, err := svc.PostEvent(models.PostEventRequest{Title: "No date"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Len(t, repo.Events(), 3)
}

func TestCampusServiceNotificationsNewestFirst(t *testing.T) {
	svc, _ := newCampusFixture()

	notifications := svc.Notifications()

	require.Len(t, notifications, 3)
	assert.Equal(t, 3, notifications[0].ID)
	assert.Equal(t, 1, notifications[2].ID)
}

func TestCampusServiceTimetableDataset(t *testing.T) {
	svc, _ := newCampusFixture()
	student := studentWith("Data Structures")

	dataset := svc.TimetableDataset(student)

	assert.Equal(t, []string{"Day", "Time", "Subject", "Faculty", "Room"}, dataset.Headers)
	require.Len(t, dataset.Rows, 1)
	assert.Equal(t, "Data Structures", dataset.Rows[0]["Subject"])
}
