package repository

import (
	"sync"

	"github.com/campusgpt/portal-api/internal/models"
)

// CampusRepository owns the shared reference collections. The collections are
// read-only for this layer except for event posting, which appends.
type CampusRepository struct {
	mu            sync.RWMutex
	timetable     []models.TimetableEntry
	exams         []models.ExamEntry
	events        []models.Event
	faculty       []models.FacultyMember
	notifications []models.Notification
}

// NewCampusRepository constructs the store with the provided datasets.
func NewCampusRepository(timetable []models.TimetableEntry, exams []models.ExamEntry, events []models.Event, faculty []models.FacultyMember, notifications []models.Notification) *CampusRepository {
	return &CampusRepository{
		timetable:     timetable,
		exams:         exams,
		events:        events,
		faculty:       faculty,
		notifications: notifications,
	}
}

// Timetable returns a copy of the master timetable in its original order.
func (r *CampusRepository) Timetable() []models.TimetableEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.TimetableEntry(nil), r.timetable...)
}

// Exams returns a copy of the master exam schedule in its original order.
func (r *CampusRepository) Exams() []models.ExamEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ExamEntry(nil), r.exams...)
}

// Events returns a copy of the event list in insertion order.
func (r *CampusRepository) Events() []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Event(nil), r.events...)
}

// AddEvent appends a new event.
func (r *CampusRepository) AddEvent(event models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Faculty returns a copy of the faculty directory.
func (r *CampusRepository) Faculty() []models.FacultyMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.FacultyMember(nil), r.faculty...)
}

// Notifications returns a copy of the notification list.
func (r *CampusRepository) Notifications() []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Notification(nil), r.notifications...)
}
