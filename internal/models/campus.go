package models

// TimetableEntry is one slot of the master timetable, keyed by Subject.
type TimetableEntry struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Faculty string `json:"faculty"`
	Room    string `json:"room"`
}

// ExamEntry is one scheduled exam, keyed by Subject.
type ExamEntry struct {
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Room     string `json:"room"`
	Duration string `json:"duration"`
}

// Event is a campus event. Faculty may post new ones.
type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// FacultyMember is one directory entry.
type FacultyMember struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Office     string `json:"office"`
}

// Notification is a portal-wide announcement.
type Notification struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
}

// PostEventRequest is the payload for the faculty-only event mutation.
type PostEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
}

// DashboardMetrics is the role-projected dashboard row. Attendance is a
// display string because the anonymous and faculty rows carry a fixed
// fallback value rather than a stored percentage.
type DashboardMetrics struct {
	Attendance         string `json:"attendance"`
	PendingAssignments int    `json:"pending_assignments"`
}

// AnalyticsSnapshot summarises portal usage for the analytics endpoint.
type AnalyticsSnapshot struct {
	TotalQueries    uint64 `json:"total_queries"`
	ActiveSessions  int    `json:"active_sessions"`
	RequestsTotal   uint64 `json:"requests_total"`
	AssistantErrors uint64 `json:"assistant_errors"`
}
