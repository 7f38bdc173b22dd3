package models

// UserRole represents the two roles recognised by the portal.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
)

// User represents a portal account. Exactly one of StudentProfile or
// FacultyProfile is populated, matching Role.
type User struct {
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	FullName       string          `json:"name"`
	Role           UserRole        `json:"type"`
	StudentProfile *StudentProfile `json:"student,omitempty"`
	FacultyProfile *FacultyProfile `json:"faculty,omitempty"`
}

// StudentProfile carries the student-only attributes.
type StudentProfile struct {
	RollNo             string   `json:"roll_no"`
	Semester           string   `json:"semester"`
	Courses            []string `json:"courses"`
	Attendance         int      `json:"attendance"`
	PendingAssignments int      `json:"pending_assignments"`
}

// FacultyProfile carries the faculty-only attributes.
type FacultyProfile struct {
	Department  string `json:"department"`
	GradingLoad int    `json:"grading_load"`
}

// EnrolledIn reports whether the user is a student enrolled in the subject.
func (u *User) EnrolledIn(subject string) bool {
	if u == nil || u.Role != RoleStudent || u.StudentProfile == nil {
		return false
	}
	for _, course := range u.StudentProfile.Courses {
		if course == subject {
			return true
		}
	}
	return false
}
