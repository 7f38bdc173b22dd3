package repository

import "github.com/campusgpt/portal-api/internal/models"

// Bootstrap datasets. These mirror the reference data the portal frontend
// expects on a fresh process; real deployments replace them at start-up.

// SeedUsers returns the default portal accounts.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{
			Password: "student123",
			User: models.User{
				Email:    "student@college.edu",
				FullName: "John Doe",
				Role:     models.RoleStudent,
				StudentProfile: &models.StudentProfile{
					RollNo:             "CS2021001",
					Semester:           "6th",
					Courses:            []string{"Data Structures", "Database Systems", "Software Engineering"},
					Attendance:         87,
					PendingAssignments: 2,
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
					Department:  "Computer Science",
					GradingLoad: 15,
				},
			},
		},
	}
}

// SeedTimetable returns the master timetable.
func SeedTimetable() []models.TimetableEntry {
	return []models.TimetableEntry{
		{Day: "Monday", Time: "9:00 AM", Subject: "Data Structures", Faculty: "Dr. Smith", Room: "CS-101"},
		{Day: "Monday", Time: "11:00 AM", Subject: "Database Systems", Faculty: "Prof. Johnson", Room: "CS-203"},
		{Day: "Tuesday", Time: "10:00 AM", Subject: "Machine Learning", Faculty: "Dr. Williams", Room: "CS-305"},
		{Day: "Wednesday", Time: "9:00 AM", Subject: "Web Development", Faculty: "Prof. Brown", Room: "CS-102"},
		{Day: "Thursday", Time: "2:00 PM", Subject: "Software Engineering", Faculty: "Dr. Davis", Room: "CS-201"},
		{Day: "Friday", Time: "11:00 AM", Subject: "Cloud Computing", Faculty: "Prof. Wilson", Room: "CS-304"},
	}
}

// SeedExams returns the master exam schedule.
func SeedExams() []models.ExamEntry {
	return []models.ExamEntry{
		{Subject: "Data Structures", Date: "2025-10-15", Time: "10:00 AM", Room: "Exam Hall A", Duration: "3 hours"},
		{Subject: "Database Systems", Date: "2025-10-18", Time: "2:00 PM", Room: "Exam Hall B", Duration: "3 hours"},
		{Subject: "Machine Learning", Date: "2025-10-22", Time: "10:00 AM", Room: "Exam Hall C", Duration: "3 hours"},
	}
}

// SeedEvents returns the initial campus events.
func SeedEvents() []models.Event {
	return []models.Event{
		{Title: "Tech Fest 2025", Date: "2025-10-20", Time: "9:00 AM", Location: "Main Auditorium", Description: "Annual technical festival"},
		{Title: "Guest Lecture on AI", Date: "2025-10-12", Time: "3:00 PM", Location: "CS Seminar Hall", Description: "Industry expert talk"},
		{Title: "Sports Day", Date: "2025-10-25", Time: "8:00 AM", Location: "Sports Ground", Description: "Inter-department sports competition"},
	}
}

// SeedFaculty returns the faculty directory.
func SeedFaculty() []models.FacultyMember {
	return []models.FacultyMember{
		{Name: "Dr. Smith", Department: "Computer Science", Email: "smith@college.edu", Phone: "+1-234-567-8901", Office: "CS-401"},
		{Name: "Prof. Johnson", Department: "Computer Science", Email: "johnson@college.edu", Phone: "+1-234-567-8902", Office: "CS-402"},
		{Name: "Dr. Williams", Department: "Computer Science", Email: "williams@college.edu", Phone: "+1-234-567-8903", Office: "CS-403"},
	}
}

// SeedNotifications returns the initial announcements.
func SeedNotifications() []models.Notification {
	return []models.Notification{
		{ID: 1, Title: "Exam Schedule Updated", Message: "Mid-semester exam dates have been announced", Time: "2 hours ago", Read: false},
		{ID: 2, Title: "New Assignment Posted", Message: "Database Systems assignment due next week", Time: "5 hours ago", Read: false},
		{ID: 3, Title: "Club Meeting Tomorrow", Message: "Coding club meeting at 4 PM", Time: "1 day ago", Read: true},
	}
}
