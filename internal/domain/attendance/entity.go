package attendance

import "time"

// Attendance is one row per employee per working day. CheckIn/CheckOut are
// nil for absent and leave days.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Absence is recorded alongside (not instead of) the attendance row when the
// imported status is absent or leave.
type Absence struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
