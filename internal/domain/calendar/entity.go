package calendar

import "time"

// Event is a derived, informational projection: one per reconciled
// attendance date or per payroll period. Events are regenerated, never
// updated in place, and nothing else depends on their existence.
type Event struct {
	ID                   string
	Title                string
	Description          string
	StartDate            time.Time
	EndDate              time.Time
	Type                 EventType
	Synced               bool
	EarliestAttendanceID *string
	LatestAttendanceID   *string
	CreatedAt            time.Time
}

type EventType string

const (
	EventTypeAttendance EventType = "attendance"
	EventTypePayroll    EventType = "payroll"
)
