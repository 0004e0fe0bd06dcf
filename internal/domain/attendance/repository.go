package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsByEmployeeAndDate reports whether an attendance row already
	// exists for (employee, date). Checked in-process before insert; the
	// unique constraint is the final defense.
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Delete(ctx context.Context, id string) error
}

type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Absence, error)
}
