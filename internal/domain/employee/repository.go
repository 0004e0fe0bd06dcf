package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActive returns all non-deleted active employees with joined
	// department/position names and position base salary.
	GetActive(ctx context.Context) ([]Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
