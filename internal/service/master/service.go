package master

import (
	"context"

	"github.com/gajikita/selaras-backend/internal/domain/master/department"
	"github.com/gajikita/selaras-backend/internal/domain/master/position"
)

// DepartmentService and PositionService cover the master data the rest of
// the system hangs off: every employee references one of each.

type DepartmentService interface {
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	Get(ctx context.Context, id string) (department.DepartmentResponse, error)
	List(ctx context.Context) ([]department.DepartmentResponse, error)
	Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type PositionService interface {
	Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	Get(ctx context.Context, id string) (position.PositionResponse, error)
	List(ctx context.Context) ([]position.PositionResponse, error)
	Update(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error)
	Delete(ctx context.Context, id string) error
}
