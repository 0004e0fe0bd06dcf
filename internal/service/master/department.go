package master

import (
	"context"

	"github.com/gajikita/selaras-backend/internal/domain/master/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: departmentRepository}
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(d), nil
}

func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toDepartmentResponse(d))
	}
	return responses, nil
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.DepartmentRepository.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
	}
}
