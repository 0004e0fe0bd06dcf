package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/domain/master/department"
	"github.com/gajikita/selaras-backend/internal/domain/master/position"
)

// MachineRegistrar pushes a newly created employee's display name to the
// attendance machine so future punches carry a matchable name.
type MachineRegistrar interface {
	AddEmployee(ctx context.Context, name string) error
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
	position.PositionRepository
	registrar MachineRegistrar
	logger    *slog.Logger
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	departmentRepository department.DepartmentRepository,
	positionRepository position.PositionRepository,
	registrar MachineRegistrar,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepository,
		DepartmentRepository: departmentRepository,
		PositionRepository:   positionRepository,
		registrar:            registrar,
		logger:               logger,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.PositionRepository.GetByID(ctx, req.PositionID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		HireDate:          hireDate,
		DepartmentID:      req.DepartmentID,
		PositionID:        req.PositionID,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		NPWP:              req.NPWP,
		BPJSKesNumber:     req.BPJSKesNumber,
		BPJSTKNumber:      req.BPJSTKNumber,
		Incentive:         req.Incentive,
		TransportationFee: req.TransportationFee,
		Status:            employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Best effort: a machine that is down must not block employee creation.
	if s.registrar != nil {
		if err := s.registrar.AddEmployee(ctx, created.FullName()); err != nil {
			s.logger.Warn("failed to register employee on attendance machine",
				slog.String("employee_id", created.ID), slog.Any("error", err))
		}
	}

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	return employee.ListEmployeeResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.PositionID != nil {
		if _, err := s.PositionRepository.GetByID(ctx, *req.PositionID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService. Soft delete; historical
// attendance and payroll rows keep referencing the employee.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                e.ID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		FullName:          e.FullName(),
		Email:             e.Email,
		HireDate:          e.HireDate.Format("2006-01-02"),
		DepartmentID:      e.DepartmentID,
		DepartmentName:    e.DepartmentName,
		PositionID:        e.PositionID,
		PositionName:      e.PositionName,
		BaseSalary:        e.BaseSalary,
		BankName:          e.BankName,
		BankAccountNumber: e.BankAccountNumber,
		NPWP:              e.NPWP,
		BPJSKesNumber:     e.BPJSKesNumber,
		BPJSTKNumber:      e.BPJSTKNumber,
		Incentive:         e.Incentive,
		TransportationFee: e.TransportationFee,
		Status:            string(e.Status),
	}
}
