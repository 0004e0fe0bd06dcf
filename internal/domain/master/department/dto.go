package department

import (
	"time"

	"github.com/gajikita/selaras-backend/internal/pkg/validator"
)

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
