package position

import (
	"time"

	"github.com/gajikita/selaras-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Position struct {
	ID         string
	Name       string
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreatePositionRequest struct {
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}
