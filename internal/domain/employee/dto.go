package employee

import (
	"github.com/gajikita/selaras-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             *string          `json:"email,omitempty"`
	HireDate          string           `json:"hire_date"`
	DepartmentID      string           `json:"department_id"`
	PositionID        string           `json:"position_id"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	NPWP              *string          `json:"npwp,omitempty"`
	BPJSKesNumber     *string          `json:"bpjs_kes_number,omitempty"`
	BPJSTKNumber      *string          `json:"bpjs_tk_number,omitempty"`
	Incentive         *decimal.Decimal `json:"incentive,omitempty"`
	TransportationFee *decimal.Decimal `json:"transportation_fee,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PositionID) {
		errs = append(errs, validator.ValidationError{Field: "position_id", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.NPWP != nil && !validator.IsValidNPWP(*r.NPWP) {
		errs = append(errs, validator.ValidationError{Field: "npwp", Message: "is not a valid NPWP"})
	}
	if r.Incentive != nil && r.Incentive.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "incentive", Message: "must be non-negative"})
	}
	if r.TransportationFee != nil && r.TransportationFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transportation_fee", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FirstName         *string          `json:"first_name,omitempty"`
	LastName          *string          `json:"last_name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	HireDate          *string          `json:"hire_date,omitempty"`
	DepartmentID      *string          `json:"department_id,omitempty"`
	PositionID        *string          `json:"position_id,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	NPWP              *string          `json:"npwp,omitempty"`
	BPJSKesNumber     *string          `json:"bpjs_kes_number,omitempty"`
	BPJSTKNumber      *string          `json:"bpjs_tk_number,omitempty"`
	Incentive         *decimal.Decimal `json:"incentive,omitempty"`
	TransportationFee *decimal.Decimal `json:"transportation_fee,omitempty"`
	Status            *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}
	if r.Incentive != nil && r.Incentive.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "incentive", Message: "must be non-negative"})
	}
	if r.TransportationFee != nil && r.TransportationFee.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transportation_fee", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	DepartmentID *string
	PositionID   *string
	Status       *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	FullName          string           `json:"full_name"`
	Email             *string          `json:"email,omitempty"`
	HireDate          string           `json:"hire_date"`
	DepartmentID      string           `json:"department_id"`
	DepartmentName    *string          `json:"department_name,omitempty"`
	PositionID        string           `json:"position_id"`
	PositionName      *string          `json:"position_name,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	NPWP              *string          `json:"npwp,omitempty"`
	BPJSKesNumber     *string          `json:"bpjs_kes_number,omitempty"`
	BPJSTKNumber      *string          `json:"bpjs_tk_number,omitempty"`
	Incentive         *decimal.Decimal `json:"incentive,omitempty"`
	TransportationFee *decimal.Decimal `json:"transportation_fee,omitempty"`
	Status            string           `json:"status"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
