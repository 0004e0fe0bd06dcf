package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound          = errors.New("payroll record not found")
	ErrPeriodAlreadyProcessed  = errors.New("payroll for this period has already been processed")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
)

// NoBaseSalaryError rejects a whole payroll run, naming the first employee
// whose position carries no base salary.
type NoBaseSalaryError struct {
	EmployeeName string
}

func (e *NoBaseSalaryError) Error() string {
	return fmt.Sprintf("employee %q has no base salary configured", e.EmployeeName)
}

func (e *NoBaseSalaryError) Unwrap() error {
	return ErrEmployeeHasNoBaseSalary
}
