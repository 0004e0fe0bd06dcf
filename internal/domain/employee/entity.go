package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FirstName         string
	LastName          string
	Email             *string
	HireDate          time.Time
	DepartmentID      string
	PositionID        string
	BankName          *string
	BankAccountNumber *string
	NPWP              *string
	BPJSKesNumber     *string
	BPJSTKNumber      *string
	Incentive         *decimal.Decimal
	TransportationFee *decimal.Decimal
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	// Joined fields
	DepartmentName *string
	PositionName   *string
	BaseSalary     *decimal.Decimal
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// FullName is the display name attendance rows are matched against:
// "first last" with a single space.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
