package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record - one payroll result per employee per period. A period is never
// reprocessed once any record for it exists.
type Record struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal

	// BPJS Kesehatan
	BPJSKesEmployee decimal.Decimal
	BPJSKesCompany  decimal.Decimal

	// BPJS Ketenagakerjaan
	JHTEmployee decimal.Decimal
	JHTCompany  decimal.Decimal
	JPEmployee  decimal.Decimal
	JPCompany   decimal.Decimal
	JKK         decimal.Decimal
	JKM         decimal.Decimal

	PPh21      decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal

	PaymentStatus PaymentStatus
	PaymentDate   *time.Time
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
	PositionName *string
}

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// Period is a distinct (start, end) pair present in payroll data.
type Period struct {
	Start time.Time
	End   time.Time
}
