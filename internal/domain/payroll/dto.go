package payroll

import (
	"github.com/gajikita/selaras-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *ProcessPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordFilter struct {
	PeriodStart *string
	PeriodEnd   *string
	EmployeeID  *string
	Page        int
	Limit       int
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	PositionName *string `json:"position_name,omitempty"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`

	BPJSKesEmployee decimal.Decimal `json:"bpjs_kes_employee"`
	BPJSKesCompany  decimal.Decimal `json:"bpjs_kes_company"`
	JHTEmployee     decimal.Decimal `json:"bpjs_tk_jht_employee"`
	JHTCompany      decimal.Decimal `json:"bpjs_tk_jht_company"`
	JPEmployee      decimal.Decimal `json:"bpjs_tk_jp_employee"`
	JPCompany       decimal.Decimal `json:"bpjs_tk_jp_company"`
	JKK             decimal.Decimal `json:"bpjs_tk_jkk"`
	JKM             decimal.Decimal `json:"bpjs_tk_jkm"`

	PPh21      decimal.Decimal `json:"pph21"`
	Deductions decimal.Decimal `json:"deductions"`
	NetSalary  decimal.Decimal `json:"net_salary"`

	PaymentStatus string  `json:"payment_status"`
	PaymentDate   *string `json:"payment_date,omitempty"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type SummaryResponse struct {
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	TotalEmployees   int             `json:"total_employees"`
	TotalBasicSalary decimal.Decimal `json:"total_basic_salary"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}

type CalendarSyncResponse struct {
	PeriodsScanned int `json:"periods_scanned"`
	EventsCreated  int `json:"events_created"`
}
