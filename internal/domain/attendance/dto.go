package attendance

import (
	"github.com/gajikita/selaras-backend/internal/pkg/validator"
)

// ImportRow is one externally sourced attendance row, from a spreadsheet
// import or the attendance machine. Name is the employee display name the
// reconciler matches against the roster.
type ImportRow struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "at least one row is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Mismatch is a row that was well-formed but could not be reconciled:
// unknown or ambiguous employee name, or an already-recorded date. Reported
// to the operator, never thrown.
type Mismatch struct {
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

// ImportStatus is the only feedback surface of a reconciliation run.
// Partial success is the normal case, not an error state.
type ImportStatus struct {
	BatchID    string     `json:"batch_id"`
	Timestamp  string     `json:"timestamp"`
	TotalRows  int        `json:"total_rows"`
	Imported   int        `json:"imported"`
	Errors     []string   `json:"errors"`
	Mismatches []Mismatch `json:"mismatches"`
}

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, late, leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type AbsenceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}

type SyncRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *SyncRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
