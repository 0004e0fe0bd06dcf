package calendar

import "github.com/gajikita/selaras-backend/internal/pkg/validator"

type EventFilter struct {
	StartDate *string
	EndDate   *string
	Type      *string
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.Type != nil && !validator.IsInSlice(*f.Type, []string{string(EventTypeAttendance), string(EventTypePayroll)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'attendance' or 'payroll'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	Type                 string  `json:"type"`
	Synced               bool    `json:"synced"`
	EarliestAttendanceID *string `json:"earliest_attendance_id,omitempty"`
	LatestAttendanceID   *string `json:"latest_attendance_id,omitempty"`
}
