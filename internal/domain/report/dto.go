package report

import "github.com/gajikita/selaras-backend/internal/pkg/validator"

type AttendanceReportRequest struct {
	StartDate string
	EndDate   string
	Format    string
}

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

func (r *AttendanceReportRequest) Validate() error {
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
	if !validator.IsInSlice(r.Format, []string{FormatCSV, FormatXLSX}) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "must be 'csv' or 'xlsx'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a rendered report: bytes plus the metadata the handler needs to
// serve it as a download.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}
