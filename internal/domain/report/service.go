package report

import "context"

type ReportService interface {
	ExportAttendance(ctx context.Context, req AttendanceReportRequest) (Export, error)
	ExportPayslip(ctx context.Context, payrollID string) (Export, error)
}
