package payroll

import "context"

type PayrollService interface {
	// ProcessPeriod computes and persists one record per active employee
	// for the period. Rejected outright if the period was already
	// processed or any employee lacks a base salary.
	ProcessPeriod(ctx context.Context, req ProcessPeriodRequest) ([]RecordResponse, error)

	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter RecordFilter) (ListRecordResponse, error)
	GetSummary(ctx context.Context, periodStart, periodEnd string) (SummaryResponse, error)

	// SyncCalendar creates one calendar event per payroll period not yet
	// represented by a matching title+date event.
	SyncCalendar(ctx context.Context) (CalendarSyncResponse, error)
}
