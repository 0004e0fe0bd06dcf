package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	CreateBatch(ctx context.Context, records []Record) ([]Record, error)

	// ExistsByPeriod reports whether any record already carries this exact
	// (period_start, period_end) pair.
	ExistsByPeriod(ctx context.Context, start, end time.Time) (bool, error)

	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	ListDistinctPeriods(ctx context.Context) ([]Period, error)
	GetSummary(ctx context.Context, start, end time.Time) (SummaryResponse, error)
}
