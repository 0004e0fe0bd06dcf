package calendar

import (
	"context"
	"time"
)

type EventRepository interface {
	CreateBatch(ctx context.Context, events []Event) ([]Event, error)
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// ExistsByTitleAndDate backs the idempotence check of the payroll
	// calendar sync.
	ExistsByTitleAndDate(ctx context.Context, title string, startDate time.Time) (bool, error)
}
