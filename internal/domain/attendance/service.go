package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	// ImportBatch is the reconciliation entry point shared by the file
	// importer, the machine pull sync and the inbound machine push.
	ImportBatch(ctx context.Context, rows []ImportRow) (ImportStatus, error)

	// SyncFromMachine pulls raw rows from the attendance machine for the
	// date range and feeds them through ImportBatch.
	SyncFromMachine(ctx context.Context, req SyncRequest) (ImportStatus, error)
}
