package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	records []payroll.Record
	nextID  int
}

func (f *fakePayrollRepo) CreateBatch(ctx context.Context, records []payroll.Record) ([]payroll.Record, error) {
	created := make([]payroll.Record, 0, len(records))
	for _, rec := range records {
		f.nextID++
		rec.ID = fmt.Sprintf("pay-%d", f.nextID)
		f.records = append(f.records, rec)
		created = append(created, rec)
	}
	return created, nil
}

func (f *fakePayrollRepo) ExistsByPeriod(ctx context.Context, start, end time.Time) (bool, error) {
	for _, rec := range f.records {
		if rec.PeriodStart.Equal(start) && rec.PeriodEnd.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Record{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakePayrollRepo) ListDistinctPeriods(ctx context.Context) ([]payroll.Period, error) {
	seen := make(map[string]bool)
	periods := make([]payroll.Period, 0)
	for _, rec := range f.records {
		key := rec.PeriodStart.Format("2006-01-02") + rec.PeriodEnd.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			periods = append(periods, payroll.Period{Start: rec.PeriodStart, End: rec.PeriodEnd})
		}
	}
	return periods, nil
}

func (f *fakePayrollRepo) GetSummary(ctx context.Context, start, end time.Time) (payroll.SummaryResponse, error) {
	summary := payroll.SummaryResponse{
		PeriodStart:      start.Format("2006-01-02"),
		PeriodEnd:        end.Format("2006-01-02"),
		TotalBasicSalary: decimal.Zero,
		TotalAllowances:  decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	}
	for _, rec := range f.records {
		if !rec.PeriodStart.Equal(start) || !rec.PeriodEnd.Equal(end) {
			continue
		}
		summary.TotalEmployees++
		summary.TotalBasicSalary = summary.TotalBasicSalary.Add(rec.BasicSalary)
		summary.TotalAllowances = summary.TotalAllowances.Add(rec.Allowances)
		summary.TotalDeductions = summary.TotalDeductions.Add(rec.Deductions)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(rec.NetSalary)
	}
	return summary, nil
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.active, int64(len(f.active)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	panic("not used")
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	panic("not used")
}

type fakeEventRepo struct {
	events []calendar.Event
}

func (f *fakeEventRepo) CreateBatch(ctx context.Context, events []calendar.Event) ([]calendar.Event, error) {
	for i := range events {
		events[i].ID = fmt.Sprintf("ev-%d", len(f.events)+i+1)
	}
	f.events = append(f.events, events...)
	return events, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter calendar.EventFilter) ([]calendar.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ExistsByTitleAndDate(ctx context.Context, title string, startDate time.Time) (bool, error) {
	for _, ev := range f.events {
		if ev.Title == title && ev.StartDate.Equal(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func payrollRoster() []employee.Employee {
	salaryAhmad := decimal.NewFromInt(5_000_000)
	salaryBudi := decimal.NewFromInt(4_000_000)
	return []employee.Employee{
		{
			ID: "emp-1", FirstName: "Ahmad", LastName: "Surya",
			BaseSalary: &salaryAhmad, Incentive: dec(200_000), TransportationFee: dec(100_000),
			Status: employee.StatusActive,
		},
		{
			ID: "emp-2", FirstName: "Budi", LastName: "Santoso",
			BaseSalary: &salaryBudi,
			Status:     employee.StatusActive,
		},
	}
}

func newTestService(roster []employee.Employee) (payroll.PayrollService, *fakePayrollRepo, *fakeEventRepo) {
	payRepo := &fakePayrollRepo{}
	evRepo := &fakeEventRepo{}
	svc := NewPayrollService(nil, payRepo, &fakeEmployeeRepo{active: roster}, evRepo)
	return svc, payRepo, evRepo
}

func processRequest() payroll.ProcessPeriodRequest {
	return payroll.ProcessPeriodRequest{PeriodStart: "2025-04-01", PeriodEnd: "2025-04-30"}
}

func TestProcessPeriod_CreatesOneRecordPerEmployee(t *testing.T) {
	svc, payRepo, _ := newTestService(payrollRoster())

	records, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, payRepo.records, 2)

	var ahmad payroll.RecordResponse
	for _, rec := range records {
		if rec.EmployeeName == "Ahmad Surya" {
			ahmad = rec
		}
	}
	require.NotEmpty(t, ahmad.ID)

	assert.True(t, ahmad.Allowances.Equal(decimal.NewFromInt(300_000)))
	assert.True(t, ahmad.PPh21.Equal(decimal.NewFromInt(265_000)))
	assert.True(t, ahmad.Deductions.Equal(decimal.NewFromInt(465_000)))
	assert.True(t, ahmad.NetSalary.Equal(decimal.NewFromInt(4_835_000)))
	assert.Equal(t, "paid", ahmad.PaymentStatus)
	require.NotNil(t, ahmad.PaymentDate)
}

func TestProcessPeriod_RejectsReprocessing(t *testing.T) {
	svc, payRepo, _ := newTestService(payrollRoster())

	_, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.NoError(t, err)

	_, err = svc.ProcessPeriod(context.Background(), processRequest())
	require.ErrorIs(t, err, payroll.ErrPeriodAlreadyProcessed)
	assert.Len(t, payRepo.records, 2)
}

func TestProcessPeriod_FailsFastOnMissingBaseSalary(t *testing.T) {
	roster := payrollRoster()
	roster[1].BaseSalary = nil
	svc, payRepo, _ := newTestService(roster)

	_, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.Error(t, err)
	require.ErrorIs(t, err, payroll.ErrEmployeeHasNoBaseSalary)

	var noSalary *payroll.NoBaseSalaryError
	require.True(t, errors.As(err, &noSalary))
	assert.Equal(t, "Budi Santoso", noSalary.EmployeeName)

	// Fail-fast: nothing written, not even for the valid employee.
	assert.Empty(t, payRepo.records)
}

func TestProcessPeriod_ZeroSalaryRejected(t *testing.T) {
	roster := payrollRoster()
	zero := decimal.Zero
	roster[0].BaseSalary = &zero
	svc, payRepo, _ := newTestService(roster)

	_, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.ErrorIs(t, err, payroll.ErrEmployeeHasNoBaseSalary)
	assert.Empty(t, payRepo.records)
}

func TestProcessPeriod_InvalidPeriodValidation(t *testing.T) {
	svc, _, _ := newTestService(payrollRoster())

	_, err := svc.ProcessPeriod(context.Background(), payroll.ProcessPeriodRequest{
		PeriodStart: "2025-04-30",
		PeriodEnd:   "2025-04-01",
	})
	require.Error(t, err)
}

func TestGetSummary_TotalsPerPeriod(t *testing.T) {
	svc, _, _ := newTestService(payrollRoster())

	_, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.NoError(t, err)

	summary, err := svc.GetSummary(context.Background(), "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.True(t, summary.TotalBasicSalary.Equal(decimal.NewFromInt(9_000_000)))
	assert.True(t, summary.TotalAllowances.Equal(decimal.NewFromInt(300_000)))
}

func TestSyncCalendar_CreatesEventPerPeriodOnce(t *testing.T) {
	svc, _, evRepo := newTestService(payrollRoster())

	_, err := svc.ProcessPeriod(context.Background(), processRequest())
	require.NoError(t, err)

	first, err := svc.SyncCalendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.PeriodsScanned)
	assert.Equal(t, 1, first.EventsCreated)
	require.Len(t, evRepo.events, 1)

	ev := evRepo.events[0]
	assert.Equal(t, calendar.EventTypePayroll, ev.Type)
	assert.Contains(t, ev.Title, "Penggajian")
	assert.Contains(t, ev.Description, "Total Karyawan: 2")
	assert.True(t, ev.Synced)

	// Rerun fills no gaps.
	second, err := svc.SyncCalendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.PeriodsScanned)
	assert.Equal(t, 0, second.EventsCreated)
	assert.Len(t, evRepo.events, 1)
}

func TestSyncCalendar_EmptyPayrollData(t *testing.T) {
	svc, _, evRepo := newTestService(payrollRoster())

	resp, err := svc.SyncCalendar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.PeriodsScanned)
	assert.Equal(t, 0, resp.EventsCreated)
	assert.Empty(t, evRepo.events)
}
