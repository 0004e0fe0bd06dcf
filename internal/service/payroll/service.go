package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
	calendar.EventRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
	eventRepository calendar.EventRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                 db,
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
		EventRepository:    eventRepository,
	}
}

// ProcessPeriod implements payroll.PayrollService. The whole run is
// all-or-nothing: an already-processed period or a single employee without
// a base salary rejects the batch before anything is written.
func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, req payroll.ProcessPeriodRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)

	exists, err := s.PayrollRepository.ExistsByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, payroll.ErrPeriodAlreadyProcessed
	}

	roster, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]payroll.Record, 0, len(roster))
	for _, emp := range roster {
		if emp.BaseSalary == nil || emp.BaseSalary.IsZero() {
			return nil, &payroll.NoBaseSalaryError{EmployeeName: emp.FullName()}
		}

		b := payroll.Compute(*emp.BaseSalary, emp.Incentive, emp.TransportationFee)
		paymentDate := now
		records = append(records, payroll.Record{
			EmployeeID:      emp.ID,
			PeriodStart:     start,
			PeriodEnd:       end,
			BasicSalary:     b.BasicSalary,
			Allowances:      b.Allowances,
			BPJSKesEmployee: b.BPJSKesEmployee,
			BPJSKesCompany:  b.BPJSKesCompany,
			JHTEmployee:     b.JHTEmployee,
			JHTCompany:      b.JHTCompany,
			JPEmployee:      b.JPEmployee,
			JPCompany:       b.JPCompany,
			JKK:             b.JKK,
			JKM:             b.JKM,
			PPh21:           b.PPh21,
			Deductions:      b.Deductions,
			NetSalary:       b.NetSalary,
			PaymentStatus:   payroll.PaymentStatusPaid,
			PaymentDate:     &paymentDate,
		})
	}

	var created []payroll.Record
	err = database.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		created, err = s.PayrollRepository.CreateBatch(ctx, records)
		return err
	})
	if err != nil {
		return nil, err
	}

	nameByID := make(map[string]string, len(roster))
	positionByID := make(map[string]*string, len(roster))
	for _, emp := range roster {
		nameByID[emp.ID] = emp.FullName()
		positionByID[emp.ID] = emp.PositionName
	}

	responses := make([]payroll.RecordResponse, 0, len(created))
	for _, rec := range created {
		name := nameByID[rec.EmployeeID]
		rec.EmployeeName = &name
		rec.PositionName = positionByID[rec.EmployeeID]
		responses = append(responses, toRecordResponse(rec))
	}
	return responses, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.RecordFilter) (payroll.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	return payroll.ListRecordResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, periodStart, periodEnd string) (payroll.SummaryResponse, error) {
	req := payroll.ProcessPeriodRequest{PeriodStart: periodStart, PeriodEnd: periodEnd}
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", periodStart)
	end, _ := time.Parse("2006-01-02", periodEnd)

	return s.PayrollRepository.GetSummary(ctx, start, end)
}

// SyncCalendar implements payroll.PayrollService. Idempotent by the
// title+date existence check; reruns only fill gaps.
func (s *PayrollServiceImpl) SyncCalendar(ctx context.Context) (payroll.CalendarSyncResponse, error) {
	periods, err := s.PayrollRepository.ListDistinctPeriods(ctx)
	if err != nil {
		return payroll.CalendarSyncResponse{}, err
	}

	resp := payroll.CalendarSyncResponse{PeriodsScanned: len(periods)}

	events := make([]calendar.Event, 0)
	for _, p := range periods {
		title := payrollEventTitle(p.Start, p.End)

		exists, err := s.EventRepository.ExistsByTitleAndDate(ctx, title, p.Start)
		if err != nil {
			return payroll.CalendarSyncResponse{}, err
		}
		if exists {
			continue
		}

		summary, err := s.PayrollRepository.GetSummary(ctx, p.Start, p.End)
		if err != nil {
			return payroll.CalendarSyncResponse{}, err
		}

		events = append(events, calendar.Event{
			Title: title,
			Description: fmt.Sprintf("Total Karyawan: %d\nTotal Gaji Bersih: %s",
				summary.TotalEmployees, formatRupiah(summary.TotalNetSalary)),
			StartDate: p.Start,
			EndDate:   p.End,
			Type:      calendar.EventTypePayroll,
			Synced:    true,
		})
	}

	if len(events) > 0 {
		if _, err := s.EventRepository.CreateBatch(ctx, events); err != nil {
			return payroll.CalendarSyncResponse{}, err
		}
	}

	resp.EventsCreated = len(events)
	return resp, nil
}

func payrollEventTitle(start, end time.Time) string {
	return fmt.Sprintf("Penggajian %s s/d %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func formatRupiah(v decimal.Decimal) string {
	return "Rp " + v.StringFixed(2)
}

func toRecordResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		PositionName:    rec.PositionName,
		PeriodStart:     rec.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       rec.PeriodEnd.Format("2006-01-02"),
		BasicSalary:     rec.BasicSalary,
		Allowances:      rec.Allowances,
		BPJSKesEmployee: rec.BPJSKesEmployee,
		BPJSKesCompany:  rec.BPJSKesCompany,
		JHTEmployee:     rec.JHTEmployee,
		JHTCompany:      rec.JHTCompany,
		JPEmployee:      rec.JPEmployee,
		JPCompany:       rec.JPCompany,
		JKK:             rec.JKK,
		JKM:             rec.JKM,
		PPh21:           rec.PPh21,
		Deductions:      rec.Deductions,
		NetSalary:       rec.NetSalary,
		PaymentStatus:   string(rec.PaymentStatus),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.PaymentDate != nil {
		v := rec.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &v
	}
	return resp
}
