package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/gajikita/selaras-backend/internal/pkg/machine"
	"github.com/google/uuid"
)

// MachineGateway is the outbound attendance-machine surface the sync
// operation needs. Satisfied by machine.Client.
type MachineGateway interface {
	GetAttendance(ctx context.Context, startDate, endDate string) ([]machine.AttendanceRow, error)
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.AbsenceRepository
	employee.EmployeeRepository
	calendar.EventRepository
	gateway MachineGateway
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	absenceRepository attendance.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
	eventRepository calendar.EventRepository,
	gateway MachineGateway,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		AbsenceRepository:    absenceRepository,
		EmployeeRepository:   employeeRepository,
		EventRepository:      eventRepository,
		gateway:              gateway,
	}
}

// Create implements attendance.AttendanceService. Manual single-row entry;
// check-in/check-out are synthesized from the status the same way imported
// rows are.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	status, _ := attendance.ParseStatus(req.Status)

	// Same rule as the importer: an absence on file blocks the date even when
	// no attendance row exists for it anymore.
	absExists, err := s.AbsenceRepository.ExistsByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if absExists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyRecorded
	}

	checkIn, checkOut := attendance.SynthesizeTimes(date, status)

	var created attendance.Attendance
	err = database.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		created, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Status:     status,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}

		if status == attendance.StatusAbsent || status == attendance.StatusLeave {
			if _, err := s.AbsenceRepository.Create(ctx, attendance.Absence{
				EmployeeID: emp.ID,
				Date:       date,
				Status:     status,
				Notes:      req.Notes,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	fullName := emp.FullName()
	created.EmployeeName = &fullName
	return toAttendanceResponse(created), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	a, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(a), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	attendances, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		responses = append(responses, toAttendanceResponse(a))
	}

	return attendance.ListAttendanceResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// ImportBatch implements attendance.AttendanceService. One shared
// reconciliation pass for the file importer, the machine pull sync and the
// inbound machine push.
//
// Rows are processed in order and fail independently: malformed input is
// collected as an error string, a row that cannot be reconciled (unknown or
// ambiguous name, already-recorded date, absence on file) as a mismatch. Only
// a storage failure aborts the batch, rolling back every row inserted so far.
func (s *AttendanceServiceImpl) ImportBatch(ctx context.Context, rows []attendance.ImportRow) (attendance.ImportStatus, error) {
	report := attendance.ImportStatus{
		BatchID:    uuid.NewString(),
		Timestamp:  time.Now().Format(time.RFC3339),
		TotalRows:  len(rows),
		Errors:     []string{},
		Mismatches: []attendance.Mismatch{},
	}

	roster, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return attendance.ImportStatus{}, err
	}
	byName := make(map[string][]employee.Employee, len(roster))
	for _, e := range roster {
		key := strings.ToLower(e.FullName())
		byName[key] = append(byName[key], e)
	}

	// Parse pass. Malformed rows are reported here; the rows that survive
	// bound the date range for the absence prefetch.
	type parsedRow struct {
		name   string
		date   time.Time
		status attendance.Status
	}
	parsed := make([]parsedRow, 0, len(rows))
	var rangeStart, rangeEnd time.Time
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || strings.TrimSpace(row.Date) == "" || strings.TrimSpace(row.Status) == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("baris %d: kolom name, date, dan status wajib diisi", i+1))
			continue
		}

		date, parseErr := time.Parse("2006-01-02", strings.TrimSpace(row.Date))
		if parseErr != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("baris %d: tanggal %q tidak valid", i+1, row.Date))
			continue
		}

		status, ok := attendance.ParseStatus(row.Status)
		if !ok {
			report.Errors = append(report.Errors,
				fmt.Sprintf("baris %d: status %q tidak dikenali", i+1, row.Status))
			continue
		}

		if len(parsed) == 0 || date.Before(rangeStart) {
			rangeStart = date
		}
		if len(parsed) == 0 || date.After(rangeEnd) {
			rangeEnd = date
		}
		parsed = append(parsed, parsedRow{name: name, date: date, status: status})
	}

	// An absence row blocks its (employee, date) whatever status the row
	// carries, including an absence left behind after its attendance row was
	// deleted.
	absenceOn := make(map[string]bool)
	if len(parsed) > 0 {
		absences, err := s.AbsenceRepository.ListByDateRange(ctx, rangeStart, rangeEnd)
		if err != nil {
			return attendance.ImportStatus{}, err
		}
		for _, a := range absences {
			absenceOn[absenceKey(a.EmployeeID, a.Date)] = true
		}
	}

	err = database.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		summaries := make(map[string]*dailySummary)

		for _, row := range parsed {
			matches := byName[strings.ToLower(row.name)]
			if len(matches) == 0 {
				report.Mismatches = append(report.Mismatches,
					attendance.Mismatch{EmployeeName: row.name, Reason: attendance.ReasonEmployeeNotFound})
				continue
			}
			if len(matches) > 1 {
				report.Mismatches = append(report.Mismatches,
					attendance.Mismatch{EmployeeName: row.name, Reason: attendance.ReasonEmployeeAmbiguous})
				continue
			}
			emp := matches[0]

			exists, err := s.AttendanceRepository.ExistsByEmployeeAndDate(ctx, emp.ID, row.date)
			if err != nil {
				return err
			}
			if exists {
				report.Mismatches = append(report.Mismatches,
					attendance.Mismatch{EmployeeName: row.name, Reason: attendance.ReasonAlreadyRecorded})
				continue
			}

			if absenceOn[absenceKey(emp.ID, row.date)] {
				report.Mismatches = append(report.Mismatches,
					attendance.Mismatch{EmployeeName: row.name, Reason: attendance.ReasonAbsenceRecorded})
				continue
			}

			checkIn, checkOut := attendance.SynthesizeTimes(row.date, row.status)
			created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       row.date,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Status:     row.status,
			})
			if err != nil {
				// The unique constraint catches what the in-process check
				// missed (duplicate rows within the same batch).
				if errors.Is(err, attendance.ErrAlreadyRecorded) {
					report.Mismatches = append(report.Mismatches,
						attendance.Mismatch{EmployeeName: row.name, Reason: attendance.ReasonAlreadyRecorded})
					continue
				}
				return err
			}

			if row.status == attendance.StatusAbsent || row.status == attendance.StatusLeave {
				if _, err := s.AbsenceRepository.Create(ctx, attendance.Absence{
					EmployeeID: emp.ID,
					Date:       row.date,
					Status:     row.status,
				}); err != nil && !errors.Is(err, attendance.ErrAlreadyRecorded) {
					return err
				}
				absenceOn[absenceKey(emp.ID, row.date)] = true
			}

			report.Imported++
			accumulate(summaries, row.date, emp.FullName(), created)
		}

		events := buildDailyEvents(summaries)
		if len(events) == 0 {
			return nil
		}
		_, err := s.EventRepository.CreateBatch(ctx, events)
		return err
	})
	if err != nil {
		return attendance.ImportStatus{}, err
	}

	return report, nil
}

// SyncFromMachine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SyncFromMachine(ctx context.Context, req attendance.SyncRequest) (attendance.ImportStatus, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportStatus{}, err
	}

	raw, err := s.gateway.GetAttendance(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return attendance.ImportStatus{}, fmt.Errorf("failed to fetch attendance from machine: %w", err)
	}

	rows := make([]attendance.ImportRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, attendance.ImportRow{Name: r.Name, Date: r.Date, Status: r.Status})
	}

	return s.ImportBatch(ctx, rows)
}

func absenceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

// dailySummary accumulates one reconciled date's aggregate. Earliest/latest
// ties keep the first row encountered.
type dailySummary struct {
	date  time.Time
	lines []string

	present int
	late    int
	absent  int
	leave   int

	earliestIn *time.Time
	earliestID string
	latestOut  *time.Time
	latestID   string
}

func accumulate(summaries map[string]*dailySummary, date time.Time, name string, created attendance.Attendance) {
	key := date.Format("2006-01-02")
	sum, ok := summaries[key]
	if !ok {
		sum = &dailySummary{date: date}
		summaries[key] = sum
	}

	sum.lines = append(sum.lines, fmt.Sprintf("- %s: %s", name, created.Status))

	switch created.Status {
	case attendance.StatusPresent:
		sum.present++
	case attendance.StatusLate:
		sum.late++
	case attendance.StatusAbsent:
		sum.absent++
	case attendance.StatusLeave:
		sum.leave++
	}

	if created.CheckIn != nil && (sum.earliestIn == nil || created.CheckIn.Before(*sum.earliestIn)) {
		sum.earliestIn = created.CheckIn
		sum.earliestID = created.ID
	}
	if created.CheckOut != nil && (sum.latestOut == nil || created.CheckOut.After(*sum.latestOut)) {
		sum.latestOut = created.CheckOut
		sum.latestID = created.ID
	}
}

func buildDailyEvents(summaries map[string]*dailySummary) []calendar.Event {
	events := make([]calendar.Event, 0, len(summaries))
	for _, sum := range summaries {
		dateLabel := sum.date.Format("2006-01-02")

		lines := make([]string, 0, len(sum.lines)+7)
		lines = append(lines, sum.lines...)
		lines = append(lines,
			fmt.Sprintf("Total Hadir: %d", sum.present),
			fmt.Sprintf("Total Terlambat: %d", sum.late),
			fmt.Sprintf("Total Tidak Hadir: %d", sum.absent),
			fmt.Sprintf("Total Cuti: %d", sum.leave),
		)
		if sum.earliestIn != nil {
			lines = append(lines, fmt.Sprintf("Check-in paling awal: %s", sum.earliestIn.Format("15:04")))
		}
		if sum.latestOut != nil {
			lines = append(lines, fmt.Sprintf("Check-out paling akhir: %s", sum.latestOut.Format("15:04")))
		}

		ev := calendar.Event{
			Title:       "Rekap Kehadiran " + dateLabel,
			Description: strings.Join(lines, "\n"),
			StartDate:   sum.date,
			EndDate:     sum.date,
			Type:        calendar.EventTypeAttendance,
			Synced:      true,
		}
		if sum.earliestID != "" {
			id := sum.earliestID
			ev.EarliestAttendanceID = &id
		}
		if sum.latestID != "" {
			id := sum.latestID
			ev.LatestAttendanceID = &id
		}
		events = append(events, ev)
	}
	return events
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(attendance.ComputeStatus(a.Status, a.CheckIn)),
		Notes:      a.Notes,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.CheckIn != nil {
		v := a.CheckIn.Format("15:04")
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.Format("15:04")
		resp.CheckOut = &v
	}
	return resp
}
