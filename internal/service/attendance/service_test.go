package attendance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	rows   map[string]attendance.Attendance
	nextID int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[string]attendance.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	key := attKey(a.EmployeeID, a.Date)
	if _, exists := f.rows[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyRecorded
	}
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.rows[key] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	_, exists := f.rows[attKey(employeeID, date)]
	return exists, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	out := make([]attendance.Attendance, 0, len(f.rows))
	for _, a := range f.rows {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for key, a := range f.rows {
		if a.ID == id {
			delete(f.rows, key)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeAbsenceRepo struct {
	rows   map[string]attendance.Absence
	nextID int
}

func newFakeAbsenceRepo() *fakeAbsenceRepo {
	return &fakeAbsenceRepo{rows: make(map[string]attendance.Absence)}
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, a attendance.Absence) (attendance.Absence, error) {
	key := attKey(a.EmployeeID, a.Date)
	if _, exists := f.rows[key]; exists {
		return attendance.Absence{}, attendance.ErrAlreadyRecorded
	}
	f.nextID++
	a.ID = fmt.Sprintf("abs-%d", f.nextID)
	f.rows[key] = a
	return a, nil
}

func (f *fakeAbsenceRepo) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	_, exists := f.rows[attKey(employeeID, date)]
	return exists, nil
}

func (f *fakeAbsenceRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Absence, error) {
	out := make([]attendance.Absence, 0, len(f.rows))
	for _, a := range f.rows {
		out = append(out, a)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.active {
		if e.ID == id {
			return e, nil
		}
	}
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

type fakeGateway struct {
	rows []machine.AttendanceRow
	err  error
}

func (f *fakeGateway) GetAttendance(ctx context.Context, startDate, endDate string) ([]machine.AttendanceRow, error) {
	return f.rows, f.err
}

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", FirstName: "Budi", LastName: "Santoso", Status: employee.StatusActive},
		{ID: "emp-2", FirstName: "Ahmad", LastName: "Surya", Status: employee.StatusActive},
	}
}

func newTestService(roster []employee.Employee, gw MachineGateway) (attendance.AttendanceService, *fakeAttendanceRepo, *fakeAbsenceRepo, *fakeEventRepo) {
	attRepo := newFakeAttendanceRepo()
	absRepo := newFakeAbsenceRepo()
	evRepo := &fakeEventRepo{}
	svc := NewAttendanceService(nil, attRepo, absRepo, &fakeEmployeeRepo{active: roster}, evRepo, gw)
	return svc, attRepo, absRepo, evRepo
}

func TestImportBatch_AbsentRowCreatesAttendanceAndAbsence(t *testing.T) {
	svc, attRepo, absRepo, evRepo := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "absent"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalRows)
	assert.Equal(t, 1, report.Imported)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Mismatches)

	require.Len(t, attRepo.rows, 1)
	for _, a := range attRepo.rows {
		assert.Equal(t, "emp-1", a.EmployeeID)
		assert.Equal(t, attendance.StatusAbsent, a.Status)
		assert.Nil(t, a.CheckIn)
		assert.Nil(t, a.CheckOut)
	}
	require.Len(t, absRepo.rows, 1)

	require.Len(t, evRepo.events, 1)
	ev := evRepo.events[0]
	assert.Equal(t, "Rekap Kehadiran 2025-04-10", ev.Title)
	assert.Equal(t, calendar.EventTypeAttendance, ev.Type)
	assert.Contains(t, ev.Description, "Total Tidak Hadir: 1")
}

func TestImportBatch_UnknownNameIsMismatch(t *testing.T) {
	svc, attRepo, absRepo, _ := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Siti Unknown", Date: "2025-04-10", Status: "present"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Imported)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, "Siti Unknown", report.Mismatches[0].EmployeeName)
	assert.Equal(t, "Karyawan tidak ditemukan di database.", report.Mismatches[0].Reason)
	assert.Empty(t, attRepo.rows)
	assert.Empty(t, absRepo.rows)
}

func TestImportBatch_AmbiguousNameIsMismatch(t *testing.T) {
	roster := append(testRoster(),
		employee.Employee{ID: "emp-3", FirstName: "Budi", LastName: "Santoso", Status: employee.StatusActive})
	svc, attRepo, _, _ := newTestService(roster, nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "present"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Imported)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, attendance.ReasonEmployeeAmbiguous, report.Mismatches[0].Reason)
	assert.Empty(t, attRepo.rows)
}

func TestImportBatch_MalformedRowsCollectErrors(t *testing.T) {
	svc, attRepo, _, _ := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "", Date: "2025-04-10", Status: "present"},
		{Name: "Budi Santoso", Date: "10/04/2025", Status: "present"},
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "sick"},
		{Name: "Ahmad Surya", Date: "2025-04-10", Status: "late"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalRows)
	assert.Equal(t, 1, report.Imported)
	assert.Len(t, report.Errors, 3)
	assert.Empty(t, report.Mismatches)
	assert.Len(t, attRepo.rows, 1)
}

func TestImportBatch_RerunIsIdempotent(t *testing.T) {
	svc, attRepo, absRepo, evRepo := newTestService(testRoster(), nil)

	rows := []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "absent"},
		{Name: "Ahmad Surya", Date: "2025-04-10", Status: "present"},
	}

	first, err := svc.ImportBatch(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)

	second, err := svc.ImportBatch(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Imported)
	require.Len(t, second.Mismatches, 2)
	for _, m := range second.Mismatches {
		assert.Equal(t, attendance.ReasonAlreadyRecorded, m.Reason)
	}

	// No new rows, no new events.
	assert.Len(t, attRepo.rows, 2)
	assert.Len(t, absRepo.rows, 1)
	assert.Len(t, evRepo.events, 1)
}

func TestImportBatch_DuplicateWithinBatch(t *testing.T) {
	svc, attRepo, _, _ := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "present"},
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "late"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, attendance.ReasonAlreadyRecorded, report.Mismatches[0].Reason)
	assert.Len(t, attRepo.rows, 1)
}

func TestImportBatch_ExistingAbsenceBlocksAnyStatus(t *testing.T) {
	svc, attRepo, absRepo, evRepo := newTestService(testRoster(), nil)

	// Absence rows without their parallel attendance rows, as left behind
	// when an attendance record is deleted on its own.
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	_, err := absRepo.Create(context.Background(), attendance.Absence{
		EmployeeID: "emp-1", Date: date, Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)
	_, err = absRepo.Create(context.Background(), attendance.Absence{
		EmployeeID: "emp-2", Date: date, Status: attendance.StatusLeave,
	})
	require.NoError(t, err)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "present"},
		{Name: "Ahmad Surya", Date: "2025-04-10", Status: "leave"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Imported)
	require.Len(t, report.Mismatches, 2)
	for _, m := range report.Mismatches {
		assert.Equal(t, attendance.ReasonAbsenceRecorded, m.Reason)
	}
	assert.Empty(t, attRepo.rows)
	assert.Len(t, absRepo.rows, 2)
	assert.Empty(t, evRepo.events)
}

func TestImportBatch_NameMatchIsCaseInsensitive(t *testing.T) {
	svc, _, _, _ := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "  budi SANTOSO ", Date: "2025-04-10", Status: "present"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Empty(t, report.Mismatches)
}

func TestImportBatch_DailyEventAggregation(t *testing.T) {
	roster := append(testRoster(),
		employee.Employee{ID: "emp-3", FirstName: "Siti", LastName: "Aminah", Status: employee.StatusActive})
	svc, _, _, evRepo := newTestService(roster, nil)

	report, err := svc.ImportBatch(context.Background(), []attendance.ImportRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "present"},
		{Name: "Ahmad Surya", Date: "2025-04-10", Status: "late"},
		{Name: "Siti Aminah", Date: "2025-04-10", Status: "leave"},
		{Name: "Budi Santoso", Date: "2025-04-11", Status: "present"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Imported)

	require.Len(t, evRepo.events, 2)

	var dayOne calendar.Event
	for _, ev := range evRepo.events {
		if ev.Title == "Rekap Kehadiran 2025-04-10" {
			dayOne = ev
		}
	}
	require.NotEmpty(t, dayOne.ID)

	assert.Contains(t, dayOne.Description, "Total Hadir: 1")
	assert.Contains(t, dayOne.Description, "Total Terlambat: 1")
	assert.Contains(t, dayOne.Description, "Total Cuti: 1")
	assert.Contains(t, dayOne.Description, "Total Tidak Hadir: 0")
	assert.Contains(t, dayOne.Description, "- Budi Santoso: present")

	// Present (08:00) beats late (09:15) for earliest check-in.
	require.NotNil(t, dayOne.EarliestAttendanceID)
	require.NotNil(t, dayOne.LatestAttendanceID)
	assert.Contains(t, dayOne.Description, "Check-in paling awal: 08:00")
	assert.Contains(t, dayOne.Description, "Check-out paling akhir: 17:00")
	assert.True(t, dayOne.Synced)
}

func TestImportBatch_BatchIDAndTimestampSet(t *testing.T) {
	svc, _, _, _ := newTestService(testRoster(), nil)

	report, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, report.BatchID)
	assert.NotEmpty(t, report.Timestamp)
	assert.Equal(t, 0, report.TotalRows)
}

func TestSyncFromMachine_FeedsReconciler(t *testing.T) {
	gw := &fakeGateway{rows: []machine.AttendanceRow{
		{Name: "Budi Santoso", Date: "2025-04-10", Status: "present"},
		{Name: "Orang Asing", Date: "2025-04-10", Status: "present"},
	}}
	svc, attRepo, _, _ := newTestService(testRoster(), gw)

	report, err := svc.SyncFromMachine(context.Background(), attendance.SyncRequest{
		StartDate: "2025-04-10",
		EndDate:   "2025-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRows)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, attendance.ReasonEmployeeNotFound, report.Mismatches[0].Reason)
	assert.Len(t, attRepo.rows, 1)
}

func TestSyncFromMachine_InvalidRange(t *testing.T) {
	svc, _, _, _ := newTestService(testRoster(), &fakeGateway{})

	_, err := svc.SyncFromMachine(context.Background(), attendance.SyncRequest{
		StartDate: "2025-04-10",
		EndDate:   "2025-04-01",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "end_date"))
}

func TestCreate_ManualEntryBlockedByExistingAbsence(t *testing.T) {
	svc, attRepo, absRepo, _ := newTestService(testRoster(), nil)

	_, err := absRepo.Create(context.Background(), attendance.Absence{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusLeave,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-04-10",
		Status:     "present",
	})
	require.ErrorIs(t, err, attendance.ErrAlreadyRecorded)
	assert.Empty(t, attRepo.rows)
}

func TestCreate_ManualAbsentDualWrite(t *testing.T) {
	svc, attRepo, absRepo, _ := newTestService(testRoster(), nil)

	resp, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-04-10",
		Status:     "absent",
	})
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", resp.EmployeeName)
	assert.Equal(t, "absent", resp.Status)
	assert.Nil(t, resp.CheckIn)
	assert.Len(t, attRepo.rows, 1)
	assert.Len(t, absRepo.rows, 1)
}
