package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/gajikita/selaras-backend/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// reportRowLimit caps a single export; attendance reports are per date
// range, so this covers years of data for a small business roster.
const reportRowLimit = 10000

var attendanceHeader = []string{"Tanggal", "Nama Karyawan", "Check-in", "Check-out", "Status"}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	payroll.PayrollRepository
}

func NewReportService(
	attendanceRepository attendance.AttendanceRepository,
	payrollRepository payroll.PayrollRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepository,
		PayrollRepository:    payrollRepository,
	}
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.AttendanceReportRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	attendances, _, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
		Page:      1,
		Limit:     reportRowLimit,
	})
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]string, 0, len(attendances))
	for _, a := range attendances {
		name := ""
		if a.EmployeeName != nil {
			name = *a.EmployeeName
		}
		checkIn, checkOut := "-", "-"
		if a.CheckIn != nil {
			checkIn = a.CheckIn.Format("15:04")
		}
		if a.CheckOut != nil {
			checkOut = a.CheckOut.Format("15:04")
		}
		rows = append(rows, []string{
			a.Date.Format("2006-01-02"),
			name,
			checkIn,
			checkOut,
			string(attendance.ComputeStatus(a.Status, a.CheckIn)),
		})
	}

	fileName := fmt.Sprintf("laporan-kehadiran_%s_%s", req.StartDate, req.EndDate)
	if req.Format == report.FormatXLSX {
		data, err := renderXLSX(attendanceHeader, rows)
		if err != nil {
			return report.Export{}, err
		}
		return report.Export{
			FileName:    fileName + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}

	data, err := renderCSV(attendanceHeader, rows)
	if err != nil {
		return report.Export{}, err
	}
	return report.Export{
		FileName:    fileName + ".csv",
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportPayslip implements report.ReportService.
func (s *ReportServiceImpl) ExportPayslip(ctx context.Context, payrollID string) (report.Export, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, payrollID)
	if err != nil {
		return report.Export{}, err
	}

	data, err := renderPayslipPDF(rec)
	if err != nil {
		return report.Export{}, err
	}

	return report.Export{
		FileName:    fmt.Sprintf("slip-gaji_%s_%s.pdf", rec.EmployeeID, rec.PeriodStart.Format("2006-01")),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func renderXLSX(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to set cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPayslipPDF(rec payroll.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Slip Gaji")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	name := rec.EmployeeID
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}
	pdf.Cell(0, 7, fmt.Sprintf("Karyawan: %s", name))
	pdf.Ln(7)
	if rec.PositionName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Jabatan: %s", *rec.PositionName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Periode: %s s/d %s",
		rec.PeriodStart.Format("2006-01-02"), rec.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(12)

	line := func(label, amount string) {
		pdf.CellFormat(110, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, amount, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	line("Pendapatan", "")
	pdf.SetFont("Arial", "", 11)
	line("Gaji Pokok", "Rp "+rec.BasicSalary.StringFixed(2))
	line("Tunjangan", "Rp "+rec.Allowances.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	line("Potongan", "")
	pdf.SetFont("Arial", "", 11)
	line("BPJS Kesehatan (1%)", "Rp "+rec.BPJSKesEmployee.StringFixed(2))
	line("BPJS TK - JHT (2%)", "Rp "+rec.JHTEmployee.StringFixed(2))
	line("BPJS TK - JP (1%)", "Rp "+rec.JPEmployee.StringFixed(2))
	line("PPh 21", "Rp "+rec.PPh21.StringFixed(2))
	line("Total Potongan", "Rp "+rec.Deductions.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	line("Gaji Bersih", "Rp "+rec.NetSalary.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
