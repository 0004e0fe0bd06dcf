package http

import (
	"fmt"
	"net/http"

	"github.com/gajikita/selaras-backend/internal/domain/report"
	"github.com/gajikita/selaras-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportPayslip(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Format:    r.URL.Query().Get("format"),
	}
	if req.Format == "" {
		req.Format = report.FormatCSV
	}

	result, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveExport(w, result)
}

func (h *reportHandlerImpl) ExportPayslip(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ExportPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveExport(w, result)
}

func serveExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
