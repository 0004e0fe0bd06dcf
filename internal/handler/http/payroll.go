package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/gajikita/selaras-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	SyncCalendar(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.ProcessPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed successfully", result)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RecordFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("period_start"); v != "" {
		filter.PeriodStart = &v
	}
	if v := r.URL.Query().Get("period_end"); v != "" {
		filter.PeriodEnd = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSummary(r.Context(),
		r.URL.Query().Get("period_start"), r.URL.Query().Get("period_end"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SyncCalendar(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.SyncCalendar(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calendar synced", result)
}
