package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gajikita/selaras-backend/internal/domain/attendance"
	"github.com/gajikita/selaras-backend/internal/domain/employee"
	"github.com/gajikita/selaras-backend/internal/handler/http/response"
)

// MachineHandler serves the inbound attendance-machine endpoint: one
// action-based POST route guarded by the machine API key. The add_attendance
// action goes through the same reconciler as the file importer.
type MachineHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

type machineHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService
}

func NewMachineHandler(attendanceService attendance.AttendanceService, employeeService employee.EmployeeService) MachineHandler {
	return &machineHandlerImpl{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

type machineRequest struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status,omitempty"`
}

type machineEmployee struct {
	Name string `json:"name"`
}

type machineResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Employees []machineEmployee        `json:"employees,omitempty"`
	Report    *attendance.ImportStatus `json:"report,omitempty"`
}

func (h *machineHandlerImpl) Handle(w http.ResponseWriter, r *http.Request) {
	var req machineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	switch req.Action {
	case "get_employees":
		h.getEmployees(w, r)
	case "add_employee":
		h.addEmployee(w, r, req)
	case "add_attendance":
		h.addAttendance(w, r, req)
	default:
		response.BadRequest(w, "Unknown action", nil)
	}
}

func (h *machineHandlerImpl) getEmployees(w http.ResponseWriter, r *http.Request) {
	names, err := h.activeNames(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees := make([]machineEmployee, 0, len(names))
	for _, name := range names {
		employees = append(employees, machineEmployee{Name: name})
	}

	response.Success(w, machineResponse{Success: true, Employees: employees})
}

// addEmployee confirms a machine-side registration against the roster.
// Employees are created through the admin UI; the machine only verifies the
// display name it will report punches under.
func (h *machineHandlerImpl) addEmployee(w http.ResponseWriter, r *http.Request, req machineRequest) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequest(w, "Name is required", nil)
		return
	}

	names, err := h.activeNames(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	matched := 0
	for _, n := range names {
		if strings.EqualFold(n, name) {
			matched++
		}
	}

	switch matched {
	case 0:
		response.Success(w, machineResponse{Success: false, Message: attendance.ReasonEmployeeNotFound})
	case 1:
		response.Success(w, machineResponse{Success: true, Message: "Karyawan terdaftar."})
	default:
		response.Success(w, machineResponse{Success: false, Message: attendance.ReasonEmployeeAmbiguous})
	}
}

func (h *machineHandlerImpl) addAttendance(w http.ResponseWriter, r *http.Request, req machineRequest) {
	report, err := h.attendanceService.ImportBatch(r.Context(), []attendance.ImportRow{
		{Name: req.Name, Date: req.Date, Status: req.Status},
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := machineResponse{Success: report.Imported == 1, Report: &report}
	if !resp.Success {
		if len(report.Mismatches) > 0 {
			resp.Message = report.Mismatches[0].Reason
		} else if len(report.Errors) > 0 {
			resp.Message = report.Errors[0]
		}
	}
	response.Success(w, resp)
}

func (h *machineHandlerImpl) activeNames(r *http.Request) ([]string, error) {
	status := string(employee.StatusActive)
	result, err := h.employeeService.List(r.Context(), employee.EmployeeFilter{
		Status: &status,
		Page:   1,
		Limit:  100,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Data))
	for _, e := range result.Data {
		names = append(names, e.FullName)
	}
	return names, nil
}
