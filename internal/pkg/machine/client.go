package machine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gajikita/selaras-backend/internal/config"
)

// Client talks to the third-party attendance machine HTTP endpoint. The
// machine exposes one action-based POST endpoint secured by a bearer API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.MachineConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// APIError represents an attendance machine API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("attendance machine API error [%d]: %s", e.StatusCode, e.Message)
}

// AttendanceRow is one raw machine punch row: employee display name,
// calendar date and status label.
type AttendanceRow struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// EmployeeRecord is the machine's view of a registered employee.
type EmployeeRecord struct {
	Name string `json:"name"`
}

type apiRequest struct {
	Action    string `json:"action"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Name      string `json:"name,omitempty"`
}

type apiResponse struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message,omitempty"`
	Attendances []AttendanceRow  `json:"attendances,omitempty"`
	Employees   []EmployeeRecord `json:"employees,omitempty"`
}

func (c *Client) do(ctx context.Context, reqBody apiRequest) (*apiResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode machine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build machine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call attendance machine: %w", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode machine response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	return &body, nil
}

// GetAttendance fetches raw attendance rows for the inclusive date range.
func (c *Client) GetAttendance(ctx context.Context, startDate, endDate string) ([]AttendanceRow, error) {
	resp, err := c.do(ctx, apiRequest{Action: "get_attendance", StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	return resp.Attendances, nil
}

// GetEmployees fetches the employees registered on the machine.
func (c *Client) GetEmployees(ctx context.Context) ([]EmployeeRecord, error) {
	resp, err := c.do(ctx, apiRequest{Action: "get_employees"})
	if err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

// AddEmployee registers an employee on the machine so future punches carry
// the same display name the reconciler matches on.
func (c *Client) AddEmployee(ctx context.Context, name string) error {
	_, err := c.do(ctx, apiRequest{Action: "add_employee", Name: name})
	return err
}
