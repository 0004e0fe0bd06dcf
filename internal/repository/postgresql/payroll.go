package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gajikita/selaras-backend/internal/domain/payroll"
	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	pr.id, pr.employee_id, pr.period_start, pr.period_end,
	pr.basic_salary, pr.allowances,
	pr.bpjs_kes_employee, pr.bpjs_kes_company,
	pr.jht_employee, pr.jht_company,
	pr.jp_employee, pr.jp_company,
	pr.jkk, pr.jkm,
	pr.pph21, pr.deductions, pr.net_salary,
	pr.payment_status, pr.payment_date, pr.created_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	p.name AS position_name
`

const payrollJoins = `
	FROM payroll_records pr
	JOIN employees e ON e.id = pr.employee_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.BasicSalary, &rec.Allowances,
		&rec.BPJSKesEmployee, &rec.BPJSKesCompany,
		&rec.JHTEmployee, &rec.JHTCompany,
		&rec.JPEmployee, &rec.JPCompany,
		&rec.JKK, &rec.JKM,
		&rec.PPh21, &rec.Deductions, &rec.NetSalary,
		&rec.PaymentStatus, &rec.PaymentDate, &rec.CreatedAt,
		&rec.EmployeeName, &rec.PositionName,
	)
	return rec, err
}

func (r *payrollRepository) CreateBatch(ctx context.Context, records []payroll.Record) ([]payroll.Record, error) {
	if len(records) == 0 {
		return []payroll.Record{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_start, period_end,
			basic_salary, allowances,
			bpjs_kes_employee, bpjs_kes_company,
			jht_employee, jht_company,
			jp_employee, jp_company,
			jkk, jkm,
			pph21, deductions, net_salary,
			payment_status, payment_date, created_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW())
		RETURNING id, created_at
	`

	created := make([]payroll.Record, 0, len(records))
	for _, rec := range records {
		err := q.QueryRow(ctx, query,
			rec.EmployeeID, rec.PeriodStart, rec.PeriodEnd,
			rec.BasicSalary, rec.Allowances,
			rec.BPJSKesEmployee, rec.BPJSKesCompany,
			rec.JHTEmployee, rec.JHTCompany,
			rec.JPEmployee, rec.JPCompany,
			rec.JKK, rec.JKM,
			rec.PPh21, rec.Deductions, rec.NetSalary,
			rec.PaymentStatus, rec.PaymentDate,
		).Scan(&rec.ID, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create payroll record: %w", err)
		}
		created = append(created, rec)
	}

	return created, nil
}

func (r *payrollRepository) ExistsByPeriod(ctx context.Context, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM payroll_records WHERE period_start = $1 AND period_end = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period existence: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE pr.id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.RecordFilter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.PeriodStart != nil {
		args = append(args, *filter.PeriodStart)
		conditions = append(conditions, fmt.Sprintf("pr.period_start = $%d", len(args)))
	}
	if filter.PeriodEnd != nil {
		args = append(args, *filter.PeriodEnd)
		conditions = append(conditions, fmt.Sprintf("pr.period_end = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*)` + payrollJoins + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	args = append(args, filter.Limit)
	limitClause := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetClause := fmt.Sprintf(" OFFSET $%d", len(args))

	query := `SELECT ` + payrollColumns + payrollJoins + where +
		` ORDER BY pr.period_start DESC, employee_name ASC` + limitClause + offsetClause

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.Record, 0)
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, total, nil
}

func (r *payrollRepository) ListDistinctPeriods(ctx context.Context) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT period_start, period_end
		FROM payroll_records
		ORDER BY period_start ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	periods := make([]payroll.Period, 0)
	for rows.Next() {
		var p payroll.Period
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll periods: %w", err)
	}

	return periods, nil
}

func (r *payrollRepository) GetSummary(ctx context.Context, start, end time.Time) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(basic_salary), 0),
			COALESCE(SUM(allowances), 0),
			COALESCE(SUM(deductions), 0),
			COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_start = $1 AND period_end = $2
	`

	var summary payroll.SummaryResponse
	err := q.QueryRow(ctx, query, start, end).Scan(
		&summary.TotalEmployees,
		&summary.TotalBasicSalary,
		&summary.TotalAllowances,
		&summary.TotalDeductions,
		&summary.TotalNetSalary,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	summary.PeriodStart = start.Format("2006-01-02")
	summary.PeriodEnd = end.Format("2006-01-02")

	return summary, nil
}
